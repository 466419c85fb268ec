package vocabulary

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidURI indicates a malformed absolute URI was supplied where a
// vocabulary term or reference is expected.
var ErrInvalidURI = errors.New("invalid absolute URI")

// ParseAbsoluteURI parses raw as an absolute URI. It fails for the empty
// string, a missing or malformed scheme, and relative references. No
// normalization beyond standard URI parsing is performed.
func ParseAbsoluteURI(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidURI)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURI, raw, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q is a relative reference", ErrInvalidURI, raw)
	}
	return u, nil
}

// ValidateURI reports whether raw is a syntactically valid absolute URI.
func ValidateURI(raw string) error {
	_, err := ParseAbsoluteURI(raw)
	return err
}

// URIEqual compares two URIs by structural component comparison (scheme,
// opaque part, authority, path, query, fragment) rather than literal string
// equality. Opaque schemes such as urn: and mailto: carry their identity in
// the opaque part, not the path. Unparseable inputs compare equal only when
// their raw strings match.
func URIEqual(a, b string) bool {
	ua, errA := url.Parse(a)
	ub, errB := url.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ua.Scheme == ub.Scheme &&
		ua.Opaque == ub.Opaque &&
		ua.Host == ub.Host &&
		ua.User.String() == ub.User.String() &&
		ua.Path == ub.Path &&
		ua.RawQuery == ub.RawQuery &&
		ua.Fragment == ub.Fragment
}
