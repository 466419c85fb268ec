// Package main provides the sbol3 binary entry point.
// sbol3 assembles genetic design manifests into typed documents, checks
// their graph-level consistency, and serializes them to RDF.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "sbol3"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "sbol3",
		Short: "Genetic design document tooling",
		Long: `sbol3 assembles genetic design manifests into typed documents,
checks their graph-level consistency, and serializes them to RDF.

It provides:
- validate: build a design from a YAML manifest and report every problem
- export:   serialize a design to Turtle, N-Triples, or JSON-LD
- vocab:    list the built-in vocabulary terms and their URIs`,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(validateCmd(&logLevel))
	cmd.AddCommand(exportCmd(&logLevel))
	cmd.AddCommand(vocabCmd())

	return cmd
}
