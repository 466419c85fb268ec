package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/sbol3/config"
	"github.com/c360studio/sbol3/document"
	"github.com/c360studio/sbol3/export"
	"github.com/c360studio/sbol3/manifest"
	"github.com/c360studio/sbol3/vocabulary"
)

// setup configures logging and loads the layered configuration. The
// log-level flag overrides the configured level when set.
func setup(logLevel string) (*config.Config, *slog.Logger, error) {
	loader := config.NewLoader(slog.Default())
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}

// buildDocument loads a manifest and assembles it into a document.
func buildDocument(path string, cfg *config.Config, logger *slog.Logger) (*document.Document, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	doc, err := m.Build(cfg.Design.Namespace)
	if err != nil {
		return nil, fmt.Errorf("build design: %w", err)
	}
	logger.Debug("Design assembled",
		"components", len(doc.Components()),
		"sequences", len(doc.Sequences()))
	return doc, nil
}

func validateCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <design.yaml>",
		Short: "Build a design and report every consistency problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*logLevel)
			if err != nil {
				return err
			}
			doc, err := buildDocument(args[0], cfg, logger)
			if err != nil {
				return err
			}

			errs := document.Validate(doc)
			if len(errs) == 0 {
				fmt.Println("OK")
				return nil
			}
			for _, verr := range errs {
				fmt.Fprintf(os.Stderr, "  %v\n", verr)
			}
			return fmt.Errorf("%d validation problem(s)", len(errs))
		},
	}
}

func exportCmd(logLevel *string) *cobra.Command {
	var (
		formatName string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export <design.yaml>",
		Short: "Serialize a design to RDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*logLevel)
			if err != nil {
				return err
			}
			if formatName == "" {
				formatName = cfg.Export.Format
			}
			if output == "" {
				output = cfg.Export.Output
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			doc, err := buildDocument(args[0], cfg, logger)
			if err != nil {
				return err
			}

			// Exporting an inconsistent design is allowed but noisy.
			if errs := document.Validate(doc); len(errs) > 0 {
				logger.Warn("Design has validation problems", "count", len(errs))
			}

			out, err := export.NewExporter(doc).Export(format)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Print(out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("Design exported", "path", output, "format", string(format))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default stdout)")
	return cmd
}

func vocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "List the built-in vocabulary terms and their URIs",
		Run: func(cmd *cobra.Command, args []string) {
			printTerms("Entity types", []termRow{
				{"dna", vocabulary.TypeDNA.URI()},
				{"rna", vocabulary.TypeRNA.URI()},
				{"protein", vocabulary.TypeProtein.URI()},
				{"simple-chemical", vocabulary.TypeSimpleChemical.URI()},
				{"non-covalent-complex", vocabulary.TypeNonCovalentComplex.URI()},
				{"functional-entity", vocabulary.TypeFunctionalEntity.URI()},
			})
			printTerms("Topologies", []termRow{
				{"linear", vocabulary.TopologyLinear.URI()},
				{"circular", vocabulary.TopologyCircular.URI()},
				{"single-stranded", vocabulary.TopologySingleStranded.URI()},
				{"double-stranded", vocabulary.TopologyDoubleStranded.URI()},
			})
			printTerms("Roles", []termRow{
				{"promoter", vocabulary.RolePromoter.URI()},
				{"rbs", vocabulary.RoleRBS.URI()},
				{"cds", vocabulary.RoleCDS.URI()},
				{"terminator", vocabulary.RoleTerminator.URI()},
				{"gene", vocabulary.RoleGene.URI()},
				{"operator", vocabulary.RoleOperator.URI()},
				{"engineered-region", vocabulary.RoleEngineeredRegion.URI()},
				{"mrna", vocabulary.RoleMessengerRNA.URI()},
				{"effector", vocabulary.RoleEffector.URI()},
				{"transcription-factor", vocabulary.RoleTranscriptionFactor.URI()},
			})
			printTerms("Orientations", []termRow{
				{"inline", vocabulary.OrientationInline.URI()},
				{"reverse-complement", vocabulary.OrientationReverseComplement.URI()},
			})
			printTerms("Encodings", []termRow{
				{"nucleic-acid", vocabulary.EncodingNucleicAcid.URI()},
				{"protein", vocabulary.EncodingProtein.URI()},
				{"inchi", vocabulary.EncodingInChI.URI()},
				{"smiles", vocabulary.EncodingSMILES.URI()},
			})
		},
	}
}

type termRow struct {
	name string
	uri  string
}

func printTerms(heading string, rows []termRow) {
	fmt.Println(heading + ":")
	for _, row := range rows {
		fmt.Printf("  %-22s %s\n", row.name, row.uri)
	}
	fmt.Println()
}
