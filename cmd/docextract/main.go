// Command docextract runs the extraction pipeline from the command line.
//
// Extract a document and print the pre-fill payload:
//
//	go run ./cmd/docextract extract ./facture.pdf
//	go run ./cmd/docextract extract --quote --validate ./devis.xlsx
//
// Score the field parsers against a dataset:
//
//	go run ./cmd/docextract eval ./eval/testdata/invoices.yaml
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunobiangulo/docextract"
	"github.com/brunobiangulo/docextract/eval"
	"github.com/brunobiangulo/docextract/schema"
)

type options struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "docextract",
		Short:         "Extract invoice and quote data from PDF and spreadsheet files",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log soft misses and extractor details")

	root.AddCommand(newExtractCmd(opts), newEvalCmd(), newSchemaCmd())
	return root
}

func newExtractCmd(opts *options) *cobra.Command {
	var (
		isQuote  bool
		validate bool
		parallel bool
		output   string
	)
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract a PDF or spreadsheet and print the JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if parallel {
				cfg.ParallelFields = true
			}

			ex, err := docextract.New(cfg, docextract.WithLogger(slog.Default()))
			if err != nil {
				return err
			}
			data, err := ex.ExtractFile(cmd.Context(), args[0], isQuote)
			if err != nil {
				return err
			}
			if validate {
				if err := schema.Validate(data); err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().BoolVarP(&isQuote, "quote", "q", false, "read the document as a quote (devis)")
	cmd.Flags().BoolVar(&validate, "validate", false, "check the payload against the JSON schema")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run field parsers concurrently")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to this file instead of stdout")
	return cmd
}

func newEvalCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "eval <dataset.yaml>",
		Short: "Measure field accuracy over a YAML dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := eval.LoadDataset(args[0])
			if err != nil {
				return err
			}
			report := eval.NewEvaluator().Run(ds)
			fmt.Fprint(cmd.OutOrStdout(), eval.FormatReport(report))
			if output != "" {
				if err := writeJSON(cmd.OutOrStdout(), output, report); err != nil {
					return err
				}
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d cases failed", report.Failed, report.TotalTests)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the JSON report to this file")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), "", schema.Payload())
		},
	}
}

func loadConfig(path string) (docextract.Config, error) {
	if path == "" {
		return docextract.DefaultConfig(), nil
	}
	return docextract.LoadConfig(path)
}

// setupLogger sends logs to stderr so stdout stays valid JSON.
func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// writeJSON marshals v to indented JSON and writes it to path, or to w when
// path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
