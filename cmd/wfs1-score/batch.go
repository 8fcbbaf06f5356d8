package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/wfs1-score/internal/output"
	"github.com/inodb/wfs1-score/internal/pairs"
	"github.com/inodb/wfs1-score/internal/severity"
)

func newBatchCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "batch <input-file>",
		Short: "Score every allele pair in a tab- or comma-delimited file",
		Long: `Score every row of a delimited file with allele_1 and allele_2 columns
(an id column is optional). Files may be gzip-compressed; use '-' for stdin.

Rows that cannot be scored are written with their failure reason instead
of stopping the run.`,
		Example: `  wfs1-score batch registry.tsv
  wfs1-score batch -f json -o scores.jsonl registry.csv.gz
  cat registry.tsv | wfs1-score batch -`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringP("format", "f", "tab", "Output format: tab, json")
	cmd.Flags().IntP("workers", "w", 0, "Number of scoring workers (0 = one per CPU)")
	_ = viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runBatch(cmd *cobra.Command, inputPath, outputFile string) error {
	parser, err := pairs.NewParser(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w (check that the file path is correct)", err)
		}
		return err
	}
	defer parser.Close()

	var out io.Writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writer severity.ResultWriter
	switch format := viper.GetString("output.format"); format {
	case "tab":
		writer = output.NewTabWriter(out)
	case "json":
		writer = output.NewJSONWriter(out)
	default:
		return &usageError{fmt.Errorf("unknown output format %q", format)}
	}

	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	s := severity.NewScorer()
	s.SetLogger(logger)
	s.SetWorkers(viper.GetInt("batch.workers"))

	sum, err := s.ScoreAll(parser, writer)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "Scored %d of %d pairs", sum.Scored, sum.Pairs)
	if sum.Failed > 0 {
		fmt.Fprintf(errOut, " (%d failed)", sum.Failed)
	}
	fmt.Fprintln(errOut)
	for score := severity.MinScore; score <= severity.MaxScore; score++ {
		if n := sum.ByScore[score]; n > 0 {
			fmt.Fprintf(errOut, "  score %d: %d\n", score, n)
		}
	}
	return nil
}
