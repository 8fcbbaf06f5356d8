package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inodb/wfs1-score/internal/hgvs"
	"github.com/inodb/wfs1-score/internal/severity"
)

func newScoreCmd() *cobra.Command {
	var showRecords bool

	cmd := &cobra.Command{
		Use:   "score <mutation1> <mutation2>",
		Short: "Score a patient's two WFS1 alleles",
		Long: `Combine two mutation notations into a severity score from 1 (very mild)
to 6 (very severe).

Each allele is classified as in frame (substitution, missense, in-frame
deletion, insertion, duplication, delins) or out of frame (nonsense,
frameshift), and as inside or outside a transmembrane segment of wolframin.`,
		Example: `  wfs1-score score p.E880K p.Glu753*
  wfs1-score score --records c.940G>A "c.2254G>A (p.Glu752Lys)"`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := severity.NewScorer()
			s.SetLogger(logger)
			return runScore(cmd, s, args[0], args[1], showRecords)
		},
	}

	cmd.Flags().BoolVar(&showRecords, "records", false, "Also print the parsed records")

	return cmd
}

func runScore(cmd *cobra.Command, s *severity.Scorer, m1, m2 string, showRecords bool) error {
	a, err := s.Assess(m1, m2)
	if err != nil {
		return fmt.Errorf("%s: %w", scoreErrorMessage(err), err)
	}

	out := cmd.OutOrStdout()
	desc, _ := severity.Describe(a.Score)
	fmt.Fprintf(out, "Score: %d (%s)\n%s\n", a.Score, severity.BandOf(a.Score), desc)

	if showRecords {
		fmt.Fprintln(out)
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(map[string]hgvs.Fields{
			"mutation1": a.Record1.Fields(),
			"mutation2": a.Record2.Fields(),
		}); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
	}
	return nil
}

// scoreErrorMessage returns the field-level message for a scoring error.
func scoreErrorMessage(err error) string {
	switch {
	case errors.Is(err, severity.ErrMissingInput):
		return "please enter both mutations"
	case errors.Is(err, severity.ErrInvalidMutation1):
		return "mutation 1 is not a valid protein or coding notation"
	case errors.Is(err, severity.ErrInvalidMutation2):
		return "mutation 2 is not a valid protein or coding notation"
	default:
		return "could not calculate score"
	}
}
