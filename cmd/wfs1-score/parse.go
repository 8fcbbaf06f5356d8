package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/inodb/wfs1-score/internal/hgvs"
	"github.com/inodb/wfs1-score/internal/topology"
)

// parsedMutation is the YAML document printed per argument.
type parsedMutation struct {
	hgvs.Fields `yaml:",inline"`
	// 1-based transmembrane segment holding AAPosition, if any.
	TransmembraneDomain int `yaml:"transmembrane_domain,omitempty"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <mutation>...",
		Short: "Parse mutation notations and print their fields",
		Long: `Parse one or more HGVS mutation strings and print the resulting records as YAML.

Protein notation (p.Glu753*, p.E880K, p.Val100_Leu105del) and coding DNA
notation (c.123A>G, c.100_102delinsTT, c.55dup) are accepted. A coding
notation followed by a protein annotation, e.g. "c.2254G>A (p.Glu752Lys)",
is parsed from the protein part when it is valid.`,
		Example: `  wfs1-score parse p.Glu753*
  wfs1-score parse "c.2254G>A (p.Glu752Lys)" c.940G>A`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := hgvs.NewClassifier()
			c.SetLogger(logger)
			return runParse(cmd, c, args)
		},
	}
}

func runParse(cmd *cobra.Command, c *hgvs.Classifier, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()

	failed := 0
	for _, raw := range args {
		rec, err := c.Parse(raw)
		if err != nil {
			failed++
			logger.Debug("parse failed", zap.String("input", raw), zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			continue
		}

		doc := parsedMutation{Fields: rec.Fields()}
		if idx, ok := topology.Domain(rec.AAPosition()); ok {
			doc.TransmembraneDomain = idx
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d mutations could not be parsed", failed, len(args))
	}
	return nil
}
