package hgvs

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	// Protein fragment embedded in parentheses: c.2254G>A (p.Glu752Lys)
	reProteinFragment = regexp.MustCompile(`\(([pP]\.[^()]*(?:\([^()]*\))?[^()]*)\)`)
	// Trailing protein annotation removed before the coding attempt.
	reTrailingProtein = regexp.MustCompile(`\s*\([pP]\.[^()]*(?:\([^()]*\))?[^()]*\)\s*$`)
)

// Classifier decides which notation a raw mutation string uses and
// dispatches it to the matching parser.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a classifier that logs nothing.
func NewClassifier() *Classifier {
	return &Classifier{logger: zap.NewNop()}
}

// SetLogger sets the logger used to trace protein parse failures that are
// masked by the coding fallback.
func (c *Classifier) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Parse classifies raw and returns its record.
//
// A parenthesized protein fragment is tried first, then a string starting
// with "p.". If neither applies, or protein parsing fails, any trailing
// "(p.…)" annotation is dropped and the rest is parsed as coding DNA. Only
// the coding error is returned in that case; the protein error is logged
// at debug level.
func (c *Classifier) Parse(raw string) (*Record, error) {
	s := strings.TrimSpace(raw)

	var fragment string
	if m := reProteinFragment.FindStringSubmatch(s); m != nil {
		fragment = m[1]
	} else if len(s) >= 2 && strings.EqualFold(s[:2], "p.") {
		fragment = s
	}

	if fragment != "" {
		rec, err := ParseProtein(fragment)
		if err == nil {
			return rec, nil
		}
		c.logger.Debug("protein parse failed, falling back to coding notation",
			zap.String("input", raw),
			zap.String("fragment", fragment),
			zap.Error(err))
	}

	rec, err := ParseCoding(reTrailingProtein.ReplaceAllString(s, ""))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Input = raw
		}
		return nil, err
	}
	return rec, nil
}

var defaultClassifier = NewClassifier()

// ParseMutation parses raw with a classifier that does not log.
func ParseMutation(raw string) (*Record, error) {
	return defaultClassifier.Parse(raw)
}
