// Package severity combines the two parsed WFS1 alleles of a patient into a
// 1–6 disease severity score.
package severity

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/wfs1-score/internal/hgvs"
)

// Score bounds.
const (
	MinScore = 1
	MaxScore = 6
)

// Errors returned by ScorePair. Callers key their messages off these, so
// each input position has its own sentinel.
var (
	ErrMissingInput     = errors.New("missing mutation input")
	ErrInvalidMutation1 = errors.New("first mutation is invalid")
	ErrInvalidMutation2 = errors.New("second mutation is invalid")
)

// ErrUnscorable is wrapped when a record's mutation type has no frame class
// or its transmembrane flag cannot be resolved.
var ErrUnscorable = errors.New("mutation cannot be scored")

// InFrame reports whether mt preserves the downstream reading frame.
// Frameshift and nonsense changes are out of frame; every other known class
// is in frame.
func InFrame(mt hgvs.MutationType) (bool, error) {
	switch mt {
	case hgvs.Substitution, hgvs.Delins, hgvs.Insertion, hgvs.Duplication, hgvs.Deletion, hgvs.Missense:
		return true, nil
	case hgvs.Frameshift, hgvs.Nonsense:
		return false, nil
	default:
		return false, fmt.Errorf("%w: mutation type %s has no frame class", ErrUnscorable, mt)
	}
}

// classify resolves the two inputs of the decision table for one record.
func classify(r *hgvs.Record) (inFrame, tmem bool, err error) {
	if err := r.Validate(); err != nil {
		return false, false, fmt.Errorf("%w: %w", ErrUnscorable, err)
	}
	inFrame, err = InFrame(r.MutationType())
	if err != nil {
		return false, false, err
	}
	return inFrame, r.IsTransmembrane(), nil
}

// Score combines two records. An error wraps ErrUnscorable together with
// ErrInvalidMutation1 or ErrInvalidMutation2 to name the offending record.
func Score(r1, r2 *hgvs.Record) (int, error) {
	frame1, tmem1, err := classify(r1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMutation1, err)
	}
	frame2, tmem2, err := classify(r2)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMutation2, err)
	}
	return decide(frame1, frame2, tmem1, tmem2), nil
}

// decide is the severity table. When exactly one allele is in frame only
// that allele's transmembrane flag counts.
func decide(frame1, frame2, tmem1, tmem2 bool) int {
	switch {
	case frame1 && frame2:
		switch {
		case tmem1 && tmem2:
			return 3
		case tmem1 || tmem2:
			return 2
		default:
			return 1
		}
	case frame1:
		if tmem1 {
			return 5
		}
		return 4
	case frame2:
		if tmem2 {
			return 5
		}
		return 4
	default:
		return 6
	}
}

// Assessment is a scored pair with the records it was computed from.
type Assessment struct {
	Record1 *hgvs.Record
	Record2 *hgvs.Record
	Score   int
}

// Scorer parses and scores mutation pairs.
type Scorer struct {
	classifier *hgvs.Classifier
	logger     *zap.Logger
	workers    int
}

// NewScorer creates a scorer that logs nothing and uses one worker per CPU
// for batch scoring.
func NewScorer() *Scorer {
	return &Scorer{
		classifier: hgvs.NewClassifier(),
		logger:     zap.NewNop(),
	}
}

// SetLogger sets the logger for the scorer and its notation classifier.
func (s *Scorer) SetLogger(l *zap.Logger) {
	s.logger = l
	s.classifier.SetLogger(l)
}

// SetWorkers sets the batch worker count. Zero or less means runtime.NumCPU().
func (s *Scorer) SetWorkers(n int) {
	s.workers = n
}

// Workers returns the effective batch worker count.
func (s *Scorer) Workers() int {
	if s.workers <= 0 {
		return runtime.NumCPU()
	}
	return s.workers
}

// Assess parses both mutations and scores them.
//
// Either string being empty yields ErrMissingInput without parsing. A parse
// failure wraps ErrInvalidMutation1 or ErrInvalidMutation2; the first
// mutation is checked first.
func (s *Scorer) Assess(raw1, raw2 string) (*Assessment, error) {
	if strings.TrimSpace(raw1) == "" || strings.TrimSpace(raw2) == "" {
		return nil, ErrMissingInput
	}

	r1, err := s.classifier.Parse(raw1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMutation1, err)
	}
	r2, err := s.classifier.Parse(raw2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMutation2, err)
	}

	score, err := Score(r1, r2)
	if err != nil {
		return nil, err
	}
	return &Assessment{Record1: r1, Record2: r2, Score: score}, nil
}

// ScorePair parses both mutations and returns their severity score.
func (s *Scorer) ScorePair(raw1, raw2 string) (int, error) {
	a, err := s.Assess(raw1, raw2)
	if err != nil {
		return 0, err
	}
	return a.Score, nil
}

var defaultScorer = NewScorer()

// ScorePair scores two raw mutation strings with a scorer that does not log.
func ScorePair(raw1, raw2 string) (int, error) {
	return defaultScorer.ScorePair(raw1, raw2)
}

// Reason returns a stable short code for an error returned by this package,
// for use in tabular output.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingInput):
		return "missing_input"
	case errors.Is(err, ErrInvalidMutation1):
		return "invalid_mutation_1"
	case errors.Is(err, ErrInvalidMutation2):
		return "invalid_mutation_2"
	default:
		return "error"
	}
}
