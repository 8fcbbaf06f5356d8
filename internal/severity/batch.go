package severity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/wfs1-score/internal/pairs"
)

// PairSource yields pairs until it returns nil, nil.
type PairSource interface {
	Next() (*pairs.Pair, error)
}

// ResultWriter receives batch results in input order.
type ResultWriter interface {
	WriteHeader() error
	Write(r WorkResult) error
	Flush() error
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Pairs  int
	Scored int
	Failed int
	// ByScore[n] is the number of pairs that scored n.
	ByScore [MaxScore + 1]int
}

// ScoreAll scores every pair from src and writes one result per pair to w.
// A pair that cannot be scored is written with its error; only read and
// write failures abort the run. The caller writes the header.
func (s *Scorer) ScoreAll(src PairSource, w ResultWriter) (Summary, error) {
	items := make(chan WorkItem, 2*s.Workers())
	var readErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			p, err := src.Next()
			if err != nil {
				readErr = fmt.Errorf("read pair: %w", err)
				return
			}
			if p == nil {
				return
			}
			items <- WorkItem{Seq: seq, Pair: p}
			seq++
		}
	}()

	var sum Summary
	err := OrderedCollect(s.ParallelScore(items, 0), func(r WorkResult) error {
		sum.Pairs++
		if r.Err != nil {
			sum.Failed++
			s.logger.Debug("pair not scored",
				zap.Int("line", r.Pair.Line),
				zap.String("id", r.Pair.ID),
				zap.String("reason", Reason(r.Err)),
				zap.Error(r.Err))
		} else {
			sum.Scored++
			sum.ByScore[r.Score]++
		}
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil
	})
	if err != nil {
		return sum, err
	}
	if readErr != nil {
		return sum, readErr
	}

	if sum.Pairs == 0 {
		s.logger.Info("0 pairs processed")
	} else {
		s.logger.Info("batch scored",
			zap.Int("pairs", sum.Pairs),
			zap.Int("scored", sum.Scored),
			zap.Int("failed", sum.Failed))
	}

	return sum, w.Flush()
}
