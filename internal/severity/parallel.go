package severity

import (
	"sync"

	"github.com/inodb/wfs1-score/internal/pairs"
)

// WorkItem holds a pair ready for scoring.
type WorkItem struct {
	Seq  int
	Pair *pairs.Pair
}

// WorkResult holds the score, or the reason there is none, for one pair.
type WorkResult struct {
	Seq   int
	Pair  *pairs.Pair
	Score int
	Err   error
}

// ParallelScore scores work items on a pool of workers. Results arrive in
// completion order; use OrderedCollect to restore input order.
// If workers is 0, the scorer's configured worker count is used.
func (s *Scorer) ParallelScore(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = s.Workers()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				score, err := s.ScorePair(item.Pair.Allele1, item.Pair.Allele2)
				results <- WorkResult{
					Seq:   item.Seq,
					Pair:  item.Pair,
					Score: score,
					Err:   err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order,
// holding early arrivals until their turn. If fn fails, the remaining
// results are drained so workers can exit, and the error is returned.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
