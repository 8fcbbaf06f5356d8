package severity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/inodb/wfs1-score/internal/pairs"
)

type sliceSource struct {
	pairs []*pairs.Pair
	err   error
	i     int
}

func (s *sliceSource) Next() (*pairs.Pair, error) {
	if s.i >= len(s.pairs) {
		return nil, s.err
	}
	p := s.pairs[s.i]
	s.i++
	return p, nil
}

type recordingWriter struct {
	results []WorkResult
	flushed bool
	failAt  int
}

func (w *recordingWriter) WriteHeader() error { return nil }

func (w *recordingWriter) Write(r WorkResult) error {
	if w.failAt > 0 && len(w.results)+1 == w.failAt {
		return errors.New("disk full")
	}
	w.results = append(w.results, r)
	return nil
}

func (w *recordingWriter) Flush() error {
	w.flushed = true
	return nil
}

func TestScoreAll_FromParser(t *testing.T) {
	defer goleak.VerifyNone(t)

	input := "id\tallele_1\tallele_2\n" +
		"a\tp.E880K\tp.E880K\n" +
		"b\tgarbage\tp.E880K\n" +
		"c\tp.Glu753*\tc.123A>G\n" +
		"d\t\tp.E880K\n"
	p, err := pairs.NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	s := NewScorer()
	s.SetLogger(zap.New(core))
	s.SetWorkers(3)

	w := &recordingWriter{}
	sum, err := s.ScoreAll(p, w)
	require.NoError(t, err)

	assert.True(t, w.flushed)
	require.Len(t, w.results, 4)

	ids := make([]string, len(w.results))
	for i, r := range w.results {
		ids[i] = r.Pair.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)

	assert.Equal(t, 3, w.results[0].Score)
	assert.ErrorIs(t, w.results[1].Err, ErrInvalidMutation1)
	assert.Equal(t, 4, w.results[2].Score)
	assert.ErrorIs(t, w.results[3].Err, ErrMissingInput)

	assert.Equal(t, 4, sum.Pairs)
	assert.Equal(t, 2, sum.Scored)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 1, sum.ByScore[3])
	assert.Equal(t, 1, sum.ByScore[4])

	assert.Equal(t, 2, logs.FilterMessage("pair not scored").Len())
	assert.Equal(t, 1, logs.FilterMessage("batch scored").Len())
}

func TestScoreAll_Empty(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewScorer()
	s.SetLogger(zap.New(core))

	w := &recordingWriter{}
	sum, err := s.ScoreAll(&sliceSource{}, w)
	require.NoError(t, err)
	assert.Zero(t, sum.Pairs)
	assert.True(t, w.flushed)
	assert.Equal(t, 1, logs.FilterMessage("0 pairs processed").Len())
}

func TestScoreAll_ReadError(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &sliceSource{
		pairs: []*pairs.Pair{{ID: "1", Allele1: "p.E880K", Allele2: "p.E880K"}},
		err:   &pairs.ParseError{Line: 3, Message: "bad row"},
	}
	w := &recordingWriter{}

	sum, err := NewScorer().ScoreAll(src, w)
	require.Error(t, err)

	var pe *pairs.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, sum.Pairs, "pairs read before the error are still written")
	assert.False(t, w.flushed)
}

func TestScoreAll_WriteError(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ps []*pairs.Pair
	for i := 0; i < 20; i++ {
		ps = append(ps, &pairs.Pair{Allele1: "p.E880K", Allele2: "p.E753K"})
	}
	w := &recordingWriter{failAt: 3}

	_, err := NewScorer().ScoreAll(&sliceSource{pairs: ps}, w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, w.results, 2)
}
