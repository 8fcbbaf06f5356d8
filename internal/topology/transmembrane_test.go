package topology

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains_Boundaries(t *testing.T) {
	tests := []struct {
		pos  int64
		want bool
	}{
		{313, false},
		{314, true},
		{320, true},
		{334, true},
		{335, false},
		{339, false},
		{340, true},
		{753, false},
		{869, false},
		{870, true},
		{880, true},
		{890, true},
		{891, false},
		{1015, false},
		{0, false},
		{-5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Contains(tt.pos), "Contains(%d)", tt.pos)
	}
}

func TestContains_AgreesWithLinearScan(t *testing.T) {
	for pos := int64(0); pos <= 1000; pos++ {
		want := false
		for _, s := range segments {
			if s.Contains(pos) {
				want = true
				break
			}
		}
		if got := Contains(pos); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", pos, got, want)
		}
	}
}

func TestDomain(t *testing.T) {
	idx, ok := Domain(314)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = Domain(880)
	assert.True(t, ok)
	assert.Equal(t, 11, idx)

	_, ok = Domain(700)
	assert.False(t, ok)
}

func TestSegments_SortedAndDisjoint(t *testing.T) {
	segs := Segments()
	assert.Len(t, segs, 11)
	assert.True(t, sort.SliceIsSorted(segs, func(i, j int) bool {
		return segs[i].Start < segs[j].Start
	}))
	for i := 1; i < len(segs); i++ {
		assert.Greater(t, segs[i].Start, segs[i-1].End, "segment %d overlaps previous", i)
	}
}

func TestSegments_ReturnsCopy(t *testing.T) {
	segs := Segments()
	segs[0].Start = 1
	assert.True(t, Contains(314))
	assert.False(t, Contains(1))
}
