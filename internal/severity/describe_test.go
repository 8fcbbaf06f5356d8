package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	for score := MinScore; score <= MaxScore; score++ {
		desc, ok := Describe(score)
		assert.True(t, ok, "score %d", score)
		assert.NotEmpty(t, desc, "score %d", score)
	}

	desc, _ := Describe(6)
	assert.Contains(t, desc, "Very severe")

	_, ok := Describe(0)
	assert.False(t, ok)
	_, ok = Describe(7)
	assert.False(t, ok)
}

func TestBandOf(t *testing.T) {
	want := map[int]Band{
		0: "",
		1: BandMild,
		2: BandMild,
		3: BandModerate,
		4: BandModerate,
		5: BandSevere,
		6: BandSevere,
		7: "",
	}
	for score, band := range want {
		assert.Equal(t, band, BandOf(score), "score %d", score)
	}
}
