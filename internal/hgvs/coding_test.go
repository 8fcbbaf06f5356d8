package hgvs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodingGrammars_Order(t *testing.T) {
	assert.Equal(t, []string{
		"substitution",
		"delins",
		"insertion",
		"duplication",
		"deletion",
	}, CodingGrammars())
}

func TestCodonPosition(t *testing.T) {
	tests := []struct {
		nt   int64
		want int64
	}{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{123, 41},
		{940, 314},
		{2638, 880},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodonPosition(tt.nt), "CodonPosition(%d)", tt.nt)
	}
}

func TestParseCoding(t *testing.T) {
	tests := []struct {
		input string
		mt    MutationType
		start int64
		end   int64
		ref   string
		alt   string
		aaPos int64
		tmem  bool
	}{
		{"c.123A>G", Substitution, 123, 0, "A", "G", 41, false},
		{"c.123a>g", Substitution, 123, 0, "A", "G", 41, false},
		{"c.940G>A", Substitution, 940, 0, "G", "A", 314, true},
		{"c.939G>A", Substitution, 939, 0, "G", "A", 313, false},
		{"c.2638C>T", Substitution, 2638, 0, "C", "T", 880, true},
		{"c.100N>R", Substitution, 100, 0, "N", "R", 34, false},
		{"c.1000_1002delinsTT", Delins, 1000, 1002, "", "TT", 334, true},
		{"c.100_101insA", Insertion, 100, 101, "", "A", 34, false},
		{"c.55dup", Duplication, 55, 0, "", "", 19, false},
		{"c.55dupG", Duplication, 55, 0, "G", "", 19, false},
		{"c.55_57dupgca", Duplication, 55, 57, "GCA", "", 19, false},
		{"c.100delA", Deletion, 100, 0, "A", "", 34, false},
		{"c.1230_1232delCTT", Deletion, 1230, 1232, "CTT", "", 410, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rec, err := ParseCoding(tt.input)
			require.NoError(t, err)

			assert.Equal(t, NotationCoding, rec.Notation())
			assert.Equal(t, AAFormatNone, rec.AAFormat())
			assert.Equal(t, tt.mt, rec.MutationType())
			assert.Equal(t, tt.start, rec.Position())
			assert.Equal(t, rec.Start(), rec.Position())

			end, ok := rec.End()
			assert.Equal(t, tt.end != 0, ok)
			assert.Equal(t, tt.end, end)

			ref, _ := rec.Ref()
			alt, _ := rec.Alt()
			assert.Equal(t, tt.ref, ref)
			assert.Equal(t, tt.alt, alt)

			assert.Equal(t, tt.aaPos, rec.AAPosition())
			assert.Equal(t, tt.tmem, rec.IsTransmembrane())

			_, hasAA := rec.OrigAA()
			assert.False(t, hasAA)
		})
	}
}

func TestParseCoding_Errors(t *testing.T) {
	tests := []string{
		"",
		"123A>G",
		"c.",
		"c.123",
		"c.123A>",
		"c.123X>G",
		"c.0A>G",
		"c.100del",
		"c.100_101ins",
		"c.101_100insA",
		"c.100_101delins",
		"c.-14G>C",
		"c.123+1G>A",
		"p.Glu753Lys",
		"c.123A>G extra",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			rec, err := ParseCoding(input)
			require.Error(t, err)
			assert.Nil(t, rec)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, NotationCoding, fe.Notation)
			assert.Contains(t, err.Error(), "unrecognized coding mutation format")
		})
	}
}
