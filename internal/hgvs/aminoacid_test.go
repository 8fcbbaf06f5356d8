package hgvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAminoAcidTables_Bidirectional(t *testing.T) {
	// 20 standard residues + selenocysteine + pyrrolysine + stop
	assert.Len(t, AminoAcidSingleToThree, 23)
	assert.Len(t, AminoAcidThreeToSingle, 23)

	for single, three := range AminoAcidSingleToThree {
		got, ok := AminoAcidThreeToSingle[three]
		assert.True(t, ok, "missing reverse entry for %s", three)
		assert.Equal(t, single, got, "round trip of %s", three)
	}
}

func TestThreeToOne(t *testing.T) {
	tests := []struct {
		code   string
		want   byte
		wantOK bool
	}{
		{"Glu", 'E', true},
		{"GLU", 'E', true},
		{"glu", 'E', true},
		{"gLU", 'E', true},
		{"Ter", '*', true},
		{"Sec", 'U', true},
		{"Pyl", 'O', true},
		{"Trp", 'W', true},
		{"Xaa", 0, false},
		{"Foo", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ThreeToOne(tt.code)
		assert.Equal(t, tt.wantOK, ok, "ThreeToOne(%q) ok", tt.code)
		assert.Equal(t, tt.want, got, "ThreeToOne(%q)", tt.code)
	}
}

func TestOneToThree(t *testing.T) {
	three, ok := OneToThree('e')
	assert.True(t, ok)
	assert.Equal(t, "Glu", three)

	three, ok = OneToThree('*')
	assert.True(t, ok)
	assert.Equal(t, "Ter", three)

	_, ok = OneToThree('B')
	assert.False(t, ok)
}

func TestNormalizeOne(t *testing.T) {
	aa, ok := normalizeOne('k')
	assert.True(t, ok)
	assert.Equal(t, byte('K'), aa)

	aa, ok = normalizeOne('X')
	assert.True(t, ok)
	assert.Equal(t, Stop, aa)

	aa, ok = normalizeOne('x')
	assert.True(t, ok)
	assert.Equal(t, Stop, aa)

	_, ok = normalizeOne('J')
	assert.False(t, ok)
}
