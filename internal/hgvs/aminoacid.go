// Package hgvs parses HGVS-style protein (p.) and coding DNA (c.) mutation
// descriptions into validated mutation records.
package hgvs

import "strings"

// Stop is the single-letter code used for a termination codon.
const Stop byte = '*'

// AminoAcidSingleToThree maps single-letter amino acid codes to their
// three-letter form. Covers the 20 standard residues, selenocysteine,
// pyrrolysine and the stop codon.
var AminoAcidSingleToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'U': "Sec", 'O': "Pyl",
	Stop: "Ter",
}

// AminoAcidThreeToSingle is the reverse of AminoAcidSingleToThree, keyed by
// title-case three-letter code.
var AminoAcidThreeToSingle map[string]byte

func init() {
	AminoAcidThreeToSingle = make(map[string]byte, len(AminoAcidSingleToThree))
	for single, three := range AminoAcidSingleToThree {
		AminoAcidThreeToSingle[three] = single
	}
}

// ThreeToOne converts a three-letter code in any letter case to its
// single-letter code. The bool is false for codes not in the table.
func ThreeToOne(code string) (byte, bool) {
	aa, ok := AminoAcidThreeToSingle[titleCase(code)]
	return aa, ok
}

// OneToThree converts a single-letter code in either case to its
// three-letter code.
func OneToThree(code byte) (string, bool) {
	three, ok := AminoAcidSingleToThree[upper(code)]
	return three, ok
}

// normalizeOne upper-cases a single-letter residue and maps the X stop
// alias onto '*'. Returns false for letters outside the table.
func normalizeOne(code byte) (byte, bool) {
	c := upper(code)
	if c == 'X' {
		return Stop, true
	}
	if _, ok := AminoAcidSingleToThree[c]; !ok {
		return 0, false
	}
	return c, true
}

// isStop reports whether s is one of the stop spellings accepted in
// protein notation.
func isStop(s string) bool {
	return s == "*" || s == "X"
}

func titleCase(code string) string {
	if code == "" {
		return code
	}
	return strings.ToUpper(code[:1]) + strings.ToLower(code[1:])
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
