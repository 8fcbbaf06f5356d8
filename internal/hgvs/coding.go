package hgvs

import (
	"regexp"
	"strings"
)

// bases accepts the four nucleotides, N, and the IUPAC ambiguity letters.
const bases = `[ACGTNRYSWKMBDHVacgtnryswkmbdhv]`

var codingGrammars = []grammar{
	{
		name: "substitution",
		re:   regexp.MustCompile(`^c\.(\d+)(` + bases + `+)>(` + bases + `+)$`),
		build: func(input string, m []string) (*Record, error) {
			pos, err := parsePosition(m[1])
			if err != nil {
				return nil, err
			}
			return newCodingRecord(input, Substitution, pos, 0, strings.ToUpper(m[2]), strings.ToUpper(m[3]))
		},
	},
	{
		name: "delins",
		re:   regexp.MustCompile(`^c\.(\d+)_(\d+)delins(` + bases + `+)$`),
		build: func(input string, m []string) (*Record, error) {
			start, end, err := parseRange(m[1], m[2])
			if err != nil {
				return nil, err
			}
			return newCodingRecord(input, Delins, start, end, "", strings.ToUpper(m[3]))
		},
	},
	{
		name: "insertion",
		re:   regexp.MustCompile(`^c\.(\d+)_(\d+)ins(` + bases + `+)$`),
		build: func(input string, m []string) (*Record, error) {
			start, end, err := parseRange(m[1], m[2])
			if err != nil {
				return nil, err
			}
			return newCodingRecord(input, Insertion, start, end, "", strings.ToUpper(m[3]))
		},
	},
	{
		name: "duplication",
		re:   regexp.MustCompile(`^c\.(\d+)(?:_(\d+))?dup(` + bases + `*)$`),
		build: func(input string, m []string) (*Record, error) {
			start, end, err := parseRange(m[1], m[2])
			if err != nil {
				return nil, err
			}
			return newCodingRecord(input, Duplication, start, end, strings.ToUpper(m[3]), "")
		},
	},
	{
		name: "deletion",
		re:   regexp.MustCompile(`^c\.(\d+)(?:_(\d+))?del(` + bases + `+)$`),
		build: func(input string, m []string) (*Record, error) {
			start, end, err := parseRange(m[1], m[2])
			if err != nil {
				return nil, err
			}
			return newCodingRecord(input, Deletion, start, end, strings.ToUpper(m[3]), "")
		},
	},
}

// CodingGrammars returns the names of the coding DNA grammars in the order
// they are tried.
func CodingGrammars() []string {
	return grammarNames(codingGrammars)
}

// ParseCoding parses a coding DNA notation such as "c.123A>G",
// "c.100_102delinsTT" or "c.55_57dup". The "c." prefix is required.
func ParseCoding(input string) (*Record, error) {
	return matchFirst(codingGrammars, NotationCoding, input, strings.TrimSpace(input))
}
