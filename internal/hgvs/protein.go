package hgvs

import (
	"fmt"
	"regexp"
	"strings"
)

var reProteinPrefix = regexp.MustCompile(`^[pP]\.`)

// proteinGrammars is tried top to bottom. Order matters: a three-letter
// stop substitution such as Glu753* must reach the nonsense grammar before
// the generic substitution grammars, and the del/dup/ins forms must be
// checked before a three-letter substitution can read "del" as a residue.
var proteinGrammars = []grammar{
	{
		name:  "three_letter_stop",
		re:    regexp.MustCompile(`^([A-Za-z]{3})(\d+)([*X])$`),
		build: buildThreeLetterStop,
	},
	{
		name:  "three_letter_deletion",
		re:    regexp.MustCompile(`^([A-Za-z]{3})(\d+)del$`),
		build: buildThreeLetterDeletion,
	},
	{
		name:  "three_letter_range_deletion",
		re:    regexp.MustCompile(`^([A-Za-z]{3})(\d+)_([A-Za-z]{3})(\d+)del$`),
		build: buildRange(Deletion),
	},
	{
		name:  "three_letter_range_duplication",
		re:    regexp.MustCompile(`^([A-Za-z]{3})(\d+)_([A-Za-z]{3})(\d+)dup$`),
		build: buildRange(Duplication),
	},
	{
		name:  "three_letter_range_insertion",
		re:    regexp.MustCompile(`^([A-Za-z]{3})(\d+)_([A-Za-z]{3})(\d+)ins([A-Za-z]{3})$`),
		build: buildRange(Insertion),
	},
	{
		name:  "three_letter_substitution",
		re:    regexp.MustCompile(`^([A-Za-z]{3})(\d+)([A-Za-z]{3})(fs(?:\*|X|Ter)?\d*|\*|X)?$`),
		build: buildThreeLetterSubstitution,
	},
	{
		name:  "one_letter_substitution",
		re:    regexp.MustCompile(`^([A-Za-z])(\d+)([A-Za-z*])(fs(?:\*|X)?\d*)?$`),
		build: buildOneLetterSubstitution,
	},
}

// ProteinGrammars returns the names of the protein grammars in the order
// they are tried.
func ProteinGrammars() []string {
	return grammarNames(proteinGrammars)
}

// ParseProtein parses a protein notation such as "p.Glu753Lys", "E753K" or
// "p.(Val100_Leu105del)". The "p." prefix is optional.
func ParseProtein(input string) (*Record, error) {
	return matchFirst(proteinGrammars, NotationProtein, input, proteinBody(input))
}

// proteinBody strips surrounding whitespace, the p. prefix and the
// parentheses used for predicted consequences.
func proteinBody(input string) string {
	body := reProteinPrefix.ReplaceAllString(strings.TrimSpace(input), "")
	if len(body) > 2 && body[0] == '(' && body[len(body)-1] == ')' {
		body = body[1 : len(body)-1]
	}
	return body
}

func lookupThree(code string) (byte, error) {
	aa, ok := ThreeToOne(code)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownAminoAcid, code)
	}
	return aa, nil
}

func lookupOne(code string) (byte, error) {
	aa, ok := normalizeOne(code[0])
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownAminoAcid, code)
	}
	return aa, nil
}

// substitutionType classifies a residue change from its replacement residue
// and optional suffix.
func substitutionType(newAA byte, suffix string) MutationType {
	switch {
	case strings.HasPrefix(suffix, "fs"):
		return Frameshift
	case newAA == Stop:
		return Nonsense
	default:
		return Missense
	}
}

func buildThreeLetterStop(input string, m []string) (*Record, error) {
	orig, err := lookupThree(m[1])
	if err != nil {
		return nil, err
	}
	pos, err := parsePosition(m[2])
	if err != nil {
		return nil, err
	}
	return newProteinRecord(input, AAFormatThreeLetter, Nonsense, orig, Stop, pos, 0)
}

func buildThreeLetterDeletion(input string, m []string) (*Record, error) {
	orig, err := lookupThree(m[1])
	if err != nil {
		return nil, err
	}
	pos, err := parsePosition(m[2])
	if err != nil {
		return nil, err
	}
	return newProteinRecord(input, AAFormatThreeLetter, Deletion, orig, 0, pos, 0)
}

// buildRange handles the Xaa<start>_Xaa<end>{del,dup,insXaa} family. Both
// flanking residues must be known; only the first is kept on the record.
func buildRange(mt MutationType) func(string, []string) (*Record, error) {
	return func(input string, m []string) (*Record, error) {
		orig, err := lookupThree(m[1])
		if err != nil {
			return nil, err
		}
		if _, err := lookupThree(m[3]); err != nil {
			return nil, err
		}
		start, end, err := parseRange(m[2], m[4])
		if err != nil {
			return nil, err
		}
		var inserted byte
		if mt == Insertion {
			if inserted, err = lookupThree(m[5]); err != nil {
				return nil, err
			}
		}
		return newProteinRecord(input, AAFormatThreeLetter, mt, orig, inserted, start, end)
	}
}

func buildThreeLetterSubstitution(input string, m []string) (*Record, error) {
	orig, err := lookupThree(m[1])
	if err != nil {
		return nil, err
	}
	pos, err := parsePosition(m[2])
	if err != nil {
		return nil, err
	}
	alt, err := lookupThree(m[3])
	if err != nil {
		return nil, err
	}
	return newProteinRecord(input, AAFormatThreeLetter, substitutionType(alt, m[4]), orig, alt, pos, 0)
}

func buildOneLetterSubstitution(input string, m []string) (*Record, error) {
	orig, err := lookupOne(m[1])
	if err != nil {
		return nil, err
	}
	pos, err := parsePosition(m[2])
	if err != nil {
		return nil, err
	}
	alt, err := lookupOne(m[3])
	if err != nil {
		return nil, err
	}
	return newProteinRecord(input, AAFormatOneLetter, substitutionType(alt, m[4]), orig, alt, pos, 0)
}
