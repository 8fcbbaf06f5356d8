package hgvs

import (
	"fmt"

	"github.com/inodb/wfs1-score/internal/topology"
)

// Notation identifies which HGVS coordinate system a record was parsed from.
type Notation int

const (
	NotationUnknown Notation = iota
	NotationProtein
	NotationCoding
)

func (n Notation) String() string {
	switch n {
	case NotationProtein:
		return "protein"
	case NotationCoding:
		return "coding"
	default:
		return "unknown"
	}
}

// AAFormat records how amino acids were spelled in a protein notation.
type AAFormat int

const (
	AAFormatNone AAFormat = iota
	AAFormatThreeLetter
	AAFormatOneLetter
)

func (f AAFormat) String() string {
	switch f {
	case AAFormatThreeLetter:
		return "three_letter"
	case AAFormatOneLetter:
		return "one_letter"
	default:
		return ""
	}
}

// MutationType is the variant class derived from the matched grammar.
type MutationType int

const (
	MutationUnknown MutationType = iota
	Substitution
	Delins
	Insertion
	Duplication
	Deletion
	Missense
	Nonsense
	Frameshift
)

var mutationTypeNames = map[MutationType]string{
	Substitution: "substitution",
	Delins:       "delins",
	Insertion:    "insertion",
	Duplication:  "duplication",
	Deletion:     "deletion",
	Missense:     "missense",
	Nonsense:     "nonsense",
	Frameshift:   "frameshift",
}

func (t MutationType) String() string {
	if name, ok := mutationTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the known mutation classes.
func (t MutationType) Valid() bool {
	_, ok := mutationTypeNames[t]
	return ok
}

// Record is a parsed mutation. Records are only produced by the parsers in
// this package and are never modified afterwards; use the accessors to read
// them.
type Record struct {
	input        string
	notation     Notation
	aaFormat     AAFormat
	mutationType MutationType

	origAA byte
	newAA  byte

	start int64
	end   int64 // 0 when the notation names a single position

	ref string
	alt string

	aaPosition    int64
	transmembrane bool
}

// newProteinRecord builds a protein record and resolves its transmembrane
// flag directly from the residue position.
func newProteinRecord(input string, format AAFormat, mt MutationType, origAA, newAA byte, start, end int64) (*Record, error) {
	r := &Record{
		input:        input,
		notation:     NotationProtein,
		aaFormat:     format,
		mutationType: mt,
		origAA:       origAA,
		newAA:        newAA,
		start:        start,
		end:          end,
		aaPosition:   start,
	}
	r.transmembrane = topology.Contains(r.aaPosition)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// newCodingRecord builds a coding DNA record. The transmembrane flag is
// resolved against the codon that holds the start nucleotide.
func newCodingRecord(input string, mt MutationType, start, end int64, ref, alt string) (*Record, error) {
	r := &Record{
		input:        input,
		notation:     NotationCoding,
		mutationType: mt,
		start:        start,
		end:          end,
		ref:          ref,
		alt:          alt,
		aaPosition:   CodonPosition(start),
	}
	r.transmembrane = topology.Contains(r.aaPosition)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// CodonPosition returns the 1-based codon number that contains the 1-based
// coding nucleotide position n.
func CodonPosition(n int64) int64 {
	return (n + 2) / 3
}

// Validate checks the invariants every parsed record satisfies. A zero
// Record fails validation.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("nil mutation record")
	}
	if !r.mutationType.Valid() {
		return fmt.Errorf("invalid mutation type %d", r.mutationType)
	}
	if r.start < 1 {
		return fmt.Errorf("%s mutation has no position", r.mutationType)
	}
	if r.end != 0 && r.end < r.start {
		return fmt.Errorf("range end %d precedes start %d", r.end, r.start)
	}
	switch r.notation {
	case NotationProtein:
		if r.aaFormat == AAFormatNone {
			return fmt.Errorf("protein mutation without amino acid format")
		}
		if r.origAA == 0 {
			return fmt.Errorf("protein mutation without reference residue")
		}
		if r.mutationType == Nonsense && r.newAA != Stop {
			return fmt.Errorf("nonsense mutation without stop residue")
		}
	case NotationCoding:
		if r.aaFormat != AAFormatNone {
			return fmt.Errorf("coding mutation with amino acid format")
		}
	default:
		return fmt.Errorf("unknown notation")
	}
	return nil
}

// Input returns the fragment the record was parsed from.
func (r *Record) Input() string { return r.input }

// Notation returns the coordinate system of the record.
func (r *Record) Notation() Notation { return r.notation }

// AAFormat returns how residues were spelled; AAFormatNone for coding records.
func (r *Record) AAFormat() AAFormat { return r.aaFormat }

// MutationType returns the variant class.
func (r *Record) MutationType() MutationType { return r.mutationType }

// OrigAA returns the single-letter reference residue, if any.
func (r *Record) OrigAA() (byte, bool) { return r.origAA, r.origAA != 0 }

// NewAA returns the single-letter replacement or inserted residue, if any.
func (r *Record) NewAA() (byte, bool) { return r.newAA, r.newAA != 0 }

// Start returns the first position named by the notation.
func (r *Record) Start() int64 { return r.start }

// End returns the last position of a range notation.
func (r *Record) End() (int64, bool) { return r.end, r.end != 0 }

// Position is the anchor position of the mutation; always equal to Start.
func (r *Record) Position() int64 { return r.start }

// Ref returns the reference bases of a coding record, if any.
func (r *Record) Ref() (string, bool) { return r.ref, r.ref != "" }

// Alt returns the alternate bases of a coding record, if any.
func (r *Record) Alt() (string, bool) { return r.alt, r.alt != "" }

// AAPosition is the residue position used for the transmembrane lookup.
// For coding records it is derived from the nucleotide position.
func (r *Record) AAPosition() int64 { return r.aaPosition }

// IsTransmembrane reports whether AAPosition lies in a membrane-spanning
// segment.
func (r *Record) IsTransmembrane() bool { return r.transmembrane }

// Fields is a flat, serializable view of a Record. Optional values are nil
// when the notation does not carry them.
type Fields struct {
	Input           string  `json:"input" yaml:"input"`
	NotationType    string  `json:"notation_type" yaml:"notation_type"`
	AAFormat        *string `json:"aa_format,omitempty" yaml:"aa_format,omitempty"`
	OrigAA          *string `json:"orig_aa,omitempty" yaml:"orig_aa,omitempty"`
	NewAA           *string `json:"new_aa,omitempty" yaml:"new_aa,omitempty"`
	Start           int64   `json:"start" yaml:"start"`
	End             *int64  `json:"end,omitempty" yaml:"end,omitempty"`
	Position        int64   `json:"position" yaml:"position"`
	Ref             *string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Alt             *string `json:"alt,omitempty" yaml:"alt,omitempty"`
	MutationType    string  `json:"mutation_type" yaml:"mutation_type"`
	AAPosition      int64   `json:"aa_position" yaml:"aa_position"`
	IsTransmembrane bool    `json:"is_transmembrane" yaml:"is_transmembrane"`
}

// Fields returns the serializable view of r.
func (r *Record) Fields() Fields {
	f := Fields{
		Input:           r.input,
		NotationType:    r.notation.String(),
		Start:           r.start,
		Position:        r.start,
		MutationType:    r.mutationType.String(),
		AAPosition:      r.aaPosition,
		IsTransmembrane: r.transmembrane,
	}
	if r.aaFormat != AAFormatNone {
		s := r.aaFormat.String()
		f.AAFormat = &s
	}
	if aa, ok := r.OrigAA(); ok {
		s := string(aa)
		f.OrigAA = &s
	}
	if aa, ok := r.NewAA(); ok {
		s := string(aa)
		f.NewAA = &s
	}
	if end, ok := r.End(); ok {
		f.End = &end
	}
	if ref, ok := r.Ref(); ok {
		f.Ref = &ref
	}
	if alt, ok := r.Alt(); ok {
		f.Alt = &alt
	}
	return f
}
