package hgvs

import (
	"errors"
	"fmt"
)

// ErrUnknownAminoAcid is wrapped by a FormatError when a grammar matched
// but named a residue that is not in the amino acid table.
var ErrUnknownAminoAcid = errors.New("unknown amino acid code")

// FormatError reports a mutation string that no grammar accepts.
type FormatError struct {
	Input    string
	Notation Notation
	Err      error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("unrecognized %s mutation format: %q", e.Notation, e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
