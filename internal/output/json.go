package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/inodb/wfs1-score/internal/severity"
)

// JSONResult is one line written by JSONWriter.
type JSONResult struct {
	Line    int    `json:"line"`
	ID      string `json:"id,omitempty"`
	Allele1 string `json:"allele_1"`
	Allele2 string `json:"allele_2"`
	Score   *int   `json:"score,omitempty"`
	Band    string `json:"band,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// JSONWriter writes batch results as JSON lines.
type JSONWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONWriter creates a JSON lines writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	bw := bufio.NewWriter(w)
	return &JSONWriter{w: bw, enc: json.NewEncoder(bw)}
}

// WriteHeader is a no-op; JSON lines have no header.
func (jw *JSONWriter) WriteHeader() error {
	return nil
}

// Write encodes one result.
func (jw *JSONWriter) Write(r severity.WorkResult) error {
	out := JSONResult{
		Line:    r.Pair.Line,
		ID:      r.Pair.ID,
		Allele1: r.Pair.Allele1,
		Allele2: r.Pair.Allele2,
		Status:  severity.Reason(r.Err),
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	} else {
		score := r.Score
		out.Score = &score
		out.Band = string(severity.BandOf(r.Score))
	}
	return jw.enc.Encode(out)
}

// Flush flushes buffered output.
func (jw *JSONWriter) Flush() error {
	return jw.w.Flush()
}
