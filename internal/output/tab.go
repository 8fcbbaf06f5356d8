// Package output provides batch result formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/wfs1-score/internal/severity"
)

// Columns written by TabWriter, in order.
var tabColumns = []string{
	"id",
	"allele_1",
	"allele_2",
	"score",
	"band",
	"status",
	"message",
}

// TabWriter writes batch results in tab-delimited format.
type TabWriter struct {
	w *bufio.Writer
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tabColumns, "\t") + "\n")
	return err
}

// Write writes one result row. Unscored rows carry "-" in the score and
// band columns.
func (tw *TabWriter) Write(r severity.WorkResult) error {
	score := "-"
	band := "-"
	message := "-"
	if r.Err == nil {
		score = strconv.Itoa(r.Score)
		band = string(severity.BandOf(r.Score))
	} else {
		message = sanitize(r.Err.Error())
	}

	fields := []string{
		orDash(r.Pair.ID),
		orDash(sanitize(r.Pair.Allele1)),
		orDash(sanitize(r.Pair.Allele2)),
		score,
		band,
		severity.Reason(r.Err),
		message,
	}

	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// sanitize keeps free text on a single tab-delimited line.
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
