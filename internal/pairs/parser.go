// Package pairs reads mutation pairs (one patient's two alleles per row)
// from tab- or comma-delimited files.
package pairs

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Recognised header names, compared case-insensitively.
const (
	ColID      = "id"
	ColAllele1 = "allele_1"
	ColAllele2 = "allele_2"
)

var columnAliases = map[string]string{
	"id":        ColID,
	"allele_1":  ColAllele1,
	"allele1":   ColAllele1,
	"mutation1": ColAllele1,
	"m1":        ColAllele1,
	"allele_2":  ColAllele2,
	"allele2":   ColAllele2,
	"mutation2": ColAllele2,
	"m2":        ColAllele2,
}

// Pair is one row of a pairs file.
type Pair struct {
	Line    int
	ID      string
	Allele1 string
	Allele2 string
}

// ColumnIndices holds the header positions of the known columns; -1 when
// a column is absent.
type ColumnIndices struct {
	ID      int
	Allele1 int
	Allele2 int
}

// ParseError reports a malformed pairs file.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pairs parse error at line %d: %s", e.Line, e.Message)
}

// Parser reads Pairs from a delimited file.
type Parser struct {
	reader     *csv.Reader
	file       *os.File
	gzipReader *gzip.Reader
	columns    ColumnIndices
	comma      rune
	lineNumber int
}

// NewParser opens path, which may be gzip-compressed. "-" reads stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pairs file: %w", err)
	}

	p := &Parser{file: file}

	br := bufio.NewReader(file)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(br)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		br = bufio.NewReader(p.gzipReader)
	}

	if err := p.init(br); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// NewParserFromReader creates a parser over an uncompressed stream.
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{}
	if err := p.init(bufio.NewReader(r)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) init(br *bufio.Reader) error {
	p.comma = detectDelimiter(br)

	p.reader = csv.NewReader(br)
	p.reader.Comma = p.comma
	p.reader.Comment = '#'
	p.reader.FieldsPerRecord = -1
	p.reader.LazyQuotes = true
	p.reader.ReuseRecord = true

	return p.parseHeader()
}

// detectDelimiter peeks at the first non-comment line and picks tab when
// it contains one, comma otherwise.
func detectDelimiter(br *bufio.Reader) rune {
	buf, _ := br.Peek(br.Size())
	for _, line := range strings.Split(string(buf), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "\t") {
			return '\t'
		}
		return ','
	}
	return '\t'
}

func (p *Parser) parseHeader() error {
	header, err := p.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ParseError{Line: p.lineNumber, Message: "no header line found"}
		}
		return fmt.Errorf("read header: %w", err)
	}
	p.lineNumber, _ = p.reader.FieldPos(0)

	p.columns = ColumnIndices{ID: -1, Allele1: -1, Allele2: -1}
	for i, col := range header {
		switch columnAliases[strings.ToLower(strings.TrimSpace(col))] {
		case ColID:
			p.columns.ID = i
		case ColAllele1:
			p.columns.Allele1 = i
		case ColAllele2:
			p.columns.Allele2 = i
		}
	}

	if p.columns.Allele1 == -1 {
		return &ParseError{Line: p.lineNumber, Message: "required column 'allele_1' not found in header"}
	}
	if p.columns.Allele2 == -1 {
		return &ParseError{Line: p.lineNumber, Message: "required column 'allele_2' not found in header"}
	}
	return nil
}

// Next reads the next pair. Returns nil, nil at end of input.
func (p *Parser) Next() (*Pair, error) {
	fields, err := p.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return nil, &ParseError{Line: csvErr.Line, Message: csvErr.Err.Error()}
		}
		return nil, fmt.Errorf("read pair line: %w", err)
	}
	p.lineNumber, _ = p.reader.FieldPos(0)

	minCols := max(p.columns.Allele1, p.columns.Allele2, p.columns.ID)
	if len(fields) <= minCols {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least %d columns, found %d", minCols+1, len(fields)),
		}
	}

	pair := &Pair{
		Line:    p.lineNumber,
		Allele1: strings.TrimSpace(fields[p.columns.Allele1]),
		Allele2: strings.TrimSpace(fields[p.columns.Allele2]),
	}
	if p.columns.ID >= 0 {
		pair.ID = strings.TrimSpace(fields[p.columns.ID])
	}
	return pair, nil
}

// Columns returns the resolved header positions.
func (p *Parser) Columns() ColumnIndices {
	return p.columns
}

// Delimiter returns the detected field separator.
func (p *Parser) Delimiter() rune {
	return p.comma
}

// LineNumber returns the line of the most recently read row.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close releases the underlying file, if the parser opened one.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
