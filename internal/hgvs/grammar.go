package hgvs

import (
	"fmt"
	"regexp"
	"strconv"
)

// grammar is one entry of an ordered matcher list. build is only called
// when re matched; it may still fail, e.g. on an unknown residue.
type grammar struct {
	name  string
	re    *regexp.Regexp
	build func(input string, m []string) (*Record, error)
}

// matchFirst runs body through gs in order and builds a record from the
// first grammar that matches. Later grammars are never consulted once one
// has matched, even if building the record fails.
func matchFirst(gs []grammar, notation Notation, input, body string) (*Record, error) {
	for _, g := range gs {
		m := g.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		rec, err := g.build(input, m)
		if err != nil {
			return nil, &FormatError{
				Input:    input,
				Notation: notation,
				Err:      fmt.Errorf("%s: %w", g.name, err),
			}
		}
		return rec, nil
	}
	return nil, &FormatError{Input: input, Notation: notation}
}

// matchingGrammar returns the name of the first grammar in gs whose pattern
// matches body, or "" if none does.
func matchingGrammar(gs []grammar, body string) string {
	for _, g := range gs {
		if g.re.MatchString(body) {
			return g.name
		}
	}
	return ""
}

func grammarNames(gs []grammar) []string {
	names := make([]string, len(gs))
	for i, g := range gs {
		names[i] = g.name
	}
	return names
}

func parsePosition(s string) (int64, error) {
	pos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	if pos < 1 {
		return 0, fmt.Errorf("position %d out of range", pos)
	}
	return pos, nil
}

// parseRange parses a start/end pair. An empty end means a single position.
func parseRange(startStr, endStr string) (int64, int64, error) {
	start, err := parsePosition(startStr)
	if err != nil {
		return 0, 0, err
	}
	if endStr == "" {
		return start, 0, nil
	}
	end, err := parsePosition(endStr)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("range end %d precedes start %d", end, start)
	}
	return start, end, nil
}
