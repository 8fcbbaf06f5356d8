// Package topology holds the WFS1 (wolframin) membrane topology used to
// decide whether a residue sits in a transmembrane segment.
package topology

import "sort"

// Segment is an inclusive residue range.
type Segment struct {
	Start int64
	End   int64
}

// Contains reports whether pos lies within the segment, bounds included.
func (s Segment) Contains(pos int64) bool {
	return pos >= s.Start && pos <= s.End
}

// segments is sorted by Start and non-overlapping.
var segments = [...]Segment{
	{314, 334},
	{340, 360},
	{402, 422},
	{427, 447},
	{465, 485},
	{496, 516},
	{529, 549},
	{563, 583},
	{589, 609},
	{632, 652},
	{870, 890},
}

// Segments returns a copy of the transmembrane segments in residue order.
func Segments() []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments[:])
	return out
}

// Domain returns the 1-based index of the segment containing pos.
func Domain(pos int64) (int, bool) {
	// First segment whose End is not before pos; it is the only candidate.
	i := sort.Search(len(segments), func(i int) bool {
		return segments[i].End >= pos
	})
	if i < len(segments) && segments[i].Contains(pos) {
		return i + 1, true
	}
	return 0, false
}

// Contains reports whether pos falls inside any transmembrane segment.
func Contains(pos int64) bool {
	_, ok := Domain(pos)
	return ok
}
