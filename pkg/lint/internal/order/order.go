// Package order provides the line-order comparisons shared by the ordering
// rules.
package order

import (
	"slices"

	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

// Sequence collects line indices in the order they are expected to appear.
type Sequence struct {
	lines []int
}

// Add appends the first line of each element.
func Add[E rcscript.Element](s *Sequence, elems ...E) {
	for _, e := range elems {
		s.lines = append(s.lines, e.Line())
	}
}

// Lines returns the collected line indices.
func (s *Sequence) Lines() []int {
	return s.lines
}

// FirstDivergence compares the sequence with its numeric sort and returns
// the observed line at the first index where they differ.
func (s *Sequence) FirstDivergence() (int, bool) {
	sorted := slices.Clone(s.lines)
	slices.Sort(sorted)
	for i, line := range s.lines {
		if sorted[i] != line {
			return line, true
		}
	}
	return 0, false
}

// InOrder reports whether the sequence is already sorted.
func (s *Sequence) InOrder() bool {
	return slices.IsSorted(s.lines)
}
