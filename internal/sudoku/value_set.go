package sudoku

import (
	"fmt"
	"math/bits"
	"strings"
)

// CellValue is a sudoku digit in 1..9. Zero is never a value.
type CellValue uint8

// ValueSet is a set of cell values drawn from {1..9}. The low bit means
// value 1; bits above the ninth are always zero.
type ValueSet uint16

const (
	NoValues  ValueSet = 0
	AllValues ValueSet = 0x1ff
)

func SingleValue(v CellValue) ValueSet {
	return 1 << (v - 1)
}

func (s ValueSet) Contains(v CellValue) bool {
	return s&SingleValue(v) != 0
}

func (s ValueSet) Union(other ValueSet) ValueSet {
	return s | other
}

func (s ValueSet) Intersect(other ValueSet) ValueSet {
	return s & other
}

func (s ValueSet) Minus(other ValueSet) ValueSet {
	return s &^ other
}

// Complement is taken relative to {1..9}, never the full machine width.
func (s ValueSet) Complement() ValueSet {
	return ^s & AllValues
}

func (s ValueSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Single returns the set's only member, or false if the set does not have
// exactly one member.
func (s ValueSet) Single() (CellValue, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return CellValue(bits.TrailingZeros16(uint16(s)) + 1), true
}

// Values lists the members in ascending order.
func (s ValueSet) Values() []CellValue {
	out := make([]CellValue, 0, s.Len())
	for v := CellValue(1); v <= 9; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s ValueSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, v := range s.Values() {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
