package sudoku

import (
	"fmt"
	"strings"
)

// ParseError reports malformed puzzle input.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// DuplicateValueError reports a value appearing twice in one group.
type DuplicateValueError struct {
	Kind  GroupKind
	Index int
	Value CellValue
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %d in %s %d", e.Value, e.Kind, e.Index)
}

// Board is an 81-cell grid. Each cell holds a value in 1..9 or is empty.
// Boards are parsed once and never mutated by the solver.
type Board struct {
	cells [81]CellValue
}

// Value returns the cell's value and whether one is set.
func (b *Board) Value(l Location) (CellValue, bool) {
	v := b.cells[l]
	return v, v != 0
}

// Finished reports whether every cell holds a value.
func (b *Board) Finished() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

func parseCell(c byte, emptyChar byte) (CellValue, error) {
	switch {
	case c == emptyChar:
		return 0, nil
	case c >= '1' && c <= '9':
		return CellValue(c - '0'), nil
	case c == '0':
		return 0, parseErrorf("'0' is not a valid cell value")
	default:
		return 0, parseErrorf("invalid character %q", c)
	}
}

// ParseLine parses an 81-character line. emptyChar marks empty cells;
// digits 1..9 mark values.
func ParseLine(line string, emptyChar byte) (*Board, error) {
	if len(line) != 81 {
		return nil, parseErrorf("line must be exactly 81 characters long, but is %d: %q", len(line), line)
	}
	b := &Board{}
	for i := 0; i < 81; i++ {
		v, err := parseCell(line[i], emptyChar)
		if err != nil {
			return nil, parseErrorf("index %d: %v", i, err)
		}
		b.cells[i] = v
	}
	return b, nil
}

// ParseGrid parses nine 9-character lines, 90 characters in total counting
// newlines.
func ParseGrid(grid string, emptyChar byte) (*Board, error) {
	if len(grid) != 90 {
		return nil, parseErrorf("grid must be exactly 90 characters long (81 cells plus 9 newlines), but is %d", len(grid))
	}
	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	if len(lines) != 9 {
		return nil, parseErrorf("grid must have exactly 9 lines, but has %d", len(lines))
	}
	b := &Board{}
	for row, line := range lines {
		if len(line) != 9 {
			return nil, parseErrorf("row %d must be exactly 9 characters long, but is %d: %q", row, len(line), line)
		}
		for col := 0; col < 9; col++ {
			v, err := parseCell(line[col], emptyChar)
			if err != nil {
				return nil, parseErrorf("row %d, column %d: %v", row, col, err)
			}
			b.cells[LocationAt(row, col)] = v
		}
	}
	return b, nil
}

func (b *Board) cellChar(l Location, emptyChar byte) byte {
	if v := b.cells[l]; v != 0 {
		return '0' + byte(v)
	}
	return emptyChar
}

// Line formats the board as a single 81-character line.
func (b *Board) Line(emptyChar byte) string {
	var sb strings.Builder
	for l := Location(0); l < 81; l++ {
		sb.WriteByte(b.cellChar(l, emptyChar))
	}
	return sb.String()
}

// Grid formats the board as nine newline-terminated rows.
func (b *Board) Grid(emptyChar byte) string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			sb.WriteByte(b.cellChar(LocationAt(row, col), emptyChar))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pretty formats the board with block separators for human eyes.
func (b *Board) Pretty(emptyChar byte) string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		if row%3 == 0 {
			sb.WriteString("+-------+-------+-------+\n")
		}
		for col := 0; col < 9; col++ {
			if col%3 == 0 {
				sb.WriteString("| ")
			}
			sb.WriteByte(b.cellChar(LocationAt(row, col), emptyChar))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+-------+-------+-------+\n")
	return sb.String()
}

func (b *Board) String() string {
	return b.Pretty(' ')
}

// Validate checks that no group contains a value twice.
func (b *Board) Validate() error {
	for gi := range Groups {
		g := &Groups[gi]
		seen := NoValues
		for _, loc := range g.Locs {
			v := b.cells[loc]
			if v == 0 {
				continue
			}
			if seen.Contains(v) {
				return &DuplicateValueError{Kind: g.Kind, Index: g.Index, Value: v}
			}
			seen = seen.Union(SingleValue(v))
		}
	}
	return nil
}
