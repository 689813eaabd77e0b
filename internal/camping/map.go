package camping

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile is one camping cell. Free is the only state the solver mutates;
// Tree, Tent, and Blocked are terminal.
type Tile uint8

const (
	Free Tile = iota
	Tree
	Tent
	Blocked
)

func (t Tile) String() string {
	switch t {
	case Free:
		return "free"
	case Tree:
		return "tree"
	case Tent:
		return "tent"
	case Blocked:
		return "blocked"
	}
	return "?"
}

func (t Tile) char() byte {
	switch t {
	case Tree:
		return 'T'
	case Tent:
		return 'X'
	case Blocked:
		return '#'
	}
	return ' '
}

// Location is a (row, col) pair on a map.
type Location struct {
	Row int
	Col int
}

// Transpose swaps the row and column, mapping a location on a map to the
// same tile on the transposed view.
func (l Location) Transpose() Location {
	return Location{Row: l.Col, Col: l.Row}
}

func (l Location) String() string {
	return fmt.Sprintf("(r%d, c%d)", l.Row, l.Col)
}

// ParseError reports malformed map input.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// OutOfBoundsError reports a placement at an off-grid location.
type OutOfBoundsError struct {
	Loc Location
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("location %v is out of bounds", e.Loc)
}

// NotFreeError reports a placement on a tile that is not free.
type NotFreeError struct {
	Loc  Location
	Tile Tile
}

func (e *NotFreeError) Error() string {
	return fmt.Sprintf("location %v is not free: tile is %v", e.Loc, e.Tile)
}

// TooFewTentsError means a row or column cannot reach its required tent
// count even if every free tile became a tent.
type TooFewTentsError struct {
	Col      bool
	Index    int
	Possible int
	Required int
}

func (e *TooFewTentsError) Error() string {
	return fmt.Sprintf("too few possible tents in %s %d: %d possible, %d required",
		axisName(e.Col), e.Index, e.Possible, e.Required)
}

// TooManyTentsError means a row or column holds more tents than required.
type TooManyTentsError struct {
	Col      bool
	Index    int
	Placed   int
	Required int
}

func (e *TooManyTentsError) Error() string {
	return fmt.Sprintf("too many tents in %s %d: %d placed, %d required",
		axisName(e.Col), e.Index, e.Placed, e.Required)
}

// TentWithoutTreeError reports a tent with no orthogonally adjacent tree.
type TentWithoutTreeError struct {
	Loc Location
}

func (e *TentWithoutTreeError) Error() string {
	return fmt.Sprintf("tent not adjacent to any tree at %v", e.Loc)
}

// TouchingTentsError reports two tents within each other's 8-neighborhood.
type TouchingTentsError struct {
	A Location
	B Location
}

func (e *TouchingTentsError) Error() string {
	return fmt.Sprintf("touching tents at %v and %v", e.A, e.B)
}

func axisName(col bool) string {
	if col {
		return "column"
	}
	return "row"
}

// Map is a rectangular tile grid plus the exact tent count every row and
// column must hold.
type Map struct {
	height  int
	width   int
	tiles   []Tile
	rowReqs []int
	colReqs []int
}

// Parse reads the map format: a "H,W" line, H comma-separated row
// requirements, W column requirements, then H rows of exactly W tile
// characters ('T' tree, 'X' tent, ' ' free, '#' blocked).
func Parse(text string) (*Map, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 3 {
		return nil, parseErrorf("map must have at least 3 header lines, got %d lines", len(lines))
	}
	dims := strings.Split(lines[0], ",")
	if len(dims) != 2 {
		return nil, parseErrorf("expected two integers separated by a comma, got %q", lines[0])
	}
	height, err := strconv.Atoi(dims[0])
	if err != nil || height <= 0 {
		return nil, parseErrorf("expected a positive integer height, got %q", dims[0])
	}
	width, err := strconv.Atoi(dims[1])
	if err != nil || width <= 0 {
		return nil, parseErrorf("expected a positive integer width, got %q", dims[1])
	}
	rowReqs, err := parseRequirements(lines[1], height)
	if err != nil {
		return nil, parseErrorf("row requirements: %v", err)
	}
	colReqs, err := parseRequirements(lines[2], width)
	if err != nil {
		return nil, parseErrorf("column requirements: %v", err)
	}
	rows := lines[3:]
	if len(rows) != height {
		return nil, parseErrorf("expected %d map rows, got %d", height, len(rows))
	}
	tiles := make([]Tile, 0, height*width)
	for row, line := range rows {
		if len(line) != width {
			return nil, parseErrorf("row %d must be exactly %d characters long, but is %d", row, width, len(line))
		}
		for col := 0; col < width; col++ {
			switch line[col] {
			case 'T':
				tiles = append(tiles, Tree)
			case 'X':
				tiles = append(tiles, Tent)
			case ' ':
				tiles = append(tiles, Free)
			case '#':
				tiles = append(tiles, Blocked)
			default:
				return nil, parseErrorf("row %d, column %d: expected 'T', 'X', ' ', or '#', got %q", row, col, line[col])
			}
		}
	}
	return &Map{height: height, width: width, tiles: tiles, rowReqs: rowReqs, colReqs: colReqs}, nil
}

func parseRequirements(line string, count int) ([]int, error) {
	fields := strings.Split(line, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("expected %d non-negative integers separated by commas, got %d", count, len(fields))
	}
	reqs := make([]int, count)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("expected a non-negative integer, got %q", f)
		}
		reqs[i] = n
	}
	return reqs, nil
}

func (m *Map) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d,%d\n", m.height, m.width)
	sb.WriteString(joinInts(m.rowReqs))
	sb.WriteByte('\n')
	sb.WriteString(joinInts(m.colReqs))
	sb.WriteByte('\n')
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			sb.WriteByte(m.tiles[row*m.width+col].char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (m *Map) Clone() *Map {
	tiles := make([]Tile, len(m.tiles))
	copy(tiles, m.tiles)
	return &Map{height: m.height, width: m.width, tiles: tiles, rowReqs: m.rowReqs, colReqs: m.colReqs}
}

func (m *Map) Height() int { return m.height }
func (m *Map) Width() int  { return m.width }

func (m *Map) Dim() (int, int) {
	return m.height, m.width
}

func (m *Map) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Col >= 0 && loc.Row < m.height && loc.Col < m.width
}

// Get returns the tile at loc, or false when loc is out of bounds.
func (m *Map) Get(loc Location) (Tile, bool) {
	if !m.InBounds(loc) {
		return Free, false
	}
	return m.tiles[loc.Row*m.width+loc.Col], true
}

func (m *Map) RowRequirement(row int) int { return m.rowReqs[row] }
func (m *Map) ColRequirement(col int) int { return m.colReqs[col] }

func (m *Map) place(loc Location, t Tile) error {
	cur, ok := m.Get(loc)
	if !ok {
		return &OutOfBoundsError{Loc: loc}
	}
	if cur != Free {
		return &NotFreeError{Loc: loc, Tile: cur}
	}
	m.tiles[loc.Row*m.width+loc.Col] = t
	return nil
}

// PlaceTent turns a free tile into a tent.
func (m *Map) PlaceTent(loc Location) error {
	return m.place(loc, Tent)
}

// PlaceBlocked turns a free tile into a blocked tile.
func (m *Map) PlaceBlocked(loc Location) error {
	return m.place(loc, Blocked)
}

// Adjacents appends the in-bounds orthogonal neighbors of loc.
func (m *Map) Adjacents(loc Location) []Location {
	out := make([]Location, 0, 4)
	for _, d := range [4]Location{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
		n := Location{Row: loc.Row + d.Row, Col: loc.Col + d.Col}
		if m.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors appends the in-bounds 8-neighborhood of loc.
func (m *Map) Neighbors(loc Location) []Location {
	out := make([]Location, 0, 8)
	for dr := -1; dr < 2; dr++ {
		for dc := -1; dc < 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Location{Row: loc.Row + dr, Col: loc.Col + dc}
			if m.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

func (m *Map) rowCount(row int, want Tile) int {
	count := 0
	for col := 0; col < m.width; col++ {
		if m.tiles[row*m.width+col] == want {
			count++
		}
	}
	return count
}

func (m *Map) colCount(col int, want Tile) int {
	count := 0
	for row := 0; row < m.height; row++ {
		if m.tiles[row*m.width+col] == want {
			count++
		}
	}
	return count
}

// RowTents counts the tents currently placed in a row.
func (m *Map) RowTents(row int) int {
	return m.rowCount(row, Tent)
}

// ColTents counts the tents currently placed in a column.
func (m *Map) ColTents(col int) int {
	return m.colCount(col, Tent)
}

// PossibleRowTents counts the tents that could still be added to a row
// using only information in the row: each maximal run of free tiles of
// length l can hold at most ceil(l/2) tents.
func (m *Map) PossibleRowTents(row int) int {
	total := 0
	skip := false
	for col := 0; col < m.width; col++ {
		if skip {
			skip = false
		} else if m.tiles[row*m.width+col] == Free {
			total++
			skip = true
		}
	}
	return total
}

// PossibleColTents is PossibleRowTents for a column.
func (m *Map) PossibleColTents(col int) int {
	total := 0
	skip := false
	for row := 0; row < m.height; row++ {
		if skip {
			skip = false
		} else if m.tiles[row*m.width+col] == Free {
			total++
			skip = true
		}
	}
	return total
}

// Valid checks the puzzle invariants short of completeness: every row and
// column can still meet its requirement without exceeding it, every tent
// stands next to a tree, and no two tents touch.
func (m *Map) Valid() error {
	for row := 0; row < m.height; row++ {
		required := m.rowReqs[row]
		placed := m.rowCount(row, Tent)
		if placed > required {
			return &TooManyTentsError{Index: row, Placed: placed, Required: required}
		}
		if possible := placed + m.PossibleRowTents(row); possible < required {
			return &TooFewTentsError{Index: row, Possible: possible, Required: required}
		}
	}
	for col := 0; col < m.width; col++ {
		required := m.colReqs[col]
		placed := m.colCount(col, Tent)
		if placed > required {
			return &TooManyTentsError{Col: true, Index: col, Placed: placed, Required: required}
		}
		if possible := placed + m.PossibleColTents(col); possible < required {
			return &TooFewTentsError{Col: true, Index: col, Possible: possible, Required: required}
		}
	}
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			loc := Location{Row: row, Col: col}
			if m.tiles[row*m.width+col] != Tent {
				continue
			}
			hasTree := false
			for _, adj := range m.Adjacents(loc) {
				if t, _ := m.Get(adj); t == Tree {
					hasTree = true
					break
				}
			}
			if !hasTree {
				return &TentWithoutTreeError{Loc: loc}
			}
			for _, n := range m.Neighbors(loc) {
				if t, _ := m.Get(n); t == Tent {
					return &TouchingTentsError{A: loc, B: n}
				}
			}
		}
	}
	return nil
}

// Complete reports whether the map is valid and has no free tiles left.
func (m *Map) Complete() bool {
	for _, t := range m.tiles {
		if t == Free {
			return false
		}
	}
	return m.Valid() == nil
}
