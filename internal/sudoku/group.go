package sudoku

// GroupKind distinguishes the three constraint unit shapes.
type GroupKind int

const (
	GroupRow GroupKind = iota
	GroupCol
	GroupBlock
)

func (k GroupKind) String() string {
	switch k {
	case GroupRow:
		return "row"
	case GroupCol:
		return "column"
	case GroupBlock:
		return "block"
	}
	return "?"
}

// Group is one of the 27 constraint units: a row, column, or block. Cells
// and Locs hold the same nine locations; Locs iterates without allocating,
// Cells answers set queries.
type Group struct {
	Kind  GroupKind
	Index int
	Cells LocationSet
	Locs  [9]Location
}

// Groups lists all 27 units: rows 0-8, columns 9-17, blocks 18-26.
var Groups [27]Group

func init() {
	for i := 0; i < 9; i++ {
		row := Group{Kind: GroupRow, Index: i}
		col := Group{Kind: GroupCol, Index: i}
		block := Group{Kind: GroupBlock, Index: i}
		startRow := i / 3 * 3
		startCol := i % 3 * 3
		for j := 0; j < 9; j++ {
			row.Locs[j] = LocationAt(i, j)
			col.Locs[j] = LocationAt(j, i)
			block.Locs[j] = LocationAt(startRow+j/3, startCol+j%3)
		}
		for j := 0; j < 9; j++ {
			row.Cells = row.Cells.Union(SingleLocation(row.Locs[j]))
			col.Cells = col.Cells.Union(SingleLocation(col.Locs[j]))
			block.Cells = block.Cells.Union(SingleLocation(block.Locs[j]))
		}
		Groups[i] = row
		Groups[9+i] = col
		Groups[18+i] = block
	}
}
