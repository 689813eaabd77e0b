package sudoku

import "fmt"

// Location indexes the 81 board cells in row-major order.
type Location int

func LocationAt(row, col int) Location {
	return Location(row*9 + col)
}

func (l Location) Row() int {
	return int(l) / 9
}

func (l Location) Col() int {
	return int(l) % 9
}

// Block returns the index of the 3x3 block containing the location.
func (l Location) Block() int {
	return l.Row()/3*3 + l.Col()/3
}

func (l Location) String() string {
	return fmt.Sprintf("(r%d, c%d)", l.Row(), l.Col())
}
