package camping

// View is the capability set the row deductions need. A map satisfies it
// directly; Transposed satisfies it with rows and columns swapped, so the
// same deduction code serves both axes.
type View interface {
	Height() int
	Width() int
	RowRequirement(row int) int
	Get(loc Location) (Tile, bool)
	PlaceTent(loc Location) error
	PlaceBlocked(loc Location) error
	RowTents(row int) int
	PossibleRowTents(row int) int
}

// Transposed is a zero-copy view of a map with rows and columns exchanged.
// Every location is transposed on the way in; the underlying buffer is
// shared, so mutations show through on the map.
type Transposed struct {
	m *Map
}

// Transposed returns the swapped-axes view of the map.
func (m *Map) Transposed() *Transposed {
	return &Transposed{m: m}
}

func (t *Transposed) Height() int { return t.m.width }
func (t *Transposed) Width() int  { return t.m.height }

func (t *Transposed) RowRequirement(row int) int {
	return t.m.colReqs[row]
}

func (t *Transposed) Get(loc Location) (Tile, bool) {
	return t.m.Get(loc.Transpose())
}

func (t *Transposed) PlaceTent(loc Location) error {
	return t.m.PlaceTent(loc.Transpose())
}

func (t *Transposed) PlaceBlocked(loc Location) error {
	return t.m.PlaceBlocked(loc.Transpose())
}

func (t *Transposed) RowTents(row int) int {
	return t.m.ColTents(row)
}

func (t *Transposed) PossibleRowTents(row int) int {
	return t.m.PossibleColTents(row)
}
