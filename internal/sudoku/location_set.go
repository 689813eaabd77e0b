package sudoku

import "math/bits"

// LocationSet is a bit set over the 81 board cells. Locations 0..63 live in
// lo, 64..80 in hi.
type LocationSet struct {
	lo uint64
	hi uint64
}

const hiMask = (1 << 17) - 1

var (
	NoLocations  = LocationSet{}
	AllLocations = LocationSet{lo: ^uint64(0), hi: hiMask}
)

func SingleLocation(l Location) LocationSet {
	if l < 64 {
		return LocationSet{lo: 1 << l}
	}
	return LocationSet{hi: 1 << (l - 64)}
}

func (s LocationSet) Contains(l Location) bool {
	other := SingleLocation(l)
	return s.lo&other.lo != 0 || s.hi&other.hi != 0
}

func (s LocationSet) Union(other LocationSet) LocationSet {
	return LocationSet{lo: s.lo | other.lo, hi: s.hi | other.hi}
}

func (s LocationSet) Intersect(other LocationSet) LocationSet {
	return LocationSet{lo: s.lo & other.lo, hi: s.hi & other.hi}
}

func (s LocationSet) Minus(other LocationSet) LocationSet {
	return LocationSet{lo: s.lo &^ other.lo, hi: s.hi &^ other.hi}
}

// Complement masks off bits beyond the 81-cell universe.
func (s LocationSet) Complement() LocationSet {
	return LocationSet{lo: ^s.lo, hi: ^s.hi & hiMask}
}

func (s LocationSet) Superset(other LocationSet) bool {
	return s.Intersect(other) == other
}

func (s LocationSet) Count() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// Locations lists the members in ascending index order.
func (s LocationSet) Locations() []Location {
	out := make([]Location, 0, s.Count())
	for lo := s.lo; lo != 0; lo &= lo - 1 {
		out = append(out, Location(bits.TrailingZeros64(lo)))
	}
	for hi := s.hi; hi != 0; hi &= hi - 1 {
		out = append(out, Location(bits.TrailingZeros64(hi)+64))
	}
	return out
}
