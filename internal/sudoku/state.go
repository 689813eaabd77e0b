package sudoku

import (
	"errors"
	"fmt"
)

// errContradiction marks dead ends during propagation. The search driver
// recovers from it by unwinding; it never escapes to callers.
var errContradiction = errors.New("contradiction")

// cell is a solver working cell: either a fixed value or a set of
// remaining candidates. value is zero while the cell is unassigned.
type cell struct {
	value      CellValue
	candidates ValueSet
}

func (c cell) empty() bool {
	return c.value == 0
}

// possible returns the values the cell could still hold.
func (c cell) possible() ValueSet {
	if c.value != 0 {
		return SingleValue(c.value)
	}
	return c.candidates
}

// restrict intersects the cell's possibilities with values. A cell whose
// candidate set collapses to one member is upgraded to a fixed value.
// Reports whether the cell changed.
func restrict(c *cell, values ValueSet) (bool, error) {
	if c.value != 0 {
		if !values.Contains(c.value) {
			return false, fmt.Errorf("cell value %d is not in %v: %w", c.value, values, errContradiction)
		}
		return false, nil
	}
	next := c.candidates.Intersect(values)
	if next == NoValues {
		return false, fmt.Errorf("no possible values left: %w", errContradiction)
	}
	if v, ok := next.Single(); ok {
		*c = cell{value: v}
		return true, nil
	}
	changed := next != c.candidates
	c.candidates = next
	return changed, nil
}

// SolveState is the mutable 81-cell working state of the sudoku solver.
type SolveState struct {
	cells [81]cell
}

func newSolveState(b *Board) *SolveState {
	s := &SolveState{}
	for l := Location(0); l < 81; l++ {
		if v, ok := b.Value(l); ok {
			s.cells[l] = cell{value: v}
		} else {
			s.cells[l] = cell{candidates: AllValues}
		}
	}
	return s
}

func (s *SolveState) clone() *SolveState {
	copied := *s
	return &copied
}

// Board projects the state onto a board, dropping candidate sets.
func (s *SolveState) Board() *Board {
	b := &Board{}
	for l := Location(0); l < 81; l++ {
		b.cells[l] = s.cells[l].value
	}
	return b
}

// freeValues returns the values not yet fixed anywhere in locs.
func (s *SolveState) freeValues(locs [9]Location) ValueSet {
	fixed := NoValues
	for _, loc := range locs {
		if v := s.cells[loc].value; v != 0 {
			fixed = fixed.Union(SingleValue(v))
		}
	}
	return fixed.Complement()
}

// restrictCells applies the group restriction rule to every group: empty
// cells lose candidates already fixed in the group, and a value possible in
// only one cell of a group is assigned there. Reports whether anything
// changed.
func (s *SolveState) restrictCells() (bool, error) {
	changed := false
	for gi := range Groups {
		g := &Groups[gi]
		free := s.freeValues(g.Locs)
		for _, loc := range g.Locs {
			c := &s.cells[loc]
			if !c.empty() {
				continue
			}
			ch, err := restrict(c, free)
			if err != nil {
				return false, fmt.Errorf("restricting cell %v to %v: %w", loc, free, err)
			}
			changed = changed || ch
		}
		free = s.freeValues(g.Locs)
		for _, v := range free.Values() {
			target := Location(-1)
			count := 0
			for _, loc := range g.Locs {
				if s.cells[loc].possible().Contains(v) {
					target = loc
					count++
				}
			}
			if count == 1 && s.cells[target].empty() {
				s.cells[target] = cell{value: v}
				changed = true
			}
		}
	}
	return changed, nil
}

// ghost records a value whose candidate locations within some group are
// pinned down to two or three cells.
type ghost struct {
	value CellValue
	cells LocationSet
}

// ghosts applies the locked-candidates rule: when a value's possible
// locations in one group all lie inside another group, the value cannot
// appear elsewhere in that other group.
func (s *SolveState) ghosts() (bool, error) {
	var found []ghost
	for gi := range Groups {
		for v := CellValue(1); v <= 9; v++ {
			locs := NoLocations
			count := 0
			allEmpty := true
			for _, loc := range Groups[gi].Locs {
				if s.cells[loc].possible().Contains(v) {
					locs = locs.Union(SingleLocation(loc))
					count++
					if !s.cells[loc].empty() {
						allEmpty = false
					}
				}
			}
			if (count == 2 || count == 3) && allEmpty {
				found = append(found, ghost{value: v, cells: locs})
			}
		}
	}
	changed := false
	for gi := range Groups {
		g := &Groups[gi]
		for _, gh := range found {
			if !g.Cells.Superset(gh.cells) {
				continue
			}
			for _, loc := range g.Locs {
				if gh.cells.Contains(loc) {
					continue
				}
				c := &s.cells[loc]
				if !c.empty() {
					continue
				}
				ch, err := restrict(c, SingleValue(gh.value).Complement())
				if err != nil {
					return false, fmt.Errorf("removing ghost value %d from cell %v: %w", gh.value, loc, err)
				}
				changed = changed || ch
			}
		}
	}
	return changed, nil
}
