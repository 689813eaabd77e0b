package camping

import "fmt"

// Presolve blocks every free tile that can never hold a tent: tiles
// touching an existing tent, and tiles with no orthogonally adjacent tree.
// Only Free -> Blocked transitions happen, so the pass is monotonic and
// idempotent. Reports whether anything changed.
func Presolve(m *Map) bool {
	changed := false
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			loc := Location{Row: row, Col: col}
			if t, _ := m.Get(loc); t != Free {
				continue
			}
			touchesTent := false
			for _, n := range m.Neighbors(loc) {
				if t, _ := m.Get(n); t == Tent {
					touchesTent = true
					break
				}
			}
			besideTree := false
			for _, adj := range m.Adjacents(loc) {
				if t, _ := m.Get(adj); t == Tree {
					besideTree = true
					break
				}
			}
			if touchesTent || !besideTree {
				if m.PlaceBlocked(loc) == nil {
					changed = true
				}
			}
		}
	}
	return changed
}

// forEachRun calls action for every maximal run of free tiles in the row.
// Trees, blocked tiles, and tents all end a run. end is exclusive.
func forEachRun(v View, row int, action func(start, end int) error) error {
	width := v.Width()
	runStart := 0
	for col := 0; col < width; col++ {
		tile, _ := v.Get(Location{Row: row, Col: col})
		if tile == Free {
			continue
		}
		if col > runStart {
			if err := action(runStart, col); err != nil {
				return fmt.Errorf("run ending at column %d in row %d: %w", col, row, err)
			}
		}
		runStart = col + 1
	}
	if runStart < width {
		if err := action(runStart, width); err != nil {
			return fmt.Errorf("run at end of row %d starting at column %d: %w", row, runStart, err)
		}
	}
	return nil
}

// handleRowRuns applies the parity deductions for one row. When the row's
// remaining requirement equals its run capacity, every run is saturated:
// the rows above and below each run can be blocked, and odd runs are
// filled outright with alternating tents. When the capacity exceeds the
// requirement by exactly one, two odd runs split by a single tile force a
// tent next to the gap on one side or the other, so the gap's vertical
// neighbors can be blocked.
func handleRowRuns(v View, row int, requirement int) (bool, error) {
	changed := false
	possible := v.PossibleRowTents(row)
	tents := v.RowTents(row)
	switch {
	case possible == requirement-tents:
		err := forEachRun(v, row, func(start, end int) error {
			for col := start; col < end; col++ {
				if v.PlaceBlocked(Location{Row: row - 1, Col: col}) == nil {
					changed = true
				}
				if v.PlaceBlocked(Location{Row: row + 1, Col: col}) == nil {
					changed = true
				}
			}
			if (end-start)%2 == 1 {
				// Tents land on the run's endpoints, so the diagonal
				// tiles there cannot hold one.
				v.PlaceBlocked(Location{Row: row - 1, Col: start - 1})
				v.PlaceBlocked(Location{Row: row - 1, Col: end})
				v.PlaceBlocked(Location{Row: row + 1, Col: start - 1})
				v.PlaceBlocked(Location{Row: row + 1, Col: end})
				for col := start; col < end; col++ {
					loc := Location{Row: row, Col: col}
					if (col-start)%2 == 0 {
						if err := v.PlaceTent(loc); err != nil {
							return fmt.Errorf("filling saturated run: %w", err)
						}
					} else {
						if err := v.PlaceBlocked(loc); err != nil {
							return fmt.Errorf("filling saturated run: %w", err)
						}
					}
				}
				changed = true
			}
			return nil
		})
		if err != nil {
			return false, err
		}
	case possible == requirement-tents+1:
		prevStart, prevEnd := -1, -1
		err := forEachRun(v, row, func(start, end int) error {
			if prevEnd >= 0 && start-prevEnd == 1 && (prevEnd-prevStart)%2 == 1 && (end-start)%2 == 1 {
				if v.PlaceBlocked(Location{Row: row - 1, Col: prevEnd}) == nil {
					changed = true
				}
				if v.PlaceBlocked(Location{Row: row + 1, Col: prevEnd}) == nil {
					changed = true
				}
			}
			prevStart, prevEnd = start, end
			return nil
		})
		if err != nil {
			return false, err
		}
	}
	return changed, nil
}

// blockRowIfFinished blocks every remaining free tile of a row whose tent
// requirement is already met.
func blockRowIfFinished(v View, row int, requirement int) bool {
	if v.RowTents(row) != requirement {
		return false
	}
	changed := false
	for col := 0; col < v.Width(); col++ {
		if v.PlaceBlocked(Location{Row: row, Col: col}) == nil {
			changed = true
		}
	}
	return changed
}

func handleRows(v View) (bool, error) {
	changed := false
	for row := 0; row < v.Height(); row++ {
		requirement := v.RowRequirement(row)
		ch, err := handleRowRuns(v, row, requirement)
		if err != nil {
			return false, fmt.Errorf("processing runs in row %d: %w", row, err)
		}
		changed = changed || ch
		changed = blockRowIfFinished(v, row, requirement) || changed
	}
	return changed, nil
}

// SolveStep runs one deduction pass over every row, then every column
// through the transposed view. Reports whether anything changed; an error
// means the map state is contradictory.
func SolveStep(m *Map) (bool, error) {
	changed, err := handleRows(m)
	if err != nil {
		return false, err
	}
	colChanged, err := handleRows(m.Transposed())
	if err != nil {
		return false, err
	}
	return changed || colChanged, nil
}
