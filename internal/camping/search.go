package camping

import "errors"

// ErrNoSolution means the search exhausted every guess without completing
// the map.
var ErrNoSolution = errors.New("no solution")

// Result is the outcome of a solve run.
type Result struct {
	Map     *Map
	Guesses int
}

// frame remembers the state before a guess together with the scan position
// for the next free tile to try when the guess fails.
type frame struct {
	m    *Map
	next int
}

// firstFree returns the index of the first free tile at or after from in
// row-major order, or -1.
func (m *Map) firstFree(from int) int {
	for i := from; i < len(m.tiles); i++ {
		if m.tiles[i] == Free {
			return i
		}
	}
	return -1
}

func (m *Map) locationOf(index int) Location {
	return Location{Row: index / m.width, Col: index % m.width}
}

// Solve finds a completed assignment for the map. Deductions run to
// quiescence; when the map is still incomplete, the first free tile gets a
// tent and search continues on a clone. A contradiction unwinds to the
// most recent frame and tries a tent on the next free tile instead;
// blocking a tile is never guessed directly, because some later tent
// guess consumes the row and column budget that would have forced it.
func Solve(m *Map) (*Result, error) {
	if err := m.Valid(); err != nil {
		return nil, err
	}
	cur := m.Clone()
	Presolve(cur)
	var stack []frame
	res := &Result{}
	for {
		dead := false
		for {
			changed, err := SolveStep(cur)
			if err != nil {
				dead = true
				break
			}
			if !changed {
				break
			}
		}
		if !dead && cur.Valid() != nil {
			dead = true
		}
		if !dead {
			if cur.Complete() {
				res.Map = cur
				return res, nil
			}
			index := cur.firstFree(0)
			next := cur.Clone()
			if err := next.PlaceTent(next.locationOf(index)); err != nil {
				return nil, err
			}
			stack = append(stack, frame{m: cur, next: index + 1})
			cur = next
			res.Guesses++
			continue
		}
		// Unwind: try a tent on the saved state's next free tile; a
		// frame with no free tiles left is spent.
		for {
			if len(stack) == 0 {
				return nil, ErrNoSolution
			}
			top := &stack[len(stack)-1]
			index := top.m.firstFree(top.next)
			if index < 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			top.next = index + 1
			cur = top.m.Clone()
			if err := cur.PlaceTent(cur.locationOf(index)); err != nil {
				return nil, err
			}
			res.Guesses++
			break
		}
	}
}
