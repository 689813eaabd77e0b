package sudoku

import "errors"

var (
	// ErrUnsolvable means the search exhausted every guess without
	// finding a solution.
	ErrUnsolvable = errors.New("puzzle is unsolvable")
	// ErrStepLimit means the propagation budget ran out before the
	// search finished.
	ErrStepLimit = errors.New("step limit reached")
)

// DefaultStepLimit bounds propagation iterations for pathological inputs.
const DefaultStepLimit = 1000

// Options tune the search driver.
type Options struct {
	// StepLimit overrides DefaultStepLimit when positive.
	StepLimit int
}

// Result is the outcome of a solve run.
type Result struct {
	Board   *Board
	Steps   int
	Guesses int
	Solved  bool
}

// frame remembers the state before a guess so the search can unwind and
// exclude the guessed value.
type frame struct {
	state *SolveState
	loc   Location
	value CellValue
}

// guessLocation picks the empty cell with the fewest remaining candidates,
// breaking ties in row-major order. Returns false when no cell is empty.
func (s *SolveState) guessLocation() (Location, bool) {
	best := Location(-1)
	bestLen := 10
	for l := Location(0); l < 81; l++ {
		c := s.cells[l]
		if c.empty() && c.candidates.Len() < bestLen {
			best = l
			bestLen = c.candidates.Len()
		}
	}
	return best, best >= 0
}

// Solve runs propagation and backtracking search on the board with default
// options.
func Solve(board *Board) (*Result, error) {
	return SolveWithOptions(board, Options{})
}

// SolveWithOptions drives the solver state machine: propagate to
// quiescence, guess a minimum-remaining-values cell, validate complete
// assignments, and unwind on contradiction. On ErrStepLimit the result
// holds the earliest partial state still on the guess stack.
func SolveWithOptions(board *Board, opts Options) (*Result, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	limit := opts.StepLimit
	if limit <= 0 {
		limit = DefaultStepLimit
	}
	state := newSolveState(board)
	var stack []frame
	res := &Result{}
	for {
		var contradiction error
		for {
			if res.Steps >= limit {
				earliest := state
				if len(stack) > 0 {
					earliest = stack[0].state
				}
				res.Board = earliest.Board()
				return res, ErrStepLimit
			}
			res.Steps++
			restricted, err := state.restrictCells()
			if err != nil {
				contradiction = err
				break
			}
			ghosted, err := state.ghosts()
			if err != nil {
				contradiction = err
				break
			}
			if !restricted && !ghosted {
				break
			}
		}
		if contradiction == nil {
			loc, ok := state.guessLocation()
			if !ok {
				// A guess sequence can satisfy every candidate-set
				// invariant yet still leave a duplicate, so re-check
				// before declaring success.
				b := state.Board()
				if err := b.Validate(); err == nil {
					res.Board = b
					res.Solved = true
					return res, nil
				}
			} else {
				value := state.cells[loc].candidates.Values()[0]
				stack = append(stack, frame{state: state.clone(), loc: loc, value: value})
				state.cells[loc] = cell{value: value}
				res.Guesses++
				continue
			}
		}
		// Unwind: restore the prior state and rule out the tried value.
		// If that itself contradicts, keep popping.
		for {
			if len(stack) == 0 {
				return nil, ErrUnsolvable
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			state = top.state
			if _, err := restrict(&state.cells[top.loc], SingleValue(top.value).Complement()); err == nil {
				break
			}
		}
	}
}
