package camping

import (
	"errors"
	"testing"
)

func TestPresolve(t *testing.T) {
	m := mustParse(t, smallMap)
	if !Presolve(m) {
		t.Fatal("presolve found nothing to block")
	}
	// Only tiles next to a tree can still hold a tent.
	free := []Location{{0, 2}, {0, 4}, {1, 3}, {1, 4}, {2, 3}, {3, 4}}
	isFree := func(loc Location) bool {
		for _, f := range free {
			if f == loc {
				return true
			}
		}
		return false
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			loc := Location{Row: row, Col: col}
			got, _ := m.Get(loc)
			switch {
			case isFree(loc):
				if got != Free {
					t.Errorf("%v = %v, want free", loc, got)
				}
			case got == Tree:
			case got != Blocked:
				t.Errorf("%v = %v, want blocked", loc, got)
			}
		}
	}
	before := m.String()
	if Presolve(m) {
		t.Error("second presolve reported a change")
	}
	if m.String() != before {
		t.Error("second presolve modified the map")
	}
}

func TestSolveByDeduction(t *testing.T) {
	m := mustParse(t, smallMap)
	res, err := Solve(m)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if res.Guesses != 0 {
		t.Errorf("guesses = %d, want 0", res.Guesses)
	}
	if !res.Map.Complete() {
		t.Fatalf("result not complete:\n%s", res.Map)
	}
	for _, want := range []Location{{0, 4}, {2, 3}} {
		if got, _ := res.Map.Get(want); got != Tent {
			t.Errorf("%v = %v, want tent", want, got)
		}
	}
	for row := 0; row < 5; row++ {
		if got := res.Map.RowTents(row); got != m.RowRequirement(row) {
			t.Errorf("row %d has %d tents, want %d", row, got, m.RowRequirement(row))
		}
	}
	for col := 0; col < 5; col++ {
		if got := res.Map.ColTents(col); got != m.ColRequirement(col) {
			t.Errorf("column %d has %d tents, want %d", col, got, m.ColRequirement(col))
		}
	}
	// The input map is untouched.
	if m.String() != smallMap {
		t.Error("solve mutated its input")
	}
}

func TestSolveWithGuessing(t *testing.T) {
	// The center tile is ruled out, leaving one tent in each outer
	// corner pair. No run deduction separates the pairs, so the solver
	// has to guess.
	m := mustParse(t, "3,3\n"+
		"1,0,1\n"+
		"1,0,1\n"+
		"   \n"+
		"T T\n"+
		"   \n")
	res, err := Solve(m)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if res.Guesses == 0 {
		t.Error("expected at least one guess")
	}
	if !res.Map.Complete() {
		t.Fatalf("result not complete:\n%s", res.Map)
	}
	if err := res.Map.Valid(); err != nil {
		t.Errorf("solved map invalid: %v", err)
	}
}

func TestSolveRejectsInvalidMap(t *testing.T) {
	m := mustParse(t, "1,3\n3\n1,1,1\nT# \n")
	res, err := Solve(m)
	if res != nil {
		t.Fatal("got a result for an impossible map")
	}
	var tooFew *TooFewTentsError
	if !errors.As(err, &tooFew) {
		t.Fatalf("got %v, want TooFewTentsError", err)
	}
}

func TestSolveNoSolution(t *testing.T) {
	// The only row-0 tent spot and the only column-0 tent spot touch
	// diagonally, so no assignment works, but every count is reachable
	// up front and the search has to discover it.
	m := mustParse(t, "2,2\n1,0\n1,0\nT \n  \n")
	res, err := Solve(m)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("got %v, want ErrNoSolution", err)
	}
	if res != nil {
		t.Error("got a result alongside ErrNoSolution")
	}
}
