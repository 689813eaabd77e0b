package camping

import (
	"errors"
	"strings"
	"testing"
)

const smallMap = "5,5\n" +
	"1,0,1,0,0\n" +
	"0,0,0,1,1\n" +
	"   T \n" +
	"     \n" +
	"    T\n" +
	"     \n" +
	"     \n"

func TestParseRoundTrip(t *testing.T) {
	m, err := Parse(smallMap)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if h, w := m.Dim(); h != 5 || w != 5 {
		t.Fatalf("dim = (%d, %d)", h, w)
	}
	if got, _ := m.Get(Location{Row: 0, Col: 3}); got != Tree {
		t.Errorf("(0,3) = %v, want tree", got)
	}
	if got, _ := m.Get(Location{Row: 2, Col: 4}); got != Tree {
		t.Errorf("(2,4) = %v, want tree", got)
	}
	if m.RowRequirement(0) != 1 || m.RowRequirement(1) != 0 {
		t.Error("row requirements wrong")
	}
	if m.ColRequirement(3) != 1 || m.ColRequirement(0) != 0 {
		t.Error("column requirements wrong")
	}
	if got := m.String(); got != smallMap {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, smallMap)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no header", ""},
		{"bad dims", "5\n1\n1\n"},
		{"bad height", "x,5\n1,0,1,0,0\n0,0,0,1,1\n"},
		{"row req count", "2,2\n1\n0,0\n  \n  \n"},
		{"col req count", "2,2\n1,0\n0\n  \n  \n"},
		{"missing rows", "2,2\n1,0\n1,0\n  \n"},
		{"short row", "2,2\n1,0\n1,0\n \n  \n"},
		{"bad tile", "2,2\n1,0\n1,0\n q\n  \n"},
	}
	for _, tc := range cases {
		var parseErr *ParseError
		if _, err := Parse(tc.text); !errors.As(err, &parseErr) {
			t.Errorf("%s: got %v, want ParseError", tc.name, err)
		}
	}
}

func TestPlacement(t *testing.T) {
	m := mustParse(t, smallMap)
	loc := Location{Row: 0, Col: 4}
	if err := m.PlaceTent(loc); err != nil {
		t.Fatalf("placing tent on free tile failed: %v", err)
	}
	if got, _ := m.Get(loc); got != Tent {
		t.Fatalf("(0,4) = %v after placement", got)
	}

	var notFree *NotFreeError
	if err := m.PlaceBlocked(loc); !errors.As(err, &notFree) {
		t.Errorf("placing on a tent: got %v, want NotFreeError", err)
	}
	if err := m.PlaceTent(Location{Row: 0, Col: 3}); !errors.As(err, &notFree) {
		t.Errorf("placing on a tree: got %v, want NotFreeError", err)
	}
	var oob *OutOfBoundsError
	if err := m.PlaceTent(Location{Row: 5, Col: 0}); !errors.As(err, &oob) {
		t.Errorf("placing off-grid: got %v, want OutOfBoundsError", err)
	}
	if err := m.PlaceBlocked(Location{Row: 0, Col: -1}); !errors.As(err, &oob) {
		t.Errorf("placing at negative column: got %v, want OutOfBoundsError", err)
	}
}

func TestValid(t *testing.T) {
	if err := mustParse(t, smallMap).Valid(); err != nil {
		t.Errorf("fresh map invalid: %v", err)
	}

	// Tent with no adjacent tree. The counts are satisfied, so only the
	// adjacency rule can reject it.
	m := mustParse(t, "1,3\n1\n0,0,1\nT  \n")
	if err := m.PlaceTent(Location{Row: 0, Col: 2}); err != nil {
		t.Fatal(err)
	}
	var noTree *TentWithoutTreeError
	if err := m.Valid(); !errors.As(err, &noTree) {
		t.Errorf("tent without tree: got %v", err)
	}

	// Too many tents in a row.
	m = mustParse(t, "2,2\n0,0\n0,0\nT \n  \n")
	if err := m.PlaceTent(Location{Row: 0, Col: 1}); err != nil {
		t.Fatal(err)
	}
	var tooMany *TooManyTentsError
	if err := m.Valid(); !errors.As(err, &tooMany) {
		t.Errorf("too many tents: got %v", err)
	}

	// Two tents touching diagonally.
	m = mustParse(t, "2,2\n1,1\n1,1\nT \n  \n")
	if err := m.PlaceTent(Location{Row: 0, Col: 1}); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceTent(Location{Row: 1, Col: 0}); err != nil {
		t.Fatal(err)
	}
	var touching *TouchingTentsError
	if err := m.Valid(); !errors.As(err, &touching) {
		t.Errorf("touching tents: got %v", err)
	}

	// Requirement unreachable from the start.
	m = mustParse(t, "1,3\n3\n1,1,1\nT# \n")
	var tooFew *TooFewTentsError
	if err := m.Valid(); !errors.As(err, &tooFew) {
		t.Fatalf("too few possible tents: got %v", err)
	}
	if tooFew.Col || tooFew.Index != 0 || tooFew.Possible != 1 || tooFew.Required != 3 {
		t.Errorf("wrong report: %+v", tooFew)
	}
	if !strings.Contains(tooFew.Error(), "too few possible tents") {
		t.Errorf("unexpected message: %s", tooFew.Error())
	}
}

func TestComplete(t *testing.T) {
	m := mustParse(t, "1,2\n1\n1,0\nT \n")
	if m.Complete() {
		t.Error("map with a free tile reported complete")
	}
	if err := m.PlaceTent(Location{Row: 0, Col: 1}); err != nil {
		t.Fatal(err)
	}
	// Requirement says the tent belongs in column 0, so this is full
	// but not valid.
	if m.Complete() {
		t.Error("invalid full map reported complete")
	}
	m = mustParse(t, "1,2\n1\n0,1\nT \n")
	if err := m.PlaceTent(Location{Row: 0, Col: 1}); err != nil {
		t.Fatal(err)
	}
	if !m.Complete() {
		t.Errorf("solved map reported incomplete: %v", m.Valid())
	}
}

func TestTransposedView(t *testing.T) {
	m := mustParse(t, smallMap)
	tr := m.Transposed()
	if tr.Height() != m.Width() || tr.Width() != m.Height() {
		t.Fatal("transposed dimensions not swapped")
	}
	if tr.RowRequirement(3) != m.ColRequirement(3) {
		t.Error("transposed row requirements are not the column requirements")
	}
	if got, _ := tr.Get(Location{Row: 3, Col: 0}); got != Tree {
		t.Errorf("transposed (3,0) = %v, want tree at original (0,3)", got)
	}
	// Mutations show through on the underlying map.
	if err := tr.PlaceTent(Location{Row: 4, Col: 0}); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Get(Location{Row: 0, Col: 4}); got != Tent {
		t.Errorf("original (0,4) = %v after transposed placement", got)
	}
	if tr.RowTents(4) != 1 || m.RowTents(0) != 1 {
		t.Error("tent counts disagree between views")
	}
	if tr.PossibleRowTents(0) != m.PossibleColTents(0) {
		t.Error("possible tent counts disagree between views")
	}
}

func mustParse(t *testing.T, text string) *Map {
	t.Helper()
	m, err := Parse(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return m
}
