package cube

import (
	"errors"
	"strings"
	"testing"
)

func TestSolvedIsSolved(t *testing.T) {
	s := Solved()
	if !s.IsSolved() {
		t.Error("Solved() should report solved")
	}
}

func TestSolvedColors(t *testing.T) {
	s := Solved()
	for slot := Slot(1); slot <= NumSlots; slot++ {
		if s.ColorAt(slot) != SolvedColorOf(slot) {
			t.Errorf("slot %d shows %v, want %v", slot, s.ColorAt(slot), SolvedColorOf(slot))
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := Apply(Solved(), R)
	if s.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestNewFromStickersRoundTrip(t *testing.T) {
	want := ApplySequence(Solved(), []Move{R, U, FPrime, D2, L})
	got, err := NewFromStickers(want.Stickers())
	if err != nil {
		t.Fatalf("NewFromStickers: %v", err)
	}
	if !got.Equal(want) {
		t.Error("rebuilt state differs from original")
	}
}

func TestNewFromStickersRejectsWrongLength(t *testing.T) {
	_, err := NewFromStickers(make([]Sticker, 10))
	if !errors.Is(err, ErrMalformedState) {
		t.Errorf("want ErrMalformedState, got %v", err)
	}
}

func TestNewFromStickersRejectsDuplicateOrigin(t *testing.T) {
	stickers := Solved().Stickers()
	stickers[1] = stickers[0]
	_, err := NewFromStickers(stickers)
	if !errors.Is(err, ErrMalformedState) {
		t.Errorf("want ErrMalformedState, got %v", err)
	}
}

func TestNewFromStickersRejectsInconsistentColor(t *testing.T) {
	stickers := Solved().Stickers()
	stickers[0].Color = Green // original slot 1 is a U slot, must be white
	_, err := NewFromStickers(stickers)
	if !errors.Is(err, ErrMalformedState) {
		t.Errorf("want ErrMalformedState, got %v", err)
	}
}

func TestStringRendersNet(t *testing.T) {
	out := Solved().String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net should have 9 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "W W W") {
		t.Errorf("top row should show the U face: %q", lines[0])
	}
	if !strings.Contains(lines[3], "O O O G G G R R R B B B") {
		t.Errorf("middle row should show L F R B: %q", lines[3])
	}
	if !strings.Contains(lines[8], "Y Y Y") {
		t.Errorf("bottom row should show the D face: %q", lines[8])
	}
}

func TestEqualIsValueEquality(t *testing.T) {
	a := ApplySequence(Solved(), []Move{R, U})
	b := ApplySequence(Solved(), []Move{R, U})
	if !a.Equal(b) {
		t.Error("same move sequence should produce equal states")
	}
	if a.Equal(Apply(b, F)) {
		t.Error("different states should not be equal")
	}
}
