package cube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u'", UPrime},
		{"f2", F2},
		{"B2'", B2},
		{"L`", LPrime},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "R''", "2R"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q): want ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{R, U, RPrime, UPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesFailsOnFirstBadToken(t *testing.T) {
	if _, err := ParseMoves("R U X R'"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("want ErrInvalidNotation, got %v", err)
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	in := "R U2 F' D L2 B'"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves = %q, want %q", got, in)
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 should be its own inverse")
	}
}
