package cube

import "testing"

func hasViolation(v Validation, k ViolationKind) bool {
	for _, got := range v.Violations {
		if got == k {
			return true
		}
	}
	return false
}

func TestValidateSolved(t *testing.T) {
	v := Validate(Solved())
	if !v.Solvable {
		t.Fatalf("solved state should be solvable, violations %v", v.Violations)
	}
	if !v.EvenParity || v.CornerTwistSum != 0 || v.EdgeFlipSum != 0 {
		t.Errorf("solved state invariants: parity=%v twist=%d flip=%d", v.EvenParity, v.CornerTwistSum, v.EdgeFlipSum)
	}
	for c, n := range v.ColorCounts {
		if n != 9 {
			t.Errorf("color %v count = %d, want 9", Color(c), n)
		}
	}
}

func TestValidateScrambled(t *testing.T) {
	s, _ := NewScrambler(7).ScrambledState(30)
	v := Validate(s)
	if !v.Solvable {
		t.Errorf("any state reached by moves should be solvable, violations %v", v.Violations)
	}
}

// Swapping two same-colored stickers keeps every face looking plausible but
// makes the piece permutation odd.
func TestValidateDetectsSameColorSwap(t *testing.T) {
	s := Solved()
	s.stickers[1], s.stickers[3] = s.stickers[3], s.stickers[1] // UB and UL white stickers
	v := Validate(s)
	if v.Solvable {
		t.Fatal("swapped-sticker state should be unsolvable")
	}
	if !hasViolation(v, ParityViolation) {
		t.Errorf("want ParityViolation, got %v", v.Violations)
	}
	if hasViolation(v, ColorCountViolation) || hasViolation(v, EdgeOrientationViolation) {
		t.Errorf("only parity should fail, got %v", v.Violations)
	}
}

// Twisting a single corner in place is the classic unsolvable state a
// dropped physical cube produces.
func TestValidateDetectsTwistedCorner(t *testing.T) {
	s := Solved()
	c := cornerPieces[0] // ULB
	a, b, d := s.stickers[c[0]-1], s.stickers[c[1]-1], s.stickers[c[2]-1]
	s.stickers[c[1]-1], s.stickers[c[2]-1], s.stickers[c[0]-1] = a, b, d
	v := Validate(s)
	if v.Solvable {
		t.Fatal("twisted-corner state should be unsolvable")
	}
	if !hasViolation(v, CornerOrientationViolation) {
		t.Errorf("want CornerOrientationViolation, got %v", v.Violations)
	}
	if hasViolation(v, ParityViolation) {
		t.Errorf("twist keeps the piece in place, parity should pass: %v", v.Violations)
	}
	if v.CornerTwistSum == 0 {
		t.Error("twist sum should be nonzero")
	}
}

func TestValidateDetectsFlippedEdge(t *testing.T) {
	s := Solved()
	e := edgePieces[0] // UB
	s.stickers[e[0]-1], s.stickers[e[1]-1] = s.stickers[e[1]-1], s.stickers[e[0]-1]
	v := Validate(s)
	if v.Solvable {
		t.Fatal("flipped-edge state should be unsolvable")
	}
	if !hasViolation(v, EdgeOrientationViolation) {
		t.Errorf("want EdgeOrientationViolation, got %v", v.Violations)
	}
	if v.EdgeFlipSum != 1 {
		t.Errorf("flip sum = %d, want 1", v.EdgeFlipSum)
	}
	if hasViolation(v, ParityViolation) {
		t.Errorf("flip keeps the piece in place, parity should pass: %v", v.Violations)
	}
}

// A repaint that leaves 8 white and 10 yellow stickers fails the color count
// and, because the duplicated sticker breaks provenance, parity as well. All
// checks must still be reported together.
func TestValidateReportsAllViolations(t *testing.T) {
	s := Solved()
	s.stickers[1] = Sticker{Color: Yellow, OriginalSlot: 47} // slot 2 repainted
	v := Validate(s)
	if v.Solvable {
		t.Fatal("repainted state should be unsolvable")
	}
	if !hasViolation(v, ColorCountViolation) {
		t.Errorf("want ColorCountViolation, got %v", v.Violations)
	}
	if !hasViolation(v, ParityViolation) {
		t.Errorf("want ParityViolation alongside the color count, got %v", v.Violations)
	}
	if v.ColorCounts[White] != 8 || v.ColorCounts[Yellow] != 10 {
		t.Errorf("counts: white=%d yellow=%d, want 8 and 10", v.ColorCounts[White], v.ColorCounts[Yellow])
	}
}

func TestValidateDetectsDisplacedCenters(t *testing.T) {
	s := Solved()
	u, d := centerSlot(FaceU), centerSlot(FaceD)
	s.stickers[u-1], s.stickers[d-1] = s.stickers[d-1], s.stickers[u-1]
	v := Validate(s)
	if v.Solvable {
		t.Fatal("swapped centers should be unsolvable")
	}
	if !hasViolation(v, ParityViolation) {
		t.Errorf("want ParityViolation, got %v", v.Violations)
	}
}
