package cube

import "fmt"

// Last layer in four steps, each over an alphabet whose macros preserve the
// first two layers: orient the top edges, permute the top edges, permute the
// top corners, orient the top corners. The final step is not a search; it is
// the fixed repeat-until-done procedure built on R' D' R D.

// topEdges and topCorners index the U-layer pieces in pieces.go order.
var (
	topEdges   = [4]int{0, 1, 2, 3} // UB, UL, UR, UF
	topCorners = [4]int{0, 1, 2, 3} // ULB, UBR, URF, UFL
)

// orientTopEdges makes the top cross: the U-face color showing on all four
// U-face edge slots.
func orientTopEdges(s State) ([]Move, error) {
	ops := append(uTurnOps(), macroOp("F R U R' U' F'"))
	seq, ok := searchOperators(s, ops, 8, func(st State) bool {
		top := FaceU.SolvedColor()
		for _, ei := range topEdges {
			if st.ColorAt(edgePieces[ei][0]) != top {
				return false
			}
		}
		return true
	})
	if !ok {
		return nil, fmt.Errorf("%w: top edge orientation", ErrPhaseUnreachable)
	}
	return seq, nil
}

// permuteTopEdges solves all four top edges outright. The Sune macro cycles
// three oriented top edges without flipping any, so combined with U turns it
// reaches every edge arrangement this phase can see.
func permuteTopEdges(s State) ([]Move, error) {
	ops := append(uTurnOps(), macroOp("R U R' U R U2 R'"))
	seq, ok := searchOperators(s, ops, 8, func(st State) bool {
		for _, ei := range topEdges {
			if !pieceSolvedAt(st, edgePieces[ei][:]) {
				return false
			}
		}
		return true
	})
	if !ok {
		return nil, fmt.Errorf("%w: top edge permutation", ErrPhaseUnreachable)
	}
	return seq, nil
}

// cornerInPosition reports whether the corner position holds the piece that
// belongs there, in any orientation: the three colors showing match the
// three solved colors as a multiset.
func cornerInPosition(s State, c [3]Slot) bool {
	var have, want [6]int
	for _, slot := range c {
		have[s.ColorAt(slot)]++
		want[SolvedColorOf(slot)]++
	}
	return have == want
}

// permuteTopCorners moves every top corner to its home position, orientation
// aside, without touching the solved edges. The alphabet is the four
// rotations of the Niklas commutator, a pure corner three-cycle.
func permuteTopCorners(s State) ([]Move, error) {
	ops := []operator{
		macroOp("U R U' L' U R' U' L"),
		macroOp("U B U' F' U B' U' F"),
		macroOp("U L U' R' U L' U' R"),
		macroOp("U F U' B' U F' U' B"),
	}
	seq, ok := searchOperators(s, ops, 4, func(st State) bool {
		for _, ci := range topCorners {
			if !cornerInPosition(st, cornerPieces[ci]) {
				return false
			}
		}
		for _, ei := range topEdges {
			if !pieceSolvedAt(st, edgePieces[ei][:]) {
				return false
			}
		}
		return true
	})
	if !ok {
		return nil, fmt.Errorf("%w: top corner permutation", ErrPhaseUnreachable)
	}
	return seq, nil
}

// orientTopCorners twists the positioned top corners in place: with the
// working corner held at URF, repeat R' D' R D until its U sticker shows the
// top color, then turn U to bring the next corner around. The intermediate
// states scramble the lower layers; the procedure restores them exactly when
// the last corner is done, so the loop runs until the whole cube is solved.
func orientTopCorners(s State) ([]Move, error) {
	twist := []Move{RPrime, DPrime, R, D}
	urfTop := cornerPieces[2][0] // slot 9

	var seq []Move
	for i := 0; i < 120 && !s.IsSolved(); i++ {
		if s.ColorAt(urfTop) != FaceU.SolvedColor() {
			s = ApplySequence(s, twist)
			seq = append(seq, twist...)
		} else {
			s = Apply(s, U)
			seq = append(seq, U)
		}
	}
	if !s.IsSolved() {
		return nil, fmt.Errorf("%w: top corner orientation", ErrPhaseUnreachable)
	}
	return seq, nil
}
