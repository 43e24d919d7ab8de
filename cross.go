package cube

import "fmt"

// bottomCrossEdges are the four down-layer edge positions, in the order the
// cross phase places them.
var bottomCrossEdges = [4]int{8, 9, 10, 11} // DF, DL, DR, DB in edgePieces

// solveBottomCross places and orients the four bottom-layer edges, one at a
// time, searching the full generator alphabet. Each sub-search may disturb
// previously placed edges mid-sequence but must leave them solved at the
// end; that constraint is what the goal closure encodes.
func solveBottomCross(s State) ([]Move, error) {
	ops := allTurnOps()
	var seq []Move
	var locked []Slot

	for _, ei := range bottomCrossEdges {
		e := edgePieces[ei]
		target := make([]Slot, len(locked), len(locked)+2)
		copy(target, locked)
		target = append(target, e[0], e[1])

		part, ok := searchOperators(s, ops, 7, func(st State) bool {
			return pieceSolvedAt(st, target)
		})
		if !ok {
			return nil, fmt.Errorf("%w: bottom cross edge %s", ErrPhaseUnreachable, edgeNames[ei])
		}
		s = ApplySequence(s, part)
		seq = append(seq, part...)
		locked = target
	}
	return seq, nil
}
