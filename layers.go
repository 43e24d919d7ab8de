package cube

import "fmt"

// First-layer corners and middle-layer edges. Both phases work the same way:
// greedy piece-at-a-time iterative deepening over an alphabet of U-layer
// adjustments plus short trigger macros. Every macro returns the already
// solved first-layer pieces to their slots by the time it completes, so the
// branching factor stays small and the goal closure does the bookkeeping.

// firstLayerCorners are the down-layer corner positions in placement order.
var firstLayerCorners = [4]int{5, 4, 6, 7} // DFR, DLF, DRB, DBL in cornerPieces

// cornerTriggers pairs each down-layer corner with the two trigger macros
// that cycle a corner between its slot and the U layer. The triggers use the
// slot's clockwise side face, so they touch nothing else on the bottom.
var cornerTriggers = map[int][2]string{
	4: {"F U F'", "F U' F'"}, // DLF
	5: {"R U R'", "R U' R'"}, // DFR
	6: {"B U B'", "B U' B'"}, // DRB
	7: {"L U L'", "L U' L'"}, // DBL
}

// middleEdges are the middle-layer edge positions in placement order.
var middleEdges = [4]int{5, 4, 7, 6} // FR, FL, BR, BL in edgePieces

// edgeInserts pairs each middle-layer slot with its two insert macros. Each
// macro takes an edge from the U layer into the slot, approaching from
// either side; applied to a filled slot it ejects the occupant to U.
var edgeInserts = map[int][2]string{
	4: {"U F U' F' U' L' U L", "U' L' U L U F U' F'"}, // FL
	5: {"U R U' R' U' F' U F", "U' F' U F U R U' R'"}, // FR
	6: {"U L U' L' U' B' U B", "U' B' U B U L U' L'"}, // BL
	7: {"U B U' B' U' R' U R", "U' R' U R U B U' B'"}, // BR
}

func crossSlots() []Slot {
	var slots []Slot
	for _, ei := range bottomCrossEdges {
		slots = append(slots, edgePieces[ei][0], edgePieces[ei][1])
	}
	return slots
}

// solveFirstLayerCorners places the four bottom-layer corners on top of a
// solved bottom cross.
func solveFirstLayerCorners(s State) ([]Move, error) {
	ops := uTurnOps()
	for _, pair := range []int{4, 5, 6, 7} {
		ops = append(ops, macroOp(cornerTriggers[pair][0]), macroOp(cornerTriggers[pair][1]))
	}

	var seq []Move
	locked := crossSlots()

	for _, ci := range firstLayerCorners {
		c := cornerPieces[ci]
		target := make([]Slot, len(locked), len(locked)+3)
		copy(target, locked)
		target = append(target, c[0], c[1], c[2])

		part, ok := searchOperators(s, ops, 7, func(st State) bool {
			return pieceSolvedAt(st, target)
		})
		if !ok {
			return nil, fmt.Errorf("%w: first layer corner %s", ErrPhaseUnreachable, cornerNames[ci])
		}
		s = ApplySequence(s, part)
		seq = append(seq, part...)
		locked = target
	}
	return seq, nil
}

// solveMiddleEdges places the four middle-layer edges on top of a solved
// first layer.
func solveMiddleEdges(s State) ([]Move, error) {
	ops := uTurnOps()
	for _, slot := range []int{4, 5, 6, 7} {
		ops = append(ops, macroOp(edgeInserts[slot][0]), macroOp(edgeInserts[slot][1]))
	}

	locked := crossSlots()
	for _, ci := range firstLayerCorners {
		c := cornerPieces[ci]
		locked = append(locked, c[0], c[1], c[2])
	}

	var seq []Move
	for _, ei := range middleEdges {
		e := edgePieces[ei]
		target := make([]Slot, len(locked), len(locked)+2)
		copy(target, locked)
		target = append(target, e[0], e[1])

		part, ok := searchOperators(s, ops, 5, func(st State) bool {
			return pieceSolvedAt(st, target)
		})
		if !ok {
			return nil, fmt.Errorf("%w: middle edge %s", ErrPhaseUnreachable, edgeNames[ei])
		}
		s = ApplySequence(s, part)
		seq = append(seq, part...)
		locked = target
	}
	return seq, nil
}
