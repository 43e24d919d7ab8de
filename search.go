package cube

// Iterative-deepening search over a small operator alphabet. Each solving
// phase picks its own alphabet: either raw face turns or short macro
// sequences that are known to leave the already-solved portion of the cube
// intact at the end of the macro. Keeping the alphabets small is what makes
// plain depth-first iteration fast enough without heuristics.

// operator is one search step: a label for diagnostics and the move
// sequence it expands to. Single face turns set singleTurn so the search can
// prune redundant neighbors; macros never prune.
type operator struct {
	label      string
	moves      []Move
	face       Face
	singleTurn bool
}

func turnOp(m Move) operator {
	return operator{label: m.Notation(), moves: []Move{m}, face: m.Face, singleTurn: true}
}

func macroOp(notation string) operator {
	moves, err := ParseMoves(notation)
	if err != nil {
		panic("cube: bad macro " + notation)
	}
	return operator{label: notation, moves: moves}
}

// uTurnOps is the shared U-layer adjustment alphabet for last-layer phases.
func uTurnOps() []operator {
	return []operator{turnOp(U), turnOp(UPrime), turnOp(U2)}
}

// allTurnOps is the full 18-generator alphabet.
func allTurnOps() []operator {
	ops := make([]operator, 0, len(AllMoves))
	for _, m := range AllMoves {
		ops = append(ops, turnOp(m))
	}
	return ops
}

// searchOperators runs iterative deepening from start and returns the
// shortest operator expansion (in operators, not moves) that reaches a state
// satisfying goal, up to maxDepth operators. Returns ok=false when no
// sequence within the bound reaches the goal.
func searchOperators(start State, ops []operator, maxDepth int, goal func(State) bool) ([]Move, bool) {
	if goal(start) {
		return nil, true
	}
	for depth := 1; depth <= maxDepth; depth++ {
		if seq, ok := dfsOperators(start, ops, depth, -1, goal); ok {
			return seq, true
		}
	}
	return nil, false
}

func dfsOperators(s State, ops []operator, depth, prevFace int, goal func(State) bool) ([]Move, bool) {
	for _, op := range ops {
		if op.singleTurn && prevFace >= 0 {
			pf := Face(prevFace)
			// Two turns of the same face collapse into one generator, and
			// opposite-face turns commute, so only one ordering is explored.
			if op.face == pf {
				continue
			}
			if op.face.Opposite() == pf && op.face > pf {
				continue
			}
		}
		next := ApplySequence(s, op.moves)
		if depth == 1 {
			if goal(next) {
				return append([]Move(nil), op.moves...), true
			}
			continue
		}
		nextFace := -1
		if op.singleTurn {
			nextFace = int(op.face)
		}
		if tail, ok := dfsOperators(next, ops, depth-1, nextFace, goal); ok {
			return append(append([]Move(nil), op.moves...), tail...), true
		}
	}
	return nil, false
}
