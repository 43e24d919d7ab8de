package cube

import "fmt"

// PhaseResult records the moves one solving phase contributed.
type PhaseResult struct {
	Name  string
	Moves []Move
}

// Solution is a verified sequence of moves that takes the input state to the
// solved state, with the per-phase breakdown kept for reporting. The raw
// sequence is layer-by-layer output; run it through Optimize to strip the
// redundant turns the phase boundaries produce.
type Solution struct {
	Moves  []Move
	Phases []PhaseResult
}

// Len returns the total move count.
func (sol Solution) Len() int {
	return len(sol.Moves)
}

func (sol Solution) String() string {
	return FormatMoves(sol.Moves)
}

type phaseFunc struct {
	name string
	run  func(State) ([]Move, error)
}

var solvePhases = []phaseFunc{
	{"bottom cross", solveBottomCross},
	{"first layer corners", solveFirstLayerCorners},
	{"middle edges", solveMiddleEdges},
	{"top edge orientation", orientTopEdges},
	{"top edge permutation", permuteTopEdges},
	{"top corner permutation", permuteTopCorners},
	{"top corner orientation", orientTopCorners},
}

// Solve computes a layer-by-layer solution for the given state.
//
// The state is validated first; an unsolvable state is rejected with
// ErrUnsolvableState naming the violated invariants, and no search runs. On
// a solvable state every phase is guaranteed to terminate, and the returned
// sequence has been re-applied to the input as a final check before being
// handed back.
func Solve(s State) (Solution, error) {
	if v := Validate(s); !v.Solvable {
		return Solution{}, fmt.Errorf("%w: violations %v", ErrUnsolvableState, v.Violations)
	}

	var sol Solution
	cur := s
	for _, p := range solvePhases {
		moves, err := p.run(cur)
		if err != nil {
			return Solution{}, fmt.Errorf("%s: %w", p.name, err)
		}
		cur = ApplySequence(cur, moves)
		sol.Moves = append(sol.Moves, moves...)
		sol.Phases = append(sol.Phases, PhaseResult{Name: p.name, Moves: moves})
	}

	if !ApplySequence(s, sol.Moves).IsSolved() {
		return Solution{}, fmt.Errorf("%w: solution failed verification", ErrPhaseUnreachable)
	}
	return sol, nil
}
