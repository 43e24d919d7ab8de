package cube

import (
	"errors"
	"testing"
)

func TestSolveSolvedState(t *testing.T) {
	sol, err := Solve(Solved())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Len() != 0 {
		t.Errorf("solved input should need no moves, got %s", sol)
	}
}

func TestSolveScrambles(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		s, scramble := NewScrambler(seed).ScrambledState(25)
		sol, err := Solve(s)
		if err != nil {
			t.Fatalf("seed %d (%s): %v", seed, FormatMoves(scramble), err)
		}
		if !ApplySequence(s, sol.Moves).IsSolved() {
			t.Fatalf("seed %d: solution does not solve the cube", seed)
		}
		t.Logf("seed %d: %d moves, %d optimized", seed, sol.Len(), len(Optimize(sol.Moves)))
	}
}

func TestSolveSingleMove(t *testing.T) {
	s := Apply(Solved(), R)
	sol, err := Solve(s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ApplySequence(s, sol.Moves).IsSolved() {
		t.Fatal("solution does not solve the cube")
	}
}

func TestSolveReportsPhases(t *testing.T) {
	s, _ := NewScrambler(5).ScrambledState(25)
	sol, err := Solve(s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Phases) != len(solvePhases) {
		t.Fatalf("got %d phases, want %d", len(sol.Phases), len(solvePhases))
	}
	total := 0
	for _, p := range sol.Phases {
		total += len(p.Moves)
	}
	if total != sol.Len() {
		t.Errorf("phase moves sum to %d, solution has %d", total, sol.Len())
	}
}

func TestSolveRejectsUnsolvable(t *testing.T) {
	s := Solved()
	e := edgePieces[0]
	s.stickers[e[0]-1], s.stickers[e[1]-1] = s.stickers[e[1]-1], s.stickers[e[0]-1]
	_, err := Solve(s)
	if !errors.Is(err, ErrUnsolvableState) {
		t.Errorf("want ErrUnsolvableState, got %v", err)
	}
}

func TestOptimizedSolutionStillSolves(t *testing.T) {
	s, _ := NewScrambler(8).ScrambledState(25)
	sol, err := Solve(s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	opt := Optimize(sol.Moves)
	if len(opt) > sol.Len() {
		t.Errorf("optimizer grew the solution: %d > %d", len(opt), sol.Len())
	}
	if !ApplySequence(s, opt).IsSolved() {
		t.Fatal("optimized solution does not solve the cube")
	}
}
