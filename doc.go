// Package cube models a 3x3 Rubik's Cube as a tracked permutation of 54
// labeled facelets, validates whether an arrangement is physically reachable,
// and searches for move sequences that return a reachable state to solved.
//
// # Data Model
//
// Every facelet position on the unfolded net is a Slot in [1, 54], nine per
// face in reading order: U occupies 1-9, L 10-18, F 19-27, R 28-36, B 37-45,
// and D 46-54. A Sticker records its color and the slot it occupied in the
// solved cube, so a State is a permutation with provenance rather than a bare
// color grid. States are immutable values: applying a move returns a new
// State and never touches the input.
//
// # Quick Start
//
// Scramble and solve a cube:
//
//	scrambler := cube.NewScrambler(time.Now().UnixNano())
//	scramble := scrambler.Scramble(20)
//	state := cube.ApplySequence(cube.Solved(), scramble)
//
//	solution, err := cube.Solve(state)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	optimized := cube.Optimize(solution.Moves)
//
//	fmt.Println(cube.FormatMoves(optimized))
//	fmt.Println(cube.ApplySequence(state, optimized).IsSolved()) // true
//
// # Predefined Moves
//
// The package provides the 18 generators as predefined values:
//
//	cube.R      // Right clockwise
//	cube.RPrime // Right counter-clockwise
//	cube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// Moves parse from and print to standard notation ("R", "U'", "F2").
//
// # Validation
//
// Validate classifies a state as solvable or not by the group-theoretic
// invariants of the cube: piece permutation parity, corner twist sum mod 3,
// edge flip sum mod 2, and color counts. Solve refuses states that fail
// validation; a validated state that a solve phase cannot reach its sub-goal
// on indicates an engine defect, not an unsolvable cube.
package cube
