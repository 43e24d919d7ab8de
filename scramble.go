package cube

import "math/rand"

// Scrambler generates random move sequences. It is deterministic for a
// given seed, so scrambles can be reproduced from logs. Not safe for
// concurrent use; give each goroutine its own Scrambler.
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler returns a Scrambler seeded with the given value.
func NewScrambler(seed int64) *Scrambler {
	return &Scrambler{rng: rand.New(rand.NewSource(seed))}
}

// Scramble generates a sequence of length random moves. Consecutive moves
// never turn the same face, and a face is never revisited with only its
// opposite face in between (R L R), so no move can cancel or merge with an
// earlier one.
func (sc *Scrambler) Scramble(length int) []Move {
	turns := [3]Turn{CW, CCW, Double}
	moves := make([]Move, 0, length)
	for len(moves) < length {
		f := Face(sc.rng.Intn(6))
		if n := len(moves); n > 0 {
			if f == moves[n-1].Face {
				continue
			}
			if n > 1 && moves[n-2].Face == f && moves[n-1].Face == f.Opposite() {
				continue
			}
		}
		moves = append(moves, Move{Face: f, Turn: turns[sc.rng.Intn(3)]})
	}
	return moves
}

// ScrambledState applies a fresh scramble of the given length to the solved
// state and returns both the state and the moves that produced it.
func (sc *Scrambler) ScrambledState(length int) (State, []Move) {
	moves := sc.Scramble(length)
	return ApplySequence(Solved(), moves), moves
}
