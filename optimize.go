package cube

// Optimize returns an equivalent move sequence with redundant turns
// removed: adjacent turns of the same face are merged (R R -> R2,
// R R' -> nothing), and turns of the same face separated only by a turn of
// the opposite face are merged too, since opposite faces commute
// (R L R' -> L). Merging cascades, so the result contains no further
// opportunities and Optimize is idempotent. The input slice is not modified.
func Optimize(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		out = pushMerged(out, m)
	}
	return out
}

// pushMerged appends m to out, folding it into the tail where possible.
func pushMerged(out []Move, m Move) []Move {
	n := len(out)
	if n > 0 && out[n-1].Face == m.Face {
		merged, ok := mergeTurns(out[n-1], m)
		out = out[:n-1]
		if ok {
			out = pushMerged(out, merged)
		}
		return out
	}
	if n > 1 && out[n-1].Face == m.Face.Opposite() && out[n-2].Face == m.Face {
		mid := out[n-1]
		merged, ok := mergeTurns(out[n-2], m)
		out = out[:n-2]
		if ok {
			out = pushMerged(out, merged)
		}
		return pushMerged(out, mid)
	}
	return append(out, m)
}

// mergeTurns combines two turns of the same face. ok is false when they
// cancel outright.
func mergeTurns(a, b Move) (Move, bool) {
	switch (quarterTurns(a.Turn) + quarterTurns(b.Turn)) % 4 {
	case 0:
		return Move{}, false
	case 1:
		return Move{Face: a.Face, Turn: CW}, true
	case 2:
		return Move{Face: a.Face, Turn: Double}, true
	default:
		return Move{Face: a.Face, Turn: CCW}, true
	}
}

// quarterTurns maps a Turn to its clockwise quarter-turn count mod 4.
func quarterTurns(t Turn) int {
	if t == CCW {
		return 3
	}
	return int(t)
}
