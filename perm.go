package cube

// Move application as pure permutations. Each clockwise quarter turn is a
// fixed permutation of 20 slots, precomputed from its disjoint 4-cycle
// decomposition: two cycles on the turning face (corner slots and edge slots)
// and three cycles across the adjacent faces' boundary rows. Centers are
// fixed points and never appear in a cycle. Counter-clockwise turns are the
// inverse permutation; half turns are the square.

// cycle is a 4-cycle of slots: the sticker at c[0] moves to c[1], c[1] to
// c[2], c[2] to c[3], and c[3] back to c[0].
type cycle [4]Slot

// moveCycles lists the 4-cycle decomposition of each face's clockwise
// quarter turn, indexed by Face.
var moveCycles = [6][5]cycle{
	FaceU: {
		{1, 3, 9, 7}, // U corners
		{2, 6, 8, 4}, // U edges
		{19, 10, 37, 28},
		{20, 11, 38, 29},
		{21, 12, 39, 30},
	},
	FaceL: {
		{10, 12, 18, 16}, // L corners
		{11, 15, 17, 13}, // L edges
		{1, 19, 46, 45},
		{4, 22, 49, 42},
		{7, 25, 52, 39},
	},
	FaceF: {
		{19, 21, 27, 25}, // F corners
		{20, 24, 26, 22}, // F edges
		{7, 28, 48, 18},
		{8, 31, 47, 15},
		{9, 34, 46, 12},
	},
	FaceR: {
		{28, 30, 36, 34}, // R corners
		{29, 33, 35, 31}, // R edges
		{3, 43, 48, 21},
		{6, 40, 51, 24},
		{9, 37, 54, 27},
	},
	FaceB: {
		{37, 39, 45, 43}, // B corners
		{38, 42, 44, 40}, // B edges
		{3, 10, 52, 36},
		{2, 13, 53, 33},
		{1, 16, 54, 30},
	},
	FaceD: {
		{46, 48, 54, 52}, // D corners
		{47, 51, 53, 49}, // D edges
		{25, 34, 43, 16},
		{26, 35, 44, 17},
		{27, 36, 45, 18},
	},
}

// permTables[face][ti][src-1] is the destination slot of the sticker at src,
// where ti indexes CW, CCW, Double.
var permTables [6][3][NumSlots]Slot

func turnIndex(t Turn) int {
	switch t {
	case CW:
		return 0
	case CCW:
		return 1
	default:
		return 2
	}
}

func init() {
	for f := FaceU; f <= FaceD; f++ {
		cw := &permTables[f][0]
		for i := range cw {
			cw[i] = Slot(i + 1)
		}
		for _, c := range moveCycles[f] {
			cw[c[0]-1] = c[1]
			cw[c[1]-1] = c[2]
			cw[c[2]-1] = c[3]
			cw[c[3]-1] = c[0]
		}

		ccw := &permTables[f][1]
		for src, dst := range cw {
			ccw[dst-1] = Slot(src + 1)
		}

		dbl := &permTables[f][2]
		for src, dst := range cw {
			dbl[src] = cw[dst-1]
		}
	}
}

// Apply returns the state produced by applying a single move. The input
// state is never mutated.
func Apply(s State, m Move) State {
	perm := &permTables[m.Face][turnIndex(m.Turn)]
	var out State
	for i, st := range s.stickers {
		out.stickers[perm[i]-1] = st
	}
	return out
}

// ApplySequence folds Apply left to right over moves. The empty sequence
// returns a state equal to the input.
func ApplySequence(s State, moves []Move) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}
