package cube

// ViolationKind identifies one failed reachability check.
type ViolationKind int

const (
	// ColorCountViolation: some color does not appear exactly 9 times.
	ColorCountViolation ViolationKind = iota
	// ParityViolation: the piece-level permutation is odd, or the stickers
	// cannot be decomposed into a piece permutation at all (mixed piece
	// composition, displaced centers, duplicated occupants).
	ParityViolation
	// CornerOrientationViolation: the corner twist sum is not 0 mod 3.
	CornerOrientationViolation
	// EdgeOrientationViolation: the edge flip sum is not 0 mod 2.
	EdgeOrientationViolation
)

func (k ViolationKind) String() string {
	switch k {
	case ColorCountViolation:
		return "color_count"
	case ParityViolation:
		return "parity"
	case CornerOrientationViolation:
		return "corner_orientation"
	case EdgeOrientationViolation:
		return "edge_orientation"
	default:
		return "unknown"
	}
}

// Validation is the result of checking a state against the group-theoretic
// reachability invariants. A state is solvable iff no check failed. The raw
// sums are exposed for the serialization interface.
type Validation struct {
	Solvable   bool
	Violations []ViolationKind

	ColorCounts    [6]int // indexed by Color
	EvenParity     bool
	CornerTwistSum int // mod 3
	EdgeFlipSum    int // mod 2
}

// Validate runs every reachability check against the state and reports all
// violations; no check short-circuits another. It is read-only and safe for
// concurrent use.
func Validate(s State) Validation {
	v := Validation{}

	// Color counts: 9 stickers of each of the 6 colors.
	colorsOK := true
	for slot := Slot(1); slot <= NumSlots; slot++ {
		c := s.ColorAt(slot)
		if int(c) < len(v.ColorCounts) {
			v.ColorCounts[c]++
		}
	}
	for _, n := range v.ColorCounts {
		if n != 9 {
			colorsOK = false
		}
	}
	if !colorsOK {
		v.Violations = append(v.Violations, ColorCountViolation)
	}

	if even, ok := piecePermutationParity(s); !ok || !even {
		v.Violations = append(v.Violations, ParityViolation)
	} else {
		v.EvenParity = true
	}

	cornerSum, cornersOK := cornerTwistSum(s)
	v.CornerTwistSum = cornerSum
	if !cornersOK || cornerSum != 0 {
		v.Violations = append(v.Violations, CornerOrientationViolation)
	}

	edgeSum, edgesOK := edgeFlipSum(s)
	v.EdgeFlipSum = edgeSum
	if !edgesOK || edgeSum != 0 {
		v.Violations = append(v.Violations, EdgeOrientationViolation)
	}

	v.Solvable = len(v.Violations) == 0
	return v
}

// piecePermutationParity derives the permutation of corner and edge pieces
// from sticker provenance and reports whether its combined sign is even.
// The occupant of a position is the home piece of the sticker sitting on the
// position's reference slot; on any state that decomposes into whole pieces
// this is exactly the piece occupying the position. ok is false when no
// piece permutation exists: a reference slot holds a sticker of the wrong
// piece class, a center is displaced, or two positions claim the same piece.
func piecePermutationParity(s State) (even, ok bool) {
	// Centers are fixed points of every generator; a displaced center is
	// unreachable no matter what the pieces do.
	for f := FaceU; f <= FaceD; f++ {
		if s.Sticker(centerSlot(f)).OriginalSlot != centerSlot(f) {
			return false, false
		}
	}

	var cornerPerm [8]int
	var cornerSeen [8]bool
	for i, c := range cornerPieces {
		home := cornerOfSlot[s.Sticker(c[0]).OriginalSlot]
		if home < 0 || cornerSeen[home] {
			return false, false
		}
		cornerSeen[home] = true
		cornerPerm[i] = home
	}

	var edgePerm [12]int
	var edgeSeen [12]bool
	for i, e := range edgePieces {
		home := edgeOfSlot[s.Sticker(e[0]).OriginalSlot]
		if home < 0 || edgeSeen[home] {
			return false, false
		}
		edgeSeen[home] = true
		edgePerm[i] = home
	}

	transpositions := permTranspositions(cornerPerm[:]) + permTranspositions(edgePerm[:])
	return transpositions%2 == 0, true
}

// permTranspositions counts transpositions via cycle decomposition.
func permTranspositions(perm []int) int {
	visited := make([]bool, len(perm))
	count := 0
	for i := range perm {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			length++
		}
		count += length - 1
	}
	return count
}

// colorClass groups colors by axis: 0 for the U/D pair, 1 for F/B, 2 for L/R.
func colorClass(c Color) int {
	switch c {
	case White, Yellow:
		return 0
	case Green, Blue:
		return 1
	default:
		return 2
	}
}

// cornerTwistSum computes the sum over all 8 corners of the cyclic rotation
// of the piece relative to its solved layout, mod 3. A corner's twist is the
// index within its clockwise slot triple where the U/D-colored sticker sits.
// ok is false when some triple does not hold exactly one U/D sticker.
func cornerTwistSum(s State) (sum int, ok bool) {
	ok = true
	for _, c := range cornerPieces {
		twist := -1
		for j, slot := range c {
			if colorClass(s.ColorAt(slot)) == 0 {
				if twist >= 0 {
					ok = false
				}
				twist = j
			}
		}
		if twist < 0 {
			ok = false
			continue
		}
		sum += twist
	}
	return sum % 3, ok
}

// edgeFlipSum computes the sum over all 12 edges of the flip offset, mod 2.
// An edge is unflipped when its reference sticker (U/D color if present,
// else F/B) sits on the position's reference slot. ok is false when a pair's
// two stickers share a color axis and no reference exists.
func edgeFlipSum(s State) (sum int, ok bool) {
	ok = true
	for _, e := range edgePieces {
		cp := colorClass(s.ColorAt(e[0]))
		cq := colorClass(s.ColorAt(e[1]))
		if cp == cq {
			ok = false
			continue
		}
		if cp > cq {
			sum++
		}
	}
	return sum % 2, ok
}
