package cube

// Corner and edge pieces are derived groupings of co-located slots, never
// separately allocated objects. A corner groups 3 slots, an edge 2. The
// first slot of each grouping is the reference for orientation arithmetic:
// for corners it is the U or D slot and the remaining two follow clockwise
// as seen from outside the corner; for edges it is the U/D slot on the top
// and bottom layers and the F/B slot on the middle layer.

// cornerPieces lists the 8 corner positions by their slot triples.
var cornerPieces = [8][3]Slot{
	{1, 10, 39},  // ULB
	{3, 37, 30},  // UBR
	{9, 28, 21},  // URF
	{7, 19, 12},  // UFL
	{46, 18, 25}, // DLF
	{48, 27, 34}, // DFR
	{54, 36, 43}, // DRB
	{52, 45, 16}, // DBL
}

// edgePieces lists the 12 edge positions by their slot pairs.
var edgePieces = [12][2]Slot{
	{2, 38},  // UB
	{4, 11},  // UL
	{6, 29},  // UR
	{8, 20},  // UF
	{22, 15}, // FL
	{24, 31}, // FR
	{42, 13}, // BL
	{40, 33}, // BR
	{47, 26}, // DF
	{49, 17}, // DL
	{51, 35}, // DR
	{53, 44}, // DB
}

var cornerNames = [8]string{"ULB", "UBR", "URF", "UFL", "DLF", "DFR", "DRB", "DBL"}

var edgeNames = [12]string{"UB", "UL", "UR", "UF", "FL", "FR", "BL", "BR", "DF", "DL", "DR", "DB"}

// cornerOfSlot and edgeOfSlot map a slot to the piece it belongs to, or -1
// for slots of the other piece class and centers.
var (
	cornerOfSlot [NumSlots + 1]int
	edgeOfSlot   [NumSlots + 1]int
)

func init() {
	for s := range cornerOfSlot {
		cornerOfSlot[s] = -1
		edgeOfSlot[s] = -1
	}
	for i, c := range cornerPieces {
		for _, s := range c {
			cornerOfSlot[s] = i
		}
	}
	for i, e := range edgePieces {
		for _, s := range e {
			edgeOfSlot[s] = i
		}
	}
}

// pieceSolvedAt reports whether every listed slot currently shows its solved
// color, i.e. the piece occupying the position is the right one in the right
// orientation.
func pieceSolvedAt(s State, slots []Slot) bool {
	for _, slot := range slots {
		if s.ColorAt(slot) != SolvedColorOf(slot) {
			return false
		}
	}
	return true
}
