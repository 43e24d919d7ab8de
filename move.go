package cube

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents one of the 18 generators: a face and a turn.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the generator whose permutation is the group inverse.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first unrecognized token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: each move inverted,
// in reverse order.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
