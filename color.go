package cube

import "fmt"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor parses a single-letter color symbol as produced by Color.String.
func ParseColor(s string) (Color, error) {
	switch s {
	case "W":
		return White, nil
	case "Y":
		return Yellow, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	case "R":
		return Red, nil
	case "O":
		return Orange, nil
	default:
		return 0, fmt.Errorf("%w: unknown color %q", ErrMalformedState, s)
	}
}

// Face represents a cube face. The order matches the slot layout of the
// unfolded net: U occupies slots 1-9, L 10-18, F 19-27, R 28-36, B 37-45,
// D 46-54.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceL Face = 1 // Left (Orange)
	FaceF Face = 2 // Front (Green)
	FaceR Face = 3 // Right (Red)
	FaceB Face = 4 // Back (Blue)
	FaceD Face = 5 // Down (Yellow)
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceL:
		return "L"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceL:
		return FaceR
	case FaceR:
		return FaceL
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		return f
	}
}

// Slot is a fixed facelet position on the unfolded net, 1 through 54.
// Within each face slots run in reading order:
//
//	1 2 3
//	4 5 6
//	7 8 9
type Slot int

// NumSlots is the total number of facelet positions.
const NumSlots = 54

// FaceOf returns the face a slot belongs to.
func FaceOf(s Slot) Face {
	return Face((s - 1) / 9)
}

// SolvedColorOf returns the color a slot holds in the solved cube.
func SolvedColorOf(s Slot) Color {
	return FaceOf(s).SolvedColor()
}

// baseSlot returns the first slot of a face.
func baseSlot(f Face) Slot {
	return Slot(f)*9 + 1
}

// centerSlot returns the fixed center slot of a face.
func centerSlot(f Face) Slot {
	return baseSlot(f) + 4
}
