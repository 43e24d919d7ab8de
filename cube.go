package cube

import (
	"fmt"
	"strings"
)

// Sticker is the colored unit occupying a slot. OriginalSlot is the slot the
// sticker occupied in the solved cube; it never changes once assigned, so a
// sticker carries its provenance through any number of moves. The sticker's
// current slot is implicit: its index in the State.
type Sticker struct {
	Color        Color
	OriginalSlot Slot
}

// State is an immutable arrangement of the 54 stickers, indexed by slot.
// The zero value is not meaningful; construct states with Solved or
// NewFromStickers, or derive them with Apply and ApplySequence.
//
// State is a comparable value type: copying it is cheap and two states are
// equal exactly when every slot holds the same sticker.
type State struct {
	stickers [NumSlots]Sticker
}

// Solved returns the canonical solved state: every sticker sits in its
// original slot with the face's solved color.
func Solved() State {
	var s State
	for i := range s.stickers {
		slot := Slot(i + 1)
		s.stickers[i] = Sticker{Color: SolvedColorOf(slot), OriginalSlot: slot}
	}
	return s
}

// NewFromStickers builds a State from 54 stickers ordered by slot, as produced
// by an external loader. The input is rejected with ErrMalformedState when the
// original slots do not form a permutation of 1..54 or a sticker's color does
// not match the solved coloring of its original slot. The first offending
// invariant is named in the error.
func NewFromStickers(stickers []Sticker) (State, error) {
	if len(stickers) != NumSlots {
		return State{}, fmt.Errorf("%w: got %d stickers, want %d", ErrMalformedState, len(stickers), NumSlots)
	}

	var seen [NumSlots + 1]bool
	for i, st := range stickers {
		slot := Slot(i + 1)
		if st.OriginalSlot < 1 || st.OriginalSlot > NumSlots {
			return State{}, fmt.Errorf("%w: slot %d has original slot %d outside 1..54", ErrMalformedState, slot, st.OriginalSlot)
		}
		if seen[st.OriginalSlot] {
			return State{}, fmt.Errorf("%w: original slot %d appears more than once", ErrMalformedState, st.OriginalSlot)
		}
		seen[st.OriginalSlot] = true
	}

	for i, st := range stickers {
		slot := Slot(i + 1)
		if want := SolvedColorOf(st.OriginalSlot); st.Color != want {
			return State{}, fmt.Errorf("%w: slot %d color %s inconsistent with original slot %d (want %s)",
				ErrMalformedState, slot, st.Color, st.OriginalSlot, want)
		}
	}

	var s State
	copy(s.stickers[:], stickers)
	return s, nil
}

// Sticker returns the sticker currently at the given slot.
func (s State) Sticker(slot Slot) Sticker {
	return s.stickers[slot-1]
}

// ColorAt returns the color currently showing at the given slot.
func (s State) ColorAt(slot Slot) Color {
	return s.stickers[slot-1].Color
}

// Stickers returns a copy of all 54 stickers ordered by slot, for
// serialization collaborators.
func (s State) Stickers() []Sticker {
	out := make([]Sticker, NumSlots)
	copy(out, s.stickers[:])
	return out
}

// Equal reports whether two states hold identical stickers in every slot.
func (s State) Equal(o State) bool {
	return s == o
}

// IsSolved reports whether every sticker sits in its original slot.
func (s State) IsSolved() bool {
	for i, st := range s.stickers {
		if st.OriginalSlot != Slot(i+1) {
			return false
		}
	}
	return true
}

// String returns a text rendering of the cube net:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	...
func (s State) String() string {
	var b strings.Builder

	writeRow := func(f Face, row int) {
		base := baseSlot(f)
		for col := 0; col < 3; col++ {
			b.WriteString(s.ColorAt(base + Slot(row*3+col)).String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// Debug returns a short debug string.
func (s State) Debug() string {
	return fmt.Sprintf("Solved: %v", s.IsSolved())
}
