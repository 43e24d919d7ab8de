// Package statefile reads and writes cube states as JSON documents. The
// document is the exchange format between runs of the CLI: a versioned list
// of sticker entries, the validator's verdict at save time, and optionally
// the move sequence that produced the state.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"

	cube "github.com/PlayWeird/cube-combinatorics"
)

// FormatVersion is the document version this package writes and accepts.
const FormatVersion = "2.0"

// Document is the serialized form of a cube state.
type Document struct {
	FormatVersion string          `json:"format_version"`
	Stickers      []StickerEntry  `json:"stickers"`
	Validation    *ValidationInfo `json:"validation,omitempty"`
	MoveSequence  string          `json:"move_sequence,omitempty"`
}

// StickerEntry is one facelet: the slot it occupies, the color it shows, and
// the slot it occupied in the solved cube.
type StickerEntry struct {
	Slot         int    `json:"slot"`
	Color        string `json:"color"`
	OriginalSlot int    `json:"original_slot"`
}

// ValidationInfo is the validator summary embedded in a saved document. It
// is informational; loading always re-validates.
type ValidationInfo struct {
	Solvable       bool     `json:"solvable"`
	Violations     []string `json:"violations,omitempty"`
	EvenParity     bool     `json:"even_parity"`
	CornerTwistSum int      `json:"corner_twist_sum"`
	EdgeFlipSum    int      `json:"edge_flip_sum"`
}

// FromState builds a document for a state. moves, when non-nil, is recorded
// as the generating sequence.
func FromState(s cube.State, moves []cube.Move) Document {
	doc := Document{
		FormatVersion: FormatVersion,
		Stickers:      make([]StickerEntry, 0, cube.NumSlots),
		MoveSequence:  cube.FormatMoves(moves),
	}

	for slot := cube.Slot(1); slot <= cube.NumSlots; slot++ {
		st := s.Sticker(slot)
		doc.Stickers = append(doc.Stickers, StickerEntry{
			Slot:         int(slot),
			Color:        st.Color.String(),
			OriginalSlot: int(st.OriginalSlot),
		})
	}

	v := cube.Validate(s)
	info := ValidationInfo{
		Solvable:       v.Solvable,
		EvenParity:     v.EvenParity,
		CornerTwistSum: v.CornerTwistSum,
		EdgeFlipSum:    v.EdgeFlipSum,
	}
	for _, k := range v.Violations {
		info.Violations = append(info.Violations, k.String())
	}
	doc.Validation = &info

	return doc
}

// State reconstructs the cube state the document describes. The document's
// own validation summary is ignored; the sticker list must stand on its own.
func (d Document) State() (cube.State, error) {
	if d.FormatVersion != FormatVersion {
		return cube.State{}, fmt.Errorf("%w: unsupported format version %q (want %q)",
			cube.ErrMalformedState, d.FormatVersion, FormatVersion)
	}
	if len(d.Stickers) != cube.NumSlots {
		return cube.State{}, fmt.Errorf("%w: got %d sticker entries, want %d",
			cube.ErrMalformedState, len(d.Stickers), cube.NumSlots)
	}

	stickers := make([]cube.Sticker, cube.NumSlots)
	var seen [cube.NumSlots + 1]bool
	for _, e := range d.Stickers {
		if e.Slot < 1 || e.Slot > cube.NumSlots {
			return cube.State{}, fmt.Errorf("%w: slot %d outside 1..%d", cube.ErrMalformedState, e.Slot, cube.NumSlots)
		}
		if seen[e.Slot] {
			return cube.State{}, fmt.Errorf("%w: slot %d appears more than once", cube.ErrMalformedState, e.Slot)
		}
		seen[e.Slot] = true

		color, err := cube.ParseColor(e.Color)
		if err != nil {
			return cube.State{}, err
		}
		stickers[e.Slot-1] = cube.Sticker{Color: color, OriginalSlot: cube.Slot(e.OriginalSlot)}
	}

	return cube.NewFromStickers(stickers)
}

// Moves parses the document's generating move sequence, nil when absent.
func (d Document) Moves() ([]cube.Move, error) {
	if d.MoveSequence == "" {
		return nil, nil
	}
	return cube.ParseMoves(d.MoveSequence)
}

// Save writes the document to path as indented JSON.
func Save(path string, d Document) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Load reads a document from path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("%w: %v", cube.ErrMalformedState, err)
	}
	return d, nil
}
