package statefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cube "github.com/PlayWeird/cube-combinatorics"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	moves, err := cube.ParseMoves("R U2 F' L D")
	require.NoError(t, err)
	state := cube.ApplySequence(cube.Solved(), moves)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, Save(path, FromState(state, moves)))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, doc.FormatVersion)
	assert.Equal(t, "R U2 F' L D", doc.MoveSequence)
	require.NotNil(t, doc.Validation)
	assert.True(t, doc.Validation.Solvable)

	got, err := doc.State()
	require.NoError(t, err)
	assert.True(t, got.Equal(state))

	gotMoves, err := doc.Moves()
	require.NoError(t, err)
	assert.Equal(t, moves, gotMoves)
}

func TestDocumentRecordsViolations(t *testing.T) {
	// An edge flip is representable sticker-by-sticker even though the
	// resulting state is unsolvable; the document must carry the verdict.
	state := cube.Solved()
	stickers := state.Stickers()
	stickers[1], stickers[37] = stickers[37], stickers[1] // flip the UB edge

	doc := Document{FormatVersion: FormatVersion}
	for i, st := range stickers {
		doc.Stickers = append(doc.Stickers, StickerEntry{
			Slot:         i + 1,
			Color:        st.Color.String(),
			OriginalSlot: int(st.OriginalSlot),
		})
	}

	flipped, err := doc.State()
	require.NoError(t, err)

	saved := FromState(flipped, nil)
	require.NotNil(t, saved.Validation)
	assert.False(t, saved.Validation.Solvable)
	assert.Contains(t, saved.Validation.Violations, "edge_orientation")
}

func TestStateRejectsWrongVersion(t *testing.T) {
	doc := FromState(cube.Solved(), nil)
	doc.FormatVersion = "1.0"
	_, err := doc.State()
	assert.ErrorIs(t, err, cube.ErrMalformedState)
}

func TestStateRejectsBadColor(t *testing.T) {
	doc := FromState(cube.Solved(), nil)
	doc.Stickers[0].Color = "Q"
	_, err := doc.State()
	assert.ErrorIs(t, err, cube.ErrMalformedState)
}

func TestStateRejectsDuplicateSlot(t *testing.T) {
	doc := FromState(cube.Solved(), nil)
	doc.Stickers[1].Slot = 1
	_, err := doc.State()
	assert.ErrorIs(t, err, cube.ErrMalformedState)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Load(path)
	assert.True(t, errors.Is(err, cube.ErrMalformedState))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
