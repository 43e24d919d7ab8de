package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	// Re-running is a no-op.
	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestSolveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	scramble := "R U R' U'"
	id, err := repo.Create(Solve{
		Scramble:       &scramble,
		Solution:       "U R U' R'",
		Optimized:      "U R U' R'",
		MoveCount:      4,
		OptimizedCount: 4,
		DurationMs:     12,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.SolveID)
	require.NotNil(t, got.Scramble)
	assert.Equal(t, scramble, *got.Scramble)
	assert.Equal(t, "U R U' R'", got.Solution)
	assert.Equal(t, 4, got.MoveCount)
	assert.Nil(t, got.StartingState)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetMissingSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	got, err := repo.Get("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(Solve{Solution: "R", Optimized: "R", MoveCount: 1, OptimizedCount: 1})
		require.NoError(t, err)
	}

	solves, err := repo.List(10)
	require.NoError(t, err)
	assert.Len(t, solves, 3)

	solves, err = repo.List(2)
	require.NoError(t, err)
	assert.Len(t, solves, 2)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetLastAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	_, err := repo.Create(Solve{Solution: "R", Optimized: "R", MoveCount: 1, OptimizedCount: 1})
	require.NoError(t, err)

	last, err := repo.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)

	require.NoError(t, repo.Delete(last.SolveID))

	got, err := repo.Get(last.SolveID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
