package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve: the scramble (or loaded state) that produced
// the cube, the raw layer-by-layer solution, and its optimized form.
type Solve struct {
	SolveID        string
	CreatedAt      time.Time
	Scramble       *string
	StartingState  *string
	Solution       string
	Optimized      string
	MoveCount      int
	OptimizedCount int
	DurationMs     int64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a completed solve and returns its ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, starting_state, solution, optimized, move_count, optimized_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.Scramble, s.StartingState,
		s.Solution, s.Optimized, s.MoveCount, s.OptimizedCount, s.DurationMs)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil when not found.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, starting_state, solution, optimized, move_count, optimized_count, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.Scramble, &s.StartingState,
		&s.Solution, &s.Optimized, &s.MoveCount, &s.OptimizedCount, &s.DurationMs,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// GetLast retrieves the most recent solve. Returns nil when the table is empty.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, starting_state, solution, optimized, move_count, optimized_count, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string

		err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.Scramble, &s.StartingState,
			&s.Solution, &s.Optimized, &s.MoveCount, &s.OptimizedCount, &s.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Count returns the total number of recorded solves.
func (r *SolveRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
