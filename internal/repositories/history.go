package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/purarue/m3u-shuf/internal/shared"
)

// ShuffleRun is one recorded shuffle: where the playlist came from, where it
// went, and how many tracks it held. Source and Destination are file paths,
// or the literal names "stdin" / "stdout" for the standard streams.
type ShuffleRun struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	TrackCount  int       `json:"track_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks that the run describes a real shuffle.
func (r ShuffleRun) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("%w: empty source", shared.ErrInvalidArgument)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: empty destination", shared.ErrInvalidArgument)
	}
	if r.TrackCount < 0 {
		return fmt.Errorf("%w: negative track count", shared.ErrInvalidArgument)
	}
	return nil
}

// HistoryRepository stores [ShuffleRun] rows in the shuffle_history table.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository with the given database connection
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create inserts a new run with a generated ID and timestamp. The generated
// fields are written back to run.
func (r *HistoryRepository) Create(run *ShuffleRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	run.ID = shared.GenerateID()
	run.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO shuffle_history (id, source, destination, track_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := r.db.Exec(query, run.ID, run.Source, run.Destination, run.TrackCount, run.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert shuffle run: %w", err)
	}

	return nil
}

// List returns the most recent runs, newest first. limit <= 0 returns all.
func (r *HistoryRepository) List(limit int) ([]ShuffleRun, error) {
	query := `
		SELECT id, source, destination, track_count, created_at
		FROM shuffle_history
		ORDER BY created_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shuffle history: %w", err)
	}
	defer rows.Close()

	var runs []ShuffleRun
	for rows.Next() {
		var run ShuffleRun
		if err := rows.Scan(&run.ID, &run.Source, &run.Destination, &run.TrackCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shuffle run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shuffle history: %w", err)
	}

	return runs, nil
}

// Clear deletes all recorded runs and returns how many were removed.
func (r *HistoryRepository) Clear() (int64, error) {
	res, err := r.db.Exec("DELETE FROM shuffle_history")
	if err != nil {
		return 0, fmt.Errorf("failed to clear shuffle history: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared rows: %w", err)
	}
	return deleted, nil
}
