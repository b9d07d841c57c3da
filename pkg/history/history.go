// Package history persists a local record of interpreted analysis runs.
//
// Compliance evaluation itself stays a pure function of one result document;
// this store is a separate recorder the CLI feeds after each load.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/errors"
)

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Record is one interpreted analysis run.
type Record struct {
	ID         string
	CreatedAt  time.Time
	ResultFile string

	State   string
	Message string

	Total           int
	Permissive      int
	WeakCopyleft    int
	StrongCopyleft  int
	Unknown         int
	Issues          int
	Vulnerabilities int
}

// FromStatus builds a record from a compliance status.
func FromStatus(resultFile string, status compliance.Status) Record {
	return Record{
		ResultFile:      resultFile,
		State:           string(status.State),
		Message:         status.Message,
		Total:           status.Stats.Total,
		Permissive:      status.Stats.Permissive,
		WeakCopyleft:    status.Stats.WeakCopyleft,
		StrongCopyleft:  status.Stats.StrongCopyleft,
		Unknown:         status.Stats.Unknown,
		Issues:          status.IssueCount,
		Vulnerabilities: status.VulnerabilityCount,
	}
}

// Open opens (and if necessary creates) the history database at path.
func Open(path string) (*Store, error) {
	const op = "history.Open"

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.E(op, errors.KindStorage, "cannot create history directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.E(op, errors.KindStorage, "cannot open history database", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.E(op, errors.KindStorage, "cannot set pragma", err)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.E(op, errors.KindStorage, "cannot init schema", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		result_file TEXT NOT NULL,
		state TEXT NOT NULL,
		message TEXT NOT NULL,
		total INTEGER NOT NULL,
		permissive INTEGER NOT NULL,
		weak_copyleft INTEGER NOT NULL,
		strong_copyleft INTEGER NOT NULL,
		unknown INTEGER NOT NULL,
		issues INTEGER NOT NULL,
		vulnerabilities INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add inserts a record. A missing ID or CreatedAt is filled in.
func (s *Store) Add(ctx context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, created_at, result_file, state, message,
			total, permissive, weak_copyleft, strong_copyleft, unknown,
			issues, vulnerabilities
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID, rec.CreatedAt, rec.ResultFile, rec.State, rec.Message,
		rec.Total, rec.Permissive, rec.WeakCopyleft, rec.StrongCopyleft, rec.Unknown,
		rec.Issues, rec.Vulnerabilities,
	)
	if err != nil {
		return rec, errors.E("history.Add", errors.KindStorage, "cannot insert run", err)
	}
	return rec, nil
}

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, result_file, state, message,
		       total, permissive, weak_copyleft, strong_copyleft, unknown,
		       issues, vulnerabilities
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.E("history.List", errors.KindStorage, "cannot query runs", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.ResultFile, &rec.State, &rec.Message,
			&rec.Total, &rec.Permissive, &rec.WeakCopyleft, &rec.StrongCopyleft, &rec.Unknown,
			&rec.Issues, &rec.Vulnerabilities,
		); err != nil {
			return nil, errors.E("history.List", errors.KindStorage, "cannot scan run", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune deletes all but the newest keep records.
func (s *Store) Prune(ctx context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY created_at DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return errors.E("history.Prune", errors.KindStorage, "cannot prune runs", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
