package db

import (
	"database/sql"
	"fmt"
	"time"

	"sortbench/internal/benchmark"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			data_size INTEGER NOT NULL,
			execution_time REAL NOT NULL,
			memory_used_mb REAL NOT NULL,
			initial_memory_mb REAL NOT NULL,
			final_memory_mb REAL NOT NULL,
			PRIMARY KEY (run_id, position)
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a run and its results in one transaction.
func (s *SQLiteStore) SaveRun(run benchmark.Run) (int64, error) {
	createdAt := run.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (source, created_at) VALUES (?, ?)`, run.Source, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO results
		(run_id, position, algorithm, data_size, execution_time, memory_used_mb, initial_memory_mb, final_memory_mb)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, r := range run.Results {
		if _, err := stmt.Exec(id, i, r.Algorithm, r.DataSize, r.ExecutionTime, r.MemoryUsedMB, r.InitialMemoryMB, r.FinalMemoryMB); err != nil {
			return 0, fmt.Errorf("failed to insert result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns retrieves the most recent runs, newest first
func (s *SQLiteStore) ListRuns(limit int) ([]StoredRun, error) {
	rows, err := s.db.Query(`SELECT id, source, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	var runs []StoredRun
	for rows.Next() {
		var run StoredRun
		if err := rows.Scan(&run.ID, &run.Source, &run.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range runs {
		results, err := queryResults(s.db, `SELECT algorithm, data_size, execution_time, memory_used_mb, initial_memory_mb, final_memory_mb
			FROM results WHERE run_id = ? ORDER BY position`, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}

	return runs, nil
}

func queryResults(db *sql.DB, query string, runID int64) ([]benchmark.Result, error) {
	rows, err := db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []benchmark.Result{}
	for rows.Next() {
		var r benchmark.Result
		if err := rows.Scan(&r.Algorithm, &r.DataSize, &r.ExecutionTime, &r.MemoryUsedMB, &r.InitialMemoryMB, &r.FinalMemoryMB); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
