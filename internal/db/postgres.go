package db

import (
	"database/sql"
	"fmt"
	"time"

	"sortbench/internal/benchmark"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id SERIAL PRIMARY KEY,
			source TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			data_size INTEGER NOT NULL,
			execution_time DOUBLE PRECISION NOT NULL,
			memory_used_mb DOUBLE PRECISION NOT NULL,
			initial_memory_mb DOUBLE PRECISION NOT NULL,
			final_memory_mb DOUBLE PRECISION NOT NULL,
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a run and its results in one transaction.
func (s *PostgresStore) SaveRun(run benchmark.Run) (int64, error) {
	createdAt := run.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`INSERT INTO runs (source, created_at) VALUES ($1, $2) RETURNING id`, run.Source, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO results
		(run_id, position, algorithm, data_size, execution_time, memory_used_mb, initial_memory_mb, final_memory_mb)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
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
func (s *PostgresStore) ListRuns(limit int) ([]StoredRun, error) {
	rows, err := s.db.Query(`SELECT id, source, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
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
			FROM results WHERE run_id = $1 ORDER BY position`, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}

	return runs, nil
}
