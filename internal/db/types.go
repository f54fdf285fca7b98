package db

import (
	"time"

	"sortbench/internal/benchmark"
)

// StoredRun is a suite run read back from history.
type StoredRun struct {
	ID        int64              `json:"id"`
	Source    string             `json:"source"`
	CreatedAt time.Time          `json:"created_at"`
	Results   []benchmark.Result `json:"results"`
}

// Store interface defines the methods for persisting run history
type Store interface {
	Close() error
	SaveRun(run benchmark.Run) (int64, error)
	ListRuns(limit int) ([]StoredRun, error)
}
