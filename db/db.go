package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"burger-cli/config"
)

// Store keeps the last order summary and the order counter as two plain
// text files, overwritten on every save.
type Store struct {
	dir       string
	orderPath string
	countPath string
}

func Open(cfg config.StorageConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("storage dir is required")
	}
	if cfg.OrderFile == "" || cfg.CountFile == "" {
		return nil, fmt.Errorf("storage file names are required")
	}
	return &Store{
		dir:       cfg.Dir,
		orderPath: filepath.Join(cfg.Dir, cfg.OrderFile),
		countPath: filepath.Join(cfg.Dir, cfg.CountFile),
	}, nil
}

func (s *Store) OrderPath() string { return s.orderPath }
func (s *Store) CountPath() string { return s.countPath }

// SaveOrder creates the directory if needed and writes the summary verbatim,
// then the counter.
func (s *Store) SaveOrder(summary string, count int64) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	if err := os.WriteFile(s.orderPath, []byte(summary), 0o644); err != nil {
		return fmt.Errorf("write order: %w", err)
	}
	if err := os.WriteFile(s.countPath, []byte(strconv.FormatInt(count, 10)), 0o644); err != nil {
		return fmt.Errorf("write order count: %w", err)
	}
	return nil
}
