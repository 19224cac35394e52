// Package jsonfile persists the ledger snapshot as a single flat JSON
// document. The store assumes exactly one process accesses the file at a
// time; concurrent writers are last-write-wins.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avstrong/hotelledger/internal/ledger"
	"github.com/avstrong/hotelledger/internal/logger"
)

type Config struct {
	L    *logger.Logger
	Path string
}

type Store struct {
	l    *logger.Logger
	path string
}

func New(conf Config) *Store {
	return &Store{
		l:    conf.L,
		path: conf.Path,
	}
}

// Load reads the whole document. A missing file yields a fresh empty
// snapshot; the service catalog is seeded separately.
func (s *Store) Load(_ context.Context) (*ledger.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.l.LogInfo("No document at %v yet, starting with an empty ledger", s.path)

		return ledger.NewSnapshot(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %v: %w", s.path, err)
	}

	snap := ledger.NewSnapshot()

	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("decode %v: %w", s.path, err)
	}

	return snap, nil
}

// Save writes the whole document through a temp file in the same directory
// and renames it over the target, so a crash never leaves a half-written
// document behind.
func (s *Store) Save(_ context.Context, snap *ledger.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledger-*")
	if err != nil {
		return fmt.Errorf("create temp file for %v: %w", s.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("write temp file %v: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("close temp file %v: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("rename %v to %v: %w", tmp.Name(), s.path, err)
	}

	return nil
}
