package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/subsave/internal/subscription"
)

// FileStore is a subscription repository backed by a single flat file.
// Each method is a complete load, mutate, persist cycle against that file.
type FileStore struct {
	path   string
	ids    subscription.IDGenerator
	logger *slog.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithIDGenerator overrides the generator used for new subscription ids.
// Defaults to subscription.UUIDGenerator.
func WithIDGenerator(gen subscription.IDGenerator) Option {
	return func(s *FileStore) {
		s.ids = gen
	}
}

// WithLogger sets the logger used for load and persist diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// New returns a store for the file at path. It performs no I/O; the file is
// read on every call, and a missing file only becomes an error when a read
// needs it.
func New(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path: path,
		ids:  subscription.UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// load reads the current record set. The file handle is closed before
// load returns.
func (s *FileStore) load() ([]subscription.Subscription, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := decodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}

	s.logger.Debug("subscriptions loaded", "path", s.path, "count", len(records))
	return records, nil
}

// loadOrEmpty is load, except a missing file is an empty record set.
func (s *FileStore) loadOrEmpty() ([]subscription.Subscription, error) {
	records, err := s.load()
	if errors.Is(err, fs.ErrNotExist) {
		return []subscription.Subscription{}, nil
	}
	return records, err
}

// persist replaces the backing file with records.
//
// The records are written to a temp file next to the target, synced,
// and renamed into place, so a failed write leaves the previous file intact.
func (s *FileStore) persist(records []subscription.Subscription) (err error) {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist %s: create temp: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := encodeRecords(tmp, records); err != nil {
		return fmt.Errorf("persist %s: %w", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("persist %s: sync: %w", s.path, err)
	}
	if err := tmp.Chmod(fileMode(s.path)); err != nil {
		return fmt.Errorf("persist %s: chmod: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist %s: close: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("persist %s: rename: %w", s.path, err)
	}

	s.logger.Debug("subscriptions persisted", "path", s.path, "count", len(records))
	return nil
}

// fileMode keeps the permissions of an existing file; new files get 0644.
func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}
