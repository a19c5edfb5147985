// Package cauldron implements the file-backed cauldron metadata store.
package cauldron

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// state is the on-disk shape of the cauldron: release histories keyed by
// descriptor string, then by deployment name.
type state map[string]map[string][]domain.Release

// Store implements ports.Cauldron using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache state
}

// NewStore creates a cauldron store backed by the file at the given path.
// A missing file is treated as an empty cauldron.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(state),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cauldron")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal cauldron")
	}

	return nil
}

func (s *Store) persist(next state) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cauldron")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cauldron directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write cauldron")
	}

	return nil
}

// Begin opens a transaction against a deep copy of the current state.
// Writes stay in the copy until Commit swaps it in and persists it.
func (s *Store) Begin(_ context.Context) (ports.CauldronTx, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	staged, err := copyState(s.cache)
	if err != nil {
		return nil, err
	}

	return &tx{store: s, staged: staged}, nil
}

// copyState deep-copies the store state through a JSON round trip.
func copyState(src state) (state, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to snapshot cauldron state")
	}
	dst := make(state)
	if err := json.Unmarshal(data, &dst); err != nil {
		return nil, zerr.Wrap(err, "failed to snapshot cauldron state")
	}
	return dst, nil
}

// tx implements ports.CauldronTx on a staged state copy.
type tx struct {
	store  *Store
	staged state
	closed bool
}

func (t *tx) ReleasedPackages(descriptor domain.AppDescriptor, deployment string) (domain.ReleaseSet, error) {
	releases, err := t.Releases(descriptor, deployment)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return domain.ReleaseSet{}, nil
	}
	return releases[len(releases)-1].Packages, nil
}

func (t *tx) Releases(descriptor domain.AppDescriptor, deployment string) ([]domain.Release, error) {
	if t.closed {
		return nil, domain.ErrTransactionClosed
	}
	return t.staged[descriptor.String()][deployment], nil
}

func (t *tx) RecordRelease(descriptor domain.AppDescriptor, release domain.Release) error {
	if t.closed {
		return domain.ErrTransactionClosed
	}

	key := descriptor.String()
	if t.staged[key] == nil {
		t.staged[key] = make(map[string][]domain.Release)
	}
	t.staged[key][release.Deployment] = append(t.staged[key][release.Deployment], release)
	return nil
}

func (t *tx) Commit() error {
	if t.closed {
		return domain.ErrTransactionClosed
	}
	t.closed = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if err := t.store.persist(t.staged); err != nil {
		return err
	}
	t.store.cache = t.staged
	return nil
}

func (t *tx) Discard() {
	t.closed = true
}
