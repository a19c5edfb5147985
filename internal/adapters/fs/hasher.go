package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BundleHasher = (*Hasher)(nil)

// Hasher computes content hashes over bundle trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// TreeHash computes a single deterministic hash covering the relative path
// and content of every file under root. WalkDir yields files in lexical
// order, which keeps the hash stable across runs.
func (h *Hasher) TreeHash(root string) (string, error) {
	hasher := xxhash.New()

	for path := range h.walker.WalkFiles(root) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}

		// Separators keep "a" + "bc" distinct from "ab" + "c".
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.WriteString("\x00")

		if err := h.hashFileContent(path, hasher); err != nil {
			return "", err
		}
		_, _ = hasher.WriteString("\x00")
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFileContent(path string, hasher *xxhash.Digest) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return nil
}
