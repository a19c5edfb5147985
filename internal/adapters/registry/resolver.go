// Package registry implements the VersionResolver port against the npm registry.
package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	npmRegistryBase   = "https://registry.npmjs.org"
	httpClientTimeout = 30 * time.Second

	// cacheTTL bounds how long a dist-tag resolution is reused. Tags move,
	// so stale entries are re-fetched.
	cacheTTL = 24 * time.Hour
)

// Resolver implements ports.VersionResolver using the npm registry with
// local caching.
type Resolver struct {
	baseURL    string
	cacheDir   string
	httpClient *http.Client
	logger     ports.Logger
}

// NewResolver creates a Resolver against the public npm registry, caching
// under the user cache directory.
func NewResolver(logger ports.Logger) (*Resolver, error) {
	cacheBase, err := os.UserCacheDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate user cache directory")
	}
	return newResolverWithPath(npmRegistryBase, filepath.Join(cacheBase, "crucible", "registry"), logger)
}

// newResolverWithPath creates a Resolver with a custom base URL and cache
// path (used for testing).
func newResolverWithPath(baseURL, path string, logger ports.Logger) (*Resolver, error) {
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create registry cache")
	}

	return &Resolver{
		baseURL:  baseURL,
		cacheDir: cleanPath,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		logger: logger,
	}, nil
}

// Resolve pins an unversioned ref to the registry's latest dist-tag.
// Already pinned refs pass through unchanged. Cache entries are keyed by
// package identity and expire after cacheTTL.
func (r *Resolver) Resolve(ctx context.Context, ref domain.PackageRef) (domain.PackageRef, error) {
	if ref.Pinned() {
		return ref, nil
	}

	cachePath := r.cachePath(ref.Identity())
	if version, err := r.loadFromCache(cachePath); err == nil {
		ref.Version = version
		return ref, nil
	}

	version, err := r.queryRegistry(ctx, ref.Identity())
	if err != nil {
		return domain.PackageRef{}, err
	}

	if err := r.saveToCache(cachePath, version); err != nil {
		// A cache write failure is not worth failing the resolution.
		r.logger.Warn("failed to cache registry resolution: " + err.Error())
	}

	ref.Version = version
	return ref, nil
}

type packument struct {
	DistTags map[string]string `json:"dist-tags"`
}

func (r *Resolver) queryRegistry(ctx context.Context, identity string) (string, error) {
	// Scoped identities keep the slash escaped, matching registry routing.
	endpoint := r.baseURL + "/" + url.PathEscape(identity)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", zerr.Wrap(err, "failed to build registry request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "registry request failed"), "package", identity)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		notFoundErr := zerr.With(zerr.New("package not found in registry"), "package", identity)
		return "", zerr.With(notFoundErr, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read registry response")
	}

	var doc packument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", zerr.Wrap(err, "failed to parse registry response")
	}

	latest, ok := doc.DistTags["latest"]
	if !ok || latest == "" {
		return "", zerr.With(zerr.New("package has no latest dist-tag"), "package", identity)
	}
	return latest, nil
}

type cacheEntry struct {
	Version string `json:"version"`
}

func (r *Resolver) cachePath(identity string) string {
	hash := sha256.Sum256([]byte(identity))
	return filepath.Join(r.cacheDir, hex.EncodeToString(hash[:])+".json")
}

func (r *Resolver) loadFromCache(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if time.Since(info.ModTime()) > cacheTTL {
		return "", fs.ErrNotExist
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", err
	}
	if entry.Version == "" {
		return "", errors.New("empty cache entry")
	}
	return entry.Version, nil
}

func (r *Resolver) saveToCache(path, version string) error {
	data, err := json.Marshal(cacheEntry{Version: version})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	return os.WriteFile(path, data, domain.FilePerm)
}
