package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crucible/internal/core/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Info(string) {}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(error) {}

func TestResolver_PinnedRefPassesThrough(t *testing.T) {
	r, err := NewResolverWithPath("http://unused.invalid", t.TempDir(), &recordingLogger{})
	require.NoError(t, err)

	ref := domain.PackageRef{Name: "cart", Version: "1.2.3"}
	got, err := r.Resolve(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, ref, got)
}

func TestResolver_ResolvesLatestDistTag(t *testing.T) {
	var requestedPath atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestedPath.Store(req.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dist-tags":{"latest":"3.1.4"}}`))
	}))
	defer server.Close()

	r, err := NewResolverWithPath(server.URL, t.TempDir(), &recordingLogger{})
	require.NoError(t, err)

	got, err := r.Resolve(context.Background(), domain.PackageRef{Scope: "acme", Name: "cart"})
	require.NoError(t, err)
	assert.Equal(t, "3.1.4", got.Version)
	assert.Equal(t, "/@acme%2Fcart", requestedPath.Load())
}

func TestResolver_CachesResolution(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"dist-tags":{"latest":"2.0.0"}}`))
	}))
	defer server.Close()

	r, err := NewResolverWithPath(server.URL, t.TempDir(), &recordingLogger{})
	require.NoError(t, err)

	ref := domain.PackageRef{Name: "profile"}

	first, err := r.Resolve(context.Background(), ref)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), ref)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestResolver_CacheWriteFailureWarnsAndResolves(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"dist-tags":{"latest":"2.0.0"}}`))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	log := &recordingLogger{}
	r, err := NewResolverWithPath(server.URL, cacheDir, log)
	require.NoError(t, err)

	// Removing the cache directory makes the cache write fail.
	require.NoError(t, os.RemoveAll(cacheDir))

	got, err := r.Resolve(context.Background(), domain.PackageRef{Name: "profile"})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", got.Version)

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "failed to cache registry resolution")
}

func TestResolver_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	r, err := NewResolverWithPath(server.URL, t.TempDir(), &recordingLogger{})
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), domain.PackageRef{Name: "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package not found in registry")
}

func TestResolver_MissingLatestTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"dist-tags":{}}`))
	}))
	defer server.Close()

	r, err := NewResolverWithPath(server.URL, t.TempDir(), &recordingLogger{})
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), domain.PackageRef{Name: "untagged"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no latest dist-tag")
}
