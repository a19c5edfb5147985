package bundle

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports/mocks"
)

func testSet(t *testing.T) domain.ReleaseSet {
	t.Helper()
	set, err := domain.ParseReleaseSet([]string{"@acme/cart@1.2.0", "checkout@2.0.1"})
	require.NoError(t, err)
	return set
}

func stagePackages(t *testing.T, dir string, identities ...string) {
	t.Helper()
	for _, id := range identities {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", filepath.FromSlash(id)), 0o750))
	}
}

func TestGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	set := testSet(t)

	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().
		Execute(gomock.Any(), dir, []string{"yarn", "install"}, nil).
		DoAndReturn(func(_ context.Context, target string, _, _ []string) error {
			stagePackages(t, target, "@acme/cart", "checkout")
			return nil
		})

	gen := NewGenerator(executor, noopLogger{}, "yarn")
	require.NoError(t, gen.Generate(context.Background(), set, dir))

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)

	var m manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.True(t, m.Private)
	assert.Equal(t, map[string]string{
		"@acme/cart": "1.2.0",
		"checkout":   "2.0.1",
	}, m.Dependencies)

	entry, err := os.ReadFile(filepath.Join(dir, "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "import '@acme/cart';\nimport 'checkout';\n", string(entry))
}

func TestGenerateEmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := NewGenerator(mocks.NewMockExecutor(ctrl), noopLogger{}, "yarn")

	err := gen.Generate(context.Background(), nil, t.TempDir())
	assert.ErrorContains(t, err, "empty release set")
}

func TestGenerateInstallFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().
		Execute(gomock.Any(), dir, []string{"npm", "install"}, nil).
		Return(assert.AnError)

	gen := NewGenerator(executor, noopLogger{}, "npm")
	err := gen.Generate(context.Background(), testSet(t), dir)
	assert.ErrorContains(t, err, "package install failed")
}

func TestGenerateMissingPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().
		Execute(gomock.Any(), dir, []string{"yarn", "install"}, nil).
		DoAndReturn(func(_ context.Context, target string, _, _ []string) error {
			stagePackages(t, target, "@acme/cart")
			return nil
		})

	gen := NewGenerator(executor, noopLogger{}, "yarn")
	err := gen.Generate(context.Background(), testSet(t), dir)
	assert.ErrorContains(t, err, "package missing after install")
}

type noopLogger struct{}

func (noopLogger) Info(string) {}
func (noopLogger) Warn(string) {}
func (noopLogger) Error(error) {}
