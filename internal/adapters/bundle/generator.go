package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// verifyConcurrency bounds parallel package checks after install.
const verifyConcurrency = 4

// Generator stages a composite bundle for a release set. It writes a
// manifest and entry point into the target directory, runs the configured
// package manager there, and verifies every package landed.
type Generator struct {
	executor ports.Executor
	logger   ports.Logger
	packager string
}

func NewGenerator(executor ports.Executor, logger ports.Logger, packager string) *Generator {
	return &Generator{
		executor: executor,
		logger:   logger,
		packager: packager,
	}
}

func (g *Generator) Generate(ctx context.Context, packages domain.ReleaseSet, targetDir string) error {
	if len(packages) == 0 {
		return zerr.New("cannot generate a bundle from an empty release set")
	}

	if err := os.MkdirAll(targetDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create bundle staging directory")
	}

	if err := writeManifest(targetDir, packages); err != nil {
		return err
	}
	if err := writeEntryPoint(targetDir, packages); err != nil {
		return err
	}

	g.logger.Info(fmt.Sprintf("installing %d packages with %s", len(packages), g.packager))
	if err := g.executor.Execute(ctx, targetDir, []string{g.packager, "install"}, nil); err != nil {
		return zerr.Wrap(err, "package install failed")
	}

	if err := g.verify(ctx, packages, targetDir); err != nil {
		return err
	}

	g.logger.Info("bundle staged in " + targetDir)
	return nil
}

// verify checks that node_modules contains every requested package.
func (g *Generator) verify(ctx context.Context, packages domain.ReleaseSet, targetDir string) error {
	grp, _ := errgroup.WithContext(ctx)
	grp.SetLimit(verifyConcurrency)

	for _, ref := range packages {
		grp.Go(func() error {
			dir := filepath.Join(targetDir, "node_modules", filepath.FromSlash(ref.Identity()))
			info, err := os.Stat(dir)
			if err != nil {
				return zerr.With(
					zerr.Wrap(err, "package missing after install"),
					"package", ref.Identity(),
				)
			}
			if !info.IsDir() {
				return zerr.With(
					zerr.New("package path is not a directory"),
					"package", ref.Identity(),
				)
			}
			return nil
		})
	}

	return grp.Wait()
}
