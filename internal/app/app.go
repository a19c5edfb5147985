// Package app implements the application layer for crucible.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// App orchestrates the release pipelines against the adapters.
type App struct {
	cfg       *domain.Config
	cauldron  ports.Cauldron
	generator ports.BundleGenerator
	ota       ports.ReleaseClient
	resolver  ports.VersionResolver
	prompter  ports.Prompter
	hasher    ports.BundleHasher
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	cauldron ports.Cauldron,
	generator ports.BundleGenerator,
	ota ports.ReleaseClient,
	resolver ports.VersionResolver,
	prompter ports.Prompter,
	hasher ports.BundleHasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		cfg:       cfg,
		cauldron:  cauldron,
		generator: generator,
		ota:       ota,
		resolver:  resolver,
		prompter:  prompter,
		hasher:    hasher,
		logger:    logger,
		telemetry: telemetry,
	}
}

// ReleaseOptions are the inputs of the release pipeline. Empty fields are
// prompted for interactively.
type ReleaseOptions struct {
	// Descriptor is the native application descriptor ("app:platform:version").
	Descriptor string

	// MiniApps are the package refs to release ("[@scope/]name[@version]").
	MiniApps []string

	// Deployment is the deployment track to release to.
	Deployment string

	// TargetBinaryVersion is the semver constraint on installable native
	// binaries. Defaults to "~<descriptor version>".
	TargetBinaryVersion string

	Mandatory bool

	// Rollout is the rollout percentage, 1-100. Zero means full rollout.
	Rollout int

	// SkipConfirm publishes without asking for confirmation.
	SkipConfirm bool
}

// Release reconciles the requested MiniApps against the last recorded
// release, generates a composite bundle, publishes it to the OTA service and
// records the outcome in the cauldron.
func (a *App) Release(ctx context.Context, opts ReleaseOptions) (domain.Release, error) {
	var none domain.Release

	desc, err := a.resolveDescriptor(opts.Descriptor)
	if err != nil {
		return none, err
	}
	deployment, err := a.resolveDeployment(opts.Deployment)
	if err != nil {
		return none, err
	}
	rollout, err := normalizeRollout(opts.Rollout)
	if err != nil {
		return none, err
	}

	if len(opts.MiniApps) == 0 {
		return none, zerr.New("no MiniApps specified")
	}
	updated, err := domain.ParseReleaseSet(opts.MiniApps)
	if err != nil {
		return none, err
	}
	updated, err = a.pinVersions(ctx, updated)
	if err != nil {
		return none, err
	}

	targetBinary := opts.TargetBinaryVersion
	if targetBinary == "" {
		targetBinary = "~" + desc.Version
	}

	tx, err := a.cauldron.Begin(ctx)
	if err != nil {
		return none, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Discard()
		}
	}()

	baseline, err := tx.ReleasedPackages(desc, deployment)
	if err != nil {
		return none, err
	}
	packages := domain.Reconcile(updated, baseline)

	if !opts.SkipConfirm {
		if err := a.confirmPlan(desc, deployment, packages); err != nil {
			return none, err
		}
	}

	req := domain.ReleaseRequest{
		Descriptor:          desc,
		Deployment:          deployment,
		TargetBinaryVersion: targetBinary,
		Mandatory:           opts.Mandatory,
		Rollout:             rollout,
	}
	release, err := a.publish(ctx, tx, desc, packages, req)
	if err != nil {
		return none, err
	}

	if err := tx.Commit(); err != nil {
		return none, err
	}
	committed = true

	a.logger.Info(fmt.Sprintf("released %s to %s as %s", desc.String(), deployment, release.Label))
	return release, nil
}

// PromoteOptions are the inputs of the promote pipeline.
type PromoteOptions struct {
	Descriptor string

	// SourceDeployment is the track the release is promoted from.
	SourceDeployment string

	// TargetDeployment is the track the release is promoted to.
	TargetDeployment string

	// Label selects a specific source release. Empty means the latest.
	Label string

	// TargetBinaryVersion overrides the constraint carried over from the
	// source release.
	TargetBinaryVersion string

	Mandatory   bool
	Rollout     int
	SkipConfirm bool
}

// Promote republishes a recorded release from one deployment track to
// another, reconciling its packages against the target track's baseline.
func (a *App) Promote(ctx context.Context, opts PromoteOptions) (domain.Release, error) {
	var none domain.Release

	desc, err := a.resolveDescriptor(opts.Descriptor)
	if err != nil {
		return none, err
	}
	source, err := a.resolveDeployment(opts.SourceDeployment)
	if err != nil {
		return none, err
	}
	target, err := a.resolveDeployment(opts.TargetDeployment)
	if err != nil {
		return none, err
	}
	if source == target {
		return none, zerr.New("source and target deployments are the same")
	}
	rollout, err := normalizeRollout(opts.Rollout)
	if err != nil {
		return none, err
	}

	tx, err := a.cauldron.Begin(ctx)
	if err != nil {
		return none, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Discard()
		}
	}()

	sourceRelease, err := a.findSourceRelease(tx, desc, source, opts.Label)
	if err != nil {
		return none, err
	}

	baseline, err := tx.ReleasedPackages(desc, target)
	if err != nil {
		return none, err
	}
	packages := domain.Reconcile(sourceRelease.Packages, baseline)

	if !opts.SkipConfirm {
		if err := a.confirmPlan(desc, target, packages); err != nil {
			return none, err
		}
	}

	targetBinary := opts.TargetBinaryVersion
	if targetBinary == "" {
		targetBinary = sourceRelease.TargetBinaryVersion
	}

	req := domain.ReleaseRequest{
		Descriptor:          desc,
		Deployment:          target,
		TargetBinaryVersion: targetBinary,
		Mandatory:           opts.Mandatory,
		Rollout:             rollout,
	}
	release, err := a.publish(ctx, tx, desc, packages, req)
	if err != nil {
		return none, err
	}

	if err := tx.Commit(); err != nil {
		return none, err
	}
	committed = true

	a.logger.Info(fmt.Sprintf("promoted %s release %s from %s to %s as %s",
		desc.String(), sourceRelease.Label, source, target, release.Label))
	return release, nil
}

// publish runs the shared tail of both pipelines: stage the bundle, hash it,
// upload it and record the result on the open transaction. The caller owns
// the transaction.
func (a *App) publish(
	ctx context.Context,
	tx ports.CauldronTx,
	desc domain.AppDescriptor,
	packages domain.ReleaseSet,
	req domain.ReleaseRequest,
) (domain.Release, error) {
	var none domain.Release

	bundleDir, err := os.MkdirTemp("", "crucible-bundle-")
	if err != nil {
		return none, zerr.Wrap(err, "failed to create bundle directory")
	}
	defer os.RemoveAll(bundleDir)

	err = a.step(ctx, "generate composite bundle", func(ctx context.Context) error {
		return a.generator.Generate(ctx, packages, bundleDir)
	})
	if err != nil {
		return none, err
	}

	err = a.step(ctx, "hash bundle", func(context.Context) error {
		hash, err := a.hasher.TreeHash(bundleDir)
		if err != nil {
			return err
		}
		req.PackageHash = hash
		return nil
	})
	if err != nil {
		return none, err
	}

	var label string
	err = a.step(ctx, "upload release", func(ctx context.Context) error {
		label, err = a.ota.Release(ctx, bundleDir, req)
		return err
	})
	if err != nil {
		return none, err
	}

	release := domain.Release{
		Label:               label,
		Deployment:          req.Deployment,
		TargetBinaryVersion: req.TargetBinaryVersion,
		Packages:            packages,
		PackageHash:         req.PackageHash,
		Mandatory:           req.Mandatory,
		Rollout:             req.Rollout,
		CreatedAt:           time.Now().UTC(),
	}
	if err := tx.RecordRelease(desc, release); err != nil {
		return none, err
	}
	return release, nil
}

// step runs fn inside a telemetry vertex.
func (a *App) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

func (a *App) resolveDescriptor(raw string) (domain.AppDescriptor, error) {
	if raw == "" {
		answer, err := a.prompter.Input("native application descriptor (app:platform:version)")
		if err != nil {
			return domain.AppDescriptor{}, err
		}
		raw = answer
	}
	return domain.ParseAppDescriptor(raw)
}

func (a *App) resolveDeployment(name string) (string, error) {
	if name == "" {
		choice, err := a.prompter.Select("deployment track", a.cfg.Deployments)
		if err != nil {
			return "", err
		}
		name = choice
	}
	if !a.cfg.HasDeployment(name) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownDeployment, "not in configured deployments"), "deployment", name)
	}
	return name, nil
}

// pinVersions resolves every unpinned ref against the registry.
func (a *App) pinVersions(ctx context.Context, set domain.ReleaseSet) (domain.ReleaseSet, error) {
	for i, ref := range set {
		if ref.Pinned() {
			continue
		}
		resolved, err := a.resolver.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		a.logger.Info(fmt.Sprintf("resolved %s to %s", ref.Identity(), resolved.Version))
		set[i] = resolved
	}
	return set, nil
}

func (a *App) confirmPlan(desc domain.AppDescriptor, deployment string, packages domain.ReleaseSet) error {
	question := fmt.Sprintf("release to %s of %s with packages:\n  %s\nproceed?",
		deployment, desc.String(), strings.Join(packages.Strings(), "\n  "))
	ok, err := a.prompter.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrReleaseAborted
	}
	return nil
}

func (a *App) findSourceRelease(tx ports.CauldronTx, desc domain.AppDescriptor, deployment, label string) (domain.Release, error) {
	releases, err := tx.Releases(desc, deployment)
	if err != nil {
		return domain.Release{}, err
	}
	if label == "" {
		if len(releases) == 0 {
			return domain.Release{}, zerr.With(zerr.Wrap(domain.ErrReleaseNotFound, "no releases recorded"), "deployment", deployment)
		}
		return releases[len(releases)-1], nil
	}
	for _, r := range releases {
		if r.Label == label {
			return r, nil
		}
	}
	notFoundErr := zerr.With(zerr.Wrap(domain.ErrReleaseNotFound, "no release with label"), "deployment", deployment)
	return domain.Release{}, zerr.With(notFoundErr, "label", label)
}

func normalizeRollout(rollout int) (int, error) {
	if rollout == 0 {
		return domain.RolloutFull, nil
	}
	if rollout < 1 || rollout > domain.RolloutFull {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidRollout, "out of range"), "rollout", rollout)
	}
	return rollout, nil
}
