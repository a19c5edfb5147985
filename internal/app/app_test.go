package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/crucible/internal/adapters/telemetry"
	"go.trai.ch/crucible/internal/app"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports/mocks"
)

type fixture struct {
	cauldron  *mocks.MockCauldron
	tx        *mocks.MockCauldronTx
	generator *mocks.MockBundleGenerator
	ota       *mocks.MockReleaseClient
	resolver  *mocks.MockVersionResolver
	prompter  *mocks.MockPrompter
	hasher    *mocks.MockBundleHasher
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		cauldron:  mocks.NewMockCauldron(ctrl),
		tx:        mocks.NewMockCauldronTx(ctrl),
		generator: mocks.NewMockBundleGenerator(ctrl),
		ota:       mocks.NewMockReleaseClient(ctrl),
		resolver:  mocks.NewMockVersionResolver(ctrl),
		prompter:  mocks.NewMockPrompter(ctrl),
		hasher:    mocks.NewMockBundleHasher(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	cfg := &domain.Config{
		ServerURL:   "https://ota.example.com",
		Deployments: []string{"Staging", "Production"},
		Packager:    "yarn",
	}

	f.app = app.New(cfg, f.cauldron, f.generator, f.ota, f.resolver,
		f.prompter, f.hasher, logger, telemetry.NewNoOp())
	return f
}

func refs(t *testing.T, specs ...string) domain.ReleaseSet {
	t.Helper()
	set, err := domain.ParseReleaseSet(specs)
	require.NoError(t, err)
	return set
}

func TestRelease(t *testing.T) {
	f := newFixture(t)

	baseline := refs(t, "@acme/cart@1.0.0", "search@3.1.0")
	var gotReq domain.ReleaseRequest
	var recorded domain.Release

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Staging").Return(baseline, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), refs(t, "@acme/cart@1.2.0", "search@3.1.0"), gomock.Any()).
		Return(nil)
	f.hasher.EXPECT().TreeHash(gomock.Any()).Return("deadbeef", nil)
	f.ota.EXPECT().
		Release(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req domain.ReleaseRequest) (string, error) {
			gotReq = req
			return "v7", nil
		})
	f.tx.EXPECT().
		RecordRelease(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ domain.AppDescriptor, r domain.Release) error {
			recorded = r
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)

	release, err := f.app.Release(context.Background(), app.ReleaseOptions{
		Descriptor:  "walmart:android:17.8.0",
		MiniApps:    []string{"@acme/cart@1.2.0"},
		Deployment:  "Staging",
		SkipConfirm: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "v7", release.Label)
	assert.Equal(t, refs(t, "@acme/cart@1.2.0", "search@3.1.0"), release.Packages)
	assert.Equal(t, "deadbeef", release.PackageHash)
	assert.Equal(t, domain.RolloutFull, release.Rollout)
	assert.False(t, release.CreatedAt.IsZero())

	assert.Equal(t, "~17.8.0", gotReq.TargetBinaryVersion)
	assert.Equal(t, domain.RolloutFull, gotReq.Rollout)
	assert.Equal(t, "deadbeef", gotReq.PackageHash)

	assert.Equal(t, release.Label, recorded.Label)
	assert.Equal(t, "Staging", recorded.Deployment)
}

func TestReleaseResolvesUnpinnedRefs(t *testing.T) {
	f := newFixture(t)

	unpinned := refs(t, "@acme/cart")[0]
	pinned := refs(t, "@acme/cart@2.0.0")[0]
	f.resolver.EXPECT().Resolve(gomock.Any(), unpinned).Return(pinned, nil)

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Staging").Return(domain.ReleaseSet{}, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), refs(t, "@acme/cart@2.0.0"), gomock.Any()).
		Return(nil)
	f.hasher.EXPECT().TreeHash(gomock.Any()).Return("hash", nil)
	f.ota.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return("v1", nil)
	f.tx.EXPECT().RecordRelease(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)

	_, err := f.app.Release(context.Background(), app.ReleaseOptions{
		Descriptor:  "walmart:android:17.8.0",
		MiniApps:    []string{"@acme/cart"},
		Deployment:  "Staging",
		SkipConfirm: true,
	})
	require.NoError(t, err)
}

func TestReleasePromptsForMissingInputs(t *testing.T) {
	f := newFixture(t)

	f.prompter.EXPECT().
		Input("native application descriptor (app:platform:version)").
		Return("walmart:ios:2.0.0", nil)
	f.prompter.EXPECT().
		Select("deployment track", []string{"Staging", "Production"}).
		Return("Production", nil)
	f.prompter.EXPECT().Confirm(gomock.Any()).Return(true, nil)

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Production").Return(domain.ReleaseSet{}, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.hasher.EXPECT().TreeHash(gomock.Any()).Return("hash", nil)
	f.ota.EXPECT().
		Release(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req domain.ReleaseRequest) (string, error) {
			assert.Equal(t, "~2.0.0", req.TargetBinaryVersion)
			assert.Equal(t, "Production", req.Deployment)
			return "v1", nil
		})
	f.tx.EXPECT().RecordRelease(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)

	_, err := f.app.Release(context.Background(), app.ReleaseOptions{
		MiniApps: []string{"cart@1.0.0"},
	})
	require.NoError(t, err)
}

func TestReleaseUnknownDeployment(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Release(context.Background(), app.ReleaseOptions{
		Descriptor: "walmart:android:17.8.0",
		MiniApps:   []string{"cart@1.0.0"},
		Deployment: "Canary",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownDeployment)
}

func TestReleaseInvalidRollout(t *testing.T) {
	f := newFixture(t)

	for _, rollout := range []int{-1, 101} {
		_, err := f.app.Release(context.Background(), app.ReleaseOptions{
			Descriptor: "walmart:android:17.8.0",
			MiniApps:   []string{"cart@1.0.0"},
			Deployment: "Staging",
			Rollout:    rollout,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRollout)
	}
}

func TestReleaseNoMiniApps(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Release(context.Background(), app.ReleaseOptions{
		Descriptor: "walmart:android:17.8.0",
		Deployment: "Staging",
	})
	assert.ErrorContains(t, err, "no MiniApps")
}

func TestReleaseDeclined(t *testing.T) {
	f := newFixture(t)

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Staging").Return(domain.ReleaseSet{}, nil)
	f.prompter.EXPECT().Confirm(gomock.Any()).Return(false, nil)
	f.tx.EXPECT().Discard()

	_, err := f.app.Release(context.Background(), app.ReleaseOptions{
		Descriptor: "walmart:android:17.8.0",
		MiniApps:   []string{"cart@1.0.0"},
		Deployment: "Staging",
	})
	assert.ErrorIs(t, err, domain.ErrReleaseAborted)
}

func TestReleaseGenerateFailureDiscardsTx(t *testing.T) {
	f := newFixture(t)

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Staging").Return(domain.ReleaseSet{}, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
	f.tx.EXPECT().Discard()

	_, err := f.app.Release(context.Background(), app.ReleaseOptions{
		Descriptor:  "walmart:android:17.8.0",
		MiniApps:    []string{"cart@1.0.0"},
		Deployment:  "Staging",
		SkipConfirm: true,
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPromote(t *testing.T) {
	f := newFixture(t)

	history := []domain.Release{
		{Label: "v1", Packages: refs(t, "cart@1.0.0"), TargetBinaryVersion: "~17.7.0"},
		{Label: "v2", Packages: refs(t, "cart@1.1.0", "search@3.0.0"), TargetBinaryVersion: "~17.8.0"},
	}
	baseline := refs(t, "cart@0.9.0", "profile@2.0.0")

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Releases(gomock.Any(), "Staging").Return(history, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Production").Return(baseline, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), refs(t, "cart@1.1.0", "search@3.0.0", "profile@2.0.0"), gomock.Any()).
		Return(nil)
	f.hasher.EXPECT().TreeHash(gomock.Any()).Return("hash", nil)
	f.ota.EXPECT().
		Release(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req domain.ReleaseRequest) (string, error) {
			assert.Equal(t, "Production", req.Deployment)
			assert.Equal(t, "~17.8.0", req.TargetBinaryVersion)
			return "v3", nil
		})
	f.tx.EXPECT().RecordRelease(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)

	release, err := f.app.Promote(context.Background(), app.PromoteOptions{
		Descriptor:       "walmart:android:17.8.0",
		SourceDeployment: "Staging",
		TargetDeployment: "Production",
		SkipConfirm:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "v3", release.Label)
	assert.Equal(t, "Production", release.Deployment)
}

func TestPromoteByLabel(t *testing.T) {
	f := newFixture(t)

	history := []domain.Release{
		{Label: "v1", Packages: refs(t, "cart@1.0.0"), TargetBinaryVersion: "~17.8.0"},
		{Label: "v2", Packages: refs(t, "cart@1.1.0"), TargetBinaryVersion: "~17.8.0"},
	}

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Releases(gomock.Any(), "Staging").Return(history, nil)
	f.tx.EXPECT().ReleasedPackages(gomock.Any(), "Production").Return(domain.ReleaseSet{}, nil)
	f.generator.EXPECT().
		Generate(gomock.Any(), refs(t, "cart@1.0.0"), gomock.Any()).
		Return(nil)
	f.hasher.EXPECT().TreeHash(gomock.Any()).Return("hash", nil)
	f.ota.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return("v1", nil)
	f.tx.EXPECT().RecordRelease(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)

	_, err := f.app.Promote(context.Background(), app.PromoteOptions{
		Descriptor:       "walmart:android:17.8.0",
		SourceDeployment: "Staging",
		TargetDeployment: "Production",
		Label:            "v1",
		SkipConfirm:      true,
	})
	require.NoError(t, err)
}

func TestPromoteNoSourceRelease(t *testing.T) {
	f := newFixture(t)

	f.cauldron.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Releases(gomock.Any(), "Staging").Return(nil, nil)
	f.tx.EXPECT().Discard()

	_, err := f.app.Promote(context.Background(), app.PromoteOptions{
		Descriptor:       "walmart:android:17.8.0",
		SourceDeployment: "Staging",
		TargetDeployment: "Production",
		SkipConfirm:      true,
	})
	assert.ErrorIs(t, err, domain.ErrReleaseNotFound)
}

func TestPromoteSameDeployment(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Promote(context.Background(), app.PromoteOptions{
		Descriptor:       "walmart:android:17.8.0",
		SourceDeployment: "Staging",
		TargetDeployment: "Staging",
		SkipConfirm:      true,
	})
	assert.ErrorContains(t, err, "same")
}
