package release

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civitrans/ptagen/internal/execx"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/internal/logging"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    string
		wantErr bool
	}{
		{tag: "v0.2.5", want: "0.2.5"},
		{tag: "0.2.5", want: "0.2.5"},
		{tag: "v1.0.0-rc.1", want: "1.0.0-rc.1"},
		{tag: "v1.2.3+build.7", want: "1.2.3+build.7"},
		{tag: "release-1", wantErr: true},
		{tag: "v1.2", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "vv1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := NormalizeTag(tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ptagen.ErrInvalidTag))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// buildRunner simulates the build command by dropping artifacts into dist,
// and records every invocation with its environment pins.
type buildRunner struct {
	fsys      filesystem.Provider
	artifacts []string
	calls     []string
	envs      [][]string
	fail      map[string]error
}

func (r *buildRunner) Run(name string, args []string, opts execx.Options) error {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	r.envs = append(r.envs, opts.ExtraEnv)
	if err := r.fail[name]; err != nil {
		return err
	}
	if name == "make" {
		for _, artifact := range r.artifacts {
			if err := r.fsys.WriteFile("/dist/"+artifact, []byte("binary")); err != nil {
				return err
			}
		}
	}
	return nil
}

func newPreflightFixture(t *testing.T, artifacts []string, driftFn func() (ptagen.DriftReport, error)) (*Preflight, *buildRunner, *filesystem.MemoryFileSystem) {
	t.Helper()

	mfs := filesystem.NewMemoryFileSystem()
	runner := &buildRunner{fsys: mfs, artifacts: artifacts, fail: map[string]error{}}
	p := NewPreflight(mfs, runner, logging.NewNullLogger(), "/dist",
		[]string{"make", "dist"}, []string{"make", "test"}, driftFn)
	return p, runner, mfs
}

func TestPreflightRun(t *testing.T) {
	p, runner, _ := newPreflightFixture(t, []string{
		"ptagen_0.2.5_linux_amd64.tar.gz",
		"ptagen_0.2.5_darwin_arm64.tar.gz",
		"checksums.txt",
	}, nil)

	require.NoError(t, p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5"}))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "make dist", runner.calls[0])
	assert.Contains(t, runner.envs[0], ptagen.BuildVersionEnv+"=0.2.5")
}

func TestPreflightRun_StaleDistCleaned(t *testing.T) {
	p, _, mfs := newPreflightFixture(t, []string{"ptagen_0.3.0_linux_amd64.tar.gz"}, nil)
	mfs.AddFile("/dist/ptagen_0.2.5_linux_amd64.tar.gz", "stale")

	require.NoError(t, p.Run(ptagen.ReleaseOptions{Tag: "v0.3.0"}))

	_, err := mfs.ReadFile("/dist/ptagen_0.2.5_linux_amd64.tar.gz")
	assert.Error(t, err)
}

func TestPreflightRun_VersionMismatch(t *testing.T) {
	p, _, _ := newPreflightFixture(t, []string{"ptagen_0.2.4_linux_amd64.tar.gz"}, nil)

	err := p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrVersionMismatch))
	assert.Contains(t, err.Error(), "0.2.4")
	assert.Contains(t, err.Error(), "0.2.5")
}

func TestPreflightRun_NoArchives(t *testing.T) {
	p, _, _ := newPreflightFixture(t, []string{"checksums.txt"}, nil)

	err := p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrVersionMismatch))
}

func TestPreflightRun_InvalidTagRejectedBeforeBuild(t *testing.T) {
	p, runner, _ := newPreflightFixture(t, nil, nil)

	err := p.Run(ptagen.ReleaseOptions{Tag: "release-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrInvalidTag))
	assert.Empty(t, runner.calls)
}

func TestPreflightRun_DriftGateBlocks(t *testing.T) {
	driftFn := func() (ptagen.DriftReport, error) {
		return ptagen.DriftReport{{Kind: ptagen.DriftModified, Path: "ptag_gen.go"}}, nil
	}
	p, runner, _ := newPreflightFixture(t, []string{"ptagen_0.2.5_linux_amd64.tar.gz"}, driftFn)

	err := p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5", EnsureTypes: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ptagen.ErrDriftDetected))
	assert.Empty(t, runner.calls, "build must not run with drifted types")
}

func TestPreflightRun_DriftGatePasses(t *testing.T) {
	driftFn := func() (ptagen.DriftReport, error) { return nil, nil }
	p, _, _ := newPreflightFixture(t, []string{"ptagen_0.2.5_linux_amd64.tar.gz"}, driftFn)

	require.NoError(t, p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5", EnsureTypes: true}))
}

func TestPreflightRun_TestGate(t *testing.T) {
	p, runner, _ := newPreflightFixture(t, []string{"ptagen_0.2.5_linux_amd64.tar.gz"}, nil)

	require.NoError(t, p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5", RunTests: true}))
	assert.Contains(t, runner.calls, "make test")
}

func TestPreflightRun_TestFailureAborts(t *testing.T) {
	p, runner, _ := newPreflightFixture(t, []string{"ptagen_0.2.5_linux_amd64.tar.gz"}, nil)
	runner.fail["go"] = errors.New("exit status 1")
	p.testCommand = []string{"go", "test", "./..."}

	err := p.Run(ptagen.ReleaseOptions{Tag: "v0.2.5", RunTests: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test suite failed")
}
