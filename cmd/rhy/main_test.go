package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rhy/internal/adapters/config"
	"go.trai.ch/rhy/internal/adapters/fs"
	"go.trai.ch/rhy/internal/adapters/telemetry"
	"go.trai.ch/rhy/internal/app"
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports/mocks"
	"go.trai.ch/rhy/internal/engine/poller"
	"go.uber.org/mock/gomock"
)

func newMockApp(ctrl *gomock.Controller) (*app.App, *mocks.MockConfigStore, *mocks.MockLogger) {
	store := mocks.NewMockConfigStore(ctrl)
	mapper := mocks.NewMockPathMapper(ctrl)
	probe := mocks.NewMockFreshnessProbe(ctrl)
	invalidator := mocks.NewMockCacheInvalidator(ctrl)
	log := mocks.NewMockLogger(ctrl)
	p := poller.New(mapper, invalidator, probe, log)

	a := app.New(store, mapper, probe, invalidator, p, telemetry.NewNoOp(), log).
		WithProgressOutput(io.Discard)
	return a, store, log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, _, mockLogger := newMockApp(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "rhy version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, mockStore, mockLogger := newMockApp(ctrl)

	loadErr := errors.New("load failed")
	mockStore.EXPECT().Load().Return(domain.Config{}, loadErr)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"cache-path", "/remote/a.txt"}, io.Discard, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_EndToEnd runs the real adapters against a temporary mount and cache.
func TestRun_EndToEnd(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	mount := filepath.Join(root, "remote")
	cacheDir := filepath.Join(root, "rcache")
	require.NoError(t, os.MkdirAll(filepath.Join(mount, "docs"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "vfs", "docs"), 0o750))

	source := filepath.Join(mount, "docs", "a.txt")
	cached := filepath.Join(cacheDir, "vfs", "docs", "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("fresh"), 0o600))
	require.NoError(t, os.WriteFile(cached, []byte("stale"), 0o600))

	configPath := filepath.Join(root, "config.yaml")

	provider := func(_ context.Context) (*app.Components, func(), error) {
		mockLogger := mocks.NewMockLogger(gomock.NewController(t))
		mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
		mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

		filesystem := fs.NewLocal()
		walker := fs.NewWalker(filesystem)
		mapper := fs.NewMapper()
		probe := fs.NewProbe(filesystem)
		invalidator := fs.NewInvalidator(filesystem, walker)
		store := config.NewFileStore(configPath, mockLogger)
		p := poller.New(mapper, invalidator, probe, mockLogger)

		a := app.New(store, mapper, probe, invalidator, p, telemetry.NewNoOp(), mockLogger).
			WithProgressOutput(io.Discard)
		return &app.Components{App: a, Logger: mockLogger}, func() {}, nil
	}

	exec := func(args ...string) (int, string) {
		stdout := new(bytes.Buffer)
		code := run(context.Background(), append([]string{"--config", configPath}, args...), stdout, io.Discard, provider)
		return code, stdout.String()
	}

	code, _ := exec("mount-path", mount)
	require.Equal(t, 0, code)
	code, _ = exec("cache-dir", cacheDir)
	require.Equal(t, 0, code)

	code, out := exec("cache-path", source)
	require.Equal(t, 0, code)
	assert.Equal(t, cached+"\n", out)

	code, out = exec("-r", source)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Cache removed: "+cached)
	assert.Contains(t, out, "Updated before")
	assert.NoFileExists(t, cached)

	code, out = exec("refresh", source)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Cache not exists: "+cached)

	code, out = exec("refresh", "--timeout", "1h", source)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Detecting change of "+source+" within past 1h")

	code, out = exec("-a")
	require.Equal(t, 0, code)
	assert.Equal(t, "Cache removed: 0 files\n", out)
	assert.DirExists(t, filepath.Join(cacheDir, "vfs", "docs"))

	code, _ = exec("state", filepath.Join(mount, "missing.txt"))
	assert.Equal(t, 1, code)
}
