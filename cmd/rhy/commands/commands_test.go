package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rhy/cmd/rhy/commands"
	"go.trai.ch/rhy/internal/app"
	"go.trai.ch/rhy/internal/core/domain"
)

type mockApp struct {
	configureFunc  func(s app.Settings) error
	cachePathFunc  func(ctx context.Context, source string) (string, error)
	stateFunc      func(ctx context.Context, source string) (app.StateReport, error)
	refreshFunc    func(ctx context.Context, source string, opts app.RefreshOptions) (app.RefreshReport, error)
	refreshAllFunc func(ctx context.Context) (int, error)
	getConfigFunc  func(ctx context.Context, key string) (string, error)
	setConfigFunc  func(ctx context.Context, key, value string) (domain.Config, error)
	infoFunc       func(ctx context.Context) (app.InfoReport, error)
}

func (m *mockApp) Configure(s app.Settings) error {
	if m.configureFunc != nil {
		return m.configureFunc(s)
	}
	return nil
}

func (m *mockApp) CachePath(ctx context.Context, source string) (string, error) {
	if m.cachePathFunc != nil {
		return m.cachePathFunc(ctx, source)
	}
	panic("CachePath should not be called")
}

func (m *mockApp) State(ctx context.Context, source string) (app.StateReport, error) {
	if m.stateFunc != nil {
		return m.stateFunc(ctx, source)
	}
	panic("State should not be called")
}

func (m *mockApp) Refresh(ctx context.Context, source string, opts app.RefreshOptions) (app.RefreshReport, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, source, opts)
	}
	panic("Refresh should not be called")
}

func (m *mockApp) RefreshAll(ctx context.Context) (int, error) {
	if m.refreshAllFunc != nil {
		return m.refreshAllFunc(ctx)
	}
	panic("RefreshAll should not be called")
}

func (m *mockApp) GetConfig(ctx context.Context, key string) (string, error) {
	if m.getConfigFunc != nil {
		return m.getConfigFunc(ctx, key)
	}
	panic("GetConfig should not be called")
}

func (m *mockApp) SetConfig(ctx context.Context, key, value string) (domain.Config, error) {
	if m.setConfigFunc != nil {
		return m.setConfigFunc(ctx, key, value)
	}
	panic("SetConfig should not be called")
}

func (m *mockApp) Info(ctx context.Context) (app.InfoReport, error) {
	if m.infoFunc != nil {
		return m.infoFunc(ctx)
	}
	panic("Info should not be called")
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	var captured app.Settings
	m := &mockApp{
		configureFunc: func(s app.Settings) error {
			captured = s
			return nil
		},
		cachePathFunc: func(_ context.Context, _ string) (string, error) {
			return "/data/rcache/vfs/a.txt", nil
		},
	}

	_, err := execute(t, m,
		"--config", "/tmp/rhy.yaml", "--log-level", "debug", "--log-format", "json", "--progress", "tape",
		"cache-path", "/remote/a.txt")
	require.NoError(t, err)

	assert.Equal(t, app.Settings{
		ConfigPath: "/tmp/rhy.yaml",
		LogLevel:   "debug",
		LogFormat:  "json",
		Progress:   "tape",
	}, captured)
}

func TestCommands_ConfigureError(t *testing.T) {
	m := &mockApp{
		configureFunc: func(_ app.Settings) error {
			return errors.New("bad progress")
		},
	}

	_, err := execute(t, m, "--progress", "fancy", "cache-path", "/remote/a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad progress")
}

func TestCommands_State(t *testing.T) {
	m := &mockApp{
		stateFunc: func(_ context.Context, source string) (app.StateReport, error) {
			assert.Equal(t, "/remote/a.txt", source)
			return app.StateReport{Source: source, Age: 90 * time.Second}, nil
		},
	}

	for _, args := range [][]string{
		{"state", "/remote/a.txt"},
		{"-s", "/remote/a.txt"},
		{"--state", "/remote/a.txt"},
	} {
		out, err := execute(t, m, args...)
		require.NoError(t, err)
		assert.Equal(t, "Updated before 1m30s\n", out)
	}
}

func TestCommands_StateError(t *testing.T) {
	m := &mockApp{
		stateFunc: func(_ context.Context, _ string) (app.StateReport, error) {
			return app.StateReport{}, domain.ErrPathNotFound
		},
	}

	out, err := execute(t, m, "state", "/remote/missing")
	require.ErrorIs(t, err, domain.ErrPathNotFound)
	assert.Empty(t, out)
}

func TestCommands_Refresh(t *testing.T) {
	t.Run("reports removal", func(t *testing.T) {
		m := &mockApp{
			refreshFunc: func(_ context.Context, _ string, opts app.RefreshOptions) (app.RefreshReport, error) {
				assert.Empty(t, opts.Window)
				return app.RefreshReport{
					CachePath: "/data/rcache/vfs/a.txt",
					Outcome:   domain.OutcomeRemoved,
					Age:       2 * time.Second,
				}, nil
			},
		}

		out, err := execute(t, m, "refresh", "/remote/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "Cache removed: /data/rcache/vfs/a.txt\nUpdated before 2s\n", out)
	})

	t.Run("reports missing cache via shortcut", func(t *testing.T) {
		m := &mockApp{
			refreshFunc: func(_ context.Context, source string, _ app.RefreshOptions) (app.RefreshReport, error) {
				assert.Equal(t, "/remote/a.txt", source)
				return app.RefreshReport{
					CachePath: "/data/rcache/vfs/a.txt",
					Outcome:   domain.OutcomeNotFound,
					Age:       time.Minute,
				}, nil
			},
		}

		out, err := execute(t, m, "-r", "/remote/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "Cache not exists: /data/rcache/vfs/a.txt\nUpdated before 1m0s\n", out)
	})

	t.Run("wires settle flags", func(t *testing.T) {
		var captured app.RefreshOptions
		m := &mockApp{
			refreshFunc: func(_ context.Context, _ string, opts app.RefreshOptions) (app.RefreshReport, error) {
				captured = opts
				res := domain.SettleResult{State: domain.StateSettled, Age: 3 * time.Second}
				return app.RefreshReport{Age: res.Age, Settle: &res}, nil
			},
		}

		out, err := execute(t, m, "refresh", "/remote/a.txt",
			"-T", "5 min", "--max-wait", "10m", "--interval", "1s", "-v")
		require.NoError(t, err)

		assert.Equal(t, app.RefreshOptions{
			Verbose:  true,
			Window:   "5 min",
			Interval: time.Second,
			MaxWait:  10 * time.Minute,
		}, captured)
		assert.Equal(t, "Detecting change of /remote/a.txt within past 5 min\nUpdated before 3s\n", out)
	})

	t.Run("timeout-auto uses the auto window", func(t *testing.T) {
		var captured app.RefreshOptions
		m := &mockApp{
			refreshFunc: func(_ context.Context, _ string, opts app.RefreshOptions) (app.RefreshReport, error) {
				captured = opts
				return app.RefreshReport{Settle: &domain.SettleResult{}}, nil
			},
		}

		_, err := execute(t, m, "-r", "/remote/a.txt", "-t")
		require.NoError(t, err)
		assert.Equal(t, domain.AutoWindow, captured.Window)
		assert.Equal(t, domain.DefaultMaxWait, captured.MaxWait)
		assert.Equal(t, domain.DefaultPollInterval, captured.Interval)
	})

	t.Run("timeout flags are exclusive", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "refresh", "/remote/a.txt", "-T", "20s", "-t")
		require.Error(t, err)
	})

	t.Run("timeout without refresh is rejected", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "-T", "20s")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--refresh")
	})

	t.Run("propagates timeout", func(t *testing.T) {
		m := &mockApp{
			refreshFunc: func(_ context.Context, _ string, _ app.RefreshOptions) (app.RefreshReport, error) {
				return app.RefreshReport{}, domain.ErrTimeoutExceeded
			},
		}

		_, err := execute(t, m, "refresh", "/remote/a.txt", "-T", "0s")
		require.ErrorIs(t, err, domain.ErrTimeoutExceeded)
	})
}

func TestCommands_RefreshAll(t *testing.T) {
	m := &mockApp{
		refreshAllFunc: func(_ context.Context) (int, error) {
			return 7, nil
		},
	}

	for _, args := range [][]string{{"refresh-all"}, {"-a"}} {
		out, err := execute(t, m, args...)
		require.NoError(t, err)
		assert.Equal(t, "Cache removed: 7 files\n", out)
	}
}

func TestCommands_ShortcutsAreExclusive(t *testing.T) {
	_, err := execute(t, &mockApp{}, "-s", "/remote/a.txt", "-a")
	require.Error(t, err)
}

func TestCommands_CachePath(t *testing.T) {
	m := &mockApp{
		cachePathFunc: func(_ context.Context, source string) (string, error) {
			assert.Equal(t, "/remote/docs/a.txt", source)
			return "/data/rcache/vfs/docs/a.txt", nil
		},
	}

	out, err := execute(t, m, "cache-path", "/remote/docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/data/rcache/vfs/docs/a.txt\n", out)
}

func TestCommands_ConfigKeys(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		m := &mockApp{
			getConfigFunc: func(_ context.Context, key string) (string, error) {
				assert.Equal(t, "cache_dir", key)
				return "/data/rcache", nil
			},
		}

		out, err := execute(t, m, "cache-dir")
		require.NoError(t, err)
		assert.Equal(t, "/data/rcache\n", out)
	})

	t.Run("set", func(t *testing.T) {
		m := &mockApp{
			setConfigFunc: func(_ context.Context, key, value string) (domain.Config, error) {
				assert.Equal(t, "mount_path", key)
				cfg, err := domain.DefaultConfig().With(domain.KeyMountPath, value)
				return cfg, err
			},
		}

		out, err := execute(t, m, "mount-path", "/mnt/remote")
		require.NoError(t, err)
		assert.Equal(t, "mount_path = /mnt/remote\n", out)
	})

	t.Run("too many args", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "remote-path", "a", "b")
		require.Error(t, err)
	})
}

func TestCommands_Info(t *testing.T) {
	t.Run("prints config", func(t *testing.T) {
		m := &mockApp{
			infoFunc: func(_ context.Context) (app.InfoReport, error) {
				return app.InfoReport{
					ConfigPath: "/home/u/.config/rhy/config.yaml",
					Config:     domain.DefaultConfig(),
					CacheRoot:  "/data/rcache/vfs",
				}, nil
			},
		}

		out, err := execute(t, m, "info")
		require.NoError(t, err)
		assert.Contains(t, out, "Config path: /home/u/.config/rhy/config.yaml\n")
		assert.Contains(t, out, domain.DefaultMountPath)
		assert.Contains(t, out, domain.DefaultCacheDir)
		assert.Contains(t, out, domain.DefaultRemotePath)
		assert.Contains(t, out, "/data/rcache/vfs")
	})

	t.Run("unavailable cache root", func(t *testing.T) {
		m := &mockApp{
			infoFunc: func(_ context.Context) (app.InfoReport, error) {
				return app.InfoReport{Config: domain.DefaultConfig()}, nil
			},
		}

		out, err := execute(t, m, "info")
		require.NoError(t, err)
		assert.Contains(t, out, "(unavailable)")
	})
}

func TestCommands_Help(t *testing.T) {
	out, err := execute(t, &mockApp{})
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "refresh-all")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rhy version dev")

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "rhy version dev (commit: none, date: unknown)")
}
