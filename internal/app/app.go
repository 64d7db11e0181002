// Package app implements the application layer for rhy.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/rhy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/rhy/internal/engine/poller"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store       ports.ConfigStore
	mapper      ports.PathMapper
	probe       ports.FreshnessProbe
	invalidator ports.CacheInvalidator
	poller      *poller.Poller
	telemetry   ports.Telemetry
	logger      ports.Logger
	progressOut io.Writer
	now         func() time.Time
}

// New creates a new App instance.
func New(
	store ports.ConfigStore,
	mapper ports.PathMapper,
	probe ports.FreshnessProbe,
	invalidator ports.CacheInvalidator,
	p *poller.Poller,
	tel ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		store:       store,
		mapper:      mapper,
		probe:       probe,
		invalidator: invalidator,
		poller:      p,
		telemetry:   tel,
		logger:      log,
		progressOut: os.Stderr,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for ages.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	if a.poller != nil {
		a.poller.WithClock(now)
	}
	return a
}

// WithProgressOutput sets where plain progress is written when Configure switches modes.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progressOut = w
	return a
}

// Settings carries the global CLI flags.
type Settings struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Progress   string
}

type levelSetter interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enable bool)
}

type pathSetter interface {
	SetPath(path string)
}

// Configure applies the global flags to the logger, the config store and the progress reporter.
func (a *App) Configure(s Settings) error {
	if ls, ok := a.logger.(levelSetter); ok {
		if s.LogLevel != "" {
			ls.SetLevel(domain.ParseLogLevel(s.LogLevel))
		}
		switch s.LogFormat {
		case "", "text":
			ls.SetJSON(false)
		case "json":
			ls.SetJSON(true)
		default:
			return zerr.With(zerr.New("unknown log format, expected text or json"), "log_format", s.LogFormat)
		}
	}

	if s.ConfigPath != "" {
		ps, ok := a.store.(pathSetter)
		if !ok {
			return zerr.New("config store does not support a custom path")
		}
		ps.SetPath(s.ConfigPath)
	}

	if s.Progress != "" {
		mode, err := telemetry.ParseMode(s.Progress)
		if err != nil {
			return err
		}
		a.telemetry = telemetry.New(mode, a.progressOut)
	}

	return nil
}

func (a *App) loadConfig() (domain.Config, error) {
	cfg, err := a.store.Load()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// resolve loads the configuration and maps source to its cache path.
func (a *App) resolve(source string) (domain.Config, string, string, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return domain.Config{}, "", "", err
	}

	src, err := a.mapper.Canonicalize(source)
	if err != nil {
		return domain.Config{}, "", "", err
	}

	cachePath, err := a.mapper.CachePath(cfg, src)
	if err != nil {
		return domain.Config{}, "", "", err
	}

	return cfg, src, cachePath, nil
}

// CachePath returns the mirror path of source.
func (a *App) CachePath(_ context.Context, source string) (string, error) {
	_, _, cachePath, err := a.resolve(source)
	return cachePath, err
}

// State probes source and reports how long ago it was last modified.
func (a *App) State(_ context.Context, source string) (StateReport, error) {
	src, err := a.mapper.Canonicalize(source)
	if err != nil {
		return StateReport{}, err
	}

	mtime, err := a.probe.ModTime(src)
	if err != nil {
		return StateReport{}, err
	}

	age, err := a.probe.Age(src, a.now())
	if err != nil {
		return StateReport{}, err
	}

	return StateReport{Source: src, ModTime: mtime, Age: age}, nil
}

// RefreshOptions configuration for the Refresh method.
type RefreshOptions struct {
	Verbose bool
	// Window enables settling when set, using the <number><s|m|min|h> grammar.
	Window   string
	Interval time.Duration
	MaxWait  time.Duration
}

// Refresh invalidates the cache of source and probes its age.
// With a window it keeps invalidating until the source has settled.
func (a *App) Refresh(ctx context.Context, source string, opts RefreshOptions) (RefreshReport, error) {
	var window time.Duration
	if opts.Window != "" {
		w, err := domain.ParseWindow(opts.Window)
		if err != nil {
			return RefreshReport{}, err
		}
		window = w
	}

	cfg, src, cachePath, err := a.resolve(source)
	if err != nil {
		return RefreshReport{}, err
	}

	if opts.Window == "" {
		return a.refreshOnce(src, cachePath, opts.Verbose)
	}

	maxWait := opts.MaxWait
	if maxWait <= 0 {
		maxWait = domain.DefaultMaxWait
	}

	ctx, vertex := a.telemetry.Record(ctx, src)
	if opts.Verbose {
		_, _ = fmt.Fprintf(vertex.Stdout(), "invalidating %s until %s settles within %s\n", cachePath, src, window)
	}
	res, err := a.poller.Settle(ctx, src, cfg, poller.SettleOptions{
		Window:   window,
		Interval: opts.Interval,
		MaxWait:  maxWait,
	})
	vertex.Complete(err)
	if closeErr := a.telemetry.Close(); closeErr != nil {
		a.logger.Debug("failed to close progress: " + closeErr.Error())
	}

	report := RefreshReport{
		Source:    src,
		CachePath: cachePath,
		Age:       res.Age,
		Settle:    &res,
	}
	if err != nil {
		return report, err
	}

	if opts.Verbose {
		a.logger.Info("settled " + src + " after " + res.Elapsed.String())
	}
	return report, nil
}

func (a *App) refreshOnce(src, cachePath string, verbose bool) (RefreshReport, error) {
	outcome, err := a.invalidator.InvalidateOne(cachePath)
	if err != nil {
		return RefreshReport{}, err
	}
	if verbose {
		a.logger.Info(outcome.String() + ": " + cachePath)
	}

	age, err := a.probe.Age(src, a.now())
	if err != nil {
		return RefreshReport{}, err
	}

	return RefreshReport{
		Source:    src,
		CachePath: cachePath,
		Outcome:   outcome,
		Age:       age,
	}, nil
}

// RefreshAll deletes every cached file below the cache root and returns how many were removed.
// A missing cache root is reported as a warning and counts as zero.
func (a *App) RefreshAll(_ context.Context) (int, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return 0, err
	}

	root, err := a.mapper.CacheRoot(cfg)
	if err != nil {
		return 0, err
	}

	n, err := a.invalidator.InvalidateAll(root)
	if errors.Is(err, domain.ErrCacheRootMissing) {
		a.logger.Warn("cache root " + root + " does not exist, nothing to invalidate")
		return 0, nil
	}
	if err != nil {
		return n, zerr.With(zerr.Wrap(err, "failed to invalidate cache"), "removed", n)
	}

	return n, nil
}

// GetConfig returns the stored value of key.
func (a *App) GetConfig(_ context.Context, key string) (string, error) {
	k, err := domain.ParseConfigKey(key)
	if err != nil {
		return "", err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}

	return cfg.Get(k)
}

// SetConfig stores value under key and returns the updated configuration.
func (a *App) SetConfig(_ context.Context, key, value string) (domain.Config, error) {
	k, err := domain.ParseConfigKey(key)
	if err != nil {
		return domain.Config{}, err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return domain.Config{}, err
	}

	updated, err := cfg.With(k, value)
	if err != nil {
		return domain.Config{}, err
	}

	if err := a.store.Save(updated); err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to save configuration")
	}

	a.logger.Debug("set " + string(k) + " to " + value)
	return updated, nil
}

// Info reports the configuration file location and its values.
func (a *App) Info(_ context.Context) (InfoReport, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return InfoReport{}, err
	}

	report := InfoReport{ConfigPath: a.store.Path(), Config: cfg}

	root, err := a.mapper.CacheRoot(cfg)
	if err != nil {
		a.logger.Debug("cache root unavailable: " + err.Error())
		return report, nil
	}
	report.CacheRoot = root

	return report, nil
}
