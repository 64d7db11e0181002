// Package poller implements the bounded settle loop that waits for a source file to stop changing.
package poller

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/zerr"
)

// SettleOptions bounds a settle poll. At least one of MaxWait and MaxTicks must be positive.
type SettleOptions struct {
	// Window is the age below which the source counts as settled.
	Window time.Duration
	// Interval is the delay between two ticks. Zero means domain.DefaultPollInterval.
	Interval time.Duration
	// MaxWait aborts the poll once this much time has elapsed.
	MaxWait time.Duration
	// MaxTicks aborts the poll after this many unsettled ticks.
	MaxTicks int
}

// Poller repeatedly invalidates the cache of a source file and probes its age
// until the age falls inside the settle window or a ceiling is reached.
type Poller struct {
	mapper      ports.PathMapper
	invalidator ports.CacheInvalidator
	probe       ports.FreshnessProbe
	logger      ports.Logger
	now         func() time.Time
}

// New creates a new Poller.
func New(
	mapper ports.PathMapper,
	invalidator ports.CacheInvalidator,
	probe ports.FreshnessProbe,
	log ports.Logger,
) *Poller {
	return &Poller{
		mapper:      mapper,
		invalidator: invalidator,
		probe:       probe,
		logger:      log,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for ages and elapsed time.
func (p *Poller) WithClock(now func() time.Time) *Poller {
	p.now = now
	return p
}

// Settle polls source until it settles. The vertex carried by ctx, if any, receives one Tick per unsettled probe.
//
// Invalidation on each tick is best effort and its errors are only logged.
// Probe errors abort the loop and are returned as is.
func (p *Poller) Settle(
	ctx context.Context,
	source string,
	cfg domain.Config,
	opts SettleOptions,
) (domain.SettleResult, error) {
	result := domain.SettleResult{State: domain.StatePolling}

	if opts.MaxWait <= 0 && opts.MaxTicks <= 0 {
		result.State = domain.StateAborted
		return result, zerr.Wrap(domain.ErrUnboundedPoll, "refusing to poll")
	}
	if opts.Interval <= 0 {
		opts.Interval = domain.DefaultPollInterval
	}

	cachePath, err := p.mapper.CachePath(cfg, source)
	if err != nil {
		result.State = domain.StateAborted
		return result, err
	}
	result.CachePath = cachePath

	vertex, hasVertex := ports.VertexFromContext(ctx)
	start := p.now()

	for {
		if _, err := p.invalidator.InvalidateOne(cachePath); err != nil {
			msg := "ignoring invalidation failure: " + err.Error()
			p.logger.Debug(msg)
			if hasVertex {
				vertex.Log(domain.LogLevelDebug, msg)
			}
		}

		now := p.now()
		result.Elapsed = now.Sub(start)

		age, err := p.probe.Age(source, now)
		if err != nil {
			result.State = domain.StateAborted
			return result, err
		}
		result.Age = age

		if age < opts.Window {
			result.State = domain.StateSettled
			return result, nil
		}

		result.Ticks++
		if hasVertex {
			vertex.Tick()
		}

		if ceilingReached(result, opts) {
			result.State = domain.StateAborted
			return result, timeoutError(source, result)
		}

		if err := sleep(ctx, nextDelay(result, opts)); err != nil {
			result.State = domain.StateAborted
			return result, errors.Join(timeoutError(source, result), err)
		}
	}
}

func ceilingReached(r domain.SettleResult, opts SettleOptions) bool {
	if opts.MaxWait > 0 && r.Elapsed >= opts.MaxWait {
		return true
	}
	return opts.MaxTicks > 0 && r.Ticks >= opts.MaxTicks
}

// nextDelay is the poll interval, shortened so the next probe lands no later than MaxWait.
func nextDelay(r domain.SettleResult, opts SettleOptions) time.Duration {
	if opts.MaxWait > 0 {
		return min(opts.Interval, opts.MaxWait-r.Elapsed)
	}
	return opts.Interval
}

func timeoutError(source string, r domain.SettleResult) error {
	err := zerr.Wrap(domain.ErrTimeoutExceeded, "file did not settle")
	err = zerr.With(err, "path", source)
	err = zerr.With(err, "ticks", r.Ticks)
	return zerr.With(err, "age", r.Age.String())
}

// sleep blocks for d or until ctx is done, returning the context's cause in the latter case.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}
