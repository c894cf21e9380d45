package github

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"
)

// Quota is the remaining budget of a quota class
type Quota struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// QuotaFunc reports the current quota of a class
type QuotaFunc func(ctx context.Context, class types.QuotaClass) (*Quota, error)

// GovernorConfig controls pacing of outbound API calls
type GovernorConfig struct {
	// SearchInterval and CoreInterval are the minimum spacing between two calls of the class
	SearchInterval time.Duration
	CoreInterval   time.Duration

	// LowWatermark is the remaining quota below which every call waits Cooldown
	LowWatermark int
	Cooldown     time.Duration

	// Fallback is the wait applied when the quota cannot be queried
	Fallback time.Duration

	// ResetBuffer is added to the reported reset time of an exhausted quota
	ResetBuffer time.Duration
}

func DefaultGovernorConfig() GovernorConfig {
	return GovernorConfig{
		SearchInterval: 2100 * time.Millisecond,
		CoreInterval:   100 * time.Millisecond,
		LowWatermark:   10,
		Cooldown:       5 * time.Second,
		Fallback:       time.Second,
		ResetBuffer:    time.Second,
	}
}

// Governor paces outbound calls per quota class. Its state is process-wide and
// shared by every caller of the gateway.
type Governor struct {
	cfg      GovernorConfig
	quota    QuotaFunc
	limiters map[types.QuotaClass]*rate.Limiter
	sleep    func(ctx context.Context, d time.Duration) error
	now      func() time.Time
}

type GovernorOption func(*Governor)

// WithSleeper replaces the function used to suspend the caller
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) GovernorOption {
	return func(x *Governor) {
		x.sleep = sleep
	}
}

func WithClock(now func() time.Time) GovernorOption {
	return func(x *Governor) {
		x.now = now
	}
}

func NewGovernor(quota QuotaFunc, cfg GovernorConfig, opts ...GovernorOption) *Governor {
	g := &Governor{
		cfg:   cfg,
		quota: quota,
		limiters: map[types.QuotaClass]*rate.Limiter{
			types.QuotaSearch: rate.NewLimiter(rate.Every(cfg.SearchInterval), 1),
			types.QuotaCore:   rate.NewLimiter(rate.Every(cfg.CoreInterval), 1),
		},
		sleep: sleepContext,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Await blocks until a call of the class may be issued. Only a cancelled context
// is reported as an error; a failing quota query degrades to a fixed wait.
func (x *Governor) Await(ctx context.Context, class types.QuotaClass) error {
	limiter, ok := x.limiters[class]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "unknown quota class", goerr.V("class", class))
	}

	started := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "interrupted while pacing", goerr.V("class", class))
	}
	metrics.GovernorWait.WithLabelValues(string(class), "pacing").Observe(time.Since(started).Seconds())

	wait, reason := x.quotaWait(ctx, class)
	if wait <= 0 {
		return nil
	}

	metrics.GovernorWait.WithLabelValues(string(class), reason).Observe(wait.Seconds())
	if err := x.sleep(ctx, wait); err != nil {
		return goerr.Wrap(err, "interrupted while waiting for quota", goerr.V("class", class), goerr.V("reason", reason))
	}
	return nil
}

func (x *Governor) quotaWait(ctx context.Context, class types.QuotaClass) (time.Duration, string) {
	logger := logging.From(ctx)

	quota, err := x.quota(ctx, class)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ""
		}
		logger.Warn("failed to query rate limit, slowing down",
			slog.String("class", string(class)),
			slog.Any("error", err),
		)
		return x.cfg.Fallback, "fallback"
	}

	switch {
	case quota.Remaining <= 0:
		wait := quota.Reset.Sub(x.now()) + x.cfg.ResetBuffer
		logger.Info("rate limit exhausted, waiting for reset",
			slog.String("class", string(class)),
			slog.Time("reset", quota.Reset),
			slog.Duration("wait", wait),
		)
		return wait, "exhausted"

	case quota.Remaining < x.cfg.LowWatermark:
		logger.Info("rate limit low, slowing down",
			slog.String("class", string(class)),
			slog.Int("remaining", quota.Remaining),
		)
		return x.cfg.Cooldown, "low"
	}

	return 0, ""
}
