package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type RateLimit struct {
	searchInterval time.Duration
	coreInterval   time.Duration
	lowWatermark   int64
	cooldown       time.Duration
}

func (x *RateLimit) Flags() []cli.Flag {
	def := github.DefaultGovernorConfig()
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "search-interval",
			Usage:       "Minimum spacing between two search API calls",
			Category:    "Rate limit",
			Value:       def.SearchInterval,
			Destination: &x.searchInterval,
			Sources:     cli.EnvVars("COPYCAT_SEARCH_INTERVAL"),
		},
		&cli.DurationFlag{
			Name:        "core-interval",
			Usage:       "Minimum spacing between two core API calls",
			Category:    "Rate limit",
			Value:       def.CoreInterval,
			Destination: &x.coreInterval,
			Sources:     cli.EnvVars("COPYCAT_CORE_INTERVAL"),
		},
		&cli.Int64Flag{
			Name:        "rate-low-watermark",
			Usage:       "Remaining quota below which every call is delayed by the cooldown",
			Category:    "Rate limit",
			Value:       int64(def.LowWatermark),
			Destination: &x.lowWatermark,
			Sources:     cli.EnvVars("COPYCAT_RATE_LOW_WATERMARK"),
		},
		&cli.DurationFlag{
			Name:        "rate-cooldown",
			Usage:       "Delay applied while the remaining quota is low",
			Category:    "Rate limit",
			Value:       def.Cooldown,
			Destination: &x.cooldown,
			Sources:     cli.EnvVars("COPYCAT_RATE_COOLDOWN"),
		},
	}
}

func (x *RateLimit) GovernorConfig() github.GovernorConfig {
	cfg := github.DefaultGovernorConfig()
	if x.searchInterval > 0 {
		cfg.SearchInterval = x.searchInterval
	}
	if x.coreInterval > 0 {
		cfg.CoreInterval = x.coreInterval
	}
	if x.lowWatermark > 0 {
		cfg.LowWatermark = int(x.lowWatermark)
	}
	if x.cooldown > 0 {
		cfg.Cooldown = x.cooldown
	}
	return cfg
}

func (x RateLimit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("SearchInterval", x.searchInterval),
		slog.Duration("CoreInterval", x.coreInterval),
		slog.Int64("LowWatermark", x.lowWatermark),
		slog.Duration("Cooldown", x.cooldown),
	)
}
