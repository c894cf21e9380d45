package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Scan holds the time bounds of platform-wide scans
type Scan struct {
	cfg usecase.ScanConfig
}

func (x *Scan) Flags() []cli.Flag {
	def := usecase.DefaultScanConfig()
	x.cfg = def

	duration := func(name, usage, env string, dst *time.Duration, value time.Duration) cli.Flag {
		return &cli.DurationFlag{
			Name:        name,
			Usage:       usage,
			Category:    "Scan",
			Value:       value,
			Destination: dst,
			Sources:     cli.EnvVars(env),
		}
	}

	return []cli.Flag{
		duration("check-timeout", "Time bound of one candidate check", "COPYCAT_CHECK_TIMEOUT", &x.cfg.CheckTimeout, def.CheckTimeout),
		duration("index-timeout", "Time bound of indexing one candidate", "COPYCAT_INDEX_TIMEOUT", &x.cfg.IndexTimeout, def.IndexTimeout),
		duration("match-timeout", "Time bound of matching one candidate", "COPYCAT_MATCH_TIMEOUT", &x.cfg.MatchTimeout, def.MatchTimeout),
		duration("repo-scan-timeout", "Time bound of a platform-wide scan of one profile repository", "COPYCAT_REPO_SCAN_TIMEOUT", &x.cfg.RepoScanTimeout, def.RepoScanTimeout),
		duration("session-stuck-after", "Inactivity after which a profile scan is forced to completion", "COPYCAT_SESSION_STUCK_AFTER", &x.cfg.SessionStuckAfter, def.SessionStuckAfter),
		duration("repo-stuck-after", "Inactivity after which a processing repository is forced to completion", "COPYCAT_REPO_STUCK_AFTER", &x.cfg.RepoStuckAfter, def.RepoStuckAfter),
		&cli.IntFlag{
			Name:        "candidate-limit",
			Usage:       "Maximum candidates checked per platform-wide scan",
			Category:    "Scan",
			Value:       def.CandidateLimit,
			Destination: &x.cfg.CandidateLimit,
			Sources:     cli.EnvVars("COPYCAT_CANDIDATE_LIMIT"),
		},
		&cli.IntFlag{
			Name:        "min-matches",
			Usage:       "Matching commits a candidate needs before it is indexed",
			Category:    "Scan",
			Value:       def.MinMatches,
			Destination: &x.cfg.MinMatches,
			Sources:     cli.EnvVars("COPYCAT_MIN_MATCHES"),
		},
	}
}

func (x *Scan) Config() usecase.ScanConfig {
	return x.cfg
}

func (x *Scan) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("CheckTimeout", x.cfg.CheckTimeout),
		slog.Duration("IndexTimeout", x.cfg.IndexTimeout),
		slog.Duration("MatchTimeout", x.cfg.MatchTimeout),
		slog.Duration("RepoScanTimeout", x.cfg.RepoScanTimeout),
		slog.Int("CandidateLimit", x.cfg.CandidateLimit),
		slog.Int("MinMatches", x.cfg.MinMatches),
	)
}
