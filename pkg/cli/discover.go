package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

var defaultSeedLanguages = []string{"javascript", "typescript", "python", "go", "rust", "solidity"}

// discoverCommand enqueues seed repositories. Jobs go to Kafka when it is
// configured; otherwise they are processed here before the command returns.
func discoverCommand() *cli.Command {
	var env environment

	run := func(ctx context.Context, c *cli.Command, enqueue func(ctx context.Context, rt *runtime) (int, error)) error {
		rt, err := env.setup(ctx, publishQueue)
		if err != nil {
			return err
		}
		defer rt.close(ctx)

		added, err := enqueue(ctx, rt)
		if err != nil {
			return err
		}
		logging.From(ctx).Info("seed repositories enqueued", slog.Int("added", added))

		if err := rt.drain(ctx); err != nil {
			return err
		}

		return printJSON(c.Root().Writer, map[string]int{"enqueued": added})
	}

	var (
		languages []string
		minStars  int64
	)
	popular := &cli.Command{
		Name:  "popular",
		Usage: "Enqueue popular repositories per language",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "language",
				Usage:       "Languages to search",
				Value:       defaultSeedLanguages,
				Destination: &languages,
			},
			&cli.Int64Flag{
				Name:        "min-stars",
				Usage:       "Minimum stars of a seed repository",
				Value:       1000,
				Destination: &minStars,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c, func(ctx context.Context, rt *runtime) (int, error) {
				return rt.uc.DiscoverPopular(ctx, languages, int(minStars))
			})
		},
	}

	var within time.Duration
	trending := &cli.Command{
		Name:  "trending",
		Usage: "Enqueue recently created repositories",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "within",
				Usage:       "Age of the newest repositories to enqueue",
				Value:       7 * 24 * time.Hour,
				Destination: &within,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c, func(ctx context.Context, rt *runtime) (int, error) {
				return rt.uc.DiscoverTrending(ctx, time.Now().UTC().Add(-within))
			})
		},
	}

	var fullName string
	similar := &cli.Command{
		Name:  "similar",
		Usage: "Enqueue repositories whose names resemble a repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "Repository as owner/name",
				Required:    true,
				Destination: &fullName,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c, func(ctx context.Context, rt *runtime) (int, error) {
				return rt.uc.DiscoverSimilarNames(ctx, fullName)
			})
		},
	}

	var username string
	profile := &cli.Command{
		Name:  "profile",
		Usage: "Enqueue every repository of an account that looks suspicious",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "Account to analyze",
				Required:    true,
				Destination: &username,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c, func(ctx context.Context, rt *runtime) (int, error) {
				analysis, err := rt.uc.ScanSuspiciousProfile(ctx, username)
				if err != nil {
					return 0, err
				}
				if !analysis.Suspicious {
					return 0, nil
				}
				return analysis.RepoCount, nil
			})
		},
	}

	return &cli.Command{
		Name:  "discover",
		Usage: "Enqueue seed repositories for scanning",
		Flags: env.Flags(),
		Commands: []*cli.Command{
			popular,
			trending,
			similar,
			profile,
		},
	}
}
