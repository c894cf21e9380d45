package cli

import (
	"context"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func blacklistCommand() *cli.Command {
	var env environment

	var (
		page   int64
		limit  int64
		search string
		status string
	)
	list := &cli.Command{
		Name:  "list",
		Usage: "List blacklisted accounts",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "page",
				Value:       1,
				Destination: &page,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Value:       model.DefaultBlacklistLimit,
				Destination: &limit,
			},
			&cli.StringFlag{
				Name:        "search",
				Usage:       "Case-insensitive username substring",
				Destination: &search,
			},
			&cli.StringFlag{
				Name:        "status",
				Usage:       "Entry status",
				Value:       string(types.BlacklistConfirmed),
				Destination: &status,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			result, err := rt.uc.ListBlacklist(ctx, model.BlacklistQuery{
				Page:   int(page),
				Limit:  int(limit),
				Search: search,
				Status: types.BlacklistStatus(status),
			})
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, result)
		},
	}

	refresh := &cli.Command{
		Name:  "refresh",
		Usage: "Re-check whether blacklisted accounts still exist",
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			result, err := rt.uc.RefreshAccountStatuses(ctx)
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, result)
		},
	}

	return &cli.Command{
		Name:     "blacklist",
		Usage:    "Inspect and maintain the blacklist",
		Flags:    env.Flags(),
		Commands: []*cli.Command{list, refresh},
	}
}
