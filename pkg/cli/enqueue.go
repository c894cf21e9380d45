package cli

import (
	"context"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func enqueueCommand() *cli.Command {
	var (
		env      environment
		owner    string
		repo     string
		url      string
		priority int64
	)

	return &cli.Command{
		Name:  "enqueue",
		Usage: "Publish a scan job to Kafka for the serve workers",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Repository owner",
				Destination: &owner,
			},
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "Repository name",
				Destination: &repo,
			},
			&cli.StringFlag{
				Name:        "url",
				Usage:       "Repository URL (instead of --owner and --repo)",
				Destination: &url,
			},
			&cli.Int64Flag{
				Name:        "priority",
				Usage:       "Job priority, higher runs first",
				Value:       50,
				Destination: &priority,
			},
		}, env.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !env.kafka.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "kafka brokers are required to enqueue")
			}

			rt, err := env.setup(ctx, publishQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			var added bool
			if url != "" {
				added, err = rt.uc.EnqueueScanFromURL(ctx, url, int(priority))
			} else {
				added, err = rt.uc.EnqueueScan(ctx, owner, repo, int(priority))
			}
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, map[string]bool{"published": added})
		},
	}
}
