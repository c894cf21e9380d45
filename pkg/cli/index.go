package cli

import (
	"context"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func indexCommand() *cli.Command {
	var (
		env   environment
		owner string
		repo  string
		url   string
		dir   string
	)

	return &cli.Command{
		Name:  "index",
		Usage: "Index the commit history of one repository",
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
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Path to a local clone whose origin is a GitHub repository",
				Destination: &dir,
			},
		}, env.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if dir == "" && url == "" && (owner == "" || repo == "") {
				return goerr.Wrap(types.ErrInvalidOption, "one of --dir, --url, or --owner with --repo is required")
			}

			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			var indexed *model.Repository
			switch {
			case dir != "":
				indexed, err = rt.uc.IndexLocalRepository(ctx, dir)
			case url != "":
				indexed, err = rt.uc.IndexFromURL(ctx, url)
			default:
				indexed, err = rt.uc.IndexRepository(ctx, owner, repo)
			}
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, indexed)
		},
	}
}
