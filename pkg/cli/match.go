package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func matchCommand() *cli.Command {
	var (
		env    environment
		repoID int64
		owner  string
		repo   string
	)

	return &cli.Command{
		Name:  "match",
		Usage: "Find matches among indexed repositories",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "repo-id",
				Usage:       "Match only this indexed repository",
				Destination: &repoID,
			},
			&cli.StringFlag{
				Name:        "across-owner",
				Usage:       "Search the whole platform for copies of this owner's --across-repo",
				Destination: &owner,
			},
			&cli.StringFlag{
				Name:        "across-repo",
				Usage:       "Repository name searched with --across-owner",
				Destination: &repo,
			},
		}, env.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			switch {
			case owner != "" && repo != "":
				candidates, err := rt.uc.FindMatchesAcrossGitHub(ctx, owner, repo)
				if err != nil {
					return err
				}
				return printJSON(c.Root().Writer, candidates)

			case repoID != 0:
				matches, err := rt.uc.FindMatchesForRepo(ctx, types.RepoID(repoID))
				if err != nil {
					return err
				}
				return printJSON(c.Root().Writer, matches)

			default:
				found, err := rt.uc.FindMatchesForAllRepos(ctx)
				if err != nil {
					return err
				}
				logging.From(ctx).Info("matched all repositories", slog.Int("matches", found))
				return printJSON(c.Root().Writer, map[string]int{"matches": found})
			}
		},
	}
}
