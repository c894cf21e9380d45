package cli

import (
	"context"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		env      environment
		minScore int64
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Export matches to BigQuery",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "min-score",
				Usage:       "Minimum confidence score of exported matches",
				Value:       model.SuspiciousScore,
				Destination: &minScore,
			},
		}, env.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !env.bigQuery.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "BigQuery project and dataset are required to export")
			}

			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			exported, err := rt.uc.ExportMatches(ctx, int(minScore))
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, map[string]int{"exported": exported})
		},
	}
}
