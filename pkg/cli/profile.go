package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func scanProfileCommand() *cli.Command {
	var (
		env      environment
		username string
		analyze  bool
	)

	return &cli.Command{
		Name:  "scan-profile",
		Usage: "Scan every repository of an account and print the final status",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "Account to scan",
				Required:    true,
				Destination: &username,
			},
			&cli.BoolFlag{
				Name:        "analyze",
				Usage:       "Print the profile heuristics instead of scanning",
				Destination: &analyze,
			},
		}, env.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			if analyze {
				analysis, err := rt.uc.AnalyzeProfile(ctx, username)
				if err != nil {
					return err
				}
				return printJSON(c.Root().Writer, analysis)
			}

			if err := rt.uc.RunProfileScan(ctx, username); err != nil {
				return err
			}

			status, err := rt.uc.GetProfileScanStatus(ctx, username)
			if err != nil {
				return err
			}
			return printJSON(c.Root().Writer, status)
		},
	}
}
