package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/cli/config"
	"github.com/m-mizutani/copycat/pkg/infra/github"
	"github.com/m-mizutani/copycat/pkg/usecase"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestRateLimit(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var rl config.RateLimit
		parse(t, rl.Flags())
		gt.V(t, rl.GovernorConfig()).Equal(github.DefaultGovernorConfig())
	})

	t.Run("overrides", func(t *testing.T) {
		var rl config.RateLimit
		parse(t, rl.Flags(), "--search-interval", "3s", "--rate-low-watermark", "50")

		cfg := rl.GovernorConfig()
		gt.V(t, cfg.SearchInterval).Equal(3 * time.Second)
		gt.V(t, cfg.LowWatermark).Equal(50)
		gt.V(t, cfg.CoreInterval).Equal(github.DefaultGovernorConfig().CoreInterval)
	})
}

func TestScan(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var scan config.Scan
		parse(t, scan.Flags())
		gt.V(t, scan.Config()).Equal(usecase.DefaultScanConfig())
	})

	t.Run("overrides", func(t *testing.T) {
		var scan config.Scan
		parse(t, scan.Flags(), "--check-timeout", "5s", "--candidate-limit", "3")

		cfg := scan.Config()
		gt.V(t, cfg.CheckTimeout).Equal(5 * time.Second)
		gt.V(t, cfg.CandidateLimit).Equal(3)
		gt.V(t, cfg.IndexTimeout).Equal(usecase.DefaultScanConfig().IndexTimeout)
	})
}

func TestDatabase(t *testing.T) {
	t.Run("falls back to memory", func(t *testing.T) {
		t.Setenv("COPYCAT_DATABASE_URL", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("COPYCAT_FIRESTORE_PROJECT_ID", "")

		var db config.Database
		parse(t, db.Flags())

		_, err := db.PostgresURL()
		gt.Error(t, err)

		store, closeDB, err := db.Open(context.Background())
		gt.NoError(t, err)
		defer closeDB()
		gt.True(t, store != nil)
	})
}

func TestBigQueryDisabled(t *testing.T) {
	t.Setenv("COPYCAT_BQ_PROJECT_ID", "")
	var bq config.BigQuery
	parse(t, bq.Flags())

	gt.False(t, bq.Enabled())
	client, err := bq.NewClient(context.Background())
	gt.NoError(t, err)
	gt.True(t, client == nil)
}

func TestGitHubUnauthenticated(t *testing.T) {
	t.Setenv("COPYCAT_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	var gh config.GitHub
	var rl config.RateLimit
	parse(t, append(gh.Flags(), rl.Flags()...))

	client, err := gh.NewClient(context.Background(), &rl)
	gt.NoError(t, err)
	gt.True(t, client != nil)
}

func TestGitHubAppRequiresKey(t *testing.T) {
	t.Setenv("COPYCAT_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	var gh config.GitHub
	var rl config.RateLimit
	parse(t, append(gh.Flags(), rl.Flags()...), "--github-app-id", "1234")

	_, err := gh.NewClient(context.Background(), &rl)
	gt.Error(t, err)
}
