package postgres_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/copycat/pkg/repository/postgres"
	"github.com/m-mizutani/copycat/pkg/repository/testhelper"
	"github.com/m-mizutani/copycat/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestPostgresDatabase(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_URL")
	ctx := context.Background()

	gt.NoError(t, postgres.Migrate(dsn))
	// applying twice is a no-op
	gt.NoError(t, postgres.Migrate(dsn))

	db, err := postgres.New(ctx, dsn)
	gt.NoError(t, err)
	t.Cleanup(db.Close)

	testhelper.TestAll(t, db)
}
