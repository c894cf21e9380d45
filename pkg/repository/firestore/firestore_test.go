package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository/firestore"
	"github.com/m-mizutani/copycat/pkg/repository/testhelper"
	"github.com/m-mizutani/copycat/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFirestoreDatabase(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")
	projectID, databaseID := envs[0], envs[1]

	ctx := context.Background()
	db, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)
	t.Cleanup(func() { gt.NoError(t, db.Close()) })

	testhelper.TestAll(t, db)
}

func TestToDocID(t *testing.T) {
	gt.V(t, firestore.ToDocID(types.RepoID(12345))).Equal("12345")
	gt.V(t, firestore.ToDocID(types.RepoID(1))).Equal("1")
}
