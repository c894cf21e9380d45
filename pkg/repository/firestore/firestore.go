package firestore

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	collectionRepository = "repository"
	collectionCommit     = "commit"
	collectionMatch      = "match"
	collectionBlacklist  = "blacklist"
	collectionReport     = "report"
	batchSize            = 500
)

// Database stores copycat state in Firestore. Commits live in a subcollection
// of their repository document so a collection group query spans the corpus.
type Database struct {
	client *firestore.Client
}

var _ interfaces.Database = (*Database)(nil)

// New creates a new Firestore-based database. An empty databaseID selects the
// project's default database.
func New(ctx context.Context, projectID, databaseID string, opts ...option.ClientOption) (*Database, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	} else {
		client, err = firestore.NewClient(ctx, projectID, opts...)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Database{
		client: client,
	}, nil
}

func (x *Database) Close() error {
	return x.client.Close()
}

// ToDocID converts a repository ID to its document ID
func ToDocID(id types.RepoID) string {
	return strconv.FormatInt(int64(id), 10)
}

func (x *Database) repoDoc(id types.RepoID) *firestore.DocumentRef {
	return x.client.Collection(collectionRepository).Doc(ToDocID(id))
}

// decodeAll drains iter into values of T
func decodeAll[T any](iter *firestore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	var result []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents")
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.V("path", doc.Ref.Path))
		}
		result = append(result, &v)
	}
	return result, nil
}

// commitBatches runs fn over chunks of at most batchSize items and commits each chunk
func (x *Database) commitBatches(ctx context.Context, n int, fn func(batch *firestore.WriteBatch, start, end int)) error {
	for i := 0; i < n; i += batchSize {
		end := min(i+batchSize, n)

		batch := x.client.Batch()
		fn(batch, i, end)
		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to commit batch",
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}
	return nil
}
