package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (x *Database) blacklistDoc(username string) *firestore.DocumentRef {
	return x.client.Collection(collectionBlacklist).Doc(username)
}

func (x *Database) UpsertBlacklistEntry(ctx context.Context, entry *model.BlacklistEntry) error {
	if entry.Username == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "username is empty")
	}

	if _, err := x.blacklistDoc(entry.Username).Create(ctx, entry); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return goerr.Wrap(err, "failed to create blacklist entry", goerr.V("username", entry.Username))
	}
	return nil
}

func (x *Database) GetBlacklistEntry(ctx context.Context, username string) (*model.BlacklistEntry, error) {
	snap, err := x.blacklistDoc(username).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
		}
		return nil, goerr.Wrap(err, "failed to get blacklist entry", goerr.V("username", username))
	}

	var entry model.BlacklistEntry
	if err := snap.DataTo(&entry); err != nil {
		return nil, goerr.Wrap(err, "failed to decode blacklist entry", goerr.V("username", username))
	}
	return &entry, nil
}

// ListBlacklistEntries filters in process since Firestore has no substring search
func (x *Database) ListBlacklistEntries(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error) {
	q := x.client.Collection(collectionBlacklist).Query
	if query.Status != "" {
		q = q.Where("status", "==", query.Status)
	}

	entries, err := decodeAll[model.BlacklistEntry](q.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list blacklist entries")
	}
	return query.Paginate(entries), nil
}

func (x *Database) UpdateBlacklistStats(ctx context.Context, username string, agg model.BlacklistAggregate, at time.Time) error {
	return x.updateBlacklist(ctx, username, []firestore.Update{
		{Path: "stolen_repos", Value: agg.StolenRepos},
		{Path: "total_matches", Value: agg.TotalMatches},
		{Path: "highest_confidence", Value: agg.HighestConfidence},
		{Path: "updated_at", Value: at},
	})
}

func (x *Database) UpdateAccountStatus(ctx context.Context, username string, accountStatus types.AccountStatus, at time.Time) error {
	return x.updateBlacklist(ctx, username, []firestore.Update{
		{Path: "account_status", Value: accountStatus},
		{Path: "account_checked_at", Value: at},
		{Path: "updated_at", Value: at},
	})
}

func (x *Database) updateBlacklist(ctx context.Context, username string, updates []firestore.Update) error {
	if _, err := x.blacklistDoc(username).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
		}
		return goerr.Wrap(err, "failed to update blacklist entry", goerr.V("username", username))
	}
	return nil
}
