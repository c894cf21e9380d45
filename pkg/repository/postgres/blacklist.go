package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const blacklistColumns = `username, stolen_repos, total_matches, highest_confidence, status,
	account_status, first_detected_at, updated_at, account_checked_at`

func scanBlacklistEntry(row pgx.Row) (*model.BlacklistEntry, error) {
	var e model.BlacklistEntry
	var status, accountStatus string
	if err := row.Scan(&e.Username, &e.StolenRepos, &e.TotalMatches, &e.HighestConfidence, &status,
		&accountStatus, &e.FirstDetectedAt, &e.UpdatedAt, &e.AccountCheckedAt); err != nil {
		return nil, err
	}
	e.Status = types.BlacklistStatus(status)
	e.AccountStatus = types.AccountStatus(accountStatus)
	return &e, nil
}

func (x *Database) UpsertBlacklistEntry(ctx context.Context, entry *model.BlacklistEntry) error {
	if entry.Username == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "username is empty")
	}

	if _, err := x.pool.Exec(ctx, `INSERT INTO blacklist (`+blacklistColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (username) DO NOTHING`,
		entry.Username, entry.StolenRepos, entry.TotalMatches, entry.HighestConfidence, string(entry.Status),
		string(entry.AccountStatus), entry.FirstDetectedAt, entry.UpdatedAt, entry.AccountCheckedAt,
	); err != nil {
		return goerr.Wrap(err, "failed to insert blacklist entry", goerr.V("username", entry.Username))
	}
	return nil
}

func (x *Database) GetBlacklistEntry(ctx context.Context, username string) (*model.BlacklistEntry, error) {
	entry, err := scanBlacklistEntry(x.pool.QueryRow(ctx,
		`SELECT `+blacklistColumns+` FROM blacklist WHERE username = $1`, username))
	if err != nil {
		if isNoRows(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
		}
		return nil, goerr.Wrap(err, "failed to get blacklist entry", goerr.V("username", username))
	}
	return entry, nil
}

// ListBlacklistEntries applies the same filter and order as model.BlacklistQuery.Paginate in SQL
func (x *Database) ListBlacklistEntries(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error) {
	q := query.Normalize()
	const where = `WHERE ($1 = '' OR status = $1) AND ($2 = '' OR strpos(lower(username), lower($2)) > 0)`

	var total int64
	if err := x.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blacklist `+where,
		string(q.Status), q.Search).Scan(&total); err != nil {
		return nil, goerr.Wrap(err, "failed to count blacklist entries")
	}

	rows, err := x.pool.Query(ctx, `SELECT `+blacklistColumns+` FROM blacklist `+where+`
		ORDER BY highest_confidence DESC, stolen_repos DESC, first_detected_at DESC, username
		LIMIT $3 OFFSET $4`,
		string(q.Status), q.Search, q.Limit, (q.Page-1)*q.Limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list blacklist entries")
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.BlacklistEntry, error) {
		return scanBlacklistEntry(row)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan blacklist entries")
	}
	if entries == nil {
		entries = []*model.BlacklistEntry{}
	}

	return &model.BlacklistPage{
		Entries: entries,
		Total:   int(total),
		Page:    q.Page,
		Limit:   q.Limit,
	}, nil
}

func (x *Database) UpdateBlacklistStats(ctx context.Context, username string, agg model.BlacklistAggregate, at time.Time) error {
	return x.updateBlacklist(ctx, username, `UPDATE blacklist
		SET stolen_repos = $2, total_matches = $3, highest_confidence = $4, updated_at = $5
		WHERE username = $1`,
		agg.StolenRepos, agg.TotalMatches, agg.HighestConfidence, at)
}

func (x *Database) UpdateAccountStatus(ctx context.Context, username string, status types.AccountStatus, at time.Time) error {
	return x.updateBlacklist(ctx, username, `UPDATE blacklist
		SET account_status = $2, account_checked_at = $3, updated_at = $3
		WHERE username = $1`,
		string(status), at)
}

func (x *Database) updateBlacklist(ctx context.Context, username, sql string, args ...any) error {
	tag, err := x.pool.Exec(ctx, sql, append([]any{username}, args...)...)
	if err != nil {
		return goerr.Wrap(err, "failed to update blacklist entry", goerr.V("username", username))
	}
	if tag.RowsAffected() == 0 {
		return goerr.Wrap(repository.ErrNotFound, "blacklist entry not found", goerr.V("username", username))
	}
	return nil
}
