package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const commitColumns = `repo_id, sha, message, normalized_message, author_name, author_email, committed_at, url`

func scanCommit(row pgx.Row) (*model.Commit, error) {
	var c model.Commit
	var repoID int64
	if err := row.Scan(&repoID, &c.SHA, &c.Message, &c.NormalizedMessage, &c.AuthorName, &c.AuthorEmail, &c.Timestamp, &c.URL); err != nil {
		return nil, err
	}
	c.RepoID = types.RepoID(repoID)
	c.Timestamp = c.Timestamp.UTC()
	return &c, nil
}

func (x *Database) queryCommits(ctx context.Context, sql string, args ...any) ([]*model.Commit, error) {
	rows, err := x.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Commit, error) {
		return scanCommit(row)
	})
}

// ReplaceCommits deletes and re-inserts the commit set in one transaction
func (x *Database) ReplaceCommits(ctx context.Context, repoID types.RepoID, commits []*model.Commit) error {
	seen := make(map[string]struct{}, len(commits))
	rows := make([][]any, 0, len(commits))
	for _, c := range commits {
		if _, ok := seen[c.SHA]; ok {
			continue
		}
		seen[c.SHA] = struct{}{}
		rows = append(rows, []any{
			int64(repoID), c.SHA, c.Message, c.MatchKey(), c.AuthorName, c.AuthorEmail,
			c.Timestamp, model.TruncateToMinute(c.Timestamp), c.URL,
		})
	}

	tx, err := x.pool.Begin(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM commits WHERE repo_id = $1`, int64(repoID)); err != nil {
		return goerr.Wrap(err, "failed to delete commits", goerr.V("repo_id", repoID))
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"commits"},
		[]string{"repo_id", "sha", "message", "normalized_message", "author_name", "author_email", "committed_at", "minute", "url"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return goerr.Wrap(err, "failed to copy commits", goerr.V("repo_id", repoID), goerr.V("count", len(rows)))
	}

	if err := tx.Commit(ctx); err != nil {
		return goerr.Wrap(err, "failed to commit commits", goerr.V("repo_id", repoID))
	}
	return nil
}

func (x *Database) ListCommits(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	commits, err := x.queryCommits(ctx,
		`SELECT `+commitColumns+` FROM commits WHERE repo_id = $1 ORDER BY committed_at DESC, sha`, int64(repoID))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("repo_id", repoID))
	}
	return commits, nil
}

func (x *Database) FindMatchingCommits(ctx context.Context, normalized string, minute time.Time, excludeRepo types.RepoID) ([]*model.Commit, error) {
	commits, err := x.queryCommits(ctx,
		`SELECT `+commitColumns+` FROM commits
		WHERE normalized_message = $1 AND minute = $2 AND repo_id <> $3
		ORDER BY repo_id, sha`,
		normalized, model.TruncateToMinute(minute), int64(excludeRepo))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find matching commits", goerr.V("normalized", normalized))
	}
	return commits, nil
}

func (x *Database) FindDuplicateCommitGroups(ctx context.Context) ([]*model.DuplicateGroup, error) {
	rows, err := x.pool.Query(ctx, `SELECT normalized_message, minute, array_agg(DISTINCT repo_id ORDER BY repo_id)
		FROM commits
		GROUP BY normalized_message, minute
		HAVING COUNT(DISTINCT repo_id) > 1
		ORDER BY minute, normalized_message`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find duplicate commits")
	}

	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.DuplicateGroup, error) {
		var g model.DuplicateGroup
		var ids []int64
		if err := row.Scan(&g.Message, &g.Timestamp, &ids); err != nil {
			return nil, err
		}
		g.Timestamp = g.Timestamp.UTC()
		for _, id := range ids {
			g.RepoIDs = append(g.RepoIDs, types.RepoID(id))
		}
		return &g, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan duplicate commits")
	}
	return groups, nil
}

func (x *Database) CountCommits(ctx context.Context) (int, error) {
	return x.count(ctx, `SELECT COUNT(*) FROM commits`)
}
