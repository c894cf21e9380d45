package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// The full record is kept as JSONB. status and created_at columns are
// authoritative since upserts never overwrite them.
const matchColumns = `data, status, created_at`

func scanMatch(row pgx.Row) (*model.Match, error) {
	var data []byte
	var status string
	var createdAt time.Time
	if err := row.Scan(&data, &status, &createdAt); err != nil {
		return nil, err
	}

	var m model.Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode match")
	}
	m.Status = types.MatchStatus(status)
	m.CreatedAt = createdAt.UTC()
	return &m, nil
}

func (x *Database) queryMatches(ctx context.Context, sql string, args ...any) ([]*model.Match, error) {
	rows, err := x.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Match, error) {
		return scanMatch(row)
	})
}

func (x *Database) UpsertMatch(ctx context.Context, m *model.Match) error {
	if m.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "match ID is empty")
	}

	data, err := json.Marshal(m)
	if err != nil {
		return goerr.Wrap(err, "failed to encode match", goerr.V("id", m.ID))
	}

	owners := m.Owners
	if owners == nil {
		owners = []string{}
	}

	if _, err := x.pool.Exec(ctx, `INSERT INTO matches
		(id, repo1_id, repo2_id, owners, confidence_score, status, created_at, updated_at, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			repo1_id = EXCLUDED.repo1_id,
			repo2_id = EXCLUDED.repo2_id,
			owners = EXCLUDED.owners,
			confidence_score = EXCLUDED.confidence_score,
			updated_at = EXCLUDED.updated_at,
			data = EXCLUDED.data`,
		string(m.ID), int64(m.Repo1ID), int64(m.Repo2ID), owners, m.ConfidenceScore,
		string(m.Status), m.CreatedAt, m.UpdatedAt, data,
	); err != nil {
		return goerr.Wrap(err, "failed to upsert match", goerr.V("id", m.ID))
	}
	return nil
}

func (x *Database) GetMatch(ctx context.Context, id types.MatchID) (*model.Match, error) {
	m, err := scanMatch(x.pool.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, string(id)))
	if err != nil {
		if isNoRows(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "match not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get match", goerr.V("id", id))
	}
	return m, nil
}

func (x *Database) ListMatchesByRepo(ctx context.Context, repoID types.RepoID) ([]*model.Match, error) {
	matches, err := x.queryMatches(ctx, `SELECT `+matchColumns+` FROM matches
		WHERE repo1_id = $1 OR repo2_id = $1
		ORDER BY confidence_score DESC, id`, int64(repoID))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches", goerr.V("repo_id", repoID))
	}
	return matches, nil
}

func (x *Database) ListMatchesByOwner(ctx context.Context, owner string) ([]*model.Match, error) {
	matches, err := x.queryMatches(ctx, `SELECT `+matchColumns+` FROM matches
		WHERE owners @> ARRAY[$1]::TEXT[]
		ORDER BY confidence_score DESC, id`, owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches", goerr.V("owner", owner))
	}
	return matches, nil
}

func (x *Database) ListMatches(ctx context.Context, minScore, limit int) ([]*model.Match, error) {
	sql := `SELECT ` + matchColumns + ` FROM matches WHERE confidence_score >= $1 ORDER BY confidence_score DESC, id`
	args := []any{minScore}
	if limit > 0 {
		sql += ` LIMIT $2`
		args = append(args, limit)
	}

	matches, err := x.queryMatches(ctx, sql, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches", goerr.V("min_score", minScore))
	}
	return matches, nil
}

func (x *Database) UpdateMatchStatus(ctx context.Context, id types.MatchID, status types.MatchStatus) error {
	tag, err := x.pool.Exec(ctx, `UPDATE matches SET status = $2 WHERE id = $1`, string(id), string(status))
	if err != nil {
		return goerr.Wrap(err, "failed to update match status", goerr.V("id", id))
	}
	if tag.RowsAffected() == 0 {
		return goerr.Wrap(repository.ErrNotFound, "match not found", goerr.V("id", id))
	}
	return nil
}

func (x *Database) CountMatches(ctx context.Context) (int, error) {
	return x.count(ctx, `SELECT COUNT(*) FROM matches`)
}
