package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const repoColumns = `id, owner, name, full_name, description, topics, stars, forks,
	created_at, updated_at, pushed_at, first_commit_at, scan_status, suspicion_score, status_updated_at`

func scanRepository(row pgx.Row) (*model.Repository, error) {
	var r model.Repository
	var id int64
	var scanStatus string
	if err := row.Scan(&id, &r.Owner, &r.Name, &r.FullName, &r.Description, &r.Topics, &r.Stars, &r.Forks,
		&r.CreatedAt, &r.UpdatedAt, &r.PushedAt, &r.FirstCommitAt, &scanStatus, &r.SuspicionScore, &r.StatusUpdatedAt); err != nil {
		return nil, err
	}
	r.ID = types.RepoID(id)
	r.ScanStatus = types.ScanStatus(scanStatus)
	return &r, nil
}

func (x *Database) UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	tx, err := x.pool.Begin(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	prev, err := scanRepository(tx.QueryRow(ctx,
		`SELECT `+repoColumns+` FROM repositories WHERE id = $1 FOR UPDATE`, int64(repo.ID)))
	if err != nil && !isNoRows(err) {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", repo.ID))
	}

	taken, err := scanRepository(tx.QueryRow(ctx,
		`DELETE FROM repositories WHERE full_name = $1 AND id <> $2 RETURNING `+repoColumns,
		repo.FullName, int64(repo.ID)))
	if err != nil && !isNoRows(err) {
		return nil, goerr.Wrap(err, "failed to release repository name", goerr.V("full_name", repo.FullName))
	}
	if prev == nil {
		prev = taken
	}

	stored := repo.Copy()
	if stored.Topics == nil {
		stored.Topics = []string{}
	}
	if prev != nil {
		stored.ScanStatus = prev.ScanStatus
		stored.SuspicionScore = prev.SuspicionScore
		stored.FirstCommitAt = prev.FirstCommitAt
		stored.StatusUpdatedAt = prev.StatusUpdatedAt
	}
	if stored.ScanStatus == "" {
		stored.ScanStatus = types.ScanStatusPending
	}

	if _, err := tx.Exec(ctx, `INSERT INTO repositories (`+repoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name,
			description = EXCLUDED.description,
			topics = EXCLUDED.topics,
			stars = EXCLUDED.stars,
			forks = EXCLUDED.forks,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			pushed_at = EXCLUDED.pushed_at,
			first_commit_at = EXCLUDED.first_commit_at,
			scan_status = EXCLUDED.scan_status,
			suspicion_score = EXCLUDED.suspicion_score,
			status_updated_at = EXCLUDED.status_updated_at`,
		int64(stored.ID), stored.Owner, stored.Name, stored.FullName, stored.Description, stored.Topics,
		stored.Stars, stored.Forks, stored.CreatedAt, stored.UpdatedAt, stored.PushedAt,
		stored.FirstCommitAt, string(stored.ScanStatus), stored.SuspicionScore, stored.StatusUpdatedAt,
	); err != nil {
		return nil, goerr.Wrap(err, "failed to upsert repository", goerr.V("full_name", repo.FullName))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to commit repository", goerr.V("full_name", repo.FullName))
	}
	return stored, nil
}

func (x *Database) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	repo, err := scanRepository(x.pool.QueryRow(ctx,
		`SELECT `+repoColumns+` FROM repositories WHERE id = $1`, int64(id)))
	if err != nil {
		if isNoRows(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id))
	}
	return repo, nil
}

func (x *Database) GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	repo, err := scanRepository(x.pool.QueryRow(ctx,
		`SELECT `+repoColumns+` FROM repositories WHERE full_name = $1`, fullName))
	if err != nil {
		if isNoRows(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("full_name", fullName))
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("full_name", fullName))
	}
	return repo, nil
}

func (x *Database) ListRepositoriesByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	repos, err := x.queryRepositories(ctx,
		`SELECT `+repoColumns+` FROM repositories WHERE owner = $1 ORDER BY full_name`, owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", owner))
	}
	return repos, nil
}

func (x *Database) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	repos, err := x.queryRepositories(ctx, `SELECT `+repoColumns+` FROM repositories ORDER BY id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	return repos, nil
}

func (x *Database) queryRepositories(ctx context.Context, sql string, args ...any) ([]*model.Repository, error) {
	rows, err := x.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Repository, error) {
		return scanRepository(row)
	})
}

func (x *Database) UpdateScanStatus(ctx context.Context, fullName string, status types.ScanStatus, at time.Time) error {
	tag, err := x.pool.Exec(ctx,
		`UPDATE repositories SET scan_status = $2, status_updated_at = $3 WHERE full_name = $1`,
		fullName, string(status), at)
	if err != nil {
		return goerr.Wrap(err, "failed to update scan status", goerr.V("full_name", fullName))
	}
	if tag.RowsAffected() == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("full_name", fullName))
	}
	return nil
}

func (x *Database) UpdateSuspicionScore(ctx context.Context, id types.RepoID, score int) error {
	return x.updateRepo(ctx, id, `UPDATE repositories SET suspicion_score = $2 WHERE id = $1`, score)
}

func (x *Database) UpdateFirstCommitAt(ctx context.Context, id types.RepoID, at time.Time) error {
	return x.updateRepo(ctx, id, `UPDATE repositories SET first_commit_at = $2 WHERE id = $1`, at)
}

func (x *Database) updateRepo(ctx context.Context, id types.RepoID, sql string, value any) error {
	tag, err := x.pool.Exec(ctx, sql, int64(id), value)
	if err != nil {
		return goerr.Wrap(err, "failed to update repository", goerr.V("id", id))
	}
	if tag.RowsAffected() == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	return nil
}

func (x *Database) CountRepositories(ctx context.Context) (int, error) {
	return x.count(ctx, `SELECT COUNT(*) FROM repositories`)
}

func (x *Database) count(ctx context.Context, sql string) (int, error) {
	var n int64
	if err := x.pool.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, goerr.Wrap(err, "failed to count rows")
	}
	return int(n), nil
}
