package testhelper

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for a Database implementation. Every case uses
// freshly generated owners and IDs so it can run against a shared backend.
func TestAll(t *testing.T, db interfaces.Database) {
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, db)
	})
	t.Run("RepositoryPreservesScanState", func(t *testing.T) {
		TestRepositoryPreservesScanState(t, db)
	})
	t.Run("ReplaceCommits", func(t *testing.T) {
		TestReplaceCommits(t, db)
	})
	t.Run("FindMatchingCommits", func(t *testing.T) {
		TestFindMatchingCommits(t, db)
	})
	t.Run("MatchCRUD", func(t *testing.T) {
		TestMatchCRUD(t, db)
	})
	t.Run("BlacklistCRUD", func(t *testing.T) {
		TestBlacklistCRUD(t, db)
	})
	t.Run("Reports", func(t *testing.T) {
		TestReports(t, db)
	})
}

func newOwner() string {
	return "owner-" + uuid.NewString()[:8]
}

func newRepo(owner string) *model.Repository {
	name := "repo-" + uuid.NewString()[:8]
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Repository{
		ID:         types.RepoID(rand.Int64N(1<<40) + 1),
		Owner:      owner,
		Name:       name,
		FullName:   owner + "/" + name,
		Stars:      3,
		Topics:     []string{"go"},
		CreatedAt:  now.Add(-24 * time.Hour),
		UpdatedAt:  now,
		PushedAt:   now,
		ScanStatus: types.ScanStatusPending,
	}
}

func newCommit(sha, msg string, ts time.Time) *model.Commit {
	return model.NewCommit(sha, msg, "alice", "alice@example.com", ts, "https://github.com/x/y/commit/"+sha)
}

// TestRepositoryCRUD tests basic operations for repositories
func TestRepositoryCRUD(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	owner := newOwner()

	before := gt.R1(db.CountRepositories(ctx)).NoError(t)

	r1 := newRepo(owner)
	r2 := newRepo(owner)
	stored := gt.R1(db.UpsertRepository(ctx, r1)).NoError(t)
	gt.V(t, stored.ID).Equal(r1.ID)
	gt.V(t, stored.ScanStatus).Equal(types.ScanStatusPending)
	gt.R1(db.UpsertRepository(ctx, r2)).NoError(t)

	got := gt.R1(db.GetRepository(ctx, r1.ID)).NoError(t)
	gt.V(t, got.FullName).Equal(r1.FullName)
	gt.V(t, got.Stars).Equal(3)
	gt.V(t, got.Topics).Equal([]string{"go"})

	byName := gt.R1(db.GetRepositoryByFullName(ctx, r2.FullName)).NoError(t)
	gt.V(t, byName.ID).Equal(r2.ID)

	owned := gt.R1(db.ListRepositoriesByOwner(ctx, owner)).NoError(t)
	gt.V(t, len(owned)).Equal(2)

	after := gt.R1(db.CountRepositories(ctx)).NoError(t)
	gt.V(t, after-before).Equal(2)

	t.Run("not found", func(t *testing.T) {
		_, err := db.GetRepository(ctx, types.RepoID(rand.Int64N(1<<40)+(1<<41)))
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		_, err = db.GetRepositoryByFullName(ctx, owner+"/missing")
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		err = db.UpdateScanStatus(ctx, owner+"/missing", types.ScanStatusCompleted, time.Now())
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("invalid repository", func(t *testing.T) {
		bad := newRepo(owner)
		bad.FullName = "mismatch/name"
		_, err := db.UpsertRepository(ctx, bad)
		gt.Error(t, err)
	})
}

// TestRepositoryPreservesScanState checks that metadata refreshes keep scan
// status, suspicion score and first commit date
func TestRepositoryPreservesScanState(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	repo := newRepo(newOwner())
	gt.R1(db.UpsertRepository(ctx, repo)).NoError(t)

	at := time.Now().UTC().Truncate(time.Second)
	first := at.Add(-100 * time.Hour)
	gt.NoError(t, db.UpdateScanStatus(ctx, repo.FullName, types.ScanStatusCompleted, at))
	gt.NoError(t, db.UpdateSuspicionScore(ctx, repo.ID, 85))
	gt.NoError(t, db.UpdateFirstCommitAt(ctx, repo.ID, first))

	refreshed := newRepo(repo.Owner)
	refreshed.ID = repo.ID
	refreshed.Name = repo.Name
	refreshed.FullName = repo.FullName
	refreshed.Stars = 42
	stored := gt.R1(db.UpsertRepository(ctx, refreshed)).NoError(t)
	gt.V(t, stored.Stars).Equal(42)
	gt.V(t, stored.ScanStatus).Equal(types.ScanStatusCompleted)

	got := gt.R1(db.GetRepository(ctx, repo.ID)).NoError(t)
	gt.V(t, got.Stars).Equal(42)
	gt.V(t, got.ScanStatus).Equal(types.ScanStatusCompleted)
	gt.V(t, got.SuspicionScore).Equal(85)
	gt.True(t, got.FirstCommitAt.Equal(first))
	gt.True(t, got.StatusUpdatedAt.Equal(at))
}

// TestReplaceCommits checks that re-indexing replaces the stored commit set
func TestReplaceCommits(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	repo := newRepo(newOwner())
	gt.R1(db.UpsertRepository(ctx, repo)).NoError(t)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	before := gt.R1(db.CountCommits(ctx)).NoError(t)

	gt.NoError(t, db.ReplaceCommits(ctx, repo.ID, []*model.Commit{
		newCommit("a1", "Add parser", base),
		newCommit("a2", "Fix: lexer bug", base.Add(time.Hour)),
		newCommit("a2", "Fix: lexer bug", base.Add(time.Hour)),
		newCommit("a3", "Write docs", base.Add(2*time.Hour)),
	}))

	commits := gt.R1(db.ListCommits(ctx, repo.ID)).NoError(t)
	gt.V(t, len(commits)).Equal(3)
	gt.V(t, commits[0].SHA).Equal("a3")
	gt.V(t, commits[2].SHA).Equal("a1")
	gt.V(t, commits[1].RepoID).Equal(repo.ID)
	gt.V(t, commits[1].NormalizedMessage).Equal("lexer bug")
	gt.V(t, gt.R1(db.CountCommits(ctx)).NoError(t)-before).Equal(3)

	gt.NoError(t, db.ReplaceCommits(ctx, repo.ID, []*model.Commit{
		newCommit("b1", "Rewrite parser", base.Add(3*time.Hour)),
	}))
	commits = gt.R1(db.ListCommits(ctx, repo.ID)).NoError(t)
	gt.V(t, len(commits)).Equal(1)
	gt.V(t, commits[0].SHA).Equal("b1")
	gt.V(t, gt.R1(db.CountCommits(ctx)).NoError(t)-before).Equal(1)

	empty := gt.R1(db.ListCommits(ctx, types.RepoID(rand.Int64N(1<<40)+(1<<41)))).NoError(t)
	gt.V(t, len(empty)).Equal(0)
}

// TestFindMatchingCommits checks exact (normalized message, minute) lookups
// and duplicate group detection
func TestFindMatchingCommits(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	owner := newOwner()
	origin := newRepo(owner)
	copied := newRepo(newOwner())
	other := newRepo(newOwner())
	for _, r := range []*model.Repository{origin, copied, other} {
		gt.R1(db.UpsertRepository(ctx, r)).NoError(t)
	}

	msg := "implement scanner " + uuid.NewString()[:8]
	ts := time.Date(2023, 7, 4, 12, 30, 15, 0, time.UTC)
	gt.NoError(t, db.ReplaceCommits(ctx, origin.ID, []*model.Commit{newCommit("o1", msg, ts)}))
	gt.NoError(t, db.ReplaceCommits(ctx, copied.ID, []*model.Commit{newCommit("c1", "Add: "+msg, ts.Add(30*time.Second))}))
	gt.NoError(t, db.ReplaceCommits(ctx, other.ID, []*model.Commit{newCommit("x1", msg, ts.Add(2*time.Minute))}))

	hits := gt.R1(db.FindMatchingCommits(ctx, model.NormalizeMessage(msg), ts, origin.ID)).NoError(t)
	gt.V(t, len(hits)).Equal(1)
	gt.V(t, hits[0].RepoID).Equal(copied.ID)
	gt.V(t, hits[0].SHA).Equal("c1")

	groups := gt.R1(db.FindDuplicateCommitGroups(ctx)).NoError(t)
	var own []*model.DuplicateGroup
	for _, g := range groups {
		if slices.Contains(g.RepoIDs, origin.ID) {
			own = append(own, g)
		}
	}
	gt.V(t, len(own)).Equal(1)
	gt.V(t, own[0].Message).Equal(model.NormalizeMessage(msg))
	gt.True(t, own[0].Timestamp.Equal(model.TruncateToMinute(ts)))

	expected := []types.RepoID{origin.ID, copied.ID}
	slices.Sort(expected)
	gt.V(t, own[0].RepoIDs).Equal(expected)
}

// TestMatchCRUD tests match persistence and lookups
func TestMatchCRUD(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	original := newRepo(newOwner())
	suspect := newRepo(newOwner())
	suspect.CreatedAt = original.CreatedAt.Add(time.Hour)

	created := time.Now().UTC().Truncate(time.Second)
	stats := &model.MatchStatistics{
		ExactMatches:    12,
		MatchPercentage: 60,
		ConfidenceScore: 88,
		ConfidenceLevel: types.ConfidenceHigh,
	}
	m := model.NewMatch(original, suspect, stats, created)
	gt.NoError(t, db.UpsertMatch(ctx, m))

	got := gt.R1(db.GetMatch(ctx, m.ID)).NoError(t)
	gt.V(t, got.ConfidenceScore).Equal(88)
	gt.V(t, got.MatchingCommits).Equal(12)
	gt.V(t, got.OriginalRepoID).Equal(original.ID)
	gt.V(t, len(got.Owners)).Equal(2)

	gt.NoError(t, db.UpdateMatchStatus(ctx, m.ID, types.MatchStatusVerified))

	rescored := model.NewMatch(original, suspect, &model.MatchStatistics{
		ExactMatches:    15,
		ConfidenceScore: 91,
		ConfidenceLevel: types.ConfidenceVeryHigh,
	}, created.Add(time.Hour))
	gt.NoError(t, db.UpsertMatch(ctx, rescored))

	got = gt.R1(db.GetMatch(ctx, m.ID)).NoError(t)
	gt.V(t, got.ConfidenceScore).Equal(91)
	gt.V(t, got.Status).Equal(types.MatchStatusVerified)
	gt.True(t, got.CreatedAt.Equal(created))

	byRepo := gt.R1(db.ListMatchesByRepo(ctx, suspect.ID)).NoError(t)
	gt.V(t, len(byRepo)).Equal(1)
	gt.V(t, byRepo[0].ID).Equal(m.ID)

	byOwner := gt.R1(db.ListMatchesByOwner(ctx, suspect.Owner)).NoError(t)
	gt.V(t, len(byOwner)).Equal(1)

	high := gt.R1(db.ListMatches(ctx, 90, 0)).NoError(t)
	found := false
	for i, h := range high {
		gt.True(t, h.ConfidenceScore >= 90)
		if i > 0 {
			gt.True(t, high[i-1].ConfidenceScore >= h.ConfidenceScore)
		}
		found = found || h.ID == m.ID
	}
	gt.True(t, found)

	limited := gt.R1(db.ListMatches(ctx, 0, 1)).NoError(t)
	gt.V(t, len(limited)).Equal(1)

	_, err := db.GetMatch(ctx, types.MatchID("missing-"+uuid.NewString()))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestBlacklistCRUD tests blacklist entry creation, updates and listing
func TestBlacklistCRUD(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	username := "thief-" + uuid.NewString()[:8]
	detected := time.Now().UTC().Truncate(time.Second)

	entry := &model.BlacklistEntry{
		Username:        username,
		Status:          types.BlacklistConfirmed,
		AccountStatus:   types.AccountUnknown,
		FirstDetectedAt: detected,
		UpdatedAt:       detected,
	}
	gt.NoError(t, db.UpsertBlacklistEntry(ctx, entry))

	again := *entry
	again.FirstDetectedAt = detected.Add(time.Hour)
	gt.NoError(t, db.UpsertBlacklistEntry(ctx, &again))

	got := gt.R1(db.GetBlacklistEntry(ctx, username)).NoError(t)
	gt.True(t, got.FirstDetectedAt.Equal(detected))

	updated := detected.Add(2 * time.Hour)
	gt.NoError(t, db.UpdateBlacklistStats(ctx, username, model.BlacklistAggregate{
		StolenRepos:       2,
		TotalMatches:      3,
		HighestConfidence: 90,
	}, updated))
	gt.NoError(t, db.UpdateAccountStatus(ctx, username, types.AccountEliminated, updated))

	got = gt.R1(db.GetBlacklistEntry(ctx, username)).NoError(t)
	gt.V(t, got.StolenRepos).Equal(2)
	gt.V(t, got.TotalMatches).Equal(3)
	gt.V(t, got.HighestConfidence).Equal(90)
	gt.V(t, got.AccountStatus).Equal(types.AccountEliminated)
	gt.True(t, got.AccountCheckedAt.Equal(updated))

	page := gt.R1(db.ListBlacklistEntries(ctx, model.BlacklistQuery{Search: username})).NoError(t)
	gt.V(t, page.Total).Equal(1)
	gt.V(t, page.Page).Equal(1)
	gt.V(t, page.Entries[0].Username).Equal(username)

	page = gt.R1(db.ListBlacklistEntries(ctx, model.BlacklistQuery{Search: username, Page: 2})).NoError(t)
	gt.V(t, page.Total).Equal(1)
	gt.V(t, len(page.Entries)).Equal(0)

	_, err := db.GetBlacklistEntry(ctx, "nobody-"+uuid.NewString()[:8])
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = db.UpdateBlacklistStats(ctx, "nobody-"+uuid.NewString()[:8], model.BlacklistAggregate{}, updated)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestReports tests report submission storage
func TestReports(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	report := &model.Report{
		ID:          types.NewReportID(),
		OriginalURL: "https://github.com/alice/tool",
		SuspectURL:  "https://github.com/mallory/tool",
		Reason:      "same history",
		Status:      types.ReportStatusPending,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	gt.NoError(t, db.CreateReport(ctx, report))

	err := db.CreateReport(ctx, report)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	reports := gt.R1(db.ListReports(ctx)).NoError(t)
	found := false
	for _, r := range reports {
		if r.ID == report.ID {
			found = true
			gt.V(t, r.SuspectURL).Equal(report.SuspectURL)
			gt.V(t, r.Status).Equal(types.ReportStatusPending)
		}
	}
	gt.True(t, found)
}
