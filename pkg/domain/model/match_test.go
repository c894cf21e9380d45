package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewMatchOrdersByID(t *testing.T) {
	original := &model.Repository{ID: 200, Owner: "alice", FullName: "alice/app", CreatedAt: baseTime}
	suspect := &model.Repository{ID: 100, Owner: "mallory", FullName: "mallory/app", CreatedAt: baseTime.Add(time.Hour)}

	stats := &model.MatchStatistics{
		ExactMatches:      3,
		TotalCommitsRepo1: 10,
		TotalCommitsRepo2: 4,
		ConfidenceScore:   55,
		ConfidenceLevel:   types.ConfidenceMedium,
		SampleMatchingCommits: []model.SampleCommit{
			{Message: "a"}, {Message: "b"}, {Message: "c"}, {Message: "d"}, {Message: "e"}, {Message: "f"},
		},
	}

	m := model.NewMatch(original, suspect, stats, baseTime)
	gt.V(t, m.ID).Equal(types.MatchID("100-200"))
	gt.V(t, m.Repo1ID).Equal(types.RepoID(100))
	gt.V(t, m.Repo1FullName).Equal("mallory/app")
	gt.V(t, m.Repo2ID).Equal(types.RepoID(200))
	gt.V(t, m.OriginalRepoID).Equal(types.RepoID(200))
	gt.V(t, m.SuspectRepoID).Equal(types.RepoID(100))
	gt.V(t, m.Status).Equal(types.MatchStatusPending)
	gt.V(t, m.Owners).Equal([]string{"mallory", "alice"})
	gt.V(t, m.Evidence.Original.FullName).Equal("alice/app")
	gt.V(t, m.Evidence.Original.TotalCommits).Equal(10)
	gt.V(t, len(m.Evidence.SampleMatchingCommits)).Equal(5)

	other, name := m.Counterpart(100)
	gt.V(t, other).Equal(types.RepoID(200))
	gt.V(t, name).Equal("alice/app")
	gt.True(t, m.Involves(200))
	gt.False(t, m.Involves(300))
}

func TestMatchIDIsOrderIndependent(t *testing.T) {
	gt.V(t, types.NewMatchID(5, 3)).Equal(types.NewMatchID(3, 5))
}

func TestScanResultVariants(t *testing.T) {
	var results []model.ScanResult = []model.ScanResult{
		&model.RepoScanResult{Commits: 3},
		&model.ProfileScanResult{Username: "alice", ProfileScore: 70},
	}
	gt.V(t, results[0].Kind()).Equal(model.ScanResultRepo)
	gt.V(t, results[1].Kind()).Equal(model.ScanResultProfile)

	raw, err := json.Marshal(results[1])
	gt.NoError(t, err)
	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(raw, &decoded))
	gt.V(t, decoded["kind"]).Equal("profile")
	gt.V(t, decoded["username"]).Equal("alice")
}

func TestProfileScore(t *testing.T) {
	gt.V(t, model.ProfileScore(nil)).Equal(0)
	gt.V(t, model.ProfileScore([]*model.SuspiciousRepo{
		{HighestConfidence: 60},
		{HighestConfidence: 75},
	})).Equal(68)
}

func TestScanJob(t *testing.T) {
	job := &model.ScanJob{Owner: "alice", Repo: "app"}
	gt.NoError(t, job.Validate())
	gt.V(t, job.ID()).Equal(types.JobID("alice/app"))

	gt.Error(t, (&model.ScanJob{Owner: "alice"}).Validate())
}

func TestReportInputValidate(t *testing.T) {
	input := &model.ReportInput{
		OriginalURL: "https://github.com/alice/app",
		SuspectURL:  "https://github.com/mallory/app",
	}
	gt.NoError(t, input.Validate())

	input.SuspectURL = "https://example.com/x"
	gt.Error(t, input.Validate())

	gt.Error(t, (&model.ReportInput{OriginalURL: "https://github.com/alice/app"}).Validate())
}

func TestBlacklistQueryNormalize(t *testing.T) {
	q := model.BlacklistQuery{}.Normalize()
	gt.V(t, q.Page).Equal(1)
	gt.V(t, q.Limit).Equal(model.DefaultBlacklistLimit)
}

func TestNewMatchRecord(t *testing.T) {
	m := &model.Match{
		ID:             "1-2",
		Repo1ID:        1,
		Repo1FullName:  "mallory/app",
		Repo2ID:        2,
		Repo2FullName:  "alice/app",
		OriginalRepoID: 2,
		SuspectRepoID:  1,
		CreatedAt:      baseTime,
	}
	rec := model.NewMatchRecord(m, baseTime.Add(time.Hour))
	gt.V(t, rec.OriginalRepo).Equal("alice/app")
	gt.V(t, rec.SuspectRepo).Equal("mallory/app")
	gt.V(t, rec.SuspectOwner).Equal("mallory")
	gt.V(t, rec.ExportedAt).Equal(baseTime.Add(time.Hour).UnixMicro())
}
