package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newCommit(msg, author string, ts time.Time) *model.Commit {
	return model.NewCommit(fmt.Sprintf("%x", ts.UnixNano()), msg, author, author+"@example.com", ts, "")
}

func TestCalculateMatchStatisticsSingleCrossAuthor(t *testing.T) {
	ts := baseTime.Add(time.Hour)
	repoA := &model.Repository{ID: 1, FullName: "alice/app", CreatedAt: baseTime, FirstCommitAt: ts}
	repoB := &model.Repository{ID: 2, FullName: "mallory/app", CreatedAt: baseTime.Add(10 * 24 * time.Hour), FirstCommitAt: ts}

	commitsA := []*model.Commit{newCommit("add login", "alice", ts)}
	commitsB := []*model.Commit{newCommit("add login", "other", ts.Add(20*time.Second))}

	stats := model.CalculateMatchStatistics(repoA, repoB, commitsA, commitsB)
	gt.V(t, stats.ExactMatches).Equal(1)
	gt.V(t, stats.DifferentAuthorMatches).Equal(1)
	gt.V(t, stats.MatchPercentage).Equal(100.0)
	gt.True(t, stats.ConfidenceScore >= 10+10+15)
	gt.True(t, stats.ConfidenceScore <= 100)
	gt.V(t, stats.ConfidenceLevel).NotEqual(types.ConfidenceVeryLow)
	gt.V(t, len(stats.SampleMatchingCommits)).Equal(1)
	gt.V(t, stats.SampleMatchingCommits[0].Author2).Equal("other")
}

func TestCalculateMatchStatisticsHighConfidence(t *testing.T) {
	repoA := &model.Repository{ID: 10, FullName: "alice/lib", CreatedAt: baseTime, FirstCommitAt: baseTime}
	repoB := &model.Repository{
		ID:            20,
		FullName:      "mallory/lib",
		CreatedAt:     baseTime.Add(40 * 24 * time.Hour),
		FirstCommitAt: baseTime,
	}

	var commitsA, commitsB []*model.Commit
	for i := 0; i < 100; i++ {
		ts := baseTime.Add(time.Duration(i) * time.Hour)
		msg := fmt.Sprintf("implement feature number %d", i)
		commitsA = append(commitsA, newCommit(msg, "alice", ts))
		if i < 60 {
			commitsB = append(commitsB, newCommit(msg, "mallory", ts))
		} else {
			commitsB = append(commitsB, newCommit(fmt.Sprintf("unrelated work %d", i), "mallory", ts.Add(90*24*time.Hour)))
		}
	}

	stats := model.CalculateMatchStatistics(repoA, repoB, commitsA, commitsB)
	gt.V(t, stats.ExactMatches).Equal(60)
	gt.V(t, stats.DifferentAuthorMatches).Equal(60)
	gt.V(t, stats.MatchPercentage).Equal(60.0)
	gt.True(t, stats.CommitsPredateRepo2)
	gt.V(t, stats.AuthorOverlap).Equal(0)

	// volume 40 + density 10 + predate 20 + gap 10 + identical first commit 5 + author 10
	gt.V(t, stats.ConfidenceScore).Equal(95)
	gt.V(t, stats.ConfidenceLevel).Equal(types.ConfidenceVeryHigh)
	gt.True(t, stats.ConfidenceScore >= model.BlacklistScore)
	gt.V(t, len(stats.SampleMatchingCommits)).Equal(10)
}

func TestCalculateMatchStatisticsNoMatch(t *testing.T) {
	repoA := &model.Repository{ID: 1, CreatedAt: baseTime}
	repoB := &model.Repository{ID: 2, CreatedAt: baseTime.Add(time.Hour)}

	t.Run("different minute", func(t *testing.T) {
		stats := model.CalculateMatchStatistics(repoA, repoB,
			[]*model.Commit{newCommit("add login", "a", baseTime)},
			[]*model.Commit{newCommit("add login", "b", baseTime.Add(time.Minute))},
		)
		gt.V(t, stats.ExactMatches).Equal(0)
	})

	t.Run("different message", func(t *testing.T) {
		stats := model.CalculateMatchStatistics(repoA, repoB,
			[]*model.Commit{newCommit("add login", "a", baseTime)},
			[]*model.Commit{newCommit("add logout", "b", baseTime)},
		)
		gt.V(t, stats.ExactMatches).Equal(0)
	})

	t.Run("empty histories", func(t *testing.T) {
		stats := model.CalculateMatchStatistics(repoA, repoB, nil, nil)
		gt.V(t, stats.ExactMatches).Equal(0)
		gt.V(t, stats.MatchPercentage).Equal(0.0)
	})
}

func TestCalculateMatchStatisticsSameAuthor(t *testing.T) {
	repoA := &model.Repository{ID: 1, CreatedAt: baseTime}
	repoB := &model.Repository{ID: 2, CreatedAt: baseTime.Add(time.Hour)}

	stats := model.CalculateMatchStatistics(repoA, repoB,
		[]*model.Commit{newCommit("Fix: add login", "alice", baseTime)},
		[]*model.Commit{newCommit("add login", "alice", baseTime)},
	)
	gt.V(t, stats.ExactMatches).Equal(1)
	gt.V(t, stats.DifferentAuthorMatches).Equal(0)
	gt.V(t, stats.AuthorOverlap).Equal(1)
}

func TestCalculateMatchStatisticsOneToOne(t *testing.T) {
	repoA := &model.Repository{ID: 1, CreatedAt: baseTime}
	repoB := &model.Repository{ID: 2, CreatedAt: baseTime.Add(time.Hour)}

	// three identical commits on one side, one on the other: only one pair matches
	stats := model.CalculateMatchStatistics(repoA, repoB,
		[]*model.Commit{
			newCommit("wip", "a", baseTime),
			newCommit("wip", "a", baseTime.Add(time.Second)),
			newCommit("wip", "a", baseTime.Add(2*time.Second)),
		},
		[]*model.Commit{newCommit("wip", "b", baseTime)},
	)
	gt.V(t, stats.ExactMatches).Equal(1)
	gt.True(t, stats.MatchPercentage <= 100)
}

// The density denominator is the larger history, so a small copied subset of a
// large repository scores low density even when every copied commit matches.
func TestMatchPercentageUsesLargerHistory(t *testing.T) {
	repoA := &model.Repository{ID: 1, CreatedAt: baseTime}
	repoB := &model.Repository{ID: 2, CreatedAt: baseTime.Add(time.Hour)}

	var commitsA, commitsB []*model.Commit
	for i := 0; i < 200; i++ {
		ts := baseTime.Add(time.Duration(i) * time.Minute)
		msg := fmt.Sprintf("change %d", i)
		commitsA = append(commitsA, newCommit(msg, "a", ts))
		if i < 20 {
			commitsB = append(commitsB, newCommit(msg, "b", ts))
		}
	}

	stats := model.CalculateMatchStatistics(repoA, repoB, commitsA, commitsB)
	gt.V(t, stats.ExactMatches).Equal(20)
	gt.V(t, stats.MatchPercentage).Equal(10.0)
}

func TestConfidenceScoreMonotonicInExactMatches(t *testing.T) {
	prev := -1
	for n := 0; n <= 120; n++ {
		stats := &model.MatchStatistics{
			ExactMatches:           n,
			DifferentAuthorMatches: n,
			MatchPercentage:        40,
			Repo1CreatedAt:         baseTime,
			Repo2CreatedAt:         baseTime.Add(24 * time.Hour),
		}
		score := model.CalculateConfidenceScore(stats)
		gt.True(t, score >= prev)
		gt.True(t, score >= 0 && score <= 100)
		prev = score
	}
}

func TestConfidenceScoreCapped(t *testing.T) {
	ts := baseTime.Add(-time.Hour)
	stats := &model.MatchStatistics{
		ExactMatches:           500,
		DifferentAuthorMatches: 500,
		MatchPercentage:        100,
		Repo1CreatedAt:         baseTime,
		Repo2CreatedAt:         baseTime.Add(365 * 24 * time.Hour),
		Repo1FirstCommit:       ts,
		Repo2FirstCommit:       ts,
		CommitsPredateRepo2:    true,
		TimeGapDays:            365,
	}
	gt.V(t, model.CalculateConfidenceScore(stats)).Equal(100)
}

func TestPredateBonus(t *testing.T) {
	base := model.MatchStatistics{
		ExactMatches:    1,
		MatchPercentage: 1,
		Repo1CreatedAt:  baseTime.Add(24 * time.Hour),
		// repo2 created before repo1
		Repo2CreatedAt: baseTime,
	}

	predate := base
	predate.CommitsPredateRepo2 = true

	withPredate := model.CalculateConfidenceScore(&predate)
	without := model.CalculateConfidenceScore(&base)
	gt.True(t, withPredate-without >= 20)
}

func TestConfidenceLevelOf(t *testing.T) {
	testCases := []struct {
		score int
		want  types.ConfidenceLevel
	}{
		{100, types.ConfidenceVeryHigh},
		{85, types.ConfidenceVeryHigh},
		{84, types.ConfidenceHigh},
		{70, types.ConfidenceHigh},
		{69, types.ConfidenceMedium},
		{50, types.ConfidenceMedium},
		{49, types.ConfidenceLow},
		{30, types.ConfidenceLow},
		{29, types.ConfidenceVeryLow},
		{0, types.ConfidenceVeryLow},
	}
	for _, tc := range testCases {
		gt.V(t, model.ConfidenceLevelOf(tc.score)).Equal(tc.want)
	}
}

func TestAuthorFactor(t *testing.T) {
	score := func(exact, diff int) int {
		return model.CalculateConfidenceScore(&model.MatchStatistics{
			ExactMatches:           exact,
			DifferentAuthorMatches: diff,
		})
	}
	// volume tier for 10 matches is 25
	gt.V(t, score(10, 10)).Equal(25 + 10)
	gt.V(t, score(10, 9)).Equal(25 + 8)
	gt.V(t, score(10, 8)).Equal(25 + 5)
	gt.V(t, score(10, 0)).Equal(25)
}
