package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func genRepos(n int, createdAt time.Time, stars int) []*model.GitHubRepository {
	repos := make([]*model.GitHubRepository, n)
	for i := range repos {
		repos[i] = &model.GitHubRepository{
			FullName:  fmt.Sprintf("user/repo-%d", i),
			CreatedAt: createdAt,
			Stars:     stars,
		}
	}
	return repos
}

func TestAnalyzeProfile(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("burst of starless repositories on a new account", func(t *testing.T) {
		repos := genRepos(60, now.Add(-5*24*time.Hour), 0)
		result := model.AnalyzeProfile("spam", now.Add(-10*24*time.Hour), repos, now)

		gt.V(t, result.ReposCreatedRecently).Equal(60)
		gt.V(t, result.AccountAgeDays).Equal(10)
		// 30 (recent) + 30 (young and large) + 20 (no stars)
		gt.V(t, result.SuspicionScore).Equal(80)
		gt.True(t, result.Suspicious)
		gt.V(t, len(result.Reasons)).Equal(3)
	})

	t.Run("established account", func(t *testing.T) {
		repos := genRepos(8, now.Add(-400*24*time.Hour), 50)
		result := model.AnalyzeProfile("veteran", time.Time{}, repos, now)

		gt.V(t, result.AccountAgeDays).Equal(400)
		gt.V(t, result.SuspicionScore).Equal(0)
		gt.False(t, result.Suspicious)
	})

	t.Run("no repositories", func(t *testing.T) {
		result := model.AnalyzeProfile("empty", time.Time{}, nil, now)
		gt.V(t, result.RepoCount).Equal(0)
		gt.False(t, result.Suspicious)
	})
}
