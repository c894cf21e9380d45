package infra_test

import (
	"testing"

	"github.com/m-mizutani/copycat/pkg/domain/mock"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/copycat/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// sessions and local git have in-process defaults
		gt.True(t, clients.SessionStore() != nil)
		gt.True(t, clients.LocalGit() != nil)
		// remote services are nil without configuration
		gt.True(t, clients.GitHub() == nil)
		gt.True(t, clients.Database() == nil)
		gt.True(t, clients.JobQueue() == nil)
		gt.True(t, clients.BigQuery() == nil)
	})

	t.Run("WithGitHub option sets gateway", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithDatabase and WithSessionStore set stores", func(t *testing.T) {
		db := memory.New()
		sessions := memory.NewSessionStore()
		clients := infra.New(infra.WithDatabase(db), infra.WithSessionStore(sessions))
		gt.V(t, clients.Database()).Equal(db)
		gt.V(t, clients.SessionStore()).Equal(sessions)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{}
		mockQueue := &mock.JobQueueMock{}
		mockGit := &mock.LocalGitMock{}

		clients := infra.New(
			infra.WithBigQuery(mockBQ),
			infra.WithJobQueue(mockQueue),
			infra.WithLocalGit(mockGit),
		)

		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.JobQueue()).Equal(mockQueue)
		gt.V(t, clients.LocalGit()).Equal(mockGit)
	})
}
