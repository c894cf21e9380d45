package gitlocal_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/copycat/pkg/infra/gitlocal"
	"github.com/m-mizutani/gt"
)

func initRepo(t *testing.T, remoteURL string, messages []string) string {
	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)

	if remoteURL != "" {
		gt.R1(repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{remoteURL},
		})).NoError(t)
	}

	wt := gt.R1(repo.Worktree()).NoError(t)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		name := fmt.Sprintf("file%d.txt", i)
		gt.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(msg), 0644))
		gt.R1(wt.Add(name)).NoError(t)

		sig := &object.Signature{Name: "alice", Email: "alice@example.com", When: base.Add(time.Duration(i) * time.Hour)}
		gt.R1(wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})).NoError(t)
	}

	return dir
}

func TestReadHistory(t *testing.T) {
	dir := initRepo(t, "git@github.com:octo/app.git", []string{
		"initial commit",
		"add parser\n\nlong body",
		"fix: handle empty input",
	})

	history := gt.R1(gitlocal.New().ReadHistory(context.Background(), dir, 0)).NoError(t)
	gt.V(t, history.Owner).Equal("octo")
	gt.V(t, history.Name).Equal("app")
	gt.V(t, len(history.Commits)).Equal(3)

	newest := history.Commits[0]
	gt.V(t, newest.Message).Equal("fix: handle empty input")
	gt.V(t, newest.NormalizedMessage).Equal("handle empty input")
	gt.V(t, newest.AuthorName).Equal("alice")
	gt.V(t, newest.Timestamp).Equal(time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC))
	gt.S(t, newest.URL).Contains("https://github.com/octo/app/commit/")

	gt.V(t, history.Commits[1].Message).Equal("add parser")
}

func TestReadHistoryLimit(t *testing.T) {
	dir := initRepo(t, "https://github.com/octo/app", []string{"one change", "two change", "three change"})

	history := gt.R1(gitlocal.New().ReadHistory(context.Background(), dir, 2)).NoError(t)
	gt.V(t, len(history.Commits)).Equal(2)
}

func TestReadHistoryWithoutOrigin(t *testing.T) {
	dir := initRepo(t, "", []string{"one change"})

	_, err := gitlocal.New().ReadHistory(context.Background(), dir, 0)
	gt.Error(t, err)
}

func TestReadHistoryNotRepository(t *testing.T) {
	_, err := gitlocal.New().ReadHistory(context.Background(), t.TempDir(), 0)
	gt.Error(t, err)
}
