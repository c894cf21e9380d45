package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	popularPriority  = 10
	similarPriority  = 15
	trendingPriority = 20

	seedSearchLimit = 30
)

// enqueueSeeds enqueues every repository not indexed to completion yet and
// returns the number of newly queued jobs
func (x *UseCase) enqueueSeeds(ctx context.Context, repos []*model.GitHubRepository, priority int, skip string) (int, error) {
	db := x.clients.Database()
	queued := 0
	for _, r := range repos {
		if r.FullName == skip {
			continue
		}

		existing, err := db.GetRepositoryByFullName(ctx, r.FullName)
		switch {
		case err == nil && existing.ScanStatus == types.ScanStatusCompleted:
			continue
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return queued, goerr.Wrap(err, "failed to get repository", goerr.V("full_name", r.FullName))
		}

		added, err := x.EnqueueScan(ctx, r.Owner, r.Name, priority)
		if err != nil {
			return queued, err
		}
		if added {
			queued++
		}
	}
	return queued, nil
}

// DiscoverPopular enqueues the most starred repositories of each language
func (x *UseCase) DiscoverPopular(ctx context.Context, languages []string, minStars int) (int, error) {
	total := 0
	for _, lang := range languages {
		query := fmt.Sprintf("language:%s stars:>=%d", lang, minStars)
		repos, err := x.clients.GitHub().SearchRepositories(ctx, query, seedSearchLimit)
		if err != nil {
			logging.From(ctx).Warn("Failed to search popular repositories",
				slog.String("language", lang),
				slog.Any("error", err),
			)
			continue
		}

		n, err := x.enqueueSeeds(ctx, repos, popularPriority, "")
		if err != nil {
			return total, err
		}
		total += n
		logging.From(ctx).Info("Discovered popular repositories",
			slog.String("language", lang),
			slog.Int("found", len(repos)),
			slog.Int("queued", n),
		)
	}
	return total, nil
}

// DiscoverTrending enqueues the most starred repositories created after since
func (x *UseCase) DiscoverTrending(ctx context.Context, since time.Time) (int, error) {
	query := fmt.Sprintf("created:>%s", since.UTC().Format("2006-01-02"))
	repos, err := x.clients.GitHub().SearchRepositories(ctx, query, seedSearchLimit)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to search trending repositories", goerr.V("since", since))
	}

	n, err := x.enqueueSeeds(ctx, repos, trendingPriority, "")
	if err != nil {
		return n, err
	}
	logging.From(ctx).Info("Discovered trending repositories",
		slog.Int("found", len(repos)),
		slog.Int("queued", n),
	)
	return n, nil
}

// similarNameKeywords returns up to three words longer than two characters of
// fullName split on '-', '_' and '/'
func similarNameKeywords(fullName string) []string {
	words := strings.FieldsFunc(fullName, func(r rune) bool {
		return r == '-' || r == '_' || r == '/'
	})
	var keywords []string
	for _, w := range words {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
		if len(keywords) == 3 {
			break
		}
	}
	return keywords
}

// DiscoverSimilarNames enqueues repositories whose names resemble fullName
func (x *UseCase) DiscoverSimilarNames(ctx context.Context, fullName string) (int, error) {
	keywords := similarNameKeywords(fullName)
	if len(keywords) == 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "no keywords in repository name", goerr.V("full_name", fullName))
	}

	query := strings.Join(keywords, " ")
	repos, err := x.clients.GitHub().SearchRepositories(ctx, query, seedSearchLimit)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to search similar names", goerr.V("query", query))
	}

	n, err := x.enqueueSeeds(ctx, repos, similarPriority, fullName)
	if err != nil {
		return n, err
	}
	logging.From(ctx).Info("Discovered similar repositories",
		slog.String("seed", fullName),
		slog.Int("found", len(repos)),
		slog.Int("queued", n),
	)
	return n, nil
}
