package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Database) CreateReport(ctx context.Context, report *model.Report) error {
	if report.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "report ID is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.reports[report.ID]; ok {
		return goerr.Wrap(repository.ErrAlreadyExists, "report already exists", goerr.V("id", report.ID))
	}
	cp := *report
	x.reports[report.ID] = &cp
	return nil
}

func (x *Database) ListReports(ctx context.Context) ([]*model.Report, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	reports := make([]*model.Report, 0, len(x.reports))
	for _, r := range x.reports {
		cp := *r
		reports = append(reports, &cp)
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID < reports[j].ID
	})
	return reports, nil
}
