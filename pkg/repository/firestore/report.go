package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (x *Database) CreateReport(ctx context.Context, report *model.Report) error {
	if report.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "report ID is empty")
	}

	doc := x.client.Collection(collectionReport).Doc(string(report.ID))
	if _, err := doc.Create(ctx, report); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "report already exists", goerr.V("id", report.ID))
		}
		return goerr.Wrap(err, "failed to create report", goerr.V("id", report.ID))
	}
	return nil
}

func (x *Database) ListReports(ctx context.Context) ([]*model.Report, error) {
	query := x.client.Collection(collectionReport).OrderBy("created_at", firestore.Desc)
	reports, err := decodeAll[model.Report](query.Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}
	return reports, nil
}
