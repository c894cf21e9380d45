package model

import (
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Report is a community submission claiming that one repository copies another
type Report struct {
	ID            types.ReportID     `json:"id" firestore:"id"`
	OriginalURL   string             `json:"original_url" firestore:"original_url"`
	SuspectURL    string             `json:"suspect_url" firestore:"suspect_url"`
	Reason        string             `json:"reason,omitempty" firestore:"reason"`
	ReporterEmail string             `json:"reporter_email,omitempty" firestore:"reporter_email" masq:"secret"`
	Status        types.ReportStatus `json:"status" firestore:"status"`
	CreatedAt     time.Time          `json:"created_at" firestore:"created_at"`
}

// ReportInput is the user-supplied part of a report
type ReportInput struct {
	OriginalURL   string `json:"original_url"`
	SuspectURL    string `json:"suspect_url"`
	Reason        string `json:"reason"`
	ReporterEmail string `json:"reporter_email" masq:"secret"`
}

func (x *ReportInput) Validate() error {
	if x.OriginalURL == "" || x.SuspectURL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "both original and suspect URLs are required")
	}
	if _, _, err := ParseRepoURL(x.OriginalURL); err != nil {
		return goerr.Wrap(err, "invalid original URL")
	}
	if _, _, err := ParseRepoURL(x.SuspectURL); err != nil {
		return goerr.Wrap(err, "invalid suspect URL")
	}
	return nil
}

// Stats is the corpus totals
type Stats struct {
	Repositories int `json:"repositories"`
	Commits      int `json:"commits"`
	Matches      int `json:"matches"`
}
