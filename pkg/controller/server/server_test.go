package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/controller/server"
	"github.com/m-mizutani/copycat/pkg/domain/mock"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func serve(t *testing.T, uc *mock.UseCaseMock, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.New(uc).Mux().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := serve(t, &mock.UseCaseMock{}, http.MethodGet, "/health", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestMetrics(t *testing.T) {
	rec := serve(t, &mock.UseCaseMock{}, http.MethodGet, "/metrics", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.S(t, rec.Body.String()).Contains("go_goroutines")
}

func TestErrorStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", goerr.Wrap(types.ErrValidationFailed, "bad"), http.StatusBadRequest},
		{"invalid URL", goerr.Wrap(types.ErrInvalidURL, "bad"), http.StatusBadRequest},
		{"invalid input", goerr.Wrap(repository.ErrInvalidInput, "bad"), http.StatusBadRequest},
		{"not found", goerr.Wrap(repository.ErrNotFound, "missing"), http.StatusNotFound},
		{"scan in progress", goerr.Wrap(types.ErrScanInProgress, "busy"), http.StatusConflict},
		{"other", goerr.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, server.ErrorStatusForTest(tc.err)).Equal(tc.code)
		})
	}
}

func TestEnqueueScan(t *testing.T) {
	t.Run("owner and repo with explicit priority", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnqueueScanFunc: func(ctx context.Context, owner, repo string, priority int) (bool, error) {
				gt.V(t, owner).Equal("alice")
				gt.V(t, repo).Equal("dashboard")
				gt.V(t, priority).Equal(10)
				return true, nil
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/scan", strings.NewReader(`{"owner":"alice","repo":"dashboard","priority":10}`))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		resp := decode[map[string]any](t, rec)
		gt.V(t, resp["queued"]).Equal(true)
	})

	t.Run("URL with default priority", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnqueueScanFromURLFunc: func(ctx context.Context, url string, priority int) (bool, error) {
				gt.V(t, url).Equal("https://github.com/alice/dashboard")
				gt.V(t, priority).Equal(50)
				return false, nil
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/scan", strings.NewReader(`{"url":"https://github.com/alice/dashboard"}`))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.A(t, uc.EnqueueScanFromURLCalls()).Length(1)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		rec := serve(t, uc, http.MethodPost, "/api/scan", strings.NewReader(`{"owner":`))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, decode[map[string]string](t, rec)["error"]).NotEqual("")
	})

	t.Run("invalid URL is 400", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnqueueScanFromURLFunc: func(ctx context.Context, url string, priority int) (bool, error) {
				return false, goerr.Wrap(types.ErrInvalidURL, "not a GitHub repository URL")
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/scan", strings.NewReader(`{"url":"https://example.com/x"}`))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestQueueStats(t *testing.T) {
	uc := &mock.UseCaseMock{
		QueueStatsFunc: func(ctx context.Context) (*model.QueueStats, error) {
			return &model.QueueStats{Waiting: 3, Active: 1, Completed: 5, Failed: 2}, nil
		},
	}
	rec := serve(t, uc, http.MethodGet, "/api/queue", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, decode[model.QueueStats](t, rec)).Equal(model.QueueStats{Waiting: 3, Active: 1, Completed: 5, Failed: 2})
}

func TestProfileRoutes(t *testing.T) {
	startedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("start returns 202 with handle", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			StartProfileScanFunc: func(ctx context.Context, username string) (*model.ScanHandle, error) {
				return &model.ScanHandle{Username: username, Phase: types.ScanPhaseIndexing, StartedAt: startedAt}, nil
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/profile/alice/scan", nil)
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		handle := decode[model.ScanHandle](t, rec)
		gt.V(t, handle.Username).Equal("alice")
		gt.V(t, handle.Phase).Equal(types.ScanPhaseIndexing)
	})

	t.Run("start while running is 409", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			StartProfileScanFunc: func(ctx context.Context, username string) (*model.ScanHandle, error) {
				return nil, goerr.Wrap(types.ErrScanInProgress, "busy", goerr.V("username", username))
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/profile/alice/scan", nil)
		gt.V(t, rec.Code).Equal(http.StatusConflict)
	})

	t.Run("status", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetProfileScanStatusFunc: func(ctx context.Context, username string) (*model.ProfileScanStatus, error) {
				return &model.ProfileScanStatus{
					Username: username,
					Phase:    types.ScanPhaseScanning,
					Progress: model.ScanProgress{TotalRepos: 4, ScannedRepos: 1, Percentage: 25},
					Message:  "Scanning 4 repos across GitHub... (1/4 done)",
				}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/profile/alice/status", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		status := decode[model.ProfileScanStatus](t, rec)
		gt.V(t, status.Progress.Percentage).Equal(25)
		gt.False(t, status.Completed)
	})

	t.Run("analysis", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AnalyzeProfileFunc: func(ctx context.Context, username string) (*model.ProfileAnalysis, error) {
				return &model.ProfileAnalysis{Username: username}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/profile/alice/analysis", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, uc.AnalyzeProfileCalls()).Length(1)
	})
}

func TestMatchRoutes(t *testing.T) {
	t.Run("list uses limit query", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListHighConfidenceMatchesFunc: func(ctx context.Context, limit int) ([]*model.Match, error) {
				gt.V(t, limit).Equal(5)
				return nil, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/matches?limit=5", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, strings.TrimSpace(rec.Body.String())).Equal("[]")
	})

	t.Run("non-numeric limit is 400", func(t *testing.T) {
		rec := serve(t, &mock.UseCaseMock{}, http.MethodGet, "/api/matches?limit=ten", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("details not found is 404", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetMatchDetailsFunc: func(ctx context.Context, id types.MatchID) (*model.MatchDetails, error) {
				gt.V(t, id).Equal(types.MatchID("1_2"))
				return nil, goerr.Wrap(repository.ErrNotFound, "match not found")
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/matches/1_2", nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("verify", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			VerifyMatchFunc: func(ctx context.Context, id types.MatchID) (bool, error) {
				return true, nil
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/matches/1_2/verify", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[map[string]bool](t, rec)["verified"]).Equal(true)
	})
}

func TestBlacklistRoutes(t *testing.T) {
	t.Run("list passes query", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBlacklistFunc: func(ctx context.Context, query model.BlacklistQuery) (*model.BlacklistPage, error) {
				gt.V(t, query).Equal(model.BlacklistQuery{
					Page:   2,
					Limit:  10,
					Search: "mal",
					Status: types.BlacklistConfirmed,
				})
				return &model.BlacklistPage{Page: 2, Limit: 10, Total: 11}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/blacklist?page=2&limit=10&search=mal&status=confirmed", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[model.BlacklistPage](t, rec).Total).Equal(11)
	})

	t.Run("stats is not treated as a username", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			BlacklistStatsFunc: func(ctx context.Context) (*model.BlacklistStats, error) {
				return &model.BlacklistStats{Scammers: 2, StolenRepos: 5, TotalMatches: 7}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/blacklist/stats", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[model.BlacklistStats](t, rec).StolenRepos).Equal(5)
	})

	t.Run("scammer", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetScammerFunc: func(ctx context.Context, username string) (*model.Scammer, error) {
				gt.V(t, username).Equal("mallory")
				return &model.Scammer{Entry: &model.BlacklistEntry{Username: username}}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/blacklist/mallory", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("refresh", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			RefreshAccountStatusesFunc: func(ctx context.Context) (*model.AccountRefreshResult, error) {
				return &model.AccountRefreshResult{Checked: 3, Eliminated: 1, Active: 2}, nil
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/blacklist/refresh", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[model.AccountRefreshResult](t, rec).Eliminated).Equal(1)
	})

	t.Run("check one account", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			CheckAccountStatusFunc: func(ctx context.Context, username string) (types.AccountStatus, error) {
				return types.AccountEliminated, nil
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/blacklist/mallory/check", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[map[string]string](t, rec)["account_status"]).Equal("eliminated")
	})
}

func TestReportRoutes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			CreateReportFunc: func(ctx context.Context, input *model.ReportInput) (*model.Report, error) {
				gt.V(t, input.SuspectURL).Equal("https://github.com/mallory/clone")
				return &model.Report{ID: "r1", Status: types.ReportStatusPending}, nil
			},
		}
		body := `{"original_url":"https://github.com/alice/dashboard","suspect_url":"https://github.com/mallory/clone"}`
		rec := serve(t, uc, http.MethodPost, "/api/reports", strings.NewReader(body))
		gt.V(t, rec.Code).Equal(http.StatusCreated)
		gt.V(t, decode[model.Report](t, rec).ID).Equal(types.ReportID("r1"))
	})

	t.Run("create with missing URL is 400", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			CreateReportFunc: func(ctx context.Context, input *model.ReportInput) (*model.Report, error) {
				return nil, input.Validate()
			},
		}
		rec := serve(t, uc, http.MethodPost, "/api/reports", strings.NewReader(`{"original_url":""}`))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("list", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListReportsFunc: func(ctx context.Context) ([]*model.Report, error) {
				return []*model.Report{{ID: "r1"}, {ID: "r2"}}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/reports", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, decode[[]model.Report](t, rec)).Length(2)
	})
}

func TestStats(t *testing.T) {
	t.Run("totals", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			StatsFunc: func(ctx context.Context) (*model.Stats, error) {
				return &model.Stats{Repositories: 4, Commits: 120, Matches: 2}, nil
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/stats", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")
		gt.V(t, decode[model.Stats](t, rec)).Equal(model.Stats{Repositories: 4, Commits: 120, Matches: 2})
	})

	t.Run("internal error is 500 with JSON body", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			StatsFunc: func(ctx context.Context) (*model.Stats, error) {
				return nil, goerr.New("database unavailable")
			},
		}
		rec := serve(t, uc, http.MethodGet, "/api/stats", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.S(t, decode[map[string]string](t, rec)["error"]).Contains("database unavailable")
	})
}
