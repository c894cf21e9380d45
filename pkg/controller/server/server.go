package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/copycat/pkg/utils/errutil"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		code = http.StatusInternalServerError
		raw = []byte(`{"error":"fail to marshal response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrInvalidURL),
		errors.Is(err, repository.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrScanInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "fail to handle request", err)
	} else {
		logging.From(r.Context()).Info("request rejected", slog.Int("status_code", code), slog.Any("error", err))
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

type config struct {
	webhookSecret types.GitHubWebhookSecret
}

type Option func(*config)

// WithGitHubWebhookSecret enables /webhook/github with HMAC signature validation
func WithGitHubWebhookSecret(secret types.GitHubWebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	h := &handler{uc: uc}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/scan", h.enqueueScan)
		r.Get("/queue", h.queueStats)

		r.Route("/profile/{username}", func(r chi.Router) {
			r.Post("/scan", h.startProfileScan)
			r.Get("/status", h.profileScanStatus)
			r.Get("/analysis", h.analyzeProfile)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.listMatches)
			r.Get("/{id}", h.getMatch)
			r.Post("/{id}/verify", h.verifyMatch)
		})

		r.Route("/blacklist", func(r chi.Router) {
			r.Get("/", h.listBlacklist)
			r.Get("/stats", h.blacklistStats)
			r.Post("/refresh", h.refreshBlacklist)
			r.Get("/{username}", h.getScammer)
			r.Post("/{username}/check", h.checkAccount)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.createReport)
			r.Get("/", h.listReports)
		})

		r.Get("/stats", h.stats)
	})

	if cfg.webhookSecret != "" {
		r.Post("/webhook/github", func(w http.ResponseWriter, r *http.Request) {
			target, err := validateGitHubEvent(r, cfg.webhookSecret)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if target == nil {
				writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
				return
			}

			added, err := uc.EnqueueScan(r.Context(), target.Owner, target.Repo, webhookPriority)
			if err != nil {
				writeError(w, r, err)
				return
			}

			writeJSON(w, http.StatusAccepted, enqueueResponse{Queued: added, Owner: target.Owner, Repo: target.Repo})
		})
	}

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
