package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultScanPriority = 50
	defaultMatchLimit   = 50
)

type handler struct {
	uc interfaces.UseCase
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "malformed request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(types.ErrValidationFailed, "query parameter must be an integer", goerr.V("key", key), goerr.V("value", raw))
	}
	return v, nil
}

type enqueueRequest struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	URL      string `json:"url"`
	Priority *int   `json:"priority"`
}

type enqueueResponse struct {
	Queued bool   `json:"queued"`
	Owner  string `json:"owner,omitempty"`
	Repo   string `json:"repo,omitempty"`
	URL    string `json:"url,omitempty"`
}

func (x *handler) enqueueScan(w http.ResponseWriter, r *http.Request) {
	var req enqueueRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	priority := defaultScanPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	var (
		added bool
		err   error
	)
	if req.URL != "" {
		added, err = x.uc.EnqueueScanFromURL(r.Context(), req.URL, priority)
	} else {
		added, err = x.uc.EnqueueScan(r.Context(), req.Owner, req.Repo, priority)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, enqueueResponse{Queued: added, Owner: req.Owner, Repo: req.Repo, URL: req.URL})
}

func (x *handler) queueStats(w http.ResponseWriter, r *http.Request) {
	stats, err := x.uc.QueueStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (x *handler) startProfileScan(w http.ResponseWriter, r *http.Request) {
	handle, err := x.uc.StartProfileScan(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, handle)
}

func (x *handler) profileScanStatus(w http.ResponseWriter, r *http.Request) {
	status, err := x.uc.GetProfileScanStatus(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (x *handler) analyzeProfile(w http.ResponseWriter, r *http.Request) {
	analysis, err := x.uc.AnalyzeProfile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (x *handler) listMatches(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultMatchLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	matches, err := x.uc.ListHighConfidenceMatches(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if matches == nil {
		matches = []*model.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (x *handler) getMatch(w http.ResponseWriter, r *http.Request) {
	details, err := x.uc.GetMatchDetails(r.Context(), types.MatchID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (x *handler) verifyMatch(w http.ResponseWriter, r *http.Request) {
	verified, err := x.uc.VerifyMatch(r.Context(), types.MatchID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"verified": verified})
}

func (x *handler) listBlacklist(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", model.DefaultBlacklistLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := x.uc.ListBlacklist(r.Context(), model.BlacklistQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
		Status: types.BlacklistStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (x *handler) blacklistStats(w http.ResponseWriter, r *http.Request) {
	stats, err := x.uc.BlacklistStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (x *handler) refreshBlacklist(w http.ResponseWriter, r *http.Request) {
	result, err := x.uc.RefreshAccountStatuses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (x *handler) getScammer(w http.ResponseWriter, r *http.Request) {
	scammer, err := x.uc.GetScammer(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scammer)
}

func (x *handler) checkAccount(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	status, err := x.uc.CheckAccountStatus(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"username":       username,
		"account_status": string(status),
	})
}

func (x *handler) createReport(w http.ResponseWriter, r *http.Request) {
	var input model.ReportInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	report, err := x.uc.CreateReport(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (x *handler) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := x.uc.ListReports(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (x *handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := x.uc.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
