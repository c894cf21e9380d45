package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// ScanRepository indexes owner/repo and matches it against the stored corpus
func (x *UseCase) ScanRepository(ctx context.Context, owner, repo string) (*model.RepoScanResult, error) {
	indexed, err := x.IndexRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	commits, err := x.clients.Database().ListCommits(ctx, indexed.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("id", indexed.ID))
	}

	matches, err := x.FindMatchesForRepo(ctx, indexed.ID)
	if err != nil {
		return nil, err
	}

	return &model.RepoScanResult{
		Repository: indexed,
		Commits:    len(commits),
		Matches:    matches,
	}, nil
}

// setPhase moves session to phase. It returns false when the stored session
// belongs to another scan or was already completed, e.g. by stuck recovery; the
// caller must stop then so progress never moves backward.
func (x *UseCase) setPhase(ctx context.Context, session *model.ProfileScanSession, phase types.ScanPhase) bool {
	next := session.Copy()
	next.Phase = phase
	next.PhaseChangedAt = now(ctx)

	ok, err := x.clients.SessionStore().AdvanceSession(ctx, next)
	if err != nil {
		logging.From(ctx).Warn("Failed to store scan session",
			slog.String("username", session.Username),
			slog.String("phase", string(phase)),
			slog.Any("error", err),
		)
		return true
	}
	if ok {
		*session = *next
	}
	return ok
}

// superseded reports whether session no longer owns the stored scan state
func (x *UseCase) superseded(ctx context.Context, session *model.ProfileScanSession) bool {
	current, err := x.clients.SessionStore().GetSession(ctx, session.Username)
	if err != nil {
		logging.From(ctx).Warn("Failed to get scan session", slog.Any("error", err))
		return false
	}
	return current == nil || current.ID != session.ID || !current.Active()
}

// StartProfileScan starts a profile scan in the background and returns at once.
// A session that is still active and not stuck rejects the start.
func (x *UseCase) StartProfileScan(ctx context.Context, username string) (*model.ScanHandle, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "username is required")
	}

	sessions := x.clients.SessionStore()
	current, err := sessions.GetSession(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get scan session", goerr.V("username", username))
	}
	if current.Active() && now(ctx).Sub(current.PhaseChangedAt) <= x.config.SessionStuckAfter {
		return nil, goerr.Wrap(types.ErrScanInProgress, "profile scan is running",
			goerr.V("username", username),
			goerr.V("phase", current.Phase),
		)
	}

	ts := now(ctx)
	session := &model.ProfileScanSession{
		ID:             types.NewScanID(),
		Username:       username,
		Phase:          types.ScanPhaseIndexing,
		StartedAt:      ts,
		PhaseChangedAt: ts,
	}
	if err := sessions.PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store scan session", goerr.V("username", username))
	}

	handle := &model.ScanHandle{
		Username:  username,
		Phase:     session.Phase,
		StartedAt: session.StartedAt,
	}
	x.goBackground(ctx, func(ctx context.Context) error {
		return x.runProfileScan(ctx, session)
	})

	logging.From(ctx).Info("Started profile scan", slog.String("username", username))
	return handle, nil
}

// RunProfileScan executes a whole profile scan synchronously
func (x *UseCase) RunProfileScan(ctx context.Context, username string) error {
	if username == "" {
		return goerr.Wrap(types.ErrValidationFailed, "username is required")
	}
	ts := now(ctx)
	session := &model.ProfileScanSession{
		ID:             types.NewScanID(),
		Username:       username,
		Phase:          types.ScanPhaseIndexing,
		StartedAt:      ts,
		PhaseChangedAt: ts,
	}
	if err := x.clients.SessionStore().PutSession(ctx, session); err != nil {
		return goerr.Wrap(err, "failed to store scan session", goerr.V("username", username))
	}
	return x.runProfileScan(ctx, session)
}

func (x *UseCase) runProfileScan(ctx context.Context, session *model.ProfileScanSession) error {
	username := session.Username
	logger := logging.From(ctx).With(slog.String("username", username))
	ctx = logging.With(ctx, logger)
	db := x.clients.Database()

	stop := func() error {
		logger.Info("Profile scan superseded, stopping", slog.String("scan_id", string(session.ID)))
		return nil
	}

	repos, err := x.clients.GitHub().ListUserRepositories(ctx, username, profileRepoLimit)
	if err != nil {
		if !x.superseded(ctx, session) {
			if delErr := x.clients.SessionStore().DeleteSession(context.WithoutCancel(ctx), username); delErr != nil {
				logger.Warn("Failed to delete scan session", slog.Any("error", delErr))
			}
		}
		metrics.ProfileScans.WithLabelValues("failed").Inc()
		return goerr.Wrap(err, "failed to list user repositories", goerr.V("username", username))
	}
	logger.Info("Enumerated repositories", slog.Int("repos", len(repos)))

	if x.superseded(ctx, session) {
		return stop()
	}
	for _, r := range repos {
		if _, err := db.UpsertRepository(ctx, r.ToRepository()); err != nil {
			logger.Warn("Failed to store repository", slog.String("repo", r.FullName), slog.Any("error", err))
			continue
		}
		if err := db.UpdateScanStatus(ctx, r.FullName, types.ScanStatusPending, now(ctx)); err != nil {
			logger.Warn("Failed to reset scan status", slog.String("repo", r.FullName), slog.Any("error", err))
		}
	}

	for i, r := range repos {
		if x.superseded(ctx, session) {
			return stop()
		}
		if _, err := x.indexRepository(ctx, r.Owner, r.Name, types.ScanStatusProcessing, types.ScanStatusProcessing); err != nil {
			logger.Warn("Failed to index repository", slog.String("repo", r.FullName), slog.Any("error", err))
			continue
		}
		logger.Info("Indexed repository",
			slog.String("repo", r.FullName),
			slog.Int("index", i+1),
			slog.Int("total", len(repos)),
		)
	}

	if !x.setPhase(ctx, session, types.ScanPhaseScanning) {
		return stop()
	}
	for i, r := range repos {
		if x.superseded(ctx, session) {
			return stop()
		}
		x.scanAcrossGitHub(ctx, r, i, len(repos))
	}

	if !x.setPhase(ctx, session, types.ScanPhaseMatching) {
		return stop()
	}
	if n, err := x.FindMatchesForAllRepos(ctx); err != nil {
		logger.Warn("Failed to match stored repositories", slog.Any("error", err))
	} else {
		logger.Info("Matched stored repositories", slog.Int("matches", n))
	}

	if x.superseded(ctx, session) {
		return stop()
	}
	for _, r := range repos {
		stored, err := db.GetRepositoryByFullName(ctx, r.FullName)
		if err == nil && stored.ScanStatus == types.ScanStatusCompleted {
			continue
		}
		x.forceCompleted(ctx, r)
	}

	if !x.setPhase(ctx, session, types.ScanPhaseCompleted) {
		return stop()
	}
	metrics.ProfileScans.WithLabelValues("completed").Inc()
	logger.Info("Profile scan completed", slog.Int("repos", len(repos)))
	return nil
}

// scanAcrossGitHub runs the time-bounded platform-wide search for one repository
// and marks it completed whatever the outcome
func (x *UseCase) scanAcrossGitHub(ctx context.Context, r *model.GitHubRepository, i, total int) {
	logger := logging.From(ctx).With(
		slog.String("repo", r.FullName),
		slog.Int("index", i+1),
		slog.Int("total", total),
	)
	defer x.forceCompleted(ctx, r)

	if err := x.clients.Database().UpdateScanStatus(ctx, r.FullName, types.ScanStatusProcessing, now(ctx)); err != nil {
		logger.Warn("Failed to update scan status", slog.Any("error", err))
	}

	scanCtx, cancel := context.WithTimeout(ctx, x.config.RepoScanTimeout)
	defer cancel()

	found, err := x.FindMatchesAcrossGitHub(logging.With(scanCtx, logger), r.Owner, r.Name)
	if err != nil {
		logger.Warn("Platform-wide scan aborted", slog.Any("error", err))
	}
	if len(found) > 0 {
		logger.Warn("Suspicious copies found", slog.Int("matches", len(found)))
	}
}

// forceCompleted marks the repository completed, creating the record when missing
func (x *UseCase) forceCompleted(ctx context.Context, r *model.GitHubRepository) {
	ctx = context.WithoutCancel(ctx)
	db := x.clients.Database()

	err := db.UpdateScanStatus(ctx, r.FullName, types.ScanStatusCompleted, now(ctx))
	if err == nil {
		return
	}
	if _, upErr := db.UpsertRepository(ctx, r.ToRepository()); upErr == nil {
		err = db.UpdateScanStatus(ctx, r.FullName, types.ScanStatusCompleted, now(ctx))
	}
	if err != nil {
		logging.From(ctx).Warn("Failed to mark repository completed",
			slog.String("repo", r.FullName),
			slog.Any("error", err),
		)
	}
}

func countProgress(repos []*model.Repository) model.ScanProgress {
	p := model.ScanProgress{TotalRepos: len(repos)}
	for _, r := range repos {
		switch r.ScanStatus {
		case types.ScanStatusCompleted:
			p.ScannedRepos++
		case types.ScanStatusPending:
			p.PendingRepos++
		case types.ScanStatusProcessing:
			p.ProcessingRepos++
		}
	}
	if p.TotalRepos > 0 {
		p.Percentage = int(math.Round(float64(p.ScannedRepos) * 100 / float64(p.TotalRepos)))
	}
	return p
}

// GetProfileScanStatus reports progress of the profile scan of username. A scan
// whose session or repositories made no progress within the stuck windows is
// forced to completion first.
func (x *UseCase) GetProfileScanStatus(ctx context.Context, username string) (*model.ProfileScanStatus, error) {
	db := x.clients.Database()
	sessions := x.clients.SessionStore()

	session, err := sessions.GetSession(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get scan session", goerr.V("username", username))
	}
	repos, err := db.ListRepositoriesByOwner(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("username", username))
	}

	status := &model.ProfileScanStatus{Username: username}

	if x.isStuck(ctx, session, repos) {
		logging.From(ctx).Warn("Profile scan is stuck, forcing completion", slog.String("username", username))
		if err := x.recoverStuckScan(ctx, session, username, repos); err != nil {
			return nil, err
		}
		metrics.ProfileScans.WithLabelValues("recovered").Inc()
		status.Recovered = true

		if session, err = sessions.GetSession(ctx, username); err != nil {
			return nil, goerr.Wrap(err, "failed to get scan session", goerr.V("username", username))
		}
		if repos, err = db.ListRepositoriesByOwner(ctx, username); err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("username", username))
		}
	}

	p := countProgress(repos)
	status.Progress = p
	if session != nil {
		status.Phase = session.Phase
	}

	scanning := session.Active() || p.ProcessingRepos > 0 || (p.PendingRepos > 0 && p.ScannedRepos < p.TotalRepos)
	status.Completed = !scanning && p.PendingRepos == 0 && p.ProcessingRepos == 0 && p.TotalRepos > 0

	switch {
	case scanning && (status.Phase == types.ScanPhaseIndexing || (p.PendingRepos > 0 && p.ScannedRepos == 0)):
		status.Message = fmt.Sprintf("Indexing %d repos... (%d/%d done)", p.TotalRepos, p.ScannedRepos, p.TotalRepos)
	case scanning && (status.Phase == types.ScanPhaseScanning || p.ProcessingRepos > 0 || p.PendingRepos > 0):
		remaining := p.ProcessingRepos
		if remaining == 0 {
			remaining = p.PendingRepos
		}
		status.Message = fmt.Sprintf("Scanning %d repos across GitHub... (%d/%d done)", remaining, p.ScannedRepos, p.TotalRepos)
	case scanning:
		status.Message = fmt.Sprintf("Matching repositories... (%d/%d done)", p.ScannedRepos, p.TotalRepos)
	case status.Completed:
		status.Message = "Scan complete"
	default:
		status.Message = "No active scan"
	}

	if status.Completed || (status.Phase == types.ScanPhaseScanning && p.ScannedRepos > 0) {
		result, err := x.profileResult(ctx, username, repos)
		if err != nil {
			return nil, err
		}
		status.Result = result
	}

	return status, nil
}

func (x *UseCase) isStuck(ctx context.Context, session *model.ProfileScanSession, repos []*model.Repository) bool {
	ts := now(ctx)
	if session.Active() && ts.Sub(session.PhaseChangedAt) > x.config.SessionStuckAfter {
		return true
	}
	for _, r := range repos {
		if r.ScanStatus == types.ScanStatusProcessing && ts.Sub(r.StatusUpdatedAt) > x.config.RepoStuckAfter {
			return true
		}
	}
	return false
}

func (x *UseCase) recoverStuckScan(ctx context.Context, session *model.ProfileScanSession, username string, repos []*model.Repository) error {
	db := x.clients.Database()
	for _, r := range repos {
		if r.ScanStatus != types.ScanStatusPending && r.ScanStatus != types.ScanStatusProcessing {
			continue
		}
		if err := db.UpdateScanStatus(ctx, r.FullName, types.ScanStatusCompleted, now(ctx)); err != nil {
			return goerr.Wrap(err, "failed to force repository completed", goerr.V("repo", r.FullName))
		}
	}

	recovered := &model.ProfileScanSession{Username: username, StartedAt: now(ctx)}
	if session != nil {
		recovered = session.Copy()
	}
	recovered.Phase = types.ScanPhaseCompleted
	recovered.PhaseChangedAt = now(ctx)
	if err := x.clients.SessionStore().PutSession(ctx, recovered); err != nil {
		return goerr.Wrap(err, "failed to store scan session", goerr.V("username", username))
	}
	return nil
}

// profileResult aggregates the stored matches of every repository of username
func (x *UseCase) profileResult(ctx context.Context, username string, repos []*model.Repository) (*model.ProfileScanResult, error) {
	result := &model.ProfileScanResult{
		Username:        username,
		SuspiciousRepos: []*model.SuspiciousRepo{},
	}

	for _, repo := range repos {
		matches, err := x.clients.Database().ListMatchesByRepo(ctx, repo.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list matches", goerr.V("repo", repo.FullName))
		}
		if len(matches) == 0 {
			continue
		}
		result.TotalMatches += len(matches)

		var highest *model.Match
		all := make([]*model.MatchedRepo, 0, len(matches))
		for _, m := range matches {
			_, other := m.Counterpart(repo.ID)
			all = append(all, &model.MatchedRepo{
				FullName:        other,
				MatchID:         m.ID,
				ConfidenceScore: m.ConfidenceScore,
			})
			if highest == nil || m.ConfidenceScore > highest.ConfidenceScore {
				highest = m
			}
		}
		if highest.ConfidenceScore < model.SuspiciousScore {
			continue
		}

		_, against := highest.Counterpart(repo.ID)
		result.SuspiciousRepos = append(result.SuspiciousRepos, &model.SuspiciousRepo{
			FullName:          repo.FullName,
			SuspicionScore:    repo.SuspicionScore,
			Matches:           len(matches),
			HighestConfidence: highest.ConfidenceScore,
			MatchedAgainst:    against,
			AllMatches:        all,
		})
	}

	sort.SliceStable(result.SuspiciousRepos, func(i, j int) bool {
		return result.SuspiciousRepos[i].HighestConfidence > result.SuspiciousRepos[j].HighestConfidence
	})
	result.SuspiciousCount = len(result.SuspiciousRepos)
	result.ProfileScore = model.ProfileScore(result.SuspiciousRepos)
	return result, nil
}

// AnalyzeProfile scores the account of username by repository creation patterns
func (x *UseCase) AnalyzeProfile(ctx context.Context, username string) (*model.ProfileAnalysis, error) {
	analysis, _, err := x.analyzeProfile(ctx, username)
	return analysis, err
}

func (x *UseCase) analyzeProfile(ctx context.Context, username string) (*model.ProfileAnalysis, []*model.GitHubRepository, error) {
	gh := x.clients.GitHub()

	user, err := gh.GetUser(ctx, username)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get user", goerr.V("username", username))
	}
	repos, err := gh.ListUserRepositories(ctx, username, profileRepoLimit)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list user repositories", goerr.V("username", username))
	}

	return model.AnalyzeProfile(username, user.CreatedAt, repos, now(ctx)), repos, nil
}

// suspiciousProfilePriority is the queue priority of repositories of flagged accounts
const suspiciousProfilePriority = 30

// ScanSuspiciousProfile analyzes the account and enqueues all its repositories
// when it is flagged
func (x *UseCase) ScanSuspiciousProfile(ctx context.Context, username string) (*model.ProfileAnalysis, error) {
	analysis, repos, err := x.analyzeProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if !analysis.Suspicious {
		return analysis, nil
	}

	queued := 0
	for _, r := range repos {
		added, err := x.EnqueueScan(ctx, r.Owner, r.Name, suspiciousProfilePriority)
		if err != nil {
			return nil, err
		}
		if added {
			queued++
		}
	}

	logging.From(ctx).Info("Queued repositories of suspicious profile",
		slog.String("username", username),
		slog.Int("score", analysis.SuspicionScore),
		slog.Int("queued", queued),
	)
	return analysis, nil
}
