package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/infra"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const (
	// commitFetchLimit bounds the commits indexed per repository
	commitFetchLimit = 10000

	// seedCommitLimit bounds the commits used as search seed and check targets
	seedCommitLimit = 1000

	// profileRepoLimit bounds the repositories enumerated for an account
	profileRepoLimit = 100
)

// ScanConfig holds the time bounds and limits of platform-wide scans
type ScanConfig struct {
	CheckTimeout    time.Duration
	IndexTimeout    time.Duration
	MatchTimeout    time.Duration
	RepoScanTimeout time.Duration
	CandidateLimit  int
	MinMatches      int

	// SessionStuckAfter and RepoStuckAfter are the inactivity windows after which
	// a profile scan or one of its repositories is forced to completion
	SessionStuckAfter time.Duration
	RepoStuckAfter    time.Duration

	// AccountCheckInterval paces account existence checks during a refresh
	AccountCheckInterval time.Duration
}

func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		CheckTimeout:         15 * time.Second,
		IndexTimeout:         60 * time.Second,
		MatchTimeout:         30 * time.Second,
		RepoScanTimeout:      2 * time.Minute,
		CandidateLimit:       10,
		MinMatches:           3,
		SessionStuckAfter:    5 * time.Minute,
		RepoStuckAfter:       10 * time.Minute,
		AccountCheckInterval: 100 * time.Millisecond,
	}
}

type UseCase struct {
	clients *infra.Clients
	config  ScanConfig
	tasks   *errgroup.Group
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithScanConfig(cfg ScanConfig) Option {
	return func(x *UseCase) {
		x.config = cfg
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		config:  DefaultScanConfig(),
		tasks:   &errgroup.Group{},
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// Wait blocks until every background task started by the usecase has finished
func (x *UseCase) Wait() error {
	return x.tasks.Wait()
}

// goBackground runs fn on a context detached from ctx's cancellation. Failures
// are observable only through persisted state.
func (x *UseCase) goBackground(ctx context.Context, fn func(ctx context.Context) error) {
	bgCtx := logging.DetachContext(ctx)
	x.tasks.Go(func() error {
		return fn(bgCtx)
	})
}

func now(ctx context.Context) time.Time {
	return logging.CtxTime(ctx).UTC()
}
