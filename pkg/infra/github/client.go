package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Client is the hosting API gateway. Every call waits on the Governor first.
type Client struct {
	gh       *github.Client
	governor *Governor

	baseURL      string
	governorCfg  GovernorConfig
	governorOpts []GovernorOption
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a different API endpoint such as GitHub Enterprise or a test server
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithGovernorConfig(cfg GovernorConfig) Option {
	return func(x *Client) {
		x.governorCfg = cfg
	}
}

func WithGovernorOptions(opts ...GovernorOption) Option {
	return func(x *Client) {
		x.governorOpts = append(x.governorOpts, opts...)
	}
}

// New creates a gateway on top of httpClient, which carries the credentials
func New(httpClient *http.Client, options ...Option) (*Client, error) {
	client := &Client{
		gh:          github.NewClient(httpClient),
		governorCfg: DefaultGovernorConfig(),
	}
	for _, opt := range options {
		opt(client)
	}

	if client.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(client.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", client.baseURL))
		}
		client.gh.BaseURL = u
	}

	client.governor = NewGovernor(client.queryQuota, client.governorCfg, client.governorOpts...)
	return client, nil
}

// NewWithToken creates a gateway authenticated by a personal access token
func NewWithToken(ctx context.Context, token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return New(oauth2.NewClient(ctx, ts), options...)
}

func (x *Client) queryQuota(ctx context.Context, class types.QuotaClass) (*Quota, error) {
	limits, _, err := x.gh.RateLimits(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get rate limits")
	}

	var r *github.Rate
	switch class {
	case types.QuotaSearch:
		r = limits.GetSearch()
	default:
		r = limits.GetCore()
	}
	if r == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "rate limit of class is missing", goerr.V("class", class))
	}

	return &Quota{
		Limit:     r.Limit,
		Remaining: r.Remaining,
		Reset:     r.Reset.Time,
	}, nil
}

func observe(op string, err error) {
	metrics.GitHubCalls.WithLabelValues(op, metrics.Outcome(err)).Inc()
}

func statusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

func (x *Client) GetRepository(ctx context.Context, owner, name string) (*model.GitHubRepository, error) {
	if err := x.governor.Await(ctx, types.QuotaCore); err != nil {
		return nil, err
	}

	repo, _, err := x.gh.Repositories.Get(ctx, owner, name)
	observe("get_repository", err)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", name),
			goerr.V("status", statusCode(err)),
		)
	}

	return toRepository(repo), nil
}

// GetAccountStatus checks whether the account still exists. 404 means eliminated;
// any other failure is reported as unknown.
func (x *Client) GetAccountStatus(ctx context.Context, username string) types.AccountStatus {
	if err := x.governor.Await(ctx, types.QuotaCore); err != nil {
		return types.AccountUnknown
	}

	_, resp, err := x.gh.Users.Get(ctx, username)
	observe("get_user", err)
	switch {
	case err == nil:
		return types.AccountActive
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		return types.AccountEliminated
	default:
		logging.From(ctx).Warn("failed to check account status",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return types.AccountUnknown
	}
}

func (x *Client) GetUser(ctx context.Context, username string) (*model.GitHubUser, error) {
	if err := x.governor.Await(ctx, types.QuotaCore); err != nil {
		return nil, err
	}

	user, _, err := x.gh.Users.Get(ctx, username)
	observe("get_user", err)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("username", username), goerr.V("status", statusCode(err)))
	}

	return &model.GitHubUser{
		ID:          user.GetID(),
		Login:       user.GetLogin(),
		CreatedAt:   user.GetCreatedAt().Time,
		PublicRepos: user.GetPublicRepos(),
	}, nil
}

func toRepository(repo *github.Repository) *model.GitHubRepository {
	owner := repo.GetOwner().GetLogin()
	fullName := repo.GetFullName()
	if fullName == "" {
		fullName = owner + "/" + repo.GetName()
	}

	return &model.GitHubRepository{
		ID:          types.RepoID(repo.GetID()),
		Owner:       owner,
		Name:        repo.GetName(),
		FullName:    fullName,
		Description: repo.GetDescription(),
		Topics:      repo.Topics,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		CreatedAt:   repo.GetCreatedAt().Time,
		UpdatedAt:   repo.GetUpdatedAt().Time,
		PushedAt:    repo.GetPushedAt().Time,
	}
}
