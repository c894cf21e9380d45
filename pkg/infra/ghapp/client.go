package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Client builds credentials of a GitHub App. The hosting API gateway uses the
// installation transport as an alternative to a personal access token.
type Client struct {
	appID   types.GitHubAppID
	pem     types.GitHubAppPrivateKey
	baseURL string
}

type Option func(*Client)

// WithBaseURL sets the API endpoint used for installation lookups and token exchange
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// HTTPClient returns a client authenticated as the installation. Installation
// tokens are exchanged and refreshed by the transport.
func (x *Client) HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport", goerr.V("appID", x.appID))
	}
	if x.baseURL != "" {
		itr.BaseURL = x.baseURL
	}

	return &http.Client{Transport: itr}, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	if x.baseURL != "" {
		itr.BaseURL = x.baseURL
	}

	client := github.NewClient(&http.Client{Transport: itr})
	if x.baseURL != "" {
		u, err := url.Parse(x.baseURL + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", x.baseURL))
		}
		client.BaseURL = u
	}
	return client, nil
}

// GetInstallationIDForOwner resolves the installation of the app on an
// organization or user account
func (x *Client) GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return 0, err
	}

	// Try organization installation first
	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}

		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner",
		goerr.V("owner", owner),
	)
}
