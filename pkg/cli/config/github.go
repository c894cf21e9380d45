package config

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/infra/ghapp"
	"github.com/m-mizutani/copycat/pkg/infra/github"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub selects how the gateway authenticates: a personal access token, a GitHub
// App installation, or anonymous access with the lowest quota.
type GitHub struct {
	baseURL string
	token   types.GitHubToken `masq:"secret"`

	appID         types.GitHubAppID
	appInstallID  types.GitHubAppInstallID
	appOwner      string
	appPrivateKey types.GitHubAppPrivateKey `masq:"secret"`

	webhookSecret types.GitHubWebhookSecret `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("COPYCAT_GITHUB_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("COPYCAT_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (used when no token is given)",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("COPYCAT_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appInstallID),
			Sources:     cli.EnvVars("COPYCAT_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-owner",
			Usage:       "Account whose GitHub App installation is used when no installation ID is given",
			Category:    "GitHub",
			Destination: &x.appOwner,
			Sources:     cli.EnvVars("COPYCAT_GITHUB_APP_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.appPrivateKey),
			Sources:     cli.EnvVars("COPYCAT_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Secret of the GitHub webhook. /webhook/github is served only when set",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("COPYCAT_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

func (x *GitHub) WebhookSecret() types.GitHubWebhookSecret {
	return x.webhookSecret
}

func (x *GitHub) options(rateLimit *RateLimit) []github.Option {
	opts := []github.Option{github.WithGovernorConfig(rateLimit.GovernorConfig())}
	if x.baseURL != "" {
		opts = append(opts, github.WithBaseURL(x.baseURL))
	}
	return opts
}

// NewClient builds the hosting API gateway. A token takes precedence over App credentials.
func (x *GitHub) NewClient(ctx context.Context, rateLimit *RateLimit) (*github.Client, error) {
	if x.token != "" {
		return github.NewWithToken(ctx, x.token, x.options(rateLimit)...)
	}

	if x.appID != 0 {
		httpClient, err := x.appHTTPClient(ctx)
		if err != nil {
			return nil, err
		}
		return github.New(httpClient, x.options(rateLimit)...)
	}

	logging.From(ctx).Warn("GitHub credentials are not configured, using unauthenticated access")
	return github.New(http.DefaultClient, x.options(rateLimit)...)
}

func (x *GitHub) appHTTPClient(ctx context.Context) (*http.Client, error) {
	if x.appPrivateKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is required with App ID")
	}

	var appOpts []ghapp.Option
	if x.baseURL != "" {
		appOpts = append(appOpts, ghapp.WithBaseURL(x.baseURL))
	}
	app, err := ghapp.New(x.appID, x.appPrivateKey, appOpts...)
	if err != nil {
		return nil, err
	}

	installID := x.appInstallID
	if installID == 0 {
		if x.appOwner == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "either GitHub App installation ID or owner is required")
		}
		id, err := app.GetInstallationIDForOwner(ctx, x.appOwner)
		if err != nil {
			return nil, err
		}
		installID = id
	}

	return app.HTTPClient(installID)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("AppInstallID", int64(x.appInstallID)),
		slog.String("AppOwner", x.appOwner),
		slog.Int("AppPrivateKey.len", len(x.appPrivateKey)),
		slog.Int("WebhookSecret.len", len(x.webhookSecret)),
	)
}
