package types

import (
	"log/slog"
	"strconv"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	GitHubWebhookSecret string

	// RepoID is the platform-assigned repository ID
	RepoID int64
)

func (x RepoID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// QuotaClass identifies an independent rate-limit bucket of the hosting API
type QuotaClass string

const (
	QuotaCore   QuotaClass = "core"
	QuotaSearch QuotaClass = "search"
)

// AccountStatus is the externally verified state of a platform account
type AccountStatus string

const (
	AccountActive     AccountStatus = "active"
	AccountEliminated AccountStatus = "eliminated"
	AccountUnknown    AccountStatus = "unknown"
)

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubWebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubWebhookSecret) String() string {
	return "***********"
}

// DatabaseURL is a connection string that may embed credentials
type DatabaseURL string

func (x DatabaseURL) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseURL) String() string {
	return "***********"
}
