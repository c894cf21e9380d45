package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const webhookPriority = 50

// webhookTarget is a repository that a webhook event asks to scan
type webhookTarget struct {
	Owner string
	Repo  string
}

// validateGitHubEvent checks the payload signature and extracts the repository to scan.
// It returns nil when the event does not require a scan.
func validateGitHubEvent(r *http.Request, secret types.GitHubWebhookSecret) (*webhookTarget, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid webhook signature", goerr.V("cause", err.Error()))
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "unparsable webhook payload", goerr.V("cause", err.Error()))
	}

	target := githubEventToTarget(event)
	logging.From(ctx).Info("received GitHub event",
		slog.String("type", github.WebHookType(r)),
		slog.Any("target", target),
	)
	return target, nil
}

func githubEventToTarget(event any) *webhookTarget {
	switch ev := event.(type) {
	case *github.PushEvent:
		if ev.GetRepo().GetPrivate() {
			return nil
		}
		return &webhookTarget{
			Owner: ev.GetRepo().GetOwner().GetLogin(),
			Repo:  ev.GetRepo().GetName(),
		}

	case *github.RepositoryEvent:
		switch ev.GetAction() {
		case "created", "publicized":
		default:
			logging.Default().Debug("ignore repository event", slog.String("action", ev.GetAction()))
			return nil
		}
		if ev.GetRepo().GetPrivate() {
			return nil
		}
		return &webhookTarget{
			Owner: ev.GetRepo().GetOwner().GetLogin(),
			Repo:  ev.GetRepo().GetName(),
		}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil

	default:
		logging.Default().Warn("unsupported event", slog.String("event", fmt.Sprintf("%T", event)))
		return nil
	}
}
