package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/copycat/pkg/utils/errutil"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle goerr with values and request ID", func(t *testing.T) {
		_, ctx := logging.CtxRequestID(context.Background())
		err := goerr.New("scan failed", goerr.V("repo", "alice/dashboard"))

		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}
