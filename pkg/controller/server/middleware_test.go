package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/copycat/pkg/controller/server"
	"github.com/m-mizutani/copycat/pkg/domain/mock"
	"github.com/m-mizutani/copycat/pkg/domain/types"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger and request ID to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		logger := logging.From(capturedCtx)
		gt.False(t, logger == logging.From(context.Background()))

		id, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, id).NotEqual(types.RequestID(""))

		// Each request gets its own ID
		var secondCtx context.Context
		mux.HandleFunc("/again", func(w http.ResponseWriter, r *http.Request) {
			secondCtx = r.Context()
		})
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/again", nil))
		secondID, _ := logging.CtxRequestID(secondCtx)
		gt.V(t, secondID).NotEqual(id)
	})

	t.Run("statusCodeLogger passes status codes through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			srv := server.New(&mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			gt.V(t, w.Code).Equal(code)
		}
	})

	t.Run("statusCodeLogger defaults to 200 when WriteHeader not called", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/noheader", nil))
		gt.V(t, w.Code).Equal(http.StatusOK)
	})
}

func TestMiddlewareRecordsRouteLatency(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	gt.V(t, w.Code).Equal(http.StatusOK)

	gt.True(t, testutil.CollectAndCount(metrics.HTTPRequests, "copycat_http_request_duration_seconds") > 0)
}
