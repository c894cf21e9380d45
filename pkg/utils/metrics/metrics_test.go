package metrics_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/copycat/pkg/utils/metrics"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestQueueJobsCounter(t *testing.T) {
	before := testutil.ToFloat64(metrics.QueueJobs.WithLabelValues("completed"))
	metrics.QueueJobs.WithLabelValues("completed").Inc()
	gt.V(t, testutil.ToFloat64(metrics.QueueJobs.WithLabelValues("completed"))).Equal(before + 1)
}

func TestOutcome(t *testing.T) {
	gt.V(t, metrics.Outcome(nil)).Equal("ok")
	gt.V(t, metrics.Outcome(errors.New("x"))).Equal("error")
}
