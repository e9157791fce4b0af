package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, ResultSuccess, Outcome(nil))
	assert.Equal(t, ResultFailure, Outcome(errors.New("x")))
}

func TestApplicationCounters(t *testing.T) {
	before := testutil.ToFloat64(ApplicationStatusChanges.WithLabelValues("hired"))
	ApplicationStatusChanges.WithLabelValues("hired").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ApplicationStatusChanges.WithLabelValues("hired")))

	before = testutil.ToFloat64(ApplicationsSubmitted.WithLabelValues(Outcome(nil)))
	ApplicationsSubmitted.WithLabelValues(Outcome(nil)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ApplicationsSubmitted.WithLabelValues(ResultSuccess)))
}
