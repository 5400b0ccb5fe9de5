package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, prometheus.DefaultRegisterer, Registry)
}

func TestObserveAPICall(t *testing.T) {
	ok := APICalls.WithLabelValues("ec2", "TestOp", ResultSuccess)
	failed := APICalls.WithLabelValues("ec2", "TestOp", ResultError)
	okBefore := testutil.ToFloat64(ok)
	failedBefore := testutil.ToFloat64(failed)

	ObserveAPICall("ec2", "TestOp", nil)
	ObserveAPICall("ec2", "TestOp", nil)
	ObserveAPICall("ec2", "TestOp", errors.New("throttled"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
