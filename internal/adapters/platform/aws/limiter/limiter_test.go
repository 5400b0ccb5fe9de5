package limiter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	portsmocks "github.com/olusolaa/ec2ctl/internal/core/ports/mocks"
)

func TestNew_RateSelection(t *testing.T) {
	logger := portsmocks.NewQuietLogger()

	assert.Equal(t, DefaultRPS, New(0, logger).RPS())
	assert.Equal(t, 5, New(5, logger).RPS())
	assert.Equal(t, MaxRPS, New(MaxRPS, logger).RPS())

	assert.Equal(t, DefaultRPS, New(500, logger).RPS())
	logger.AssertCalled(t, "Warnf", mock.Anything, mock.Anything, 500, DefaultRPS, MinRPS, MaxRPS)
}

func TestWait(t *testing.T) {
	l := New(10, nil)
	assert.NoError(t, l.Wait(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx, portsmocks.NewQuietLogger()))
}
