package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/olusolaa/ec2ctl/internal/core/ports"
)

const (
	DefaultRPS = 20
	MinRPS     = 1
	MaxRPS     = 100
)

// TokenBucket is the shared limiter every AWS client waits on. One instance
// is built per provider.
type TokenBucket struct {
	limiter *rate.Limiter
	rps     int
}

// New returns a limiter allowing rps calls per second with an equal burst.
// Out of range values fall back to DefaultRPS.
func New(rps int, logger ports.Logger) *TokenBucket {
	limitValue := DefaultRPS
	switch {
	case rps >= MinRPS && rps <= MaxRPS:
		limitValue = rps
	case rps != 0 && logger != nil:
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.", rps, DefaultRPS, MinRPS, MaxRPS)
	}
	return &TokenBucket{
		limiter: rate.NewLimiter(rate.Limit(limitValue), limitValue),
		rps:     limitValue,
	}
}

func (t *TokenBucket) RPS() int {
	return t.rps
}

func (t *TokenBucket) Wait(ctx context.Context, logger ports.Logger) error {
	err := t.limiter.Wait(ctx)
	if err != nil {
		if ctx.Err() == nil && logger != nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
