package shared

import (
	"context"

	"github.com/olusolaa/ec2ctl/internal/core/ports"
)

//go:generate mockery --name RateLimiter --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name ErrorHandler --output ./mocks --outpkg mocks --case underscore

// RateLimiter paces AWS API calls across every service client.
type RateLimiter interface {
	// Wait blocks until the rate limit allows proceeding, or returns an error.
	Wait(ctx context.Context, logger ports.Logger) error
}

// ErrorHandler maps an AWS SDK error onto an application error.
type ErrorHandler interface {
	Handle(service, operation string, err error, ctx context.Context) error
}

// AWS service names used in logs, metrics and error messages.
const (
	ServiceEC2        = "EC2"
	ServicePricing    = "Pricing"
	ServiceCloudWatch = "CloudWatch"
	ServiceSNS        = "SNS"
	ServiceSTS        = "STS"
)
