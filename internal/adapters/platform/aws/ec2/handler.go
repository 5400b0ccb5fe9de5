package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	awserrors "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

// Handler serves every EC2 call the application makes: instance types,
// instances, security groups and images.
type Handler struct {
	client           EC2ClientInterface
	limiter          shared.RateLimiter
	errorHandler     shared.ErrorHandler
	logger           ports.Logger
	paginatorFactory func(client EC2ClientInterface, input *ec2.DescribeInstancesInput) EC2InstancesPaginator
}

// HandlerOption defines a function signature for configuring the Handler.
type HandlerOption func(*Handler)

// WithEC2Client provides an option to set a custom EC2 client.
func WithEC2Client(client EC2ClientInterface) HandlerOption {
	return func(h *Handler) {
		if client != nil {
			h.client = client
		}
	}
}

// WithRateLimiter provides an option to set a custom rate limiter.
func WithRateLimiter(limiter shared.RateLimiter) HandlerOption {
	return func(h *Handler) {
		if limiter != nil {
			h.limiter = limiter
		}
	}
}

// WithErrorHandler provides an option to set a custom error handler.
func WithErrorHandler(handler shared.ErrorHandler) HandlerOption {
	return func(h *Handler) {
		if handler != nil {
			h.errorHandler = handler
		}
	}
}

func WithLogger(logger ports.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func NewHandler(cfg aws.Config, logger ports.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		logger:       logger,
		errorHandler: &awserrors.DefaultErrorHandler{},
		paginatorFactory: func(client EC2ClientInterface, input *ec2.DescribeInstancesInput) EC2InstancesPaginator {
			return ec2.NewDescribeInstancesPaginator(client, input)
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = ec2.NewFromConfig(cfg)
	}
	if h.limiter == nil {
		h.limiter = limiter.New(limiter.DefaultRPS, h.logger)
	}
	return h
}

// call waits for the limiter, runs fn and maps its error.
func (h *Handler) call(ctx context.Context, operation string, fn func() error) error {
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return err
	}
	err := fn()
	metrics.ObserveAPICall(shared.ServiceEC2, operation, err)
	if err != nil {
		return h.errorHandler.Handle(shared.ServiceEC2, operation, err, ctx)
	}
	return nil
}
