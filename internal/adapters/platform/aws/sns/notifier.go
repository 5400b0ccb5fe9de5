package sns

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	awserrors "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

//go:generate mockery --name SNSClientInterface --output ./mocks --outpkg mocks --case underscore

type SNSClientInterface interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier publishes plain text either to a topic or directly to a phone
// number, depending on the shape of the configured target.
type Notifier struct {
	client       SNSClientInterface
	target       string
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

type NotifierOption func(*Notifier)

func WithSNSClient(client SNSClientInterface) NotifierOption {
	return func(n *Notifier) {
		if client != nil {
			n.client = client
		}
	}
}

func WithRateLimiter(limiter shared.RateLimiter) NotifierOption {
	return func(n *Notifier) {
		if limiter != nil {
			n.limiter = limiter
		}
	}
}

func WithErrorHandler(handler shared.ErrorHandler) NotifierOption {
	return func(n *Notifier) {
		if handler != nil {
			n.errorHandler = handler
		}
	}
}

func NewNotifier(cfg aws.Config, target string, logger ports.Logger, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		target:       strings.TrimSpace(target),
		logger:       logger,
		errorHandler: &awserrors.DefaultErrorHandler{},
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.client == nil {
		n.client = sns.NewFromConfig(cfg)
	}
	if n.limiter == nil {
		n.limiter = limiter.New(limiter.DefaultRPS, logger)
	}
	return n
}

func isTopic(target string) bool {
	return strings.HasPrefix(target, "arn:")
}

func (n *Notifier) Ready() error {
	if n.target == "" {
		return apperrors.NewUserFacing(apperrors.CodeConfigValidation,
			"No notification target is configured",
			"Set alarms.phone_number or alarms.topic_arn.")
	}
	return nil
}

func (n *Notifier) Notify(ctx context.Context, message string) error {
	if err := n.Ready(); err != nil {
		return err
	}

	input := &sns.PublishInput{Message: aws.String(message)}
	if isTopic(n.target) {
		input.TopicArn = aws.String(n.target)
	} else {
		input.PhoneNumber = aws.String(n.target)
	}

	if err := n.limiter.Wait(ctx, n.logger); err != nil {
		return err
	}
	output, err := n.client.Publish(ctx, input)
	metrics.ObserveAPICall(shared.ServiceSNS, "Publish", err)
	if err != nil {
		return n.errorHandler.Handle(shared.ServiceSNS, "Publish", err, ctx)
	}

	n.logger.Debugf(ctx, "Published notification %s", aws.ToString(output.MessageId))
	return nil
}
