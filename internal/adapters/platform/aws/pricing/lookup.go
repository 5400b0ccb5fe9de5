package pricing

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"

	awserrors "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

//go:generate mockery --name PricingClientInterface --output ./mocks --outpkg mocks --case underscore

type PricingClientInterface interface {
	GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

const serviceCodeEC2 = "AmazonEC2"

// Lookup answers price queries from the AWS Price List API. It asks for a
// single product per query.
type Lookup struct {
	client       PricingClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

type LookupOption func(*Lookup)

func WithPricingClient(client PricingClientInterface) LookupOption {
	return func(l *Lookup) {
		if client != nil {
			l.client = client
		}
	}
}

func WithRateLimiter(limiter shared.RateLimiter) LookupOption {
	return func(l *Lookup) {
		if limiter != nil {
			l.limiter = limiter
		}
	}
}

func WithErrorHandler(handler shared.ErrorHandler) LookupOption {
	return func(l *Lookup) {
		if handler != nil {
			l.errorHandler = handler
		}
	}
}

// NewLookup builds a lookup against cfg. The Price List API is only served
// from a few regions, so cfg should already carry the pricing region.
func NewLookup(cfg aws.Config, logger ports.Logger, opts ...LookupOption) *Lookup {
	l := &Lookup{
		logger:       logger,
		errorHandler: &awserrors.DefaultErrorHandler{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = pricing.NewFromConfig(cfg)
	}
	if l.limiter == nil {
		l.limiter = limiter.New(limiter.DefaultRPS, logger)
	}
	return l
}

func (l *Lookup) Query(ctx context.Context, key ports.PriceQuery) ([]byte, error) {
	input := &pricing.GetProductsInput{
		ServiceCode:   aws.String(serviceCodeEC2),
		FormatVersion: aws.String("aws_v1"),
		MaxResults:    aws.Int32(1),
		Filters: []types.Filter{
			termMatch("instanceType", key.InstanceType),
			termMatch("location", key.Location),
			termMatch("operatingSystem", key.OperatingSystem),
			termMatch("preInstalledSw", key.PreInstalledSW),
			termMatch("capacitystatus", key.CapacityStatus),
		},
	}

	if err := l.limiter.Wait(ctx, l.logger); err != nil {
		return nil, err
	}
	output, err := l.client.GetProducts(ctx, input)
	metrics.ObserveAPICall(shared.ServicePricing, "GetProducts", err)
	if err != nil {
		return nil, l.errorHandler.Handle(shared.ServicePricing, "GetProducts", err, ctx)
	}
	if len(output.PriceList) == 0 {
		return nil, nil
	}
	return []byte(output.PriceList[0]), nil
}

func termMatch(field, value string) types.Filter {
	return types.Filter{
		Type:  types.FilterTypeTermMatch,
		Field: aws.String(field),
		Value: aws.String(value),
	}
}
