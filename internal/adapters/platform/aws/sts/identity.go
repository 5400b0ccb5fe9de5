package sts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	awserrors "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

//go:generate mockery --name STSClientInterface --output ./mocks --outpkg mocks --case underscore

type STSClientInterface interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type IdentityResolver struct {
	client       STSClientInterface
	errorHandler shared.ErrorHandler
}

type ResolverOption func(*IdentityResolver)

func WithSTSClient(client STSClientInterface) ResolverOption {
	return func(r *IdentityResolver) {
		if client != nil {
			r.client = client
		}
	}
}

func WithErrorHandler(handler shared.ErrorHandler) ResolverOption {
	return func(r *IdentityResolver) {
		if handler != nil {
			r.errorHandler = handler
		}
	}
}

func NewIdentityResolver(cfg aws.Config, opts ...ResolverOption) *IdentityResolver {
	r := &IdentityResolver{errorHandler: &awserrors.DefaultErrorHandler{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = sts.NewFromConfig(cfg)
	}
	return r
}

// CallerIdentity reports who the loaded credentials belong to.
func (r *IdentityResolver) CallerIdentity(ctx context.Context) (domain.Identity, error) {
	output, err := r.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	metrics.ObserveAPICall(shared.ServiceSTS, "GetCallerIdentity", err)
	if err != nil {
		return domain.Identity{}, r.errorHandler.Handle(shared.ServiceSTS, "GetCallerIdentity", err, ctx)
	}
	return domain.Identity{
		Account: aws.ToString(output.Account),
		ARN:     aws.ToString(output.Arn),
		UserID:  aws.ToString(output.UserId),
	}, nil
}
