package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/cloudwatch"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/ec2"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/pricing"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/sns"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/sts"
	"github.com/olusolaa/ec2ctl/internal/config"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

const ProviderTypeAWS = "aws"

// ConfigLoader resolves credentials and region. It has the shape of
// config.LoadDefaultConfig so tests can replace it.
type ConfigLoader func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error)

// Provider owns the AWS configuration and the clients built from it. All
// clients share one rate limiter.
type Provider struct {
	awsConfig aws.Config
	logger    ports.Logger
	limiter   *limiter.TokenBucket

	ec2        *ec2.Handler
	pricing    *pricing.Lookup
	cloudWatch *cloudwatch.Handler
	notifier   *sns.Notifier
	identity   *sts.IdentityResolver
}

type ProviderOption func(*providerOptions)

type providerOptions struct {
	loader ConfigLoader
}

func WithConfigLoader(loader ConfigLoader) ProviderOption {
	return func(o *providerOptions) {
		if loader != nil {
			o.loader = loader
		}
	}
}

// loadOptions turns the aws config section into SDK load options.
func loadOptions(cfg config.AWSConfig) []func(*awsconfig.LoadOptions) error {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if len(cfg.SharedConfigFiles) > 0 {
		opts = append(opts, awsconfig.WithSharedConfigFiles(cfg.SharedConfigFiles))
	}
	return opts
}

func NewProvider(ctx context.Context, cfg *config.Config, logger ports.Logger, opts ...ProviderOption) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for AWS Provider")
	}
	if cfg == nil {
		return nil, errors.New(errors.CodeConfigValidation, "configuration cannot be nil for AWS Provider")
	}

	o := providerOptions{loader: awsconfig.LoadDefaultConfig}
	for _, opt := range opts {
		opt(&o)
	}

	awsCfg, err := o.loader(ctx, loadOptions(cfg.AWS)...)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			"failed to load AWS configuration",
			"Check aws.profile, aws.shared_config_files and your AWS credentials.")
	}
	if awsCfg.Region == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			"no AWS region configured",
			"Set aws.region, EC2CTL_AWS_REGION or AWS_REGION.")
	}

	providerLogger := logger.WithFields(map[string]any{"provider": ProviderTypeAWS, "region": awsCfg.Region})
	bucket := limiter.New(cfg.AWS.APIRequestsPerSecond, providerLogger)

	pricingCfg := awsCfg.Copy()
	pricingCfg.Region = cfg.Pricing.Region

	p := &Provider{
		awsConfig: awsCfg,
		logger:    providerLogger,
		limiter:   bucket,
		ec2: ec2.NewHandler(awsCfg, providerLogger,
			ec2.WithRateLimiter(bucket)),
		pricing: pricing.NewLookup(pricingCfg, providerLogger,
			pricing.WithRateLimiter(bucket)),
		cloudWatch: cloudwatch.NewHandler(awsCfg, providerLogger,
			cloudwatch.WithRateLimiter(bucket)),
		notifier: sns.NewNotifier(awsCfg, cfg.Alarms.NotificationTarget(), providerLogger,
			sns.WithRateLimiter(bucket)),
		identity: sts.NewIdentityResolver(awsCfg),
	}

	providerLogger.Debugf(ctx, "AWS provider ready (pricing region %s, %d API requests/s)", pricingCfg.Region, bucket.RPS())
	return p, nil
}

func (p *Provider) Type() string {
	return ProviderTypeAWS
}

func (p *Provider) Region() string {
	return p.awsConfig.Region
}

func (p *Provider) EC2() *ec2.Handler {
	return p.ec2
}

func (p *Provider) Pricing() *pricing.Lookup {
	return p.pricing
}

func (p *Provider) CloudWatch() *cloudwatch.Handler {
	return p.cloudWatch
}

func (p *Provider) Notifier() *sns.Notifier {
	return p.notifier
}

func (p *Provider) Identity() *sts.IdentityResolver {
	return p.identity
}
