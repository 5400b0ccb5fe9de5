package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/ec2ctl/internal/adapters/alarmfile"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws"
	"github.com/olusolaa/ec2ctl/internal/config"
	"github.com/olusolaa/ec2ctl/internal/core/catalog"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/core/service"
	"github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/log"
	"github.com/olusolaa/ec2ctl/internal/reporting/json"
	"github.com/olusolaa/ec2ctl/internal/reporting/text"
)

type Option func(*options)

type options struct {
	stdout       io.Writer
	stderr       io.Writer
	providerOpts []aws.ProviderOption
}

// WithOutput sets where reports are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithLogOutput sets where logs are written. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

func WithProviderOptions(opts ...aws.ProviderOption) Option {
	return func(o *options) { o.providerOpts = append(o.providerOpts, opts...) }
}

// BuildApplicationFromViper loads the configuration held by v and wires the
// AWS adapters into the services.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, opts ...Option) (*Application, error) {
	o := options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat, Output: o.stderr})
	if err != nil {
		fmt.Fprintf(o.stderr, "FATAL: Failed to initialize logger: %v\n", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	provider, err := aws.NewProvider(ctx, cfg, logger, o.providerOpts...)
	if err != nil {
		return nil, err
	}

	application, err := newApplication(cfg, provider, logger)
	if err != nil {
		return nil, err
	}
	application.Reporter, err = newReporter(cfg.Settings, o.stdout, logger)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Application bootstrap complete (region %s, output %s)", provider.Region(), cfg.Settings.Output)
	return application, nil
}

func newApplication(cfg *config.Config, provider *aws.Provider, logger ports.Logger) (*Application, error) {
	serviceLog := logger.WithFields(map[string]any{"component": "service"})

	template := catalog.PriceTemplate{
		Location:        cfg.Pricing.Location,
		OperatingSystem: cfg.Pricing.OperatingSystem,
		PreInstalledSW:  cfg.Pricing.PreInstalledSW,
		CapacityStatus:  cfg.Pricing.CapacityStatus,
	}
	discovery, err := service.NewDiscovery(
		provider.EC2().InstanceTypes(),
		provider.CloudWatch().Alarms(),
		provider.Pricing(),
		template,
		catalog.Config{PageSize: cfg.Catalog.PageSize, MaxPages: cfg.Catalog.MaxPages},
		serviceLog,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize discovery service")
	}

	control, err := service.NewControl(
		provider.EC2(), provider.EC2(), provider.EC2(), provider.Identity(),
		discovery,
		service.ImageQuery{Owner: cfg.Images.RedHatOwner, MaxResults: cfg.Images.MaxResults},
		serviceLog,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize control service")
	}

	alarms, err := service.NewAlarms(provider.CloudWatch(), provider.Notifier(), alarmPolicy(cfg.Alarms), serviceLog)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize alarm service")
	}

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Discovery:  discovery,
		Control:    control,
		Alarms:     alarms,
		AlarmFiles: alarmfile.NewLoader(logger.WithFields(map[string]any{"component": "alarmfile"})),
	}, nil
}

// alarmPolicy only attaches a topic as the alarm action; phone numbers are
// notified once at creation time.
func alarmPolicy(cfg config.AlarmsConfig) domain.CPUAlarmPolicy {
	policy := domain.DefaultCPUAlarmPolicy(cfg.TopicARN)
	policy.Period = cfg.Period
	policy.EvaluationPeriods = cfg.EvaluationPeriods
	return policy
}

func newReporter(settings config.SettingsConfig, w io.Writer, logger ports.Logger) (ports.Reporter, error) {
	reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": settings.Output})
	switch settings.Output {
	case config.OutputJSON:
		return json.NewReporter(json.Config{Indent: true}, w, reportLog)
	case config.OutputText, "":
		return text.NewReporter(text.Config{NoColor: settings.NoColor}, w, reportLog)
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported output format: %s", settings.Output), "Supported: text, json")
	}
}
