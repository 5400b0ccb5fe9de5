package config

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/log"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Alarms   AlarmsConfig   `mapstructure:"alarms"`
	Images   ImagesConfig   `mapstructure:"images"`
	Server   ServerConfig   `mapstructure:"server"`
}

type SettingsConfig struct {
	LogLevel  log.Level  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat log.Format `mapstructure:"log_format" validate:"oneof=text json console"`
	Output    string     `mapstructure:"output" validate:"oneof=text json"`
	NoColor   bool       `mapstructure:"no_color"`
}

type AWSConfig struct {
	Region               string   `mapstructure:"region"`
	Profile              string   `mapstructure:"profile"`
	SharedConfigFiles    []string `mapstructure:"shared_config_files"`
	APIRequestsPerSecond int      `mapstructure:"api_requests_per_second" validate:"min=1,max=100"`
}

type CatalogConfig struct {
	PageSize int32 `mapstructure:"page_size" validate:"min=5,max=100"`
	MaxPages int   `mapstructure:"max_pages" validate:"min=1"`
}

// PricingConfig fixes the product attributes every price lookup uses. The
// pricing API is only served from a few regions, hence its own region.
type PricingConfig struct {
	Region          string `mapstructure:"region" validate:"required"`
	Location        string `mapstructure:"location" validate:"required"`
	OperatingSystem string `mapstructure:"operating_system" validate:"required"`
	PreInstalledSW  string `mapstructure:"pre_installed_sw" validate:"required"`
	CapacityStatus  string `mapstructure:"capacity_status" validate:"required"`
}

type AlarmsConfig struct {
	TopicARN          string        `mapstructure:"topic_arn" validate:"omitempty,startswith=arn:"`
	PhoneNumber       string        `mapstructure:"phone_number" validate:"omitempty,e164"`
	Period            time.Duration `mapstructure:"period" validate:"min=10s"`
	EvaluationPeriods int32         `mapstructure:"evaluation_periods" validate:"min=1"`
}

type ImagesConfig struct {
	RedHatOwner string `mapstructure:"redhat_owner" validate:"required,numeric"`
	MaxResults  int32  `mapstructure:"max_results" validate:"min=5,max=1000"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0s"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:  log.LevelInfo,
			LogFormat: log.FormatText,
			Output:    OutputText,
		},
		AWS: AWSConfig{
			APIRequestsPerSecond: 20,
		},
		Catalog: CatalogConfig{
			PageSize: 100,
			MaxPages: 500,
		},
		Pricing: PricingConfig{
			Region:          "us-east-1",
			Location:        "US East (N. Virginia)",
			OperatingSystem: "Linux",
			PreInstalledSW:  "NA",
			CapacityStatus:  "Used",
		},
		Alarms: AlarmsConfig{
			Period:            5 * time.Minute,
			EvaluationPeriods: 1,
		},
		Images: ImagesConfig{
			RedHatOwner: "309956199498",
			MaxResults:  5,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load decodes v over the defaults and validates the result.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to parse configuration", "Check value types in your configuration file and EC2CTL_ variables.")
	}
	if err := Validate(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(ctx context.Context, cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrs.As(err, &validationErrors) {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
	}
	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file or flags.")
}

// NotificationTarget is where alarm notices go: the phone number when set,
// otherwise the alarm topic.
func (a AlarmsConfig) NotificationTarget() string {
	if a.PhoneNumber != "" {
		return a.PhoneNumber
	}
	return a.TopicARN
}
