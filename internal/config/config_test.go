package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/log"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, Validate(context.Background(), DefaultConfig()))
}

func TestLoad_YAMLOverDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
settings:
  log_level: debug
  log_format: console
  output: json
aws:
  region: eu-west-1
  shared_config_files: /etc/aws/config,/home/me/.aws/config
catalog:
  page_size: 20
alarms:
  topic_arn: arn:aws:sns:us-east-1:123456789012:cpu
  period: 2m
server:
  request_timeout: 45s
`)))

	cfg, err := Load(context.Background(), v)
	require.NoError(t, err)

	assert.Equal(t, log.LevelDebug, cfg.Settings.LogLevel)
	assert.Equal(t, log.FormatConsole, cfg.Settings.LogFormat)
	assert.Equal(t, OutputJSON, cfg.Settings.Output)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, []string{"/etc/aws/config", "/home/me/.aws/config"}, cfg.AWS.SharedConfigFiles)
	assert.Equal(t, 20, cfg.AWS.APIRequestsPerSecond)
	assert.Equal(t, int32(20), cfg.Catalog.PageSize)
	assert.Equal(t, 500, cfg.Catalog.MaxPages)
	assert.Equal(t, 2*time.Minute, cfg.Alarms.Period)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "US East (N. Virginia)", cfg.Pricing.Location)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EC2CTL_CATALOG_MAX_PAGES", "7")
	v := viper.New()
	v.SetEnvPrefix("EC2CTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.BindEnv("catalog.max_pages"))

	cfg, err := Load(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Catalog.MaxPages)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"log level", func(c *Config) { c.Settings.LogLevel = "trace" }, "LogLevel"},
		{"output", func(c *Config) { c.Settings.Output = "yaml" }, "Output"},
		{"rate too high", func(c *Config) { c.AWS.APIRequestsPerSecond = 500 }, "APIRequestsPerSecond"},
		{"page size too small", func(c *Config) { c.Catalog.PageSize = 1 }, "PageSize"},
		{"pricing location", func(c *Config) { c.Pricing.Location = "" }, "Location"},
		{"topic arn", func(c *Config) { c.Alarms.TopicARN = "my-topic" }, "TopicARN"},
		{"phone number", func(c *Config) { c.Alarms.PhoneNumber = "555-0100" }, "PhoneNumber"},
		{"image owner", func(c *Config) { c.Images.RedHatOwner = "redhat" }, "RedHatOwner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(context.Background(), cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.CodeConfigValidation))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNotificationTarget(t *testing.T) {
	a := AlarmsConfig{TopicARN: "arn:aws:sns:us-east-1:1:cpu"}
	assert.Equal(t, "arn:aws:sns:us-east-1:1:cpu", a.NotificationTarget())
	a.PhoneNumber = "+15550100"
	assert.Equal(t, "+15550100", a.NotificationTarget())
}
