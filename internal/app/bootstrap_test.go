package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws"
	"github.com/olusolaa/ec2ctl/internal/config"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	portsmocks "github.com/olusolaa/ec2ctl/internal/core/ports/mocks"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

func staticLoader(region string) aws.ConfigLoader {
	return func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (awssdk.Config, error) {
		var o awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&o); err != nil {
				return awssdk.Config{}, err
			}
		}
		if o.Region != "" {
			region = o.Region
		}
		return awssdk.Config{Region: region}, nil
	}
}

func build(t *testing.T, v *viper.Viper, out *bytes.Buffer) (*Application, error) {
	t.Helper()
	return BuildApplicationFromViper(context.Background(), v,
		WithOutput(out),
		WithLogOutput(&bytes.Buffer{}),
		WithProviderOptions(aws.WithConfigLoader(staticLoader("us-east-1"))),
	)
}

func TestBuildApplicationFromViper(t *testing.T) {
	t.Run("text output by default", func(t *testing.T) {
		var out bytes.Buffer
		v := viper.New()
		v.Set("settings.no_color", true)

		application, err := build(t, v, &out)

		require.NoError(t, err)
		require.NotNil(t, application.Discovery)
		require.NotNil(t, application.Control)
		require.NotNil(t, application.Alarms)
		assert.Equal(t, config.OutputText, application.Config.Settings.Output)

		err = application.Render(context.Background(), domain.Report{Title: "Alarms for i-1", Empty: "No alarms watch this instance."})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No alarms watch this instance.")
	})

	t.Run("json output", func(t *testing.T) {
		var out bytes.Buffer
		v := viper.New()
		v.Set("settings.output", "json")

		application, err := build(t, v, &out)
		require.NoError(t, err)

		require.NoError(t, application.Render(context.Background(), domain.Report{Data: []string{"A1"}}))
		assert.JSONEq(t, `["A1"]`, out.String())
	})

	t.Run("invalid configuration", func(t *testing.T) {
		v := viper.New()
		v.Set("settings.output", "xml")

		_, err := build(t, v, &bytes.Buffer{})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeConfigValidation))
	})

	t.Run("durations from strings", func(t *testing.T) {
		v := viper.New()
		v.Set("alarms.period", "1m")
		v.Set("server.request_timeout", "5s")

		application, err := build(t, v, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, time.Minute, application.Config.Alarms.Period)
		assert.Equal(t, 5*time.Second, application.Config.Server.RequestTimeout)
	})
}

func TestAlarmPolicy(t *testing.T) {
	policy := alarmPolicy(config.AlarmsConfig{
		TopicARN:          "arn:aws:sns:us-east-1:123456789012:ops",
		PhoneNumber:       "+15550100",
		Period:            time.Minute,
		EvaluationPeriods: 3,
	})

	assert.Equal(t, "AWS/EC2", policy.Namespace)
	assert.Equal(t, "CPUUtilization", policy.MetricName)
	assert.Equal(t, time.Minute, policy.Period)
	assert.Equal(t, int32(3), policy.EvaluationPeriods)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:ops", policy.ActionTarget)
}

func TestApplyAlarmFile(t *testing.T) {
	application, err := build(t, viper.New(), &bytes.Buffer{})
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		_, err := application.ApplyAlarmFile(context.Background(), filepath.Join(t.TempDir(), "none.hcl"), nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeAlarmFileError))
	})

	t.Run("invalid definition stops before any call", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alarms.hcl")
		src := `
alarm "cpu-high" {
  instance_id = "i-1"
  threshold   = 150
}
`
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

		created, err := application.ApplyAlarmFile(context.Background(), path, nil)

		require.Error(t, err)
		assert.Empty(t, created)
		assert.True(t, errors.Is(err, errors.CodeInvalidInput))
	})
}

func TestServer(t *testing.T) {
	application, err := build(t, viper.New(), &bytes.Buffer{})
	require.NoError(t, err)

	srv, err := application.Server(nil)

	require.NoError(t, err)
	assert.NotNil(t, srv.Handler())
}

func TestRenderDelegatesToReporter(t *testing.T) {
	reporter := new(portsmocks.Reporter)
	report := domain.Report{Title: "Instances"}
	reporter.On("Report", mock.Anything, report).Return(nil).Once()

	application := &Application{Reporter: reporter}

	require.NoError(t, application.Render(context.Background(), report))
	reporter.AssertExpectations(t)
}
