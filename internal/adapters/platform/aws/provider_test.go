package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/ec2ctl/internal/config"
	portsmocks "github.com/olusolaa/ec2ctl/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

// recordingLoader applies the requested options and returns a config in the
// region they resolve to, falling back to fallbackRegion.
func recordingLoader(fallbackRegion string, seen *awsconfig.LoadOptions) ConfigLoader {
	return func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			if err := fn(seen); err != nil {
				return aws.Config{}, err
			}
		}
		region := seen.Region
		if region == "" {
			region = fallbackRegion
		}
		return aws.Config{Region: region}, nil
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("successful initialization", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.AWS.Region = "eu-west-1"
		cfg.AWS.Profile = "ops"
		cfg.AWS.SharedConfigFiles = []string{"/tmp/aws-config"}
		cfg.AWS.APIRequestsPerSecond = 7
		var seen awsconfig.LoadOptions

		provider, err := NewProvider(context.Background(), cfg, portsmocks.NewQuietLogger(),
			WithConfigLoader(recordingLoader("", &seen)))

		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", seen.Region)
		assert.Equal(t, "ops", seen.SharedConfigProfile)
		assert.Equal(t, []string{"/tmp/aws-config"}, seen.SharedConfigFiles)

		assert.Equal(t, "aws", provider.Type())
		assert.Equal(t, "eu-west-1", provider.Region())
		assert.Equal(t, 7, provider.limiter.RPS())
		assert.NotNil(t, provider.EC2())
		assert.NotNil(t, provider.Pricing())
		assert.NotNil(t, provider.CloudWatch())
		assert.NotNil(t, provider.Notifier())
		assert.NotNil(t, provider.Identity())
	})

	t.Run("region from credential chain", func(t *testing.T) {
		var seen awsconfig.LoadOptions

		provider, err := NewProvider(context.Background(), config.DefaultConfig(), portsmocks.NewQuietLogger(),
			WithConfigLoader(recordingLoader("ap-south-1", &seen)))

		require.NoError(t, err)
		assert.Empty(t, seen.Region)
		assert.Equal(t, "ap-south-1", provider.Region())
	})

	t.Run("missing region", func(t *testing.T) {
		var seen awsconfig.LoadOptions

		provider, err := NewProvider(context.Background(), config.DefaultConfig(), portsmocks.NewQuietLogger(),
			WithConfigLoader(recordingLoader("", &seen)))

		require.Error(t, err)
		assert.Nil(t, provider)
		assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
	})

	t.Run("loader failure", func(t *testing.T) {
		loadErr := errors.New("failed to get shared config profile, ops")
		loader := func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, loadErr
		}

		provider, err := NewProvider(context.Background(), config.DefaultConfig(), portsmocks.NewQuietLogger(),
			WithConfigLoader(loader))

		require.Error(t, err)
		assert.Nil(t, provider)
		assert.ErrorIs(t, err, loadErr)
		_, _, userFacing := apperrors.GetUserFacingMessage(err)
		assert.True(t, userFacing)
	})

	t.Run("nil logger causes error", func(t *testing.T) {
		provider, err := NewProvider(context.Background(), config.DefaultConfig(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger cannot be nil")
		assert.Nil(t, provider)
	})

	t.Run("nil config causes error", func(t *testing.T) {
		provider, err := NewProvider(context.Background(), nil, portsmocks.NewQuietLogger())

		require.Error(t, err)
		assert.Nil(t, provider)
	})
}

func TestLoadOptionsSkipsEmptyValues(t *testing.T) {
	assert.Empty(t, loadOptions(config.AWSConfig{}))
	assert.Len(t, loadOptions(config.AWSConfig{Region: "us-east-1"}), 1)
}
