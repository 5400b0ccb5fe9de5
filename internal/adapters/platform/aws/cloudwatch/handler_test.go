package cloudwatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cwmocks "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/cloudwatch/mocks"
	sharedmocks "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared/mocks"
	"github.com/olusolaa/ec2ctl/internal/core/catalog"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	portsmocks "github.com/olusolaa/ec2ctl/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

type CloudWatchHandlerTestSuite struct {
	suite.Suite
	mockClient       *cwmocks.CloudWatchClientInterface
	mockLimiter      *sharedmocks.RateLimiter
	mockErrorHandler *sharedmocks.ErrorHandler
	handler          *Handler
	ctx              context.Context
	cancel           context.CancelFunc
}

func (s *CloudWatchHandlerTestSuite) SetupTest() {
	s.mockClient = new(cwmocks.CloudWatchClientInterface)
	s.mockLimiter = new(sharedmocks.RateLimiter)
	s.mockErrorHandler = new(sharedmocks.ErrorHandler)
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)

	s.mockLimiter.On("Wait", mock.Anything, mock.Anything).Return(nil).Maybe()

	s.handler = NewHandler(aws.Config{Region: "us-east-1"}, portsmocks.NewQuietLogger(),
		WithCloudWatchClient(s.mockClient),
		WithRateLimiter(s.mockLimiter),
		WithErrorHandler(s.mockErrorHandler),
	)
}

func (s *CloudWatchHandlerTestSuite) TearDownTest() {
	s.cancel()
}

func TestCloudWatchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CloudWatchHandlerTestSuite))
}

func instanceDim(id string) types.Dimension {
	return types.Dimension{Name: aws.String("InstanceId"), Value: aws.String(id)}
}

func (s *CloudWatchHandlerTestSuite) TestAlarms_FirstPage() {
	expected := &cloudwatch.DescribeAlarmsInput{
		AlarmTypes: []types.AlarmType{types.AlarmTypeMetricAlarm},
		MaxRecords: aws.Int32(100),
	}
	s.mockClient.On("DescribeAlarms", mock.Anything, expected).Return(&cloudwatch.DescribeAlarmsOutput{
		MetricAlarms: []types.MetricAlarm{{
			AlarmName:  aws.String("A1"),
			Namespace:  aws.String("AWS/EC2"),
			MetricName: aws.String("CPUUtilization"),
			StateValue: types.StateValueOk,
			Threshold:  aws.Float64(80),
			Dimensions: []types.Dimension{instanceDim("i-1")},
		}},
		NextToken: aws.String("next"),
	}, nil).Once()

	page, err := s.handler.Alarms().FetchPage(s.ctx, nil, 100)

	s.Require().NoError(err)
	s.Require().Len(page.Records, 1)
	got := page.Records[0]
	s.Equal("A1", got.Name)
	s.Equal("OK", got.State)
	s.Equal(80.0, *got.Threshold)
	s.Equal([]domain.Dimension{{Name: "InstanceId", Value: "i-1"}}, got.Dims)
	s.Equal("next", aws.ToString(page.NextToken))
	s.mockClient.AssertExpectations(s.T())
}

func (s *CloudWatchHandlerTestSuite) TestAlarms_ClampsPageSizeAndForwardsToken() {
	s.mockClient.On("DescribeAlarms", mock.Anything, mock.MatchedBy(func(in *cloudwatch.DescribeAlarmsInput) bool {
		return aws.ToInt32(in.MaxRecords) == 100 && aws.ToString(in.NextToken) == "tok"
	})).Return(&cloudwatch.DescribeAlarmsOutput{}, nil).Once()
	s.mockClient.On("DescribeAlarms", mock.Anything, mock.MatchedBy(func(in *cloudwatch.DescribeAlarmsInput) bool {
		return aws.ToInt32(in.MaxRecords) == 1 && in.NextToken == nil
	})).Return(&cloudwatch.DescribeAlarmsOutput{}, nil).Once()

	page, err := s.handler.Alarms().FetchPage(s.ctx, aws.String("tok"), 500)
	s.Require().NoError(err)
	s.Empty(page.Records)
	s.Nil(page.NextToken)

	_, err = s.handler.Alarms().FetchPage(s.ctx, nil, 0)
	s.Require().NoError(err)
	s.mockClient.AssertExpectations(s.T())
}

func (s *CloudWatchHandlerTestSuite) TestAlarms_Error() {
	apiErr := errors.New("Throttling")
	mapped := apperrors.New(apperrors.CodePlatformAPIError, "throttled")
	s.mockClient.On("DescribeAlarms", mock.Anything, mock.Anything).Return(nil, apiErr).Once()
	s.mockErrorHandler.On("Handle", "CloudWatch", "DescribeAlarms", apiErr, mock.Anything).Return(mapped).Once()

	_, err := s.handler.Alarms().FetchPage(s.ctx, nil, 50)

	s.Same(mapped, err)
}

func (s *CloudWatchHandlerTestSuite) TestAlarms_LimiterError() {
	limiter := new(sharedmocks.RateLimiter)
	limiter.On("Wait", mock.Anything, mock.Anything).Return(context.Canceled).Once()
	h := NewHandler(aws.Config{}, portsmocks.NewQuietLogger(), WithCloudWatchClient(s.mockClient), WithRateLimiter(limiter))

	_, err := h.Alarms().FetchPage(s.ctx, nil, 50)

	s.ErrorIs(err, context.Canceled)
	s.mockClient.AssertNotCalled(s.T(), "DescribeAlarms", mock.Anything, mock.Anything)
}

func (s *CloudWatchHandlerTestSuite) TestAlarms_ThroughEngineFiltersByInstance() {
	s.mockClient.On("DescribeAlarms", mock.Anything, mock.MatchedBy(func(in *cloudwatch.DescribeAlarmsInput) bool {
		return in.NextToken == nil
	})).Return(&cloudwatch.DescribeAlarmsOutput{
		MetricAlarms: []types.MetricAlarm{
			{AlarmName: aws.String("A1"), Dimensions: []types.Dimension{instanceDim("i-1")}},
			{AlarmName: aws.String("A2"), Dimensions: []types.Dimension{instanceDim("i-2")}},
		},
		NextToken: aws.String("p2"),
	}, nil).Once()
	s.mockClient.On("DescribeAlarms", mock.Anything, mock.MatchedBy(func(in *cloudwatch.DescribeAlarmsInput) bool {
		return aws.ToString(in.NextToken) == "p2"
	})).Return(&cloudwatch.DescribeAlarmsOutput{
		MetricAlarms: []types.MetricAlarm{{AlarmName: aws.String("A3")}},
	}, nil).Once()

	engine, err := catalog.NewEngine[domain.AlarmRecord]("alarms", s.handler.Alarms(),
		catalog.KeyResolver[domain.AlarmRecord]{}, catalog.DefaultConfig(), portsmocks.NewQuietLogger())
	s.Require().NoError(err)

	entries, err := engine.Aggregate(s.ctx, domain.InstanceCriterion("i-1"))

	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("A1", entries[0].Record.Name)
	s.Equal("A1", entries[0].Value)
	s.mockClient.AssertExpectations(s.T())
}

func (s *CloudWatchHandlerTestSuite) TestPutCPUAlarm_Input() {
	spec := domain.AlarmSpec{Name: "cpu-high", InstanceID: "i-1", Threshold: 75.5}
	policy := domain.DefaultCPUAlarmPolicy("arn:aws:sns:us-east-1:123456789012:ops")
	expected := &cloudwatch.PutMetricAlarmInput{
		AlarmName:          aws.String("cpu-high"),
		ComparisonOperator: types.ComparisonOperatorGreaterThanThreshold,
		EvaluationPeriods:  aws.Int32(1),
		MetricName:         aws.String("CPUUtilization"),
		Namespace:          aws.String("AWS/EC2"),
		Period:             aws.Int32(300),
		Statistic:          types.StatisticAverage,
		Threshold:          aws.Float64(75.5),
		ActionsEnabled:     aws.Bool(true),
		AlarmDescription:   aws.String("CPU utilization of i-1 above 75.5%"),
		Unit:               types.StandardUnitPercent,
		Dimensions:         []types.Dimension{instanceDim("i-1")},
		AlarmActions:       []string{"arn:aws:sns:us-east-1:123456789012:ops"},
	}
	s.mockClient.On("PutMetricAlarm", mock.Anything, expected).Return(&cloudwatch.PutMetricAlarmOutput{}, nil).Once()

	err := s.handler.PutCPUAlarm(s.ctx, spec, policy)

	s.NoError(err)
	s.mockClient.AssertExpectations(s.T())
}

func (s *CloudWatchHandlerTestSuite) TestPutCPUAlarm_NoActionTarget() {
	s.mockClient.On("PutMetricAlarm", mock.Anything, mock.MatchedBy(func(in *cloudwatch.PutMetricAlarmInput) bool {
		return len(in.AlarmActions) == 0
	})).Return(&cloudwatch.PutMetricAlarmOutput{}, nil).Once()

	err := s.handler.PutCPUAlarm(s.ctx, domain.AlarmSpec{Name: "a", InstanceID: "i-1", Threshold: 50}, domain.DefaultCPUAlarmPolicy(""))

	s.NoError(err)
	s.mockClient.AssertExpectations(s.T())
}

func (s *CloudWatchHandlerTestSuite) TestPutCPUAlarm_Error() {
	apiErr := errors.New("LimitExceeded")
	mapped := apperrors.New(apperrors.CodePlatformAPIError, "limit")
	s.mockClient.On("PutMetricAlarm", mock.Anything, mock.Anything).Return(nil, apiErr).Once()
	s.mockErrorHandler.On("Handle", "CloudWatch", "PutMetricAlarm", apiErr, mock.Anything).Return(mapped).Once()

	err := s.handler.PutCPUAlarm(s.ctx, domain.AlarmSpec{Name: "a", InstanceID: "i-1", Threshold: 50}, domain.DefaultCPUAlarmPolicy(""))

	s.Same(mapped, err)
}
