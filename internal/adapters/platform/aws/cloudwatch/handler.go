package cloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	awserrors "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

//go:generate mockery --name CloudWatchClientInterface --output ./mocks --outpkg mocks --case underscore

type CloudWatchClientInterface interface {
	DescribeAlarms(ctx context.Context, params *cloudwatch.DescribeAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DescribeAlarmsOutput, error)
	PutMetricAlarm(ctx context.Context, params *cloudwatch.PutMetricAlarmInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricAlarmOutput, error)
}

// DescribeAlarms accepts MaxRecords between these bounds.
const (
	minAlarmPage int32 = 1
	maxAlarmPage int32 = 100
)

type Handler struct {
	client       CloudWatchClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

type HandlerOption func(*Handler)

func WithCloudWatchClient(client CloudWatchClientInterface) HandlerOption {
	return func(h *Handler) {
		if client != nil {
			h.client = client
		}
	}
}

func WithRateLimiter(limiter shared.RateLimiter) HandlerOption {
	return func(h *Handler) {
		if limiter != nil {
			h.limiter = limiter
		}
	}
}

func WithErrorHandler(handler shared.ErrorHandler) HandlerOption {
	return func(h *Handler) {
		if handler != nil {
			h.errorHandler = handler
		}
	}
}

func NewHandler(cfg aws.Config, logger ports.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		logger:       logger,
		errorHandler: &awserrors.DefaultErrorHandler{},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = cloudwatch.NewFromConfig(cfg)
	}
	if h.limiter == nil {
		h.limiter = limiter.New(limiter.DefaultRPS, logger)
	}
	return h
}

func (h *Handler) call(ctx context.Context, operation string, fn func() error) error {
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return err
	}
	err := fn()
	metrics.ObserveAPICall(shared.ServiceCloudWatch, operation, err)
	if err != nil {
		return h.errorHandler.Handle(shared.ServiceCloudWatch, operation, err, ctx)
	}
	return nil
}

type alarmSource struct {
	h *Handler
}

// Alarms returns the paged source of metric alarms in the client's region.
func (h *Handler) Alarms() ports.PagedSource[domain.AlarmRecord] {
	return alarmSource{h: h}
}

func (s alarmSource) FetchPage(ctx context.Context, token *string, pageSize int32) (ports.Page[domain.AlarmRecord], error) {
	if pageSize < minAlarmPage {
		pageSize = minAlarmPage
	}
	if pageSize > maxAlarmPage {
		pageSize = maxAlarmPage
	}
	input := &cloudwatch.DescribeAlarmsInput{
		AlarmTypes: []types.AlarmType{types.AlarmTypeMetricAlarm},
		MaxRecords: aws.Int32(pageSize),
		NextToken:  token,
	}

	var output *cloudwatch.DescribeAlarmsOutput
	err := s.h.call(ctx, "DescribeAlarms", func() error {
		var err error
		output, err = s.h.client.DescribeAlarms(ctx, input)
		return err
	})
	if err != nil {
		return ports.Page[domain.AlarmRecord]{}, err
	}

	records := make([]domain.AlarmRecord, 0, len(output.MetricAlarms))
	for _, alarm := range output.MetricAlarms {
		records = append(records, mapAlarm(alarm))
	}
	return ports.Page[domain.AlarmRecord]{Records: records, NextToken: output.NextToken}, nil
}

// PutCPUAlarm creates or replaces the alarm named spec.Name. It fires when
// average CPU utilization of the instance exceeds spec.Threshold.
func (h *Handler) PutCPUAlarm(ctx context.Context, spec domain.AlarmSpec, policy domain.CPUAlarmPolicy) error {
	input := &cloudwatch.PutMetricAlarmInput{
		AlarmName:          aws.String(spec.Name),
		ComparisonOperator: types.ComparisonOperatorGreaterThanThreshold,
		EvaluationPeriods:  aws.Int32(policy.EvaluationPeriods),
		MetricName:         aws.String(policy.MetricName),
		Namespace:          aws.String(policy.Namespace),
		Period:             aws.Int32(int32(policy.Period.Seconds())),
		Statistic:          types.StatisticAverage,
		Threshold:          aws.Float64(spec.Threshold),
		ActionsEnabled:     aws.Bool(true),
		AlarmDescription:   aws.String(spec.Description()),
		Unit:               types.StandardUnitPercent,
		Dimensions: []types.Dimension{{
			Name:  aws.String(domain.DimensionInstanceID),
			Value: aws.String(spec.InstanceID),
		}},
	}
	if policy.ActionTarget != "" {
		input.AlarmActions = []string{policy.ActionTarget}
	}

	return h.call(ctx, "PutMetricAlarm", func() error {
		_, err := h.client.PutMetricAlarm(ctx, input)
		return err
	})
}

func mapAlarm(alarm types.MetricAlarm) domain.AlarmRecord {
	rec := domain.AlarmRecord{
		Name:       aws.ToString(alarm.AlarmName),
		Namespace:  aws.ToString(alarm.Namespace),
		MetricName: aws.ToString(alarm.MetricName),
		State:      string(alarm.StateValue),
		Threshold:  alarm.Threshold,
	}
	for _, d := range alarm.Dimensions {
		rec.Dims = append(rec.Dims, domain.Dimension{Name: aws.ToString(d.Name), Value: aws.ToString(d.Value)})
	}
	return rec
}
