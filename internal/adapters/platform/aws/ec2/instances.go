package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

func (h *Handler) ListInstances(ctx context.Context, filters map[string]string) ([]domain.Instance, error) {
	input := &ec2.DescribeInstancesInput{Filters: BuildEC2Filters(filters)}
	paginator := h.paginatorFactory(h.client, input)

	var instances []domain.Instance
	pageNum := 0
	for paginator.HasMorePages() {
		if err := ctx.Err(); err != nil {
			h.logger.Warnf(ctx, "Context cancelled during EC2 instance pagination")
			return nil, err
		}

		pageNum++
		h.logger.Debugf(ctx, "Fetching EC2 instances page %d", pageNum)
		var output *ec2.DescribeInstancesOutput
		err := h.call(ctx, "DescribeInstances", func() error {
			var err error
			output, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				if instance.InstanceId == nil {
					h.logger.Warnf(ctx, "Skipping EC2 instance without an id on page %d", pageNum)
					continue
				}
				instances = append(instances, mapInstance(instance))
			}
		}
	}
	h.logger.Debugf(ctx, "Finished paginating EC2 instances, found %d total", len(instances))
	return instances, nil
}

func (h *Handler) DescribeInstance(ctx context.Context, id string) (domain.Instance, error) {
	var output *ec2.DescribeInstancesOutput
	err := h.call(ctx, "DescribeInstances", func() error {
		var err error
		output, err = h.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{InstanceIds: []string{id}})
		return err
	})
	if err != nil {
		return domain.Instance{}, err
	}
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			if instance.InstanceId != nil && *instance.InstanceId == id {
				return mapInstance(instance), nil
			}
		}
	}
	return domain.Instance{}, errors.NewUserFacing(errors.CodeResourceNotFound,
		fmt.Sprintf("EC2 instance '%s' not found", id), "Check the instance id and the configured region.")
}

func (h *Handler) StartInstance(ctx context.Context, id string) (domain.InstanceState, error) {
	var output *ec2.StartInstancesOutput
	err := h.call(ctx, "StartInstances", func() error {
		var err error
		output, err = h.client.StartInstances(ctx, &ec2.StartInstancesInput{InstanceIds: []string{id}})
		return err
	})
	if err != nil {
		return domain.InstanceStateUnknown, err
	}
	return stateAfterChange(output.StartingInstances, id), nil
}

func (h *Handler) StopInstance(ctx context.Context, id string) (domain.InstanceState, error) {
	var output *ec2.StopInstancesOutput
	err := h.call(ctx, "StopInstances", func() error {
		var err error
		output, err = h.client.StopInstances(ctx, &ec2.StopInstancesInput{InstanceIds: []string{id}})
		return err
	})
	if err != nil {
		return domain.InstanceStateUnknown, err
	}
	return stateAfterChange(output.StoppingInstances, id), nil
}

func stateAfterChange(changes []types.InstanceStateChange, id string) domain.InstanceState {
	for _, change := range changes {
		if change.InstanceId != nil && *change.InstanceId == id && change.CurrentState != nil {
			return domain.ParseInstanceState(string(change.CurrentState.Name))
		}
	}
	return domain.InstanceStateUnknown
}
