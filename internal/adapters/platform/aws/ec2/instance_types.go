package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
)

// DescribeInstanceTypes accepts page sizes between these bounds.
const (
	minInstanceTypePage int32 = 5
	maxInstanceTypePage int32 = 100
)

type instanceTypeSource struct {
	h *Handler
}

// InstanceTypes returns the paged source of instance types offered in the
// client's region.
func (h *Handler) InstanceTypes() ports.PagedSource[domain.InstanceTypeRecord] {
	return instanceTypeSource{h: h}
}

func (s instanceTypeSource) FetchPage(ctx context.Context, token *string, pageSize int32) (ports.Page[domain.InstanceTypeRecord], error) {
	input := &ec2.DescribeInstanceTypesInput{
		MaxResults: aws.Int32(clamp(pageSize, minInstanceTypePage, maxInstanceTypePage)),
		NextToken:  token,
	}

	var output *ec2.DescribeInstanceTypesOutput
	err := s.h.call(ctx, "DescribeInstanceTypes", func() error {
		var err error
		output, err = s.h.client.DescribeInstanceTypes(ctx, input)
		return err
	})
	if err != nil {
		return ports.Page[domain.InstanceTypeRecord]{}, err
	}

	records := make([]domain.InstanceTypeRecord, 0, len(output.InstanceTypes))
	for _, info := range output.InstanceTypes {
		records = append(records, mapInstanceType(info))
	}
	s.h.logger.Debugf(ctx, "DescribeInstanceTypes returned %d types", len(records))
	return ports.Page[domain.InstanceTypeRecord]{Records: records, NextToken: output.NextToken}, nil
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
