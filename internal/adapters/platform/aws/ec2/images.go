package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
)

// ListImages returns at most maxResults images owned by owner, in the
// order EC2 reports them.
func (h *Handler) ListImages(ctx context.Context, owner string, maxResults int32) ([]domain.Image, error) {
	var output *ec2.DescribeImagesOutput
	err := h.call(ctx, "DescribeImages", func() error {
		var err error
		output, err = h.client.DescribeImages(ctx, &ec2.DescribeImagesInput{
			Owners:     []string{owner},
			MaxResults: aws.Int32(maxResults),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(output.Images))
	for _, img := range output.Images {
		if int32(len(images)) >= maxResults {
			break
		}
		images = append(images, mapImage(img))
	}
	return images, nil
}
