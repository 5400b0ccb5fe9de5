package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

func (h *Handler) ListSecurityGroups(ctx context.Context) ([]domain.SecurityGroup, error) {
	var groups []domain.SecurityGroup
	input := &ec2.DescribeSecurityGroupsInput{}
	for {
		var output *ec2.DescribeSecurityGroupsOutput
		err := h.call(ctx, "DescribeSecurityGroups", func() error {
			var err error
			output, err = h.client.DescribeSecurityGroups(ctx, input)
			return err
		})
		if err != nil {
			return nil, err
		}
		for _, g := range output.SecurityGroups {
			groups = append(groups, mapSecurityGroup(g))
		}
		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}
	return groups, nil
}

func (h *Handler) DescribeSecurityGroup(ctx context.Context, id string) ([]domain.SecurityGroup, error) {
	var output *ec2.DescribeSecurityGroupsOutput
	err := h.call(ctx, "DescribeSecurityGroups", func() error {
		var err error
		output, err = h.client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{GroupIds: []string{id}})
		return err
	})
	if err != nil {
		return nil, err
	}
	groups := make([]domain.SecurityGroup, 0, len(output.SecurityGroups))
	for _, g := range output.SecurityGroups {
		groups = append(groups, mapSecurityGroup(g))
	}
	return groups, nil
}

// CreateSecurityGroup creates the group, then opens domain.IngressPorts to
// the request's source address in a single authorize call.
func (h *Handler) CreateSecurityGroup(ctx context.Context, req domain.NewSecurityGroup) (string, error) {
	var created *ec2.CreateSecurityGroupOutput
	err := h.call(ctx, "CreateSecurityGroup", func() error {
		var err error
		created, err = h.client.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
			GroupName:   aws.String(req.Name),
			Description: aws.String(req.Description),
			VpcId:       aws.String(req.VPCID),
		})
		return err
	})
	if err != nil {
		return "", err
	}
	groupID := aws.ToString(created.GroupId)
	if groupID == "" {
		return "", errors.New(errors.CodePlatformAPIError, "CreateSecurityGroup response did not contain a group id")
	}
	h.logger.Debugf(ctx, "Created security group %s (%s)", req.Name, groupID)

	permissions := make([]types.IpPermission, 0, len(domain.IngressPorts))
	for _, port := range domain.IngressPorts {
		permissions = append(permissions, types.IpPermission{
			IpProtocol: aws.String("tcp"),
			FromPort:   aws.Int32(port),
			ToPort:     aws.Int32(port),
			IpRanges:   []types.IpRange{{CidrIp: aws.String(req.SourceCIDR())}},
		})
	}
	err = h.call(ctx, "AuthorizeSecurityGroupIngress", func() error {
		_, err := h.client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
			GroupId:       aws.String(groupID),
			IpPermissions: permissions,
		})
		return err
	})
	if err != nil {
		h.logger.Errorf(ctx, err, "Security group %s was created but its ingress rules were not", groupID)
		return groupID, err
	}
	return groupID, nil
}
