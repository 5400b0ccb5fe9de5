package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

// ImageQuery selects the image family the images command lists.
type ImageQuery struct {
	Owner      string
	MaxResults int32
}

// Control wraps the direct, non-aggregating instance operations.
type Control struct {
	instances ports.InstanceManager
	groups    ports.SecurityGroupManager
	images    ports.ImageCatalog
	identity  ports.IdentityResolver
	discovery *Discovery
	imageQ    ImageQuery
	logger    ports.Logger
}

func NewControl(
	instances ports.InstanceManager,
	groups ports.SecurityGroupManager,
	images ports.ImageCatalog,
	identity ports.IdentityResolver,
	discovery *Discovery,
	imageQ ImageQuery,
	logger ports.Logger,
) (*Control, error) {
	if instances == nil || groups == nil || images == nil || identity == nil {
		return nil, errors.New(errors.CodeConfigValidation, "control providers cannot be nil")
	}
	if discovery == nil {
		return nil, errors.New(errors.CodeConfigValidation, "discovery service cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "control logger cannot be nil")
	}
	return &Control{
		instances: instances,
		groups:    groups,
		images:    images,
		identity:  identity,
		discovery: discovery,
		imageQ:    imageQ,
		logger:    logger,
	}, nil
}

func (c *Control) ListInstances(ctx context.Context, filters map[string]string) ([]domain.Instance, error) {
	return c.instances.ListInstances(ctx, filters)
}

func (c *Control) DescribeInstance(ctx context.Context, id string) (domain.Instance, error) {
	id, err := requireID(id, "instance id")
	if err != nil {
		return domain.Instance{}, err
	}
	return c.instances.DescribeInstance(ctx, id)
}

// StartInstance starts id unless it is already running.
func (c *Control) StartInstance(ctx context.Context, id string) (domain.StateChange, error) {
	return c.changeState(ctx, id, domain.InstanceStateRunning, c.instances.StartInstance)
}

// StopInstance stops id unless it is already stopped.
func (c *Control) StopInstance(ctx context.Context, id string) (domain.StateChange, error) {
	return c.changeState(ctx, id, domain.InstanceStateStopped, c.instances.StopInstance)
}

func (c *Control) changeState(
	ctx context.Context,
	id string,
	target domain.InstanceState,
	mutate func(context.Context, string) (domain.InstanceState, error),
) (domain.StateChange, error) {
	id, err := requireID(id, "instance id")
	if err != nil {
		return domain.StateChange{}, err
	}
	inst, err := c.instances.DescribeInstance(ctx, id)
	if err != nil {
		return domain.StateChange{}, err
	}

	change := domain.StateChange{InstanceID: id, Previous: inst.State, Current: inst.State}
	if inst.State == target {
		c.logger.Debugf(ctx, "Instance %s already %s", id, target)
		return change, nil
	}

	current, err := mutate(ctx, id)
	if err != nil {
		return domain.StateChange{}, err
	}
	change.Current = current
	change.Changed = true
	c.logger.Infof(ctx, "Instance %s moved from %s to %s", id, inst.State, current)
	return change, nil
}

// Overview fetches the instance and the alarms watching it concurrently.
func (c *Control) Overview(ctx context.Context, id string) (domain.InstanceOverview, error) {
	id, err := requireID(id, "instance id")
	if err != nil {
		return domain.InstanceOverview{}, err
	}

	var overview domain.InstanceOverview
	g, childCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inst, err := c.instances.DescribeInstance(childCtx, id)
		if err != nil {
			return err
		}
		overview.Instance = inst
		return nil
	})
	g.Go(func() error {
		names, err := c.discovery.AlarmsForInstance(childCtx, id)
		if err != nil {
			return err
		}
		overview.Alarms = names
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.InstanceOverview{}, err
	}
	return overview, nil
}

func (c *Control) ListSecurityGroups(ctx context.Context) ([]domain.SecurityGroup, error) {
	return c.groups.ListSecurityGroups(ctx)
}

func (c *Control) DescribeSecurityGroup(ctx context.Context, id string) ([]domain.SecurityGroup, error) {
	id, err := requireID(id, "security group id")
	if err != nil {
		return nil, err
	}
	return c.groups.DescribeSecurityGroup(ctx, id)
}

// CreateSecurityGroup validates req before making any call and returns the
// new group id.
func (c *Control) CreateSecurityGroup(ctx context.Context, req domain.NewSecurityGroup) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}
	id, err := c.groups.CreateSecurityGroup(ctx, req)
	if err != nil {
		return "", err
	}
	c.logger.Infof(ctx, "Created security group %s (%s) in %s", req.Name, id, req.VPCID)
	return id, nil
}

func (c *Control) ListImages(ctx context.Context) ([]domain.Image, error) {
	return c.images.ListImages(ctx, c.imageQ.Owner, c.imageQ.MaxResults)
}

func (c *Control) Identity(ctx context.Context) (domain.Identity, error) {
	return c.identity.CallerIdentity(ctx)
}
