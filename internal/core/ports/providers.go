package ports

import (
	"context"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
)

//go:generate mockery --name InstanceManager --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name SecurityGroupManager --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name ImageCatalog --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name AlarmProvisioner --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name Notifier --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name IdentityResolver --output ./mocks --outpkg mocks --case underscore

type InstanceManager interface {
	// ListInstances accepts friendly filter keys (state, type, az, vpc, image, id, tag:<key>).
	ListInstances(ctx context.Context, filters map[string]string) ([]domain.Instance, error)
	DescribeInstance(ctx context.Context, id string) (domain.Instance, error)
	// StartInstance and StopInstance return the state reported right after the request.
	StartInstance(ctx context.Context, id string) (domain.InstanceState, error)
	StopInstance(ctx context.Context, id string) (domain.InstanceState, error)
}

type SecurityGroupManager interface {
	ListSecurityGroups(ctx context.Context) ([]domain.SecurityGroup, error)
	DescribeSecurityGroup(ctx context.Context, id string) ([]domain.SecurityGroup, error)
	// CreateSecurityGroup creates the group and authorizes its ingress rules, returning the new group id.
	CreateSecurityGroup(ctx context.Context, req domain.NewSecurityGroup) (string, error)
}

type ImageCatalog interface {
	ListImages(ctx context.Context, owner string, maxResults int32) ([]domain.Image, error)
}

// AlarmProvisioner creates or redefines an alarm. Re-using a name replaces the alarm.
type AlarmProvisioner interface {
	PutCPUAlarm(ctx context.Context, spec domain.AlarmSpec, policy domain.CPUAlarmPolicy) error
}

type Notifier interface {
	// Ready reports a missing or unusable target without making a call.
	Ready() error
	Notify(ctx context.Context, message string) error
}

type IdentityResolver interface {
	CallerIdentity(ctx context.Context) (domain.Identity, error)
}
