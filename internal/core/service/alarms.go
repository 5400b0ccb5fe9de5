package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

// Alarms provisions CPU alarms and announces each one through the notifier.
type Alarms struct {
	provisioner ports.AlarmProvisioner
	notifier    ports.Notifier
	policy      domain.CPUAlarmPolicy
	logger      ports.Logger
}

func NewAlarms(provisioner ports.AlarmProvisioner, notifier ports.Notifier, policy domain.CPUAlarmPolicy, logger ports.Logger) (*Alarms, error) {
	if provisioner == nil || notifier == nil {
		return nil, errors.New(errors.CodeConfigValidation, "alarm provisioner and notifier cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "alarm logger cannot be nil")
	}
	return &Alarms{provisioner: provisioner, notifier: notifier, policy: policy, logger: logger}, nil
}

// Create puts the alarm and then sends the notification. Re-using a name
// redefines the alarm. A failure of either step is reported as one error.
// Nothing is created when the notifier has no usable target.
func (a *Alarms) Create(ctx context.Context, spec domain.AlarmSpec) error {
	spec.InstanceID = strings.TrimSpace(spec.InstanceID)
	spec.Name = strings.TrimSpace(spec.Name)
	if err := validateRequest(spec); err != nil {
		return err
	}
	if err := a.notifier.Ready(); err != nil {
		return err
	}

	if err := a.provisioner.PutCPUAlarm(ctx, spec, a.policy); err != nil {
		code := errors.GetCode(err)
		if code == errors.CodeUnknown {
			code = errors.CodePlatformAPIError
		}
		return errors.WrapUserFacing(err, code,
			fmt.Sprintf("Could not create alarm %q for %s", spec.Name, spec.InstanceID), "")
	}
	a.logger.Infof(ctx, "Alarm %s in place for %s at %.2f%%", spec.Name, spec.InstanceID, spec.Threshold)

	if err := a.notifier.Notify(ctx, spec.NotificationText()); err != nil {
		return errors.WrapUserFacing(err, errors.CodeNotificationError,
			fmt.Sprintf("Alarm %q was created but the notification could not be sent", spec.Name),
			"Check alarms.phone_number or alarms.topic_arn.")
	}
	return nil
}

// Apply creates each spec in order and stops at the first failure. It
// returns the names that were created before that point.
func (a *Alarms) Apply(ctx context.Context, specs []domain.AlarmSpec) ([]string, error) {
	created := make([]string, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		if err := a.Create(ctx, spec); err != nil {
			return created, err
		}
		created = append(created, spec.Name)
	}
	return created, nil
}
