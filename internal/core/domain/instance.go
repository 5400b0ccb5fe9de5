package domain

import (
	"fmt"
	"strings"
)

type Instance struct {
	ID               string        `json:"instance_id"`
	State            InstanceState `json:"state"`
	Type             string        `json:"instance_type"`
	Platform         string        `json:"platform,omitempty"`
	ImageID          string        `json:"image_id,omitempty"`
	AvailabilityZone string        `json:"availability_zone,omitempty"`
	PublicIP         string        `json:"public_ip,omitempty"`
	PrivateIP        string        `json:"private_ip,omitempty"`
	VPCID            string        `json:"vpc_id,omitempty"`
	PublicDNS        string        `json:"public_dns_name,omitempty"`
	SecurityGroups   []GroupRef    `json:"security_groups,omitempty"`
}

type GroupRef struct {
	ID   string `json:"group_id"`
	Name string `json:"group_name,omitempty"`
}

func (g GroupRef) String() string {
	if g.Name == "" {
		return g.ID
	}
	return fmt.Sprintf("%s (%s)", g.ID, g.Name)
}

func (i Instance) Summary() string {
	return fmt.Sprintf("Instance ID: %s, status: %s, type: %s, platform: %s, publicDnsName: %s",
		i.ID, i.State, i.Type, i.Platform, i.PublicDNS)
}

func (i Instance) Details() string {
	groups := make([]string, 0, len(i.SecurityGroups))
	for _, g := range i.SecurityGroups {
		groups = append(groups, g.String())
	}
	return fmt.Sprintf("Instance ID: %s, status: %s, type: %s, platform: %s, AMI: %s, AZ: %s, "+
		"public IPv4: %s, private IPv4: %s, VPC: %s, Security Groups: %s, publicDnsName: %s",
		i.ID, i.State, i.Type, i.Platform, i.ImageID, i.AvailabilityZone,
		i.PublicIP, i.PrivateIP, i.VPCID, strings.Join(groups, ", "), i.PublicDNS)
}

// StateChange is the result of a start or stop request.
type StateChange struct {
	InstanceID string        `json:"instance_id"`
	Previous   InstanceState `json:"previous_state"`
	Current    InstanceState `json:"current_state"`
	Changed    bool          `json:"changed"`
}

type PowerAction int

const (
	PowerOn PowerAction = iota
	PowerOff
)

func (c StateChange) Message(action PowerAction) string {
	switch {
	case action == PowerOn && !c.Changed:
		return fmt.Sprintf("Instance %s is already started.", c.InstanceID)
	case action == PowerOn:
		return fmt.Sprintf("Starting instance: %s", c.InstanceID)
	case !c.Changed:
		return fmt.Sprintf("Instance %s is already stopped.", c.InstanceID)
	default:
		return fmt.Sprintf("Stopping instance: %s. It will take a few minutes to perform all checks.", c.InstanceID)
	}
}

// InstanceOverview bundles an instance with the alarms watching it.
type InstanceOverview struct {
	Instance Instance `json:"instance"`
	Alarms   []string `json:"alarms"`
}
