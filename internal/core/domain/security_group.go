package domain

import (
	"fmt"
	"strings"
)

type SecurityGroup struct {
	ID          string `json:"group_id"`
	Name        string `json:"group_name"`
	VPCID       string `json:"vpc_id,omitempty"`
	Description string `json:"description,omitempty"`
	Inbound     []Rule `json:"inbound_rules,omitempty"`
	Outbound    []Rule `json:"outbound_rules,omitempty"`
}

func (g SecurityGroup) Summary() string {
	return fmt.Sprintf("Security Group Name: %s, Security Group Id: %s, VPC Id: %s, Description: %s",
		g.Name, g.ID, g.VPCID, g.Description)
}

// Rule is one permission entry of a security group.
type Rule struct {
	Protocol      string   `json:"protocol"`
	FromPort      *int32   `json:"from_port,omitempty"`
	ToPort        *int32   `json:"to_port,omitempty"`
	CIDRs         []string `json:"cidrs,omitempty"`
	IPv6CIDRs     []string `json:"ipv6_cidrs,omitempty"`
	PrefixListIDs []string `json:"prefix_list_ids,omitempty"`
	GroupIDs      []string `json:"group_ids,omitempty"`
}

func (r Rule) String() string {
	protocol := r.Protocol
	if protocol == "-1" || protocol == "" {
		protocol = "all"
	}

	var b strings.Builder
	b.WriteString(protocol)
	b.WriteString(" ")
	b.WriteString(r.portRange())

	sources := make([]string, 0, len(r.CIDRs)+len(r.IPv6CIDRs)+len(r.PrefixListIDs)+len(r.GroupIDs))
	sources = append(sources, r.CIDRs...)
	sources = append(sources, r.IPv6CIDRs...)
	sources = append(sources, r.PrefixListIDs...)
	sources = append(sources, r.GroupIDs...)
	if len(sources) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(sources, ","))
	}
	return b.String()
}

func (r Rule) portRange() string {
	if r.FromPort == nil || r.ToPort == nil || *r.FromPort == -1 {
		return "all"
	}
	if *r.FromPort == *r.ToPort {
		return fmt.Sprintf("%d", *r.FromPort)
	}
	return fmt.Sprintf("%d-%d", *r.FromPort, *r.ToPort)
}

// NewSecurityGroup is a request to create a group that admits SSH and HTTP
// from a single address.
type NewSecurityGroup struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	VPCID       string `validate:"required"`
	SourceIP    string `validate:"required,ipv4"`
}

// IngressPorts are the TCP ports opened on newly created groups.
var IngressPorts = []int32{22, 80}

func (n NewSecurityGroup) SourceCIDR() string {
	return n.SourceIP + "/32"
}
