// Package reporting turns command results into renderer-neutral reports.
package reporting

import (
	"fmt"
	"strings"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
)

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func stateStatus(s domain.InstanceState) domain.RowStatus {
	switch {
	case s == domain.InstanceStateRunning:
		return domain.RowOK
	case s == domain.InstanceStateTerminated || s == domain.InstanceStateShuttingDown:
		return domain.RowError
	case s.IsActive() || s.IsHalted():
		return domain.RowWarn
	default:
		return domain.RowPlain
	}
}

func InstanceTypes(fragment string, priced []domain.PricedInstanceType) domain.Report {
	descriptions := make([]string, 0, len(priced))
	rows := make([]domain.Row, 0, len(priced))
	for _, p := range priced {
		descriptions = append(descriptions, p.Describe())
		vcpus, mem := "-", "-"
		if p.VCPUs != nil {
			vcpus = fmt.Sprint(*p.VCPUs)
		}
		if p.MemoryMiB != nil {
			mem = fmt.Sprint(*p.MemoryMiB)
		}
		rows = append(rows, domain.Row{Cells: []string{p.Type, vcpus, mem, p.PricePerHour}})
	}
	return domain.Report{
		Title:   fmt.Sprintf("Instance types matching %q", fragment),
		Columns: []string{"TYPE", "VCPUS", "MEMORY (MiB)", "PRICE/HOUR"},
		Rows:    rows,
		Data:    descriptions,
		Empty:   "No priced instance types match.",
	}
}

func Instances(instances []domain.Instance) domain.Report {
	rows := make([]domain.Row, 0, len(instances))
	for _, i := range instances {
		rows = append(rows, domain.Row{
			Cells:  []string{i.ID, i.State.String(), i.Type, dash(i.Platform), dash(i.PublicDNS)},
			Status: stateStatus(i.State),
		})
	}
	return domain.Report{
		Title:   "Instances",
		Columns: []string{"INSTANCE", "STATE", "TYPE", "PLATFORM", "PUBLIC DNS"},
		Rows:    rows,
		Data:    instances,
		Empty:   "No instances found.",
	}
}

func Instance(i domain.Instance) domain.Report {
	groups := make([]string, 0, len(i.SecurityGroups))
	for _, g := range i.SecurityGroups {
		groups = append(groups, g.String())
	}
	return domain.Report{
		Title:   "Instance " + i.ID,
		Columns: []string{"FIELD", "VALUE"},
		Rows: []domain.Row{
			{Cells: []string{"State", i.State.String()}, Status: stateStatus(i.State)},
			{Cells: []string{"Type", i.Type}},
			{Cells: []string{"Platform", dash(i.Platform)}},
			{Cells: []string{"AMI", dash(i.ImageID)}},
			{Cells: []string{"AZ", dash(i.AvailabilityZone)}},
			{Cells: []string{"Public IPv4", dash(i.PublicIP)}},
			{Cells: []string{"Private IPv4", dash(i.PrivateIP)}},
			{Cells: []string{"VPC", dash(i.VPCID)}},
			{Cells: []string{"Security Groups", dash(strings.Join(groups, ", "))}},
			{Cells: []string{"Public DNS", dash(i.PublicDNS)}},
		},
		Data: i,
	}
}

func StateChange(change domain.StateChange, action domain.PowerAction) domain.Report {
	status := domain.RowInfo
	if change.Changed {
		status = domain.RowOK
	}
	return domain.Report{
		Rows: []domain.Row{{Cells: []string{change.Message(action)}, Status: status}},
		Data: change,
	}
}

func Overview(o domain.InstanceOverview) domain.Report {
	r := Instance(o.Instance)
	alarms := "-"
	if len(o.Alarms) > 0 {
		alarms = strings.Join(o.Alarms, ", ")
	}
	r.Rows = append(r.Rows, domain.Row{Cells: []string{"Alarms", alarms}, Status: domain.RowInfo})
	r.Data = o
	return r
}

func SecurityGroups(groups []domain.SecurityGroup) domain.Report {
	rows := make([]domain.Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, domain.Row{Cells: []string{g.Name, g.ID, dash(g.VPCID), dash(g.Description)}})
	}
	return domain.Report{
		Title:   "Security groups",
		Columns: []string{"NAME", "GROUP", "VPC", "DESCRIPTION"},
		Rows:    rows,
		Data:    groups,
		Empty:   "No security groups found.",
	}
}

// SecurityGroupRules lists every rule of the described groups, one per row.
func SecurityGroupRules(groups []domain.SecurityGroup) domain.Report {
	var rows []domain.Row
	for _, g := range groups {
		for _, rule := range g.Inbound {
			rows = append(rows, domain.Row{Cells: []string{g.ID, "inbound", rule.String()}})
		}
		for _, rule := range g.Outbound {
			rows = append(rows, domain.Row{Cells: []string{g.ID, "outbound", rule.String()}})
		}
	}
	return domain.Report{
		Title:   "Security group rules",
		Columns: []string{"GROUP", "DIRECTION", "RULE"},
		Rows:    rows,
		Data:    groups,
		Empty:   "The group has no rules.",
	}
}

func SecurityGroupCreated(id string, req domain.NewSecurityGroup) domain.Report {
	return domain.Report{
		Rows: []domain.Row{{
			Cells:  []string{fmt.Sprintf("Created security group %s (%s), SSH and HTTP open to %s", req.Name, id, req.SourceCIDR())},
			Status: domain.RowOK,
		}},
		Data: map[string]string{"group_id": id},
	}
}

func Images(images []domain.Image) domain.Report {
	rows := make([]domain.Row, 0, len(images))
	for _, img := range images {
		rows = append(rows, domain.Row{Cells: []string{img.ID, img.Name, dash(img.Description)}})
	}
	return domain.Report{
		Title:   "Red Hat images",
		Columns: []string{"AMI", "NAME", "DESCRIPTION"},
		Rows:    rows,
		Data:    images,
		Empty:   "No images found.",
	}
}

func Alarms(instanceID string, names []string) domain.Report {
	rows := make([]domain.Row, 0, len(names))
	for _, n := range names {
		rows = append(rows, domain.Row{Cells: []string{n}})
	}
	return domain.Report{
		Title:   "Alarms for " + instanceID,
		Columns: []string{"ALARM"},
		Rows:    rows,
		Data:    names,
		Empty:   "No alarms watch this instance.",
	}
}

func AlarmsCreated(names []string) domain.Report {
	rows := make([]domain.Row, 0, len(names))
	for _, n := range names {
		rows = append(rows, domain.Row{Cells: []string{n, "created"}, Status: domain.RowOK})
	}
	return domain.Report{
		Title:   "Alarms",
		Columns: []string{"ALARM", "RESULT"},
		Rows:    rows,
		Data:    names,
		Empty:   "No alarms were defined.",
	}
}

func Identity(id domain.Identity) domain.Report {
	return domain.Report{
		Columns: []string{"FIELD", "VALUE"},
		Rows: []domain.Row{
			{Cells: []string{"Account", id.Account}},
			{Cells: []string{"ARN", id.ARN}},
			{Cells: []string{"User", id.UserID}},
		},
		Data: id,
	}
}
