package ec2

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
)

func mapInstanceType(info types.InstanceTypeInfo) domain.InstanceTypeRecord {
	rec := domain.InstanceTypeRecord{Type: string(info.InstanceType)}
	if info.VCpuInfo != nil {
		rec.VCPUs = info.VCpuInfo.DefaultVCpus
	}
	if info.MemoryInfo != nil {
		rec.MemoryMiB = info.MemoryInfo.SizeInMiB
	}
	return rec
}

func mapInstance(inst types.Instance) domain.Instance {
	out := domain.Instance{
		ID:        aws.ToString(inst.InstanceId),
		Type:      string(inst.InstanceType),
		ImageID:   aws.ToString(inst.ImageId),
		PublicIP:  aws.ToString(inst.PublicIpAddress),
		PrivateIP: aws.ToString(inst.PrivateIpAddress),
		VPCID:     aws.ToString(inst.VpcId),
		PublicDNS: aws.ToString(inst.PublicDnsName),
		Platform:  aws.ToString(inst.PlatformDetails),
	}
	if out.Platform == "" {
		out.Platform = string(inst.Platform)
	}
	if inst.State != nil {
		out.State = domain.ParseInstanceState(string(inst.State.Name))
	}
	if inst.Placement != nil {
		out.AvailabilityZone = aws.ToString(inst.Placement.AvailabilityZone)
	}
	for _, g := range inst.SecurityGroups {
		out.SecurityGroups = append(out.SecurityGroups, domain.GroupRef{
			ID:   aws.ToString(g.GroupId),
			Name: aws.ToString(g.GroupName),
		})
	}
	return out
}

func mapSecurityGroup(g types.SecurityGroup) domain.SecurityGroup {
	out := domain.SecurityGroup{
		ID:          aws.ToString(g.GroupId),
		Name:        aws.ToString(g.GroupName),
		VPCID:       aws.ToString(g.VpcId),
		Description: aws.ToString(g.Description),
	}
	for _, p := range g.IpPermissions {
		out.Inbound = append(out.Inbound, mapRule(p))
	}
	for _, p := range g.IpPermissionsEgress {
		out.Outbound = append(out.Outbound, mapRule(p))
	}
	return out
}

func mapRule(p types.IpPermission) domain.Rule {
	rule := domain.Rule{
		Protocol: aws.ToString(p.IpProtocol),
		FromPort: p.FromPort,
		ToPort:   p.ToPort,
	}
	for _, r := range p.IpRanges {
		rule.CIDRs = append(rule.CIDRs, aws.ToString(r.CidrIp))
	}
	for _, r := range p.Ipv6Ranges {
		rule.IPv6CIDRs = append(rule.IPv6CIDRs, aws.ToString(r.CidrIpv6))
	}
	for _, pl := range p.PrefixListIds {
		rule.PrefixListIDs = append(rule.PrefixListIDs, aws.ToString(pl.PrefixListId))
	}
	for _, pair := range p.UserIdGroupPairs {
		rule.GroupIDs = append(rule.GroupIDs, aws.ToString(pair.GroupId))
	}
	return rule
}

func mapImage(img types.Image) domain.Image {
	return domain.Image{
		ID:          aws.ToString(img.ImageId),
		Name:        aws.ToString(img.Name),
		Description: aws.ToString(img.Description),
	}
}
