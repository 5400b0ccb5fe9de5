package ec2

import (
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const awsTagFilterPrefix = "tag:"

// ec2FilterNameMap translates the short keys accepted on the command line
// into DescribeInstances filter names.
var ec2FilterNameMap = map[string]string{
	"id":    "instance-id",
	"state": "instance-state-name",
	"type":  "instance-type",
	"az":    "availability-zone",
	"vpc":   "vpc-id",
	"image": "image-id",
	"group": "instance.group-id",
	"name":  "tag:Name",
}

var multiValueFilters = map[string]struct{}{
	"instance-id":         {},
	"instance-state-name": {},
	"instance-type":       {},
	"availability-zone":   {},
	"vpc-id":              {},
	"image-id":            {},
	"instance.group-id":   {},
}

// BuildEC2Filters converts filters into EC2 filters sorted by name. Keys that
// are neither short keys, tag:<key> nor native filter names are dropped.
func BuildEC2Filters(filters map[string]string) []types.Filter {
	if len(filters) == 0 {
		return nil
	}
	ec2Filters := make([]types.Filter, 0, len(filters))
	for key, value := range filters {
		key = strings.TrimSpace(key)
		var filterName string
		switch {
		case strings.HasPrefix(key, awsTagFilterPrefix):
			filterName = key
		case ec2FilterNameMap[key] != "":
			filterName = ec2FilterNameMap[key]
		case isNativeFilterName(key):
			filterName = key
		default:
			continue
		}

		values := []string{strings.TrimSpace(value)}
		if _, multi := multiValueFilters[filterName]; multi {
			values = SplitFilterValue(value)
		}
		if len(values) == 0 || values[0] == "" {
			continue
		}
		ec2Filters = append(ec2Filters, types.Filter{Name: aws.String(filterName), Values: values})
	}
	sort.Slice(ec2Filters, func(i, j int) bool {
		return *ec2Filters[i].Name < *ec2Filters[j].Name
	})
	return ec2Filters
}

func isNativeFilterName(key string) bool {
	_, ok := multiValueFilters[key]
	return ok
}

func SplitFilterValue(value string) []string {
	parts := strings.Split(value, ",")
	trimmedParts := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			trimmedParts = append(trimmedParts, trimmed)
		}
	}
	return trimmedParts
}
