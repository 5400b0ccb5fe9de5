package ec2

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildEC2Filters(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]string
		expected []types.Filter
	}{
		{"nil filters", nil, nil},
		{
			"short keys with multi values",
			map[string]string{"state": "running, stopped", "type": "t3.micro"},
			[]types.Filter{
				{Name: aws.String("instance-state-name"), Values: []string{"running", "stopped"}},
				{Name: aws.String("instance-type"), Values: []string{"t3.micro"}},
			},
		},
		{
			"tag filter keeps commas",
			map[string]string{"tag:Team": "a,b"},
			[]types.Filter{{Name: aws.String("tag:Team"), Values: []string{"a,b"}}},
		},
		{
			"name maps to Name tag",
			map[string]string{"name": "web-1"},
			[]types.Filter{{Name: aws.String("tag:Name"), Values: []string{"web-1"}}},
		},
		{
			"native filter name accepted",
			map[string]string{"vpc-id": "vpc-1"},
			[]types.Filter{{Name: aws.String("vpc-id"), Values: []string{"vpc-1"}}},
		},
		{
			"unknown and empty dropped",
			map[string]string{"color": "blue", "state": " , "},
			[]types.Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildEC2Filters(tt.input))
		})
	}
}

func TestSplitFilterValue(t *testing.T) {
	assert.Equal(t, []string{"a"}, SplitFilterValue("a"))
	assert.Equal(t, []string{"a", "b"}, SplitFilterValue(" a ,, b "))
	assert.Empty(t, SplitFilterValue(" , "))
}
