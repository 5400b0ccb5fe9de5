package service

import (
	"context"
	stderrs "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/olusolaa/ec2ctl/internal/core/catalog"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/core/ports/mocks"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

type DiscoveryTestSuite struct {
	suite.Suite
	types     *pagedSlice[domain.InstanceTypeRecord]
	alarms    *pagedSlice[domain.AlarmRecord]
	lookup    *mocks.EnrichmentLookup
	discovery *Discovery
	template  catalog.PriceTemplate
}

func (s *DiscoveryTestSuite) SetupTest() {
	vcpus := int32(2)
	mem := int64(1024)
	s.types = &pagedSlice[domain.InstanceTypeRecord]{
		pageLen: 2,
		records: []domain.InstanceTypeRecord{
			{Type: "t3.micro", VCPUs: &vcpus, MemoryMiB: &mem},
			{Type: "m5.large"},
			{Type: "t3.large"},
		},
	}
	s.alarms = &pagedSlice[domain.AlarmRecord]{
		pageLen: 1,
		records: []domain.AlarmRecord{alarm("A1", "i-99"), alarm("A2", "i-999"), alarm("A3")},
	}
	s.lookup = new(mocks.EnrichmentLookup)
	s.template = catalog.PriceTemplate{
		Location:        "US East (N. Virginia)",
		OperatingSystem: "Linux",
		PreInstalledSW:  "NA",
		CapacityStatus:  "Used",
	}

	var err error
	s.discovery, err = NewDiscovery(s.types, s.alarms, s.lookup, s.template, catalog.DefaultConfig(), mocks.NewQuietLogger())
	s.Require().NoError(err)
}

func TestDiscoveryTestSuite(t *testing.T) {
	suite.Run(t, new(DiscoveryTestSuite))
}

func (s *DiscoveryTestSuite) query(instanceType string) ports.PriceQuery {
	return ports.PriceQuery{
		InstanceType:    instanceType,
		Location:        s.template.Location,
		OperatingSystem: s.template.OperatingSystem,
		PreInstalledSW:  s.template.PreInstalledSW,
		CapacityStatus:  s.template.CapacityStatus,
	}
}

func (s *DiscoveryTestSuite) TestInstanceTypes_PricedMatchesOnly() {
	s.lookup.On("Query", mock.Anything, s.query("t3.micro")).Return(priceDoc("0.0104000000"), nil).Once()
	s.lookup.On("Query", mock.Anything, s.query("t3.large")).Return(nil, nil).Once()

	got, err := s.discovery.InstanceTypes(context.Background(), "  T3 ")

	s.Require().NoError(err)
	vcpus := int32(2)
	mem := int64(1024)
	want := []domain.PricedInstanceType{{
		Type:            "t3.micro",
		VCPUs:           &vcpus,
		MemoryMiB:       &mem,
		PricePerHour:    "$0.0104000000",
		OperatingSystem: "Linux",
	}}
	s.Empty(cmp.Diff(want, got))
	s.Equal(2, s.types.fetches)
	s.lookup.AssertExpectations(s.T())
	s.lookup.AssertNotCalled(s.T(), "Query", mock.Anything, s.query("m5.large"))
}

func (s *DiscoveryTestSuite) TestInstanceTypes_EmptyFragment() {
	_, err := s.discovery.InstanceTypes(context.Background(), "   ")

	s.True(errors.Is(err, errors.CodeInvalidInput))
	s.Zero(s.types.fetches)
}

func (s *DiscoveryTestSuite) TestInstanceTypes_LookupFailureAborts() {
	s.lookup.On("Query", mock.Anything, mock.Anything).Return(nil, stderrs.New("throttled")).Once()

	got, err := s.discovery.InstanceTypes(context.Background(), "micro")

	s.Nil(got)
	s.True(errors.Is(err, errors.CodePlatformAPIError))
}

func (s *DiscoveryTestSuite) TestAlarmsForInstance_ExactDimension() {
	got, err := s.discovery.AlarmsForInstance(context.Background(), "i-99")

	s.Require().NoError(err)
	s.Equal([]string{"A1"}, got)
	s.Equal(3, s.alarms.fetches)
}

func (s *DiscoveryTestSuite) TestAlarmsForInstance_NoneIsEmptyList() {
	got, err := s.discovery.AlarmsForInstance(context.Background(), "i-1")

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *DiscoveryTestSuite) TestAlarmsForInstance_MissingID() {
	_, err := s.discovery.AlarmsForInstance(context.Background(), "")

	s.True(errors.Is(err, errors.CodeInvalidInput))
	s.Zero(s.alarms.fetches)
}

func (s *DiscoveryTestSuite) TestAlarmsForInstance_SourceFailure() {
	s.alarms.err = stderrs.New("503")

	got, err := s.discovery.AlarmsForInstance(context.Background(), "i-99")

	s.Nil(got)
	s.Equal(502, errors.HTTPStatus(err))
}

func (s *DiscoveryTestSuite) TestNewDiscovery_RequiresCollaborators() {
	_, err := NewDiscovery(nil, s.alarms, s.lookup, s.template, catalog.DefaultConfig(), mocks.NewQuietLogger())
	s.Error(err)
	_, err = NewDiscovery(s.types, s.alarms, s.lookup, s.template, catalog.DefaultConfig(), nil)
	s.Error(err)
}
