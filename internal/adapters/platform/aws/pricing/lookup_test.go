package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	pricingmocks "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/pricing/mocks"
	sharedmocks "github.com/olusolaa/ec2ctl/internal/adapters/platform/aws/shared/mocks"
	"github.com/olusolaa/ec2ctl/internal/core/catalog"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	portsmocks "github.com/olusolaa/ec2ctl/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/ec2ctl/internal/errors"
)

type LookupTestSuite struct {
	suite.Suite
	mockClient       *pricingmocks.PricingClientInterface
	mockLimiter      *sharedmocks.RateLimiter
	mockErrorHandler *sharedmocks.ErrorHandler
	lookup           *Lookup
	query            ports.PriceQuery
}

func (s *LookupTestSuite) SetupTest() {
	s.mockClient = new(pricingmocks.PricingClientInterface)
	s.mockLimiter = new(sharedmocks.RateLimiter)
	s.mockErrorHandler = new(sharedmocks.ErrorHandler)
	s.mockLimiter.On("Wait", mock.Anything, mock.Anything).Return(nil).Maybe()

	s.lookup = NewLookup(aws.Config{Region: "us-east-1"}, portsmocks.NewQuietLogger(),
		WithPricingClient(s.mockClient),
		WithRateLimiter(s.mockLimiter),
		WithErrorHandler(s.mockErrorHandler),
	)
	s.query = ports.PriceQuery{
		InstanceType:    "t3.micro",
		Location:        "US East (N. Virginia)",
		OperatingSystem: "Linux",
		PreInstalledSW:  "NA",
		CapacityStatus:  "Used",
	}
}

func TestLookupTestSuite(t *testing.T) {
	suite.Run(t, new(LookupTestSuite))
}

func (s *LookupTestSuite) expectedInput() *pricing.GetProductsInput {
	filter := func(field, value string) types.Filter {
		return types.Filter{Type: types.FilterTypeTermMatch, Field: aws.String(field), Value: aws.String(value)}
	}
	return &pricing.GetProductsInput{
		ServiceCode:   aws.String("AmazonEC2"),
		FormatVersion: aws.String("aws_v1"),
		MaxResults:    aws.Int32(1),
		Filters: []types.Filter{
			filter("instanceType", "t3.micro"),
			filter("location", "US East (N. Virginia)"),
			filter("operatingSystem", "Linux"),
			filter("preInstalledSw", "NA"),
			filter("capacitystatus", "Used"),
		},
	}
}

func (s *LookupTestSuite) TestQuery_ReturnsFirstDocument() {
	doc := `{"terms":{"OnDemand":{"a":{"priceDimensions":{"b":{"pricePerUnit":{"USD":"0.0104000000"}}}}}}}`
	s.mockClient.On("GetProducts", mock.Anything, s.expectedInput()).
		Return(&pricing.GetProductsOutput{PriceList: []string{doc}}, nil).Once()

	got, err := s.lookup.Query(context.Background(), s.query)

	s.Require().NoError(err)
	s.JSONEq(doc, string(got))
	s.mockClient.AssertExpectations(s.T())
}

func (s *LookupTestSuite) TestQuery_NoProduct() {
	s.mockClient.On("GetProducts", mock.Anything, mock.Anything).Return(&pricing.GetProductsOutput{}, nil).Once()

	got, err := s.lookup.Query(context.Background(), s.query)

	s.NoError(err)
	s.Nil(got)
}

func (s *LookupTestSuite) TestQuery_Error() {
	apiErr := errors.New("AccessDeniedException")
	mapped := apperrors.New(apperrors.CodePlatformAuthError, "denied")
	s.mockClient.On("GetProducts", mock.Anything, mock.Anything).Return(nil, apiErr).Once()
	s.mockErrorHandler.On("Handle", "Pricing", "GetProducts", apiErr, mock.Anything).Return(mapped).Once()

	got, err := s.lookup.Query(context.Background(), s.query)

	s.Nil(got)
	s.Same(mapped, err)
}

func (s *LookupTestSuite) TestQuery_FeedsPriceResolver() {
	doc := `{"terms":{"OnDemand":{"a":{"priceDimensions":{"b":{"pricePerUnit":{"USD":"0.0104000000"}}}}}}}`
	s.mockClient.On("GetProducts", mock.Anything, mock.Anything).
		Return(&pricing.GetProductsOutput{PriceList: []string{doc}}, nil).Once()
	resolver := catalog.NewPriceResolver(s.lookup, catalog.PriceTemplate{
		Location:        s.query.Location,
		OperatingSystem: s.query.OperatingSystem,
		PreInstalledSW:  s.query.PreInstalledSW,
		CapacityStatus:  s.query.CapacityStatus,
	}, portsmocks.NewQuietLogger())

	got, err := resolver.Resolve(context.Background(), domain.InstanceTypeRecord{Type: "t3.micro"})

	s.Require().NoError(err)
	v, ok := got.Value()
	s.True(ok)
	s.Equal("$0.0104000000", v)
}
