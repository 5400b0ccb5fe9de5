package ports

import (
	"context"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
)

// Page is one server page of records. A nil NextToken means the source is exhausted.
type Page[R any] struct {
	Records   []R
	NextToken *string
}

// PagedSource returns pages of records. token is nil for the first page;
// pageSize is a hint the source may clamp to its own limits.
type PagedSource[R any] interface {
	FetchPage(ctx context.Context, token *string, pageSize int32) (Page[R], error)
}

// Resolver joins a matched record against a secondary source.
// Missing data is reported as domain.Unavailable, not as an error.
type Resolver[R any] interface {
	Resolve(ctx context.Context, record R) (domain.Enrichment, error)
}

// PriceQuery keys a single on-demand price lookup.
type PriceQuery struct {
	InstanceType    string
	Location        string
	OperatingSystem string
	PreInstalledSW  string
	CapacityStatus  string
}

//go:generate mockery --name EnrichmentLookup --output ./mocks --outpkg mocks --case underscore

// EnrichmentLookup returns at most one raw price document. A nil document
// with a nil error means the provider has no matching product.
type EnrichmentLookup interface {
	Query(ctx context.Context, key PriceQuery) ([]byte, error)
}
