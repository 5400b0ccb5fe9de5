package service

import (
	"context"
	"strconv"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
)

// pagedSlice serves records in pages of pageLen, chained by numeric tokens.
type pagedSlice[R any] struct {
	records []R
	pageLen int
	fetches int
	err     error
}

func (p *pagedSlice[R]) FetchPage(_ context.Context, token *string, _ int32) (ports.Page[R], error) {
	p.fetches++
	if p.err != nil {
		return ports.Page[R]{}, p.err
	}
	start := 0
	if token != nil {
		start, _ = strconv.Atoi(*token)
	}
	end := start + p.pageLen
	if end > len(p.records) {
		end = len(p.records)
	}
	page := ports.Page[R]{Records: p.records[start:end]}
	if end < len(p.records) {
		next := strconv.Itoa(end)
		page.NextToken = &next
	}
	return page, nil
}

func alarm(name string, instanceIDs ...string) domain.AlarmRecord {
	rec := domain.AlarmRecord{Name: name}
	for _, id := range instanceIDs {
		rec.Dims = append(rec.Dims, domain.Dimension{Name: domain.DimensionInstanceID, Value: id})
	}
	return rec
}

func priceDoc(usd string) []byte {
	return []byte(`{"product":{"sku":"X"},"terms":{"OnDemand":{"X.JRTCKXETXF":{"priceDimensions":{"X.JRTCKXETXF.6YS6EN2CT7":{"unit":"Hrs","pricePerUnit":{"USD":"` + usd + `"}}}}}}}`)
}
