package catalog

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
)

// KeyResolver enriches a record with its own primary key. It is used where
// the match itself is the association and the key is the wanted output.
type KeyResolver[R domain.Record] struct{}

func (KeyResolver[R]) Resolve(_ context.Context, rec R) (domain.Enrichment, error) {
	return domain.Available(rec.PrimaryKey()), nil
}

// PriceTemplate holds the fixed attributes of every price lookup.
type PriceTemplate struct {
	Location        string
	OperatingSystem string
	PreInstalledSW  string
	CapacityStatus  string
}

// PriceResolver joins an instance type with its on-demand hourly USD price.
type PriceResolver struct {
	lookup   ports.EnrichmentLookup
	template PriceTemplate
	logger   ports.Logger
}

func NewPriceResolver(lookup ports.EnrichmentLookup, template PriceTemplate, logger ports.Logger) *PriceResolver {
	return &PriceResolver{lookup: lookup, template: template, logger: logger}
}

func (r *PriceResolver) Resolve(ctx context.Context, rec domain.InstanceTypeRecord) (domain.Enrichment, error) {
	doc, err := r.lookup.Query(ctx, ports.PriceQuery{
		InstanceType:    rec.Type,
		Location:        r.template.Location,
		OperatingSystem: r.template.OperatingSystem,
		PreInstalledSW:  r.template.PreInstalledSW,
		CapacityStatus:  r.template.CapacityStatus,
	})
	if err != nil {
		return domain.Unavailable(), err
	}
	if len(doc) == 0 {
		r.logger.Debugf(ctx, "No price product for %s", rec.Type)
		return domain.Unavailable(), nil
	}

	usd, ok, err := OnDemandUSD(doc)
	if err != nil {
		r.logger.Debugf(ctx, "Unreadable price document for %s: %v", rec.Type, err)
		return domain.Unavailable(), nil
	}
	if !ok {
		r.logger.Debugf(ctx, "No on-demand USD price for %s", rec.Type)
		return domain.Unavailable(), nil
	}
	return domain.Available("$" + usd), nil
}

// onDemandPath is terms.OnDemand.<offer>.priceDimensions.<dimension>.pricePerUnit.USD.
var onDemandPath = []string{"terms", "OnDemand", "*", "priceDimensions", "*", "pricePerUnit", "USD"}

// OnDemandUSD returns the first on-demand USD price per unit in document
// order. Price dimensions without a USD value are skipped.
func OnDemandUSD(doc []byte) (string, bool, error) {
	iter := jsoniter.ConfigFastest.BorrowIterator(doc)
	defer jsoniter.ConfigFastest.ReturnIterator(iter)

	value, found := findString(iter, onDemandPath)
	if iter.Error != nil {
		return "", false, iter.Error
	}
	return value, found, nil
}

func findString(iter *jsoniter.Iterator, path []string) (string, bool) {
	if len(path) == 0 {
		if iter.WhatIsNext() != jsoniter.StringValue {
			iter.Skip()
			return "", false
		}
		s := strings.TrimSpace(iter.ReadString())
		return s, s != ""
	}
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		iter.Skip()
		return "", false
	}

	var value string
	var found bool
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if found || (path[0] != "*" && field != path[0]) {
			it.Skip()
			return true
		}
		value, found = findString(it, path[1:])
		return true
	})
	return value, found
}
