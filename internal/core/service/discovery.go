package service

import (
	"context"
	"strings"

	"github.com/olusolaa/ec2ctl/internal/core/catalog"
	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

const (
	instanceTypesCatalog = "instance_types"
	alarmsCatalog        = "alarms"
)

// Discovery answers the two catalog questions: which instance types match a
// name fragment and what they cost, and which alarms watch an instance.
// Engines are built per call so no state outlives a request.
type Discovery struct {
	types    ports.PagedSource[domain.InstanceTypeRecord]
	alarms   ports.PagedSource[domain.AlarmRecord]
	prices   ports.EnrichmentLookup
	template catalog.PriceTemplate
	cfg      catalog.Config
	logger   ports.Logger
}

func NewDiscovery(
	types ports.PagedSource[domain.InstanceTypeRecord],
	alarms ports.PagedSource[domain.AlarmRecord],
	prices ports.EnrichmentLookup,
	template catalog.PriceTemplate,
	cfg catalog.Config,
	logger ports.Logger,
) (*Discovery, error) {
	if types == nil || alarms == nil || prices == nil {
		return nil, errors.New(errors.CodeConfigValidation, "discovery sources cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "discovery logger cannot be nil")
	}
	return &Discovery{
		types:    types,
		alarms:   alarms,
		prices:   prices,
		template: template,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// InstanceTypes lists the instance types whose name contains fragment,
// ignoring case, that have an on-demand price.
func (d *Discovery) InstanceTypes(ctx context.Context, fragment string) ([]domain.PricedInstanceType, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, errors.InvalidInput("an instance type name fragment is required")
	}

	resolver := catalog.NewPriceResolver(d.prices, d.template, d.logger)
	engine, err := catalog.NewEngine[domain.InstanceTypeRecord](instanceTypesCatalog, d.types, resolver, d.cfg, d.logger)
	if err != nil {
		return nil, err
	}
	entries, err := engine.Aggregate(ctx, domain.SubstringCriterion(fragment))
	if err != nil {
		return nil, err
	}

	priced := make([]domain.PricedInstanceType, 0, len(entries))
	for _, entry := range entries {
		priced = append(priced, domain.NewPricedInstanceType(entry, d.template.OperatingSystem))
	}
	d.logger.Debugf(ctx, "%d instance types match %q", len(priced), fragment)
	return priced, nil
}

// AlarmsForInstance returns the names of the alarms scoped to instanceID.
func (d *Discovery) AlarmsForInstance(ctx context.Context, instanceID string) ([]string, error) {
	instanceID, err := requireID(instanceID, "instance id")
	if err != nil {
		return nil, err
	}

	engine, err := catalog.NewEngine[domain.AlarmRecord](alarmsCatalog, d.alarms, catalog.KeyResolver[domain.AlarmRecord]{}, d.cfg, d.logger)
	if err != nil {
		return nil, err
	}
	entries, err := engine.Aggregate(ctx, domain.InstanceCriterion(instanceID))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Value)
	}
	return names, nil
}
