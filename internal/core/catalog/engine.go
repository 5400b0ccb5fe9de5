// Package catalog aggregates server-paged provider listings. It walks a
// paged source, filters each record, joins the survivors against a second
// source and keeps the ones the join could enrich, in encounter order.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/metrics"
)

const (
	DefaultPageSize int32 = 100
	DefaultMaxPages       = 500
)

type Config struct {
	// PageSize is passed to the source as a hint.
	PageSize int32
	// MaxPages bounds a single aggregation. A source still returning tokens
	// after MaxPages pages is treated as non-terminating.
	MaxPages int
}

func DefaultConfig() Config {
	return Config{PageSize: DefaultPageSize, MaxPages: DefaultMaxPages}
}

// Engine is safe for concurrent use as long as its source and resolver are;
// every Aggregate call keeps its own state.
type Engine[R domain.Record] struct {
	name     string
	source   ports.PagedSource[R]
	resolver ports.Resolver[R]
	cfg      Config
	logger   ports.Logger
}

func NewEngine[R domain.Record](
	name string,
	source ports.PagedSource[R],
	resolver ports.Resolver[R],
	cfg Config,
	logger ports.Logger,
) (*Engine[R], error) {
	if source == nil {
		return nil, errors.New(errors.CodeConfigValidation, "catalog source cannot be nil")
	}
	if resolver == nil {
		return nil, errors.New(errors.CodeConfigValidation, "catalog resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "catalog logger cannot be nil")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	return &Engine[R]{
		name:     name,
		source:   source,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger.WithFields(map[string]any{"catalog": name}),
	}, nil
}

// Aggregate returns every record matching criterion whose enrichment is
// available, in page order then intra-page order. Any source or resolver
// failure aborts the run and no partial result is returned.
func (e *Engine[R]) Aggregate(ctx context.Context, criterion domain.Criterion) ([]domain.Entry[R], error) {
	if err := ValidateCriterion(criterion); err != nil {
		return nil, err
	}

	start := time.Now()
	entries, err := e.aggregate(ctx, criterion)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.AggregationDuration.WithLabelValues(e.name, result).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (e *Engine[R]) aggregate(ctx context.Context, criterion domain.Criterion) ([]domain.Entry[R], error) {
	entries := make([]domain.Entry[R], 0)
	seen := make(map[string]struct{})
	var token *string

	for page := 1; ; page++ {
		if page > e.cfg.MaxPages {
			return nil, errors.New(errors.CodePaginationExhausted,
				fmt.Sprintf("%s source did not finish within %d pages", e.name, e.cfg.MaxPages))
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e.logger.Debugf(ctx, "Fetching page %d", page)
		result, err := e.source.FetchPage(ctx, token, e.cfg.PageSize)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodePlatformAPIError, fmt.Sprintf("failed to fetch %s page %d", e.name, page))
		}
		metrics.PagesFetched.WithLabelValues(e.name).Inc()

		for _, rec := range result.Records {
			metrics.RecordsEvaluated.WithLabelValues(e.name).Inc()
			if !Matches(rec, criterion) {
				continue
			}
			metrics.RecordsMatched.WithLabelValues(e.name).Inc()

			enrichment, err := e.resolver.Resolve(ctx, rec)
			if err != nil {
				metrics.Enrichments.WithLabelValues(e.name, metrics.OutcomeError).Inc()
				return nil, errors.Wrap(err, errors.CodePlatformAPIError,
					fmt.Sprintf("failed to enrich %s record %q", e.name, rec.PrimaryKey()))
			}
			value, ok := enrichment.Value()
			if !ok {
				metrics.Enrichments.WithLabelValues(e.name, metrics.OutcomeUnavailable).Inc()
				e.logger.Debugf(ctx, "Dropping %q: enrichment unavailable", rec.PrimaryKey())
				continue
			}
			metrics.Enrichments.WithLabelValues(e.name, metrics.OutcomeAvailable).Inc()
			entries = append(entries, domain.Entry[R]{Record: rec, Value: value})
		}

		if result.NextToken == nil || *result.NextToken == "" {
			e.logger.Debugf(ctx, "Source exhausted after %d pages, %d entries kept", page, len(entries))
			return entries, nil
		}
		if _, dup := seen[*result.NextToken]; dup {
			return nil, errors.New(errors.CodePaginationExhausted,
				fmt.Sprintf("%s source repeated continuation token on page %d", e.name, page))
		}
		seen[*result.NextToken] = struct{}{}
		next := *result.NextToken
		token = &next
	}
}
