package search

import (
	"context"
	"time"

	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/dataaggregator"
	"github.com/railmax/railmax/pkg/dataaggregator/query"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/resultcache"
)

// TripFetcher is the single upstream dependency of the search pipeline.
type TripFetcher interface {
	Fetch(ctx context.Context, date time.Time, origin string, destination string) ([]railmax.TripRecord, error)
}

// aggregatorFetcher resolves trips through the global data aggregator.
type aggregatorFetcher struct{}

func (aggregatorFetcher) Fetch(ctx context.Context, date time.Time, origin string, destination string) ([]railmax.TripRecord, error) {
	return dataaggregator.Lookup[[]railmax.TripRecord](query.Trips{
		Date:        date,
		Origin:      origin,
		Destination: destination,
	})
}

// Engine runs trip searches. Workers above 1 fans the independent per-day
// calls of a date-range search out over a bounded pool; results are still
// concatenated in date order.
type Engine struct {
	Fetcher TripFetcher
	Config  *config.Config
	Cache   *resultcache.Cache

	Workers int
}

func NewEngine(cfg *config.Config, cache *resultcache.Cache) *Engine {
	return &Engine{
		Fetcher: aggregatorFetcher{},
		Config:  cfg,
		Cache:   cache,
		Workers: 1,
	}
}
