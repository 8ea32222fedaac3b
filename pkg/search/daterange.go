package search

import (
	"context"
	"sync"
	"time"

	"github.com/railmax/railmax/pkg/railmax"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// ProgressFunc receives each day's batch as it completes, so a caller can
// render progress without the pipeline knowing anything about UIs.
type ProgressFunc func(date time.Time, batch []railmax.TripRecord, completed int, total int)

// AggregateRange issues one trip query per day over [start, start+days-1] and
// concatenates the results in date order. Days are queried sequentially
// unless the engine is configured with more than one worker. A day whose
// query fails contributes an empty batch; the first such error is returned
// alongside whatever was collected.
func (e *Engine) AggregateRange(ctx context.Context, start time.Time, days int, origin string, destination string, progress ProgressFunc) ([]railmax.TripRecord, error) {
	if days <= 0 {
		return nil, nil
	}

	if e.Workers > 1 {
		return e.aggregateRangeParallel(ctx, start, days, origin, destination, progress)
	}

	var allTrips []railmax.TripRecord
	var firstErr error

	for day := 0; day < days; day += 1 {
		date := start.AddDate(0, 0, day)

		trips, err := e.Fetcher.Fetch(ctx, date, origin, destination)
		if err != nil {
			log.Warn().Err(err).Str("date", date.Format("2006-01-02")).Msg("Day query failed")

			if firstErr == nil {
				firstErr = err
			}
			trips = nil
		}

		allTrips = append(allTrips, trips...)

		if progress != nil {
			progress(date, trips, day+1, days)
		}
	}

	return allTrips, firstErr
}

func (e *Engine) aggregateRangeParallel(ctx context.Context, start time.Time, days int, origin string, destination string, progress ProgressFunc) ([]railmax.TripRecord, error) {
	var mutex sync.Mutex
	var firstErr error
	completed := 0

	workerPool := pool.NewWithResults[[]railmax.TripRecord]().WithMaxGoroutines(e.Workers)

	for day := 0; day < days; day += 1 {
		date := start.AddDate(0, 0, day)

		workerPool.Go(func() []railmax.TripRecord {
			trips, err := e.Fetcher.Fetch(ctx, date, origin, destination)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				log.Warn().Err(err).Str("date", date.Format("2006-01-02")).Msg("Day query failed")

				if firstErr == nil {
					firstErr = err
				}
				trips = nil
			}

			completed += 1
			if progress != nil {
				progress(date, trips, completed, days)
			}

			return trips
		})
	}

	// Wait returns batches in submission order, keeping the concatenation
	// deterministic by date
	batches := workerPool.Wait()

	var allTrips []railmax.TripRecord
	for _, batch := range batches {
		allTrips = append(allTrips, batch...)
	}

	return allTrips, firstErr
}
