package search

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const latestDateCacheKey = "latest_available_date"

// LatestAvailableDate finds the most future date for which the data source
// still returns trips, probing the reference origin and walking one day back
// at a time from the maximum bookable date. Publication gaps mean
// availability is not monotonic near the boundary, so this must stay a
// linear scan rather than a binary search. The answer is memoised for the
// cache's expiration window.
func (e *Engine) LatestAvailableDate(ctx context.Context) (time.Time, error) {
	if cached := e.Cache.Get(latestDateCacheKey); cached != "" {
		if date, err := time.Parse("2006-01-02", cached); err == nil {
			return date, nil
		}
	}

	for date := e.Config.MaxDate; !date.Before(e.Config.MinDate); date = date.AddDate(0, 0, -1) {
		trips, err := e.Fetcher.Fetch(ctx, date, e.Config.ReferenceOrigin, "")
		if err != nil {
			log.Debug().Err(err).Str("date", date.Format("2006-01-02")).Msg("Probe query failed")

			continue
		}

		if len(trips) > 0 {
			e.Cache.Set(latestDateCacheKey, date.Format("2006-01-02"))

			return date, nil
		}
	}

	return e.Config.MinDate, nil
}
