package search

import (
	"context"
	"sort"

	"github.com/railmax/railmax/pkg/railmax"
	"github.com/rs/zerolog/log"
)

type Status string

const (
	// StatusOK means the search produced at least one record
	StatusOK Status = "ok"
	// StatusEmpty means the data source answered but had no matching trips
	StatusEmpty Status = "empty"
	// StatusFailed means the data source could not be reached
	StatusFailed Status = "failed"
)

// Result is what every search returns. Exactly one of Trips and RoundTrips is
// populated, depending on the search mode. Failures never escape as errors -
// they become an empty result with StatusFailed so callers can distinguish
// "no trips" from "source unreachable".
type Result struct {
	Trips      []railmax.TripRecord `groups:"basic" json:"trips,omitempty"`
	RoundTrips []railmax.RoundTrip  `groups:"basic" json:"round_trips,omitempty"`

	Status Status `groups:"basic" json:"status"`
}

// FindTrips runs a search. An error is only returned for invalid parameters;
// upstream failures are reported through Result.Status.
func (e *Engine) FindTrips(ctx context.Context, parameters railmax.SearchParameters) (*Result, error) {
	parameters.Normalise()

	if err := parameters.Validate(); err != nil {
		return nil, err
	}

	switch parameters.Mode {
	case railmax.SearchModeSingle:
		return e.findSingle(ctx, parameters), nil
	case railmax.SearchModeRoundTrip:
		return e.findRoundTrips(ctx, parameters), nil
	default:
		return e.findDateRange(ctx, parameters, nil), nil
	}
}

func (e *Engine) findSingle(ctx context.Context, parameters railmax.SearchParameters) *Result {
	trips, err := e.Fetcher.Fetch(ctx, parameters.DepartDate, parameters.Origin, parameters.Destination)
	if err != nil {
		log.Warn().Err(err).Msg("Trip lookup failed")

		return &Result{Status: StatusFailed}
	}

	FilterTrips(&trips, parameters.DepartWindow)
	AnnotateDurations(trips)

	return tripsResult(trips, StatusOK)
}

func (e *Engine) findDateRange(ctx context.Context, parameters railmax.SearchParameters, progress ProgressFunc) *Result {
	trips, err := e.AggregateRange(ctx, parameters.DepartDate, parameters.RangeDays, parameters.Origin, parameters.Destination, progress)
	if err != nil {
		log.Warn().Err(err).Msg("Date range lookup partially failed")
	}

	FilterTrips(&trips, parameters.DepartWindow)
	AnnotateDurations(trips)

	status := StatusOK
	if err != nil {
		status = StatusFailed
	}

	return tripsResult(trips, status)
}

func (e *Engine) findRoundTrips(ctx context.Context, parameters railmax.SearchParameters) *Result {
	outbound, err := e.Fetcher.Fetch(ctx, parameters.DepartDate, parameters.Origin, "")
	if err != nil {
		log.Warn().Err(err).Msg("Outbound trip lookup failed")

		return &Result{Status: StatusFailed}
	}

	// The inbound day is fetched unscoped - the matcher is what narrows it
	// down to trips returning to the origin
	inbound, err := e.Fetcher.Fetch(ctx, parameters.ReturnDate, "", "")
	if err != nil {
		log.Warn().Err(err).Msg("Inbound trip lookup failed")

		return &Result{Status: StatusFailed}
	}

	roundTrips := railmax.MatchRoundTrips(outbound, inbound)

	sort.SliceStable(roundTrips, func(i, j int) bool {
		return roundTrips[i].Outbound.DepartureTime < roundTrips[j].Outbound.DepartureTime
	})

	FilterRoundTrips(&roundTrips, parameters.DepartWindow, parameters.ReturnWindow)

	result := &Result{RoundTrips: roundTrips, Status: StatusOK}
	if len(roundTrips) == 0 {
		result.Status = StatusEmpty
	}

	return result
}

// AnnotateDurations attaches the formatted journey length to each record.
func AnnotateDurations(trips []railmax.TripRecord) {
	for i := range trips {
		duration, err := railmax.Duration(trips[i].DepartureTime, trips[i].ArrivalTime)
		if err != nil {
			continue
		}

		trips[i].Duration = duration
	}
}

func tripsResult(trips []railmax.TripRecord, status Status) *Result {
	if status == StatusOK && len(trips) == 0 {
		status = StatusEmpty
	}

	return &Result{Trips: trips, Status: status}
}
