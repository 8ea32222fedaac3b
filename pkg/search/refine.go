package search

import (
	"sort"

	"github.com/jinzhu/copier"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/util"
	"github.com/rs/zerolog/log"
)

type SortKey string

const (
	SortByDeparture   SortKey = "departure"
	SortByDuration    SortKey = "duration"
	SortByDestination SortKey = "destination"
)

// RefineOptions are the user-chosen presentation filters: a total-duration
// cap and a sort key with direction. Sorts are total orders over the chosen
// key with stable ties in original insertion order.
type RefineOptions struct {
	SortBy     SortKey
	Descending bool

	// MaxDurationMinutes of 0 means no cap
	MaxDurationMinutes int
}

// RefineTrips applies the duration cap and sort to a copy of trips - search
// results are never mutated in place.
func RefineTrips(trips []railmax.TripRecord, options RefineOptions) []railmax.TripRecord {
	var refined []railmax.TripRecord
	if err := copier.Copy(&refined, &trips); err != nil {
		log.Error().Err(err).Msg("Failed to copy trip results")

		return nil
	}

	if options.MaxDurationMinutes > 0 {
		util.InPlaceFilter(&refined, func(trip railmax.TripRecord) bool {
			minutes, err := railmax.ParseDurationMinutes(trip.Duration)

			return err == nil && minutes <= options.MaxDurationMinutes
		})
	}

	less := tripLess(refined, options.SortBy)
	if options.Descending {
		ascending := less
		less = func(i, j int) bool { return ascending(j, i) }
	}
	sort.SliceStable(refined, less)

	return refined
}

// RefineRoundTrips is RefineTrips for matched pairs; the cap and duration
// sort use the pair's total duration, the destination sort the outbound
// destination.
func RefineRoundTrips(roundTrips []railmax.RoundTrip, options RefineOptions) []railmax.RoundTrip {
	var refined []railmax.RoundTrip
	if err := copier.Copy(&refined, &roundTrips); err != nil {
		log.Error().Err(err).Msg("Failed to copy round trip results")

		return nil
	}

	if options.MaxDurationMinutes > 0 {
		util.InPlaceFilter(&refined, func(roundTrip railmax.RoundTrip) bool {
			return roundTrip.TotalMinutes <= options.MaxDurationMinutes
		})
	}

	less := roundTripLess(refined, options.SortBy)
	if options.Descending {
		ascending := less
		less = func(i, j int) bool { return ascending(j, i) }
	}
	sort.SliceStable(refined, less)

	return refined
}

func tripLess(trips []railmax.TripRecord, key SortKey) func(i, j int) bool {
	switch key {
	case SortByDuration:
		return func(i, j int) bool {
			iMinutes, _ := railmax.ParseDurationMinutes(trips[i].Duration)
			jMinutes, _ := railmax.ParseDurationMinutes(trips[j].Duration)

			return iMinutes < jMinutes
		}
	case SortByDestination:
		return func(i, j int) bool {
			return trips[i].Destination < trips[j].Destination
		}
	default:
		return func(i, j int) bool {
			return trips[i].DepartureTime < trips[j].DepartureTime
		}
	}
}

func roundTripLess(roundTrips []railmax.RoundTrip, key SortKey) func(i, j int) bool {
	switch key {
	case SortByDuration:
		return func(i, j int) bool {
			return roundTrips[i].TotalMinutes < roundTrips[j].TotalMinutes
		}
	case SortByDestination:
		return func(i, j int) bool {
			return roundTrips[i].Outbound.Destination < roundTrips[j].Outbound.Destination
		}
	default:
		return func(i, j int) bool {
			return roundTrips[i].Outbound.DepartureTime < roundTrips[j].Outbound.DepartureTime
		}
	}
}
