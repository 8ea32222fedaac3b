package stats

import (
	"github.com/railmax/railmax/pkg/railmax"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Statistics summarises a result set: the numbers behind the "statistics"
// view of the original UI.
type Statistics struct {
	TripCount        int `groups:"basic" json:"trip_count"`
	DestinationCount int `groups:"basic" json:"destination_count"`

	MeanDuration string `groups:"basic" json:"mean_duration"`

	EarliestDeparture string `groups:"basic" json:"earliest_departure"`
	LatestDeparture   string `groups:"basic" json:"latest_departure"`

	BusiestDestination      string `groups:"basic" json:"busiest_destination"`
	BusiestDestinationTrips int    `groups:"basic" json:"busiest_destination_trips"`

	// DeparturesByHour[h] counts departures in hour h of the day
	DeparturesByHour [24]int `groups:"detailed" json:"departures_by_hour"`
}

// DestinationSummary groups a result set's trips under one destination.
type DestinationSummary struct {
	Destination string               `groups:"basic" json:"destination"`
	Trips       []railmax.TripRecord `groups:"basic" json:"trips"`
}

// RoundTripDestinationSummary groups matched pairs under the outbound
// destination.
type RoundTripDestinationSummary struct {
	Destination string              `groups:"basic" json:"destination"`
	RoundTrips  []railmax.RoundTrip `groups:"basic" json:"round_trips"`
}

func ForTrips(trips []railmax.TripRecord) *Statistics {
	statistics := &Statistics{TripCount: len(trips)}

	durationTotal := 0
	durationCount := 0
	destinationCounts := map[string]int{}

	for _, trip := range trips {
		observe(statistics, destinationCounts, trip.Destination, trip.DepartureTime)

		if minutes, err := railmax.DurationMinutes(trip.DepartureTime, trip.ArrivalTime); err == nil {
			durationTotal += minutes
			durationCount += 1
		}
	}

	finalise(statistics, destinationCounts, durationTotal, durationCount)

	return statistics
}

func ForRoundTrips(roundTrips []railmax.RoundTrip) *Statistics {
	statistics := &Statistics{TripCount: len(roundTrips)}

	durationTotal := 0
	durationCount := 0
	destinationCounts := map[string]int{}

	for _, roundTrip := range roundTrips {
		observe(statistics, destinationCounts, roundTrip.Outbound.Destination, roundTrip.Outbound.DepartureTime)

		durationTotal += roundTrip.TotalMinutes
		durationCount += 1
	}

	finalise(statistics, destinationCounts, durationTotal, durationCount)

	return statistics
}

// GroupByDestination splits trips into per-destination groups, sorted by
// destination name.
func GroupByDestination(trips []railmax.TripRecord) []DestinationSummary {
	grouped := map[string][]railmax.TripRecord{}
	for _, trip := range trips {
		grouped[trip.Destination] = append(grouped[trip.Destination], trip)
	}

	destinations := maps.Keys(grouped)
	slices.Sort(destinations)

	var summaries []DestinationSummary
	for _, destination := range destinations {
		summaries = append(summaries, DestinationSummary{
			Destination: destination,
			Trips:       grouped[destination],
		})
	}

	return summaries
}

// GroupRoundTripsByDestination splits matched pairs into per-destination
// groups keyed on the outbound destination, sorted by destination name.
func GroupRoundTripsByDestination(roundTrips []railmax.RoundTrip) []RoundTripDestinationSummary {
	grouped := map[string][]railmax.RoundTrip{}
	for _, roundTrip := range roundTrips {
		grouped[roundTrip.Outbound.Destination] = append(grouped[roundTrip.Outbound.Destination], roundTrip)
	}

	destinations := maps.Keys(grouped)
	slices.Sort(destinations)

	var summaries []RoundTripDestinationSummary
	for _, destination := range destinations {
		summaries = append(summaries, RoundTripDestinationSummary{
			Destination: destination,
			RoundTrips:  grouped[destination],
		})
	}

	return summaries
}

func observe(statistics *Statistics, destinationCounts map[string]int, destination string, departure string) {
	destinationCounts[destination] += 1

	if statistics.EarliestDeparture == "" || departure < statistics.EarliestDeparture {
		statistics.EarliestDeparture = departure
	}
	if departure > statistics.LatestDeparture {
		statistics.LatestDeparture = departure
	}

	if minutes, err := railmax.ParseClock(departure); err == nil {
		statistics.DeparturesByHour[minutes/60] += 1
	}
}

func finalise(statistics *Statistics, destinationCounts map[string]int, durationTotal int, durationCount int) {
	statistics.DestinationCount = len(destinationCounts)

	for destination, count := range destinationCounts {
		if count > statistics.BusiestDestinationTrips ||
			(count == statistics.BusiestDestinationTrips && destination < statistics.BusiestDestination) {
			statistics.BusiestDestination = destination
			statistics.BusiestDestinationTrips = count
		}
	}

	if durationCount > 0 {
		statistics.MeanDuration = railmax.FormatDurationMinutes(durationTotal / durationCount)
	}
}
