package railmax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchRoundTrips(t *testing.T) {
	outbound := []TripRecord{
		{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01", DepartureTime: "08:00", ArrivalTime: "10:00"},
	}
	inbound := []TripRecord{
		{Origin: "LYON", Destination: "PARIS", Date: "2024-06-03", DepartureTime: "18:00", ArrivalTime: "20:05"},
		{Origin: "LYON", Destination: "MARSEILLE", Date: "2024-06-03", DepartureTime: "18:30", ArrivalTime: "20:00"},
	}

	roundTrips := MatchRoundTrips(outbound, inbound)

	require.Len(t, roundTrips, 1)
	require.Equal(t, "LYON", roundTrips[0].Inbound.Origin)
	require.Equal(t, "PARIS", roundTrips[0].Inbound.Destination)
	require.Equal(t, "2h00", roundTrips[0].OutboundDuration)
	require.Equal(t, "2h05", roundTrips[0].InboundDuration)
	require.Equal(t, "4h05", roundTrips[0].TotalDuration)
	require.Equal(t, 245, roundTrips[0].TotalMinutes)
}

// The output must be the full cross product over the reversal relation, in
// nested-loop order: outbound-major, then inbound insertion order.
func TestMatchRoundTripsCrossProductOrder(t *testing.T) {
	outbound := []TripRecord{
		{Origin: "PARIS", Destination: "LYON", DepartureTime: "08:00", ArrivalTime: "10:00"},
		{Origin: "PARIS", Destination: "LYON", DepartureTime: "12:00", ArrivalTime: "14:00"},
	}
	inbound := []TripRecord{
		{Origin: "LYON", Destination: "PARIS", DepartureTime: "17:00", ArrivalTime: "19:00"},
		{Origin: "LYON", Destination: "PARIS", DepartureTime: "19:00", ArrivalTime: "21:00"},
	}

	roundTrips := MatchRoundTrips(outbound, inbound)

	require.Len(t, roundTrips, 4)

	var order [][2]string
	for _, roundTrip := range roundTrips {
		order = append(order, [2]string{roundTrip.Outbound.DepartureTime, roundTrip.Inbound.DepartureTime})
	}

	require.Equal(t, [][2]string{
		{"08:00", "17:00"},
		{"08:00", "19:00"},
		{"12:00", "17:00"},
		{"12:00", "19:00"},
	}, order)
}

func TestMatchRoundTripsNoMatches(t *testing.T) {
	outbound := []TripRecord{
		{Origin: "PARIS", Destination: "LYON", DepartureTime: "08:00", ArrivalTime: "10:00"},
	}
	inbound := []TripRecord{
		{Origin: "MARSEILLE", Destination: "PARIS", DepartureTime: "18:00", ArrivalTime: "21:00"},
	}

	require.Empty(t, MatchRoundTrips(outbound, inbound))
	require.Empty(t, MatchRoundTrips(nil, inbound))
	require.Empty(t, MatchRoundTrips(outbound, nil))
}

// An inbound leg arriving past midnight wraps rather than producing a
// negative duration.
func TestMatchRoundTripsOvernightLeg(t *testing.T) {
	outbound := []TripRecord{
		{Origin: "PARIS", Destination: "NICE", DepartureTime: "18:00", ArrivalTime: "23:30"},
	}
	inbound := []TripRecord{
		{Origin: "NICE", Destination: "PARIS", DepartureTime: "23:50", ArrivalTime: "05:20"},
	}

	roundTrips := MatchRoundTrips(outbound, inbound)

	require.Len(t, roundTrips, 1)
	require.Equal(t, "5h30", roundTrips[0].OutboundDuration)
	require.Equal(t, "5h30", roundTrips[0].InboundDuration)
	require.Equal(t, "11h00", roundTrips[0].TotalDuration)
}
