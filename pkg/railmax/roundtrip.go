package railmax

// A RoundTrip pairs an outbound trip with an inbound trip whose endpoints are
// the reverse of the outbound's. The three duration fields are attached when
// the pair is built.
type RoundTrip struct {
	Outbound TripRecord `groups:"basic" json:"outbound"`
	Inbound  TripRecord `groups:"basic" json:"inbound"`

	OutboundDuration string `groups:"basic" json:"outbound_duration"`
	InboundDuration  string `groups:"basic" json:"inbound_duration"`
	TotalDuration    string `groups:"basic" json:"total_duration"`

	TotalMinutes int `groups:"detailed" json:"total_minutes"`
}

type endpointPair struct {
	origin      string
	destination string
}

// MatchRoundTrips builds every (outbound, inbound) pair satisfying the
// reversed-endpoint relation. Inbound trips are indexed by endpoint pair so
// matching is linear, but output order is exactly that of the naive nested
// loop: outbound-major, inbound insertion order within each outbound.
func MatchRoundTrips(outbound []TripRecord, inbound []TripRecord) []RoundTrip {
	inboundByEndpoints := map[endpointPair][]TripRecord{}
	for _, trip := range inbound {
		key := endpointPair{origin: trip.Origin, destination: trip.Destination}
		inboundByEndpoints[key] = append(inboundByEndpoints[key], trip)
	}

	var roundTrips []RoundTrip

	for _, outboundTrip := range outbound {
		reversed := endpointPair{origin: outboundTrip.Destination, destination: outboundTrip.Origin}

		for _, inboundTrip := range inboundByEndpoints[reversed] {
			outboundMinutes, err := DurationMinutes(outboundTrip.DepartureTime, outboundTrip.ArrivalTime)
			if err != nil {
				continue
			}

			inboundMinutes, err := DurationMinutes(inboundTrip.DepartureTime, inboundTrip.ArrivalTime)
			if err != nil {
				continue
			}

			totalMinutes := outboundMinutes + inboundMinutes

			roundTrips = append(roundTrips, RoundTrip{
				Outbound: outboundTrip,
				Inbound:  inboundTrip,

				OutboundDuration: FormatDurationMinutes(outboundMinutes),
				InboundDuration:  FormatDurationMinutes(inboundMinutes),
				TotalDuration:    FormatDurationMinutes(totalMinutes),

				TotalMinutes: totalMinutes,
			})
		}
	}

	return roundTrips
}
