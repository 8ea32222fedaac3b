package search

import (
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/util"
)

// FilterTrips keeps only trips whose departure falls inside the window. A nil
// window keeps everything.
func FilterTrips(trips *[]railmax.TripRecord, window *railmax.TimeWindow) {
	if window == nil {
		return
	}

	util.InPlaceFilter(trips, func(trip railmax.TripRecord) bool {
		return window.Contains(trip.DepartureTime)
	})
}

// FilterRoundTrips keeps only pairs where the outbound leg passes the
// departure window and, when a return window is given, the inbound leg passes
// it too.
func FilterRoundTrips(roundTrips *[]railmax.RoundTrip, departWindow *railmax.TimeWindow, returnWindow *railmax.TimeWindow) {
	if departWindow == nil && returnWindow == nil {
		return
	}

	util.InPlaceFilter(roundTrips, func(roundTrip railmax.RoundTrip) bool {
		if departWindow != nil && !departWindow.Contains(roundTrip.Outbound.DepartureTime) {
			return false
		}

		if returnWindow != nil && !returnWindow.Contains(roundTrip.Inbound.DepartureTime) {
			return false
		}

		return true
	})
}
