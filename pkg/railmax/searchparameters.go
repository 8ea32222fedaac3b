package railmax

import (
	"errors"
	"strings"
	"time"
)

type SearchMode string

const (
	SearchModeSingle    SearchMode = "single"
	SearchModeRoundTrip SearchMode = "round_trip"
	SearchModeDateRange SearchMode = "date_range"
)

// SearchParameters describe one search. They are supplied per call and never
// persisted.
type SearchParameters struct {
	Mode SearchMode

	Origin      string
	Destination string

	DepartDate time.Time
	ReturnDate time.Time

	DepartWindow *TimeWindow
	ReturnWindow *TimeWindow

	RangeDays int
}

// Normalise upper-cases and trims the city names the way the upstream dataset
// stores them.
func (p *SearchParameters) Normalise() {
	p.Origin = strings.ToUpper(strings.TrimSpace(p.Origin))
	p.Destination = strings.ToUpper(strings.TrimSpace(p.Destination))
}

func (p *SearchParameters) Validate() error {
	switch p.Mode {
	case SearchModeSingle:
		if p.Origin == "" {
			return errors.New("single searches require an origin")
		}
	case SearchModeRoundTrip:
		if p.Origin == "" {
			return errors.New("round trip searches require an origin")
		}
		if p.ReturnDate.Before(p.DepartDate) {
			return errors.New("return date must not be before the departure date")
		}
	case SearchModeDateRange:
		if p.Origin == "" {
			return errors.New("date range searches require an origin")
		}
	default:
		return errors.New("unknown search mode")
	}

	if p.DepartWindow != nil && !p.DepartWindow.Valid() {
		return errors.New("departure window is invalid")
	}
	if p.ReturnWindow != nil && !p.ReturnWindow.Valid() {
		return errors.New("return window is invalid")
	}

	return nil
}
