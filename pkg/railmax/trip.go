package railmax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A TripRecord is one scheduled TGV Max journey between two stations on one
// date. Records carry no identity beyond their field values - the upstream
// dataset can and does contain duplicates and we do not deduplicate them.
type TripRecord struct {
	Origin      string `groups:"basic" json:"origin"`
	Destination string `groups:"basic" json:"destination"`

	Date string `groups:"basic" json:"date"` // YYYY-MM-DD

	DepartureTime string `groups:"basic" json:"departure_time"` // HH:MM
	ArrivalTime   string `groups:"basic" json:"arrival_time"`   // HH:MM

	// Duration is the formatted journey length ("2h15"), attached once a
	// record leaves the search pipeline.
	Duration string `groups:"basic" json:"duration,omitempty"`
}

var ErrInvalidClock = errors.New("clock value is not a valid HH:MM time")

// ParseClock converts an "HH:MM" string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidClock
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrInvalidClock
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidClock
	}

	return hours*60 + minutes, nil
}

// Valid reports whether both clock fields parse and both endpoints are set.
// Records failing this are skipped at import rather than aborting a query.
func (t *TripRecord) Valid() bool {
	if t.Origin == "" || t.Destination == "" {
		return false
	}

	if _, err := ParseClock(t.DepartureTime); err != nil {
		return false
	}
	if _, err := ParseClock(t.ArrivalTime); err != nil {
		return false
	}

	return true
}

func (t *TripRecord) String() string {
	return fmt.Sprintf("%s %s %s -> %s %s", t.Date, t.DepartureTime, t.Origin, t.Destination, t.ArrivalTime)
}
