package query

import "time"

// Trips asks for every eligible trip on one calendar date, optionally scoped
// by origin and/or destination city.
type Trips struct {
	Date        time.Time
	Origin      string
	Destination string
}
