package railmax

// A Favourite is an origin/destination pair a user has starred. Compared by
// value so the same pair is never stored twice.
type Favourite struct {
	Origin      string `groups:"basic" json:"origin"`
	Destination string `groups:"basic" json:"destination"`
}
