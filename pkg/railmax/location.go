package railmax

// Location is a WGS84 coordinate pair for a city, resolved by the geocoder.
type Location struct {
	Latitude  float64 `groups:"basic" json:"latitude"`
	Longitude float64 `groups:"basic" json:"longitude"`
}
