package query

// CityCoordinates asks for the map coordinates of a city by name.
type CityCoordinates struct {
	City string
}
