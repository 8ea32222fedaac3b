package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/dataaggregator"
	"github.com/railmax/railmax/pkg/dataaggregator/query"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/search"
)

type geoJSONGeometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Geometry   geoJSONGeometry `json:"geometry"`
	Properties fiber.Map       `json:"properties"`
}

type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

// getTripsMap renders a search as GeoJSON: a point per resolvable city and a
// line per trip whose two endpoints both geocoded. Cities that fail to
// geocode are simply left off.
func getTripsMap(engine *search.Engine, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := runStatsSearch(c, engine, cfg)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		type leg struct {
			origin, destination        string
			departureTime, arrivalTime string
		}

		var legs []leg
		for _, trip := range result.Trips {
			legs = append(legs, leg{trip.Origin, trip.Destination, trip.DepartureTime, trip.ArrivalTime})
		}
		for _, roundTrip := range result.RoundTrips {
			outbound := roundTrip.Outbound
			legs = append(legs, leg{outbound.Origin, outbound.Destination, outbound.DepartureTime, outbound.ArrivalTime})
		}

		// One geocoder lookup per distinct city per rendering pass
		cityLocations := map[string]*railmax.Location{}
		for _, leg := range legs {
			for _, city := range []string{leg.origin, leg.destination} {
				if _, seen := cityLocations[city]; seen {
					continue
				}

				location, _ := dataaggregator.Lookup[*railmax.Location](query.CityCoordinates{City: city})
				cityLocations[city] = location
			}
		}

		collection := geoJSONFeatureCollection{Type: "FeatureCollection"}

		for _, leg := range legs {
			originLocation := cityLocations[leg.origin]
			destinationLocation := cityLocations[leg.destination]

			if originLocation == nil || destinationLocation == nil {
				continue
			}

			collection.Features = append(collection.Features, geoJSONFeature{
				Type: "Feature",
				Geometry: geoJSONGeometry{
					Type: "LineString",
					Coordinates: [][]float64{
						{originLocation.Longitude, originLocation.Latitude},
						{destinationLocation.Longitude, destinationLocation.Latitude},
					},
				},
				Properties: fiber.Map{
					"name":           fmt.Sprintf("%s -> %s", leg.origin, leg.destination),
					"departure_time": leg.departureTime,
					"arrival_time":   leg.arrivalTime,
				},
			})
		}

		for city, location := range cityLocations {
			if location == nil {
				continue
			}

			collection.Features = append(collection.Features, geoJSONFeature{
				Type: "Feature",
				Geometry: geoJSONGeometry{
					Type:        "Point",
					Coordinates: []float64{location.Longitude, location.Latitude},
				},
				Properties: fiber.Map{
					"city": city,
				},
			})
		}

		return c.JSON(collection)
	}
}
