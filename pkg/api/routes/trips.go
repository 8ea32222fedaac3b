package routes

import (
	"errors"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/search"
	"github.com/railmax/railmax/pkg/stats"
	"github.com/railmax/railmax/pkg/util"

	iso8601 "github.com/senseyeio/duration"
)

func TripsRouter(router fiber.Router, engine *search.Engine, cfg *config.Config) {
	router.Get("/", getTrips(engine, cfg))
	router.Get("/range", getTripsRange(engine, cfg))
	router.Get("/destinations", getDestinations(engine, cfg))
	router.Get("/latest_date", getLatestDate(engine))
	router.Get("/stats", getTripsStats(engine, cfg))
	router.Get("/map", getTripsMap(engine, cfg))
}

type tripsResponse struct {
	Status search.Status        `groups:"basic" json:"status"`
	Trips  []railmax.TripRecord `groups:"basic" json:"trips"`
}

func getTrips(engine *search.Engine, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, found := parseDateQuery(c, "date")
		if !found {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date must be a YYYY-MM-DD date",
			})
		}

		result, err := engine.FindTrips(c.Context(), railmax.SearchParameters{
			Mode: railmax.SearchModeSingle,

			Origin:      c.Query("origin", cfg.DefaultOrigin),
			Destination: c.Query("destination"),

			DepartDate:   date,
			DepartWindow: parseWindowQuery(c, "window"),
		})

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return renderGrouped(c, tripsResponse{
			Status: result.Status,
			Trips:  search.RefineTrips(result.Trips, parseRefineQuery(c)),
		})
	}
}

func getTripsRange(engine *search.Engine, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate, found := parseDateQuery(c, "start_date")
		if !found {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter start_date must be a YYYY-MM-DD date",
			})
		}

		days, err := parseRangeDays(c, cfg)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		result, err := engine.FindTrips(c.Context(), railmax.SearchParameters{
			Mode: railmax.SearchModeDateRange,

			Origin:      c.Query("origin"),
			Destination: c.Query("destination"),

			DepartDate:   startDate,
			DepartWindow: parseWindowQuery(c, "window"),

			RangeDays: days,
		})

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return renderGrouped(c, tripsResponse{
			Status: result.Status,
			Trips:  search.RefineTrips(result.Trips, parseRefineQuery(c)),
		})
	}
}

// parseRangeDays accepts either days=<n> or an ISO8601 period=P<n>D, clamped
// to the configured maximum.
func parseRangeDays(c *fiber.Ctx, cfg *config.Config) (int, error) {
	days := cfg.DefaultRangeDays

	if periodString := c.Query("period"); periodString != "" {
		period, err := iso8601.ParseISO8601(periodString)
		if err != nil {
			return 0, err
		}

		days = period.W*7 + period.D
	} else if daysString := c.Query("days"); daysString != "" {
		parsed, err := strconv.Atoi(daysString)
		if err != nil {
			return 0, err
		}

		days = parsed
	}

	if days > cfg.MaxRangeDays {
		days = cfg.MaxRangeDays
	}

	return days, nil
}

func getDestinations(engine *search.Engine, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, found := parseDateQuery(c, "date")
		if !found {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date must be a YYYY-MM-DD date",
			})
		}

		result, err := engine.FindTrips(c.Context(), railmax.SearchParameters{
			Mode: railmax.SearchModeSingle,

			Origin:     c.Query("origin", cfg.DefaultOrigin),
			DepartDate: date,
		})

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var destinations []string
		for _, trip := range result.Trips {
			destinations = append(destinations, trip.Destination)
		}
		destinations = util.RemoveDuplicateStrings(destinations, []string{})
		sort.Strings(destinations)

		return c.JSON(fiber.Map{
			"status":       result.Status,
			"destinations": destinations,
		})
	}
}

func getLatestDate(engine *search.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		latestDate, err := engine.LatestAvailableDate(c.Context())
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Could not probe the latest available date",
			})
		}

		return c.JSON(fiber.Map{
			"latest_date": latestDate.Format("2006-01-02"),
		})
	}
}

func getTripsStats(engine *search.Engine, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := runStatsSearch(c, engine, cfg)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var statistics *stats.Statistics
		if len(result.RoundTrips) > 0 {
			statistics = stats.ForRoundTrips(result.RoundTrips)
		} else {
			statistics = stats.ForTrips(result.Trips)
		}

		type statsResponse struct {
			Status     search.Status     `groups:"basic" json:"status"`
			Statistics *stats.Statistics `groups:"basic,detailed" json:"statistics"`

			Destinations          []stats.DestinationSummary          `groups:"detailed" json:"destinations,omitempty"`
			RoundTripDestinations []stats.RoundTripDestinationSummary `groups:"detailed" json:"round_trip_destinations,omitempty"`
		}

		response := statsResponse{
			Status:     result.Status,
			Statistics: statistics,
		}
		if len(result.RoundTrips) > 0 {
			response.RoundTripDestinations = stats.GroupRoundTripsByDestination(result.RoundTrips)
		} else {
			response.Destinations = stats.GroupByDestination(result.Trips)
		}

		return renderGrouped(c, response)
	}
}

// runStatsSearch rebuilds the search a stats or map request refers to:
// return_date selects round-trip mode, days/period date-range mode, anything
// else a single-day search.
func runStatsSearch(c *fiber.Ctx, engine *search.Engine, cfg *config.Config) (*search.Result, error) {
	date, found := parseDateQuery(c, "date")
	if !found {
		return nil, errors.New("parameter date must be a YYYY-MM-DD date")
	}

	parameters := railmax.SearchParameters{
		Mode: railmax.SearchModeSingle,

		Origin:      c.Query("origin", cfg.DefaultOrigin),
		Destination: c.Query("destination"),

		DepartDate:   date,
		DepartWindow: parseWindowQuery(c, "window"),
	}

	if returnDate, found := parseDateQuery(c, "return_date"); found {
		parameters.Mode = railmax.SearchModeRoundTrip
		parameters.ReturnDate = returnDate
		parameters.ReturnWindow = parseWindowQuery(c, "return_window")
	} else if c.Query("days") != "" || c.Query("period") != "" {
		days, err := parseRangeDays(c, cfg)
		if err != nil {
			return nil, err
		}

		parameters.Mode = railmax.SearchModeDateRange
		parameters.RangeDays = days
	}

	return engine.FindTrips(c.Context(), parameters)
}
