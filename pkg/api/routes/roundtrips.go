package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/search"
)

func RoundTripsRouter(router fiber.Router, engine *search.Engine, cfg *config.Config) {
	router.Get("/", getRoundTrips(engine, cfg))
}

type roundTripsResponse struct {
	Status     search.Status       `groups:"basic" json:"status"`
	RoundTrips []railmax.RoundTrip `groups:"basic" json:"round_trips"`
}

func getRoundTrips(engine *search.Engine, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		departDate, found := parseDateQuery(c, "depart_date")
		if !found {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter depart_date must be a YYYY-MM-DD date",
			})
		}

		returnDate, found := parseDateQuery(c, "return_date")
		if !found {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter return_date must be a YYYY-MM-DD date",
			})
		}

		result, err := engine.FindTrips(c.Context(), railmax.SearchParameters{
			Mode: railmax.SearchModeRoundTrip,

			Origin: c.Query("origin", cfg.DefaultOrigin),

			DepartDate: departDate,
			ReturnDate: returnDate,

			DepartWindow: parseWindowQuery(c, "window"),
			ReturnWindow: parseWindowQuery(c, "return_window"),
		})

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return renderGrouped(c, roundTripsResponse{
			Status:     result.Status,
			RoundTrips: search.RefineRoundTrips(result.RoundTrips, parseRefineQuery(c)),
		})
	}
}
