package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/search"
)

// renderGrouped reduces a response through sheriff field groups before
// sending it. "?detail=detailed" widens the marshalled field set.
func renderGrouped(c *fiber.Ctx, value any) error {
	groups := []string{"basic"}
	if c.Query("detail") == "detailed" {
		groups = append(groups, "detailed")
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not marshal response",
		})
	}

	return c.JSON(reduced)
}

func parseDateQuery(c *fiber.Ctx, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// parseWindowQuery reads an optional time window from <prefix>_start and
// <prefix>_end. Both must be present for a window to apply.
func parseWindowQuery(c *fiber.Ctx, prefix string) *railmax.TimeWindow {
	start := c.Query(prefix + "_start")
	end := c.Query(prefix + "_end")

	if start == "" || end == "" {
		return nil
	}

	return &railmax.TimeWindow{Start: start, End: end}
}

func parseRefineQuery(c *fiber.Ctx) search.RefineOptions {
	options := search.RefineOptions{
		SortBy:     search.SortKey(c.Query("sort", string(search.SortByDeparture))),
		Descending: c.Query("order") == "desc",
	}

	if maxDurationHours, err := strconv.Atoi(c.Query("max_duration", "0")); err == nil && maxDurationHours > 0 {
		options.MaxDurationMinutes = maxDurationHours * 60
	}

	return options
}
