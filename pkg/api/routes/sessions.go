package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/session"
)

func SessionsRouter(router fiber.Router, sessions *session.Store) {
	router.Post("/", createSession(sessions))
	router.Get("/:id", getSession(sessions))
	router.Get("/:id/favourites", getFavourites(sessions))
	router.Post("/:id/favourites", addFavourite(sessions))
	router.Delete("/:id/favourites", removeFavourite(sessions))
	router.Post("/:id/theme", toggleTheme(sessions))
}

func createSession(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := sessions.Create()

		c.SendStatus(fiber.StatusCreated)
		return renderGrouped(c, state)
	}
}

func getSession(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, found := sessions.Get(c.Params("id"))
		if !found {
			return sessionNotFound(c)
		}

		return renderGrouped(c, state)
	}
}

func getFavourites(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, found := sessions.Get(c.Params("id"))
		if !found {
			return sessionNotFound(c)
		}

		return c.JSON(fiber.Map{
			"favourites": state.Favourites,
		})
	}
}

func addFavourite(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		favourite, err := parseFavouriteBody(c)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		added, found := sessions.AddFavourite(c.Params("id"), favourite)
		if !found {
			return sessionNotFound(c)
		}

		state, _ := sessions.Get(c.Params("id"))

		return c.JSON(fiber.Map{
			"added":      added,
			"favourites": state.Favourites,
		})
	}
}

func removeFavourite(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		favourite, err := parseFavouriteBody(c)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		removed, found := sessions.RemoveFavourite(c.Params("id"), favourite)
		if !found {
			return sessionNotFound(c)
		}

		state, _ := sessions.Get(c.Params("id"))

		return c.JSON(fiber.Map{
			"removed":    removed,
			"favourites": state.Favourites,
		})
	}
}

func toggleTheme(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		theme, found := sessions.ToggleTheme(c.Params("id"))
		if !found {
			return sessionNotFound(c)
		}

		return c.JSON(fiber.Map{
			"theme": theme,
		})
	}
}

func parseFavouriteBody(c *fiber.Ctx) (railmax.Favourite, error) {
	var favourite railmax.Favourite
	if err := c.BodyParser(&favourite); err != nil {
		return railmax.Favourite{}, err
	}

	return favourite, nil
}

func sessionNotFound(c *fiber.Ctx) error {
	c.SendStatus(fiber.StatusNotFound)
	return c.JSON(fiber.Map{
		"error": "Could not find a session matching that identifier",
	})
}
