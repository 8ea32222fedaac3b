package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmax/railmax/pkg/api/routes"
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/search"
	"github.com/railmax/railmax/pkg/session"
)

// CreateServer wires up the web app without listening, so tests can drive it
// through fiber's test transport.
func CreateServer(engine *search.Engine, sessions *session.Store, cfg *config.Config) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.TripsRouter(group.Group("/trips"), engine, cfg)
	routes.RoundTripsRouter(group.Group("/roundtrips"), engine, cfg)
	routes.SessionsRouter(group.Group("/sessions"), sessions)

	return webApp
}

func SetupServer(listen string, engine *search.Engine, sessions *session.Store, cfg *config.Config) error {
	return CreateServer(engine, sessions, cfg).Listen(listen)
}
