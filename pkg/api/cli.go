package api

import (
	"time"

	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/dataaggregator/global"
	"github.com/railmax/railmax/pkg/redis_client"
	"github.com/railmax/railmax/pkg/resultcache"
	"github.com/railmax/railmax/pkg/search"
	"github.com/railmax/railmax/pkg/session"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.IntFlag{
						Name:  "range-workers",
						Value: 1,
						Usage: "concurrent day queries for date range searches",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()

					var probeCache *resultcache.Cache
					var geocodeCache *resultcache.Cache

					if err := redis_client.Connect(); err != nil {
						log.Warn().Err(err).Msg("Redis unavailable, running without memoisation")
					} else {
						probeCache = &resultcache.Cache{}
						probeCache.Setup(1 * time.Hour)

						geocodeCache = &resultcache.Cache{}
						geocodeCache.Setup(24 * time.Hour)
					}

					global.Setup(cfg, geocodeCache)

					engine := search.NewEngine(cfg, probeCache)
					engine.Workers = c.Int("range-workers")

					return SetupServer(c.String("listen"), engine, session.NewStore(), cfg)
				},
			},
		},
	}
}
