package search

import (
	"context"
	"fmt"
	"time"

	"github.com/kr/pretty"
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/dataaggregator/global"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	dateFlag := &cli.StringFlag{
		Name:     "date",
		Usage:    "departure date (YYYY-MM-DD)",
		Required: true,
	}
	originFlag := &cli.StringFlag{
		Name:  "origin",
		Usage: "origin city",
	}
	destinationFlag := &cli.StringFlag{
		Name:  "destination",
		Usage: "destination city",
	}
	windowStartFlag := &cli.StringFlag{
		Name:  "window-start",
		Usage: "earliest departure (HH:MM)",
	}
	windowEndFlag := &cli.StringFlag{
		Name:  "window-end",
		Usage: "latest departure (HH:MM)",
	}
	debugFlag := &cli.BoolFlag{
		Name:  "debug",
		Usage: "dump the raw search result",
	}

	return &cli.Command{
		Name:  "search",
		Usage: "Search for TGV Max trips from the terminal",
		Subcommands: []*cli.Command{
			{
				Name:  "single",
				Usage: "all trips from an origin on one date",
				Flags: []cli.Flag{dateFlag, originFlag, destinationFlag, windowStartFlag, windowEndFlag, debugFlag},
				Action: func(c *cli.Context) error {
					engine, cfg, err := setupEngine()
					if err != nil {
						return err
					}

					date, err := time.Parse("2006-01-02", c.String("date"))
					if err != nil {
						return err
					}

					result, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
						Mode: railmax.SearchModeSingle,

						Origin:      stringOrDefault(c.String("origin"), cfg.DefaultOrigin),
						Destination: c.String("destination"),

						DepartDate:   date,
						DepartWindow: windowFromFlags(c),
					})
					if err != nil {
						return err
					}

					printResult(c, result)

					return nil
				},
			},
			{
				Name:  "roundtrip",
				Usage: "matched outbound and return trips",
				Flags: []cli.Flag{
					dateFlag, originFlag, windowStartFlag, windowEndFlag, debugFlag,
					&cli.StringFlag{
						Name:     "return-date",
						Usage:    "return date (YYYY-MM-DD)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					engine, cfg, err := setupEngine()
					if err != nil {
						return err
					}

					departDate, err := time.Parse("2006-01-02", c.String("date"))
					if err != nil {
						return err
					}
					returnDate, err := time.Parse("2006-01-02", c.String("return-date"))
					if err != nil {
						return err
					}

					result, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
						Mode: railmax.SearchModeRoundTrip,

						Origin: stringOrDefault(c.String("origin"), cfg.DefaultOrigin),

						DepartDate: departDate,
						ReturnDate: returnDate,

						DepartWindow: windowFromFlags(c),
					})
					if err != nil {
						return err
					}

					printResult(c, result)

					return nil
				},
			},
			{
				Name:  "range",
				Usage: "trips over a range of consecutive dates",
				Flags: []cli.Flag{
					dateFlag, originFlag, destinationFlag, windowStartFlag, windowEndFlag, debugFlag,
					&cli.IntFlag{
						Name:  "days",
						Value: 3,
						Usage: "number of days to explore",
					},
				},
				Action: func(c *cli.Context) error {
					engine, _, err := setupEngine()
					if err != nil {
						return err
					}

					date, err := time.Parse("2006-01-02", c.String("date"))
					if err != nil {
						return err
					}

					trips, err := engine.AggregateRange(context.Background(), date, c.Int("days"), c.String("origin"), c.String("destination"),
						func(day time.Time, batch []railmax.TripRecord, completed int, total int) {
							fmt.Printf("%s: %d trips (%d/%d days)\n", day.Format("2006-01-02"), len(batch), completed, total)
						})
					if err != nil {
						return err
					}

					FilterTrips(&trips, windowFromFlags(c))
					AnnotateDurations(trips)

					printResult(c, tripsResult(trips, StatusOK))

					return nil
				},
			},
			{
				Name:  "latest-date",
				Usage: "most future date the data source has trips for",
				Action: func(c *cli.Context) error {
					engine, _, err := setupEngine()
					if err != nil {
						return err
					}

					latestDate, err := engine.LatestAvailableDate(context.Background())
					if err != nil {
						return err
					}

					fmt.Println(latestDate.Format("2006-01-02"))

					return nil
				},
			},
		},
	}
}

func setupEngine() (*Engine, *config.Config, error) {
	cfg := config.Load()
	global.Setup(cfg, nil)

	return NewEngine(cfg, nil), cfg, nil
}

func windowFromFlags(c *cli.Context) *railmax.TimeWindow {
	start := c.String("window-start")
	end := c.String("window-end")

	if start == "" || end == "" {
		return nil
	}

	return &railmax.TimeWindow{Start: start, End: end}
}

func stringOrDefault(value string, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func printResult(c *cli.Context, result *Result) {
	if c.Bool("debug") {
		pretty.Println(result)

		return
	}

	for _, trip := range result.Trips {
		fmt.Printf("%s  %s -> %s  %s - %s  (%s)\n", trip.Date, trip.Origin, trip.Destination, trip.DepartureTime, trip.ArrivalTime, trip.Duration)
	}
	for _, roundTrip := range result.RoundTrips {
		fmt.Printf("%s -> %s  out %s - %s (%s)  back %s - %s (%s)  total %s\n",
			roundTrip.Outbound.Origin, roundTrip.Outbound.Destination,
			roundTrip.Outbound.DepartureTime, roundTrip.Outbound.ArrivalTime, roundTrip.OutboundDuration,
			roundTrip.Inbound.DepartureTime, roundTrip.Inbound.ArrivalTime, roundTrip.InboundDuration,
			roundTrip.TotalDuration)
	}

	if len(result.Trips) == 0 && len(result.RoundTrips) == 0 {
		fmt.Printf("no trips found (%s)\n", result.Status)
	}
}
