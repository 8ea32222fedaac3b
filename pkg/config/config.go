package config

import (
	"os"
	"strconv"
	"time"

	"github.com/railmax/railmax/pkg/util"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultBookingHorizonDays = 30
	defaultReferenceOrigin    = "PARIS"

	defaultWindowStart = "06:00"
	defaultWindowEnd   = "22:00"

	defaultMaxRangeDays = 7
	defaultRangeDays    = 3
)

// Config carries the search defaults and service endpoints. Values come from
// built-in defaults, then an optional YAML file, then RAILMAX_* environment
// variables, each layer overriding the previous one.
type Config struct {
	MinDate time.Time `yaml:"-"`
	MaxDate time.Time `yaml:"-"`

	MinDateString string `yaml:"min_date"`
	MaxDateString string `yaml:"max_date"`

	// ReferenceOrigin is a station that always has service, used by the
	// latest-available-date probe.
	ReferenceOrigin string `yaml:"reference_origin"`
	DefaultOrigin   string `yaml:"default_origin"`

	DefaultWindowStart string `yaml:"default_window_start"`
	DefaultWindowEnd   string `yaml:"default_window_end"`

	MaxRangeDays     int `yaml:"max_range_days"`
	DefaultRangeDays int `yaml:"default_range_days"`

	SNCFEndpoint     string `yaml:"sncf_endpoint"`
	GeocoderEndpoint string `yaml:"geocoder_endpoint"`
}

func Load() *Config {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	config := &Config{
		MinDate: today,
		MaxDate: today.AddDate(0, 0, defaultBookingHorizonDays),

		ReferenceOrigin: defaultReferenceOrigin,
		DefaultOrigin:   defaultReferenceOrigin,

		DefaultWindowStart: defaultWindowStart,
		DefaultWindowEnd:   defaultWindowEnd,

		MaxRangeDays:     defaultMaxRangeDays,
		DefaultRangeDays: defaultRangeDays,
	}

	env := util.GetEnvironmentVariables()

	if configPath := env["RAILMAX_CONFIG"]; configPath != "" {
		fileBytes, err := os.ReadFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("Failed to read config file")
		}

		if err := yaml.Unmarshal(fileBytes, config); err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("Failed to parse config file")
		}
	}

	if env["RAILMAX_MIN_DATE"] != "" {
		config.MinDateString = env["RAILMAX_MIN_DATE"]
	}
	if env["RAILMAX_MAX_DATE"] != "" {
		config.MaxDateString = env["RAILMAX_MAX_DATE"]
	}
	if env["RAILMAX_REFERENCE_ORIGIN"] != "" {
		config.ReferenceOrigin = env["RAILMAX_REFERENCE_ORIGIN"]
	}
	if env["RAILMAX_DEFAULT_ORIGIN"] != "" {
		config.DefaultOrigin = env["RAILMAX_DEFAULT_ORIGIN"]
	}
	if env["RAILMAX_SNCF_ENDPOINT"] != "" {
		config.SNCFEndpoint = env["RAILMAX_SNCF_ENDPOINT"]
	}
	if env["RAILMAX_GEOCODER_ENDPOINT"] != "" {
		config.GeocoderEndpoint = env["RAILMAX_GEOCODER_ENDPOINT"]
	}
	if env["RAILMAX_MAX_RANGE_DAYS"] != "" {
		if days, err := strconv.Atoi(env["RAILMAX_MAX_RANGE_DAYS"]); err == nil {
			config.MaxRangeDays = days
		}
	}

	if config.MinDateString != "" {
		if date, err := time.Parse("2006-01-02", config.MinDateString); err == nil {
			config.MinDate = date
		} else {
			log.Fatal().Err(err).Msg("Invalid min_date")
		}
	}
	if config.MaxDateString != "" {
		if date, err := time.Parse("2006-01-02", config.MaxDateString); err == nil {
			config.MaxDate = date
		} else {
			log.Fatal().Err(err).Msg("Invalid max_date")
		}
	}

	return config
}
