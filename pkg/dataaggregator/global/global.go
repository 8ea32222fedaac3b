package global

import (
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/dataaggregator"
	"github.com/railmax/railmax/pkg/dataaggregator/source/geocoder"
	"github.com/railmax/railmax/pkg/dataaggregator/source/sncftrips"
	"github.com/railmax/railmax/pkg/geocode"
	"github.com/railmax/railmax/pkg/resultcache"
	"github.com/railmax/railmax/pkg/sncf"
)

func Setup(cfg *config.Config, geocodeCache *resultcache.Cache) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	dataaggregator.GlobalAggregator.RegisterSource(sncftrips.Source{
		Client: sncf.NewClient(cfg.SNCFEndpoint),
	})

	dataaggregator.GlobalAggregator.RegisterSource(geocoder.Source{
		Geocoder: geocode.NewGeocoder(cfg.GeocoderEndpoint, geocodeCache),
	})
}
