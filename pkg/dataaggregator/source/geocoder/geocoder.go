package geocoder

import (
	"context"
	"reflect"

	"github.com/railmax/railmax/pkg/dataaggregator/query"
	"github.com/railmax/railmax/pkg/dataaggregator/source"
	"github.com/railmax/railmax/pkg/geocode"
	"github.com/railmax/railmax/pkg/railmax"
)

type Source struct {
	Geocoder *geocode.Geocoder
}

func (s Source) GetName() string {
	return "Nominatim Geocoder"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(railmax.Location{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.CityCoordinates:
		location, ok := s.Geocoder.Lookup(context.Background(), q.City)
		if !ok {
			// Absent coordinates just mean the city is left off the map
			return nil, nil
		}

		return &location, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
