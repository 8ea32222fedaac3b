package sncftrips

import (
	"context"
	"reflect"

	"github.com/railmax/railmax/pkg/dataaggregator/query"
	"github.com/railmax/railmax/pkg/dataaggregator/source"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/sncf"
)

type Source struct {
	Client *sncf.Client
}

func (s Source) GetName() string {
	return "SNCF Open Data API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]railmax.TripRecord{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Trips:
		return s.Client.Fetch(context.Background(), q.Date, q.Origin, q.Destination)
	default:
		return nil, source.UnsupportedSourceError
	}
}
