package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/railmax/railmax/pkg/railmax"
	"github.com/railmax/railmax/pkg/resultcache"
	"github.com/rs/zerolog/log"
)

const DefaultEndpoint = "https://nominatim.openstreetmap.org/search"

// Geocoder resolves French city names to coordinates through Nominatim.
// Lookups are memoised per city name; failures and timeouts mean "no
// coordinates", never an aborted rendering pass.
type Geocoder struct {
	Endpoint   string
	HTTPClient *http.Client

	Cache *resultcache.Cache
}

func NewGeocoder(endpoint string, cache *resultcache.Cache) *Geocoder {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Geocoder{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Cache: cache,
	}
}

type nominatimResult struct {
	Latitude  string `json:"lat"`
	Longitude string `json:"lon"`
}

// Lookup returns the coordinates for a city, or ok false when the city could
// not be resolved.
func (g *Geocoder) Lookup(ctx context.Context, city string) (railmax.Location, bool) {
	cacheKey := fmt.Sprintf("geocode/%s", city)

	if cached := g.Cache.Get(cacheKey); cached != "" {
		var location railmax.Location
		if err := json.Unmarshal([]byte(cached), &location); err == nil {
			return location, true
		}
	}

	location, ok := g.lookupRemote(ctx, city)
	if !ok {
		return railmax.Location{}, false
	}

	if encoded, err := json.Marshal(location); err == nil {
		g.Cache.Set(cacheKey, string(encoded))
	}

	return location, true
}

func (g *Geocoder) lookupRemote(ctx context.Context, city string) (railmax.Location, bool) {
	requestURL, err := url.Parse(g.Endpoint)
	if err != nil {
		return railmax.Location{}, false
	}

	query := requestURL.Query()
	query.Set("q", fmt.Sprintf("%s, France", city))
	query.Set("format", "json")
	query.Set("limit", "1")
	requestURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL.String(), nil)
	if err != nil {
		return railmax.Location{}, false
	}
	req.Header.Set("user-agent", "railmax")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("Geocoder lookup failed")

		return railmax.Location{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return railmax.Location{}, false
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return railmax.Location{}, false
	}

	latitude, latErr := strconv.ParseFloat(results[0].Latitude, 64)
	longitude, lonErr := strconv.ParseFloat(results[0].Longitude, 64)
	if latErr != nil || lonErr != nil {
		return railmax.Location{}, false
	}

	return railmax.Location{Latitude: latitude, Longitude: longitude}, true
}
