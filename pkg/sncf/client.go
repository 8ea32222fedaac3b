package sncf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the SNCF open-data records API for the tgvmax dataset.
const DefaultEndpoint = "https://ressources.data.sncf.com/api/explore/v2.1/catalog/datasets/tgvmax/records"

const pageSize = 100

// Client queries the SNCF open-data API for TGV-Max-eligible trips. Transient
// transport failures are retried a handful of times with exponential backoff
// before the error is returned to the caller.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client

	MaxRetries uint64
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		MaxRetries: 3,
	}
}

type recordsResponse struct {
	TotalCount int          `json:"total_count"`
	Results    []tripResult `json:"results"`
}

type tripResult struct {
	Date          string `json:"date"`
	Origin        string `json:"origine"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"heure_depart"`
	ArrivalTime   string `json:"heure_arrivee"`
	HappyCard     string `json:"od_happy_card"`
}

// Fetch returns every TGV-Max-eligible trip on the given calendar date,
// optionally scoped to an origin and/or destination city. Rows with malformed
// times or missing endpoints are skipped rather than failing the whole query.
func (c *Client) Fetch(ctx context.Context, date time.Time, origin string, destination string) ([]railmax.TripRecord, error) {
	whereClauses := []string{
		fmt.Sprintf(`date="%s"`, date.Format("2006-01-02")),
		`od_happy_card="OUI"`,
	}
	if origin != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`origine="%s"`, origin))
	}
	if destination != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`destination="%s"`, destination))
	}
	where := strings.Join(whereClauses, " AND ")

	var trips []railmax.TripRecord
	skipped := 0

	for offset := 0; ; offset += pageSize {
		page, err := c.fetchPage(ctx, where, offset)
		if err != nil {
			return nil, err
		}

		for _, result := range page.Results {
			trip := railmax.TripRecord{
				Origin:      result.Origin,
				Destination: result.Destination,

				Date: result.Date,

				DepartureTime: result.DepartureTime,
				ArrivalTime:   result.ArrivalTime,
			}

			if !trip.Valid() {
				skipped += 1
				continue
			}

			trips = append(trips, trip)
		}

		if offset+pageSize >= page.TotalCount || len(page.Results) == 0 {
			break
		}
	}

	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Str("date", date.Format("2006-01-02")).Msg("Skipped malformed trip records")
	}

	return trips, nil
}

func (c *Client) fetchPage(ctx context.Context, where string, offset int) (*recordsResponse, error) {
	requestURL, err := url.Parse(c.Endpoint)
	if err != nil {
		return nil, err
	}

	query := requestURL.Query()
	query.Set("where", where)
	query.Set("limit", strconv.Itoa(pageSize))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("order_by", "heure_depart")
	requestURL.RawQuery = query.Encode()

	var page *recordsResponse

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL.String(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("user-agent", "railmax")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			err = fmt.Errorf("unexpected HTTP status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))

			// Client errors will not fix themselves on retry
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}

			return err
		}

		var decoded recordsResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return err
		}

		page = &decoded

		return nil
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = 250 * time.Millisecond

	err = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(retryBackoff, c.MaxRetries), ctx))
	if err != nil {
		return nil, err
	}

	return page, nil
}
