package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/railmax/railmax/pkg/config"
	"github.com/railmax/railmax/pkg/railmax"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	Date        string
	Origin      string
	Destination string
}

// stubFetcher serves canned trips keyed by date and can be told to fail for
// specific dates.
type stubFetcher struct {
	mutex sync.Mutex

	trips   map[string][]railmax.TripRecord
	failing map[string]bool

	calls []fetchCall
}

func (s *stubFetcher) Fetch(ctx context.Context, date time.Time, origin string, destination string) ([]railmax.TripRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := date.Format("2006-01-02")

	s.calls = append(s.calls, fetchCall{Date: key, Origin: origin, Destination: destination})

	if s.failing[key] {
		return nil, errors.New("connection refused")
	}

	return s.trips[key], nil
}

func newTestEngine(fetcher TripFetcher) *Engine {
	return &Engine{
		Fetcher: fetcher,
		Config: &config.Config{
			MinDate:         date("2024-06-01"),
			MaxDate:         date("2024-06-30"),
			ReferenceOrigin: "PARIS",
		},
		Workers: 1,
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestFindTripsSingle(t *testing.T) {
	fetcher := &stubFetcher{
		trips: map[string][]railmax.TripRecord{
			"2024-06-01": {
				{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01", DepartureTime: "08:00", ArrivalTime: "10:00"},
				{Origin: "PARIS", Destination: "NICE", Date: "2024-06-01", DepartureTime: "05:00", ArrivalTime: "11:00"},
				{Origin: "PARIS", Destination: "LILLE", Date: "2024-06-01", DepartureTime: "09:30", ArrivalTime: "10:30"},
			},
		},
	}
	engine := newTestEngine(fetcher)

	result, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:         railmax.SearchModeSingle,
		Origin:       "paris",
		DepartDate:   date("2024-06-01"),
		DepartWindow: &railmax.TimeWindow{Start: "08:00", End: "12:00"},
	})

	require.NoError(t, err)
	require.Equal(t, StatusOK, result.Status)

	expected := []railmax.TripRecord{
		{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01", DepartureTime: "08:00", ArrivalTime: "10:00", Duration: "2h00"},
		{Origin: "PARIS", Destination: "LILLE", Date: "2024-06-01", DepartureTime: "09:30", ArrivalTime: "10:30", Duration: "1h00"},
	}
	if diff := cmp.Diff(expected, result.Trips); diff != "" {
		t.Errorf("trips mismatch (-expected +got):\n%s", diff)
	}

	// City names are normalised to the dataset's upper-case form
	require.Equal(t, "PARIS", fetcher.calls[0].Origin)
}

func TestFindTripsSingleEmptyVsFailed(t *testing.T) {
	engine := newTestEngine(&stubFetcher{})

	result, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:       railmax.SearchModeSingle,
		Origin:     "PARIS",
		DepartDate: date("2024-06-01"),
	})
	require.NoError(t, err)
	require.Equal(t, StatusEmpty, result.Status)

	engine = newTestEngine(&stubFetcher{failing: map[string]bool{"2024-06-01": true}})

	result, err = engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:       railmax.SearchModeSingle,
		Origin:     "PARIS",
		DepartDate: date("2024-06-01"),
	})
	require.NoError(t, err)
	require.Equal(t, StatusFailed, result.Status)
	require.Empty(t, result.Trips)
}

func TestFindTripsInvalidParameters(t *testing.T) {
	engine := newTestEngine(&stubFetcher{})

	_, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:       railmax.SearchModeSingle,
		DepartDate: date("2024-06-01"),
	})
	require.Error(t, err)

	_, err = engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:         railmax.SearchModeSingle,
		Origin:       "PARIS",
		DepartDate:   date("2024-06-01"),
		DepartWindow: &railmax.TimeWindow{Start: "22:00", End: "06:00"},
	})
	require.Error(t, err)

	_, err = engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:       railmax.SearchModeRoundTrip,
		Origin:     "PARIS",
		DepartDate: date("2024-06-05"),
		ReturnDate: date("2024-06-01"),
	})
	require.Error(t, err)
}

func TestFindTripsRoundTrip(t *testing.T) {
	fetcher := &stubFetcher{
		trips: map[string][]railmax.TripRecord{
			"2024-06-01": {
				{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01", DepartureTime: "10:00", ArrivalTime: "12:00"},
				{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01", DepartureTime: "07:00", ArrivalTime: "09:00"},
			},
			"2024-06-03": {
				{Origin: "LYON", Destination: "PARIS", Date: "2024-06-03", DepartureTime: "18:00", ArrivalTime: "20:00"},
				{Origin: "LYON", Destination: "MARSEILLE", Date: "2024-06-03", DepartureTime: "18:30", ArrivalTime: "20:00"},
			},
		},
	}
	engine := newTestEngine(fetcher)

	result, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:         railmax.SearchModeRoundTrip,
		Origin:       "PARIS",
		DepartDate:   date("2024-06-01"),
		ReturnDate:   date("2024-06-03"),
		DepartWindow: &railmax.TimeWindow{Start: "06:00", End: "22:00"},
		ReturnWindow: &railmax.TimeWindow{Start: "17:00", End: "22:00"},
	})

	require.NoError(t, err)
	require.Equal(t, StatusOK, result.Status)
	require.Len(t, result.RoundTrips, 2)

	// Sorted by outbound departure even though the fetcher returned the
	// later trip first
	require.Equal(t, "07:00", result.RoundTrips[0].Outbound.DepartureTime)
	require.Equal(t, "10:00", result.RoundTrips[1].Outbound.DepartureTime)

	// The outbound day is scoped to the origin, the inbound day is fetched
	// unscoped
	require.Equal(t, fetchCall{Date: "2024-06-01", Origin: "PARIS"}, fetcher.calls[0])
	require.Equal(t, fetchCall{Date: "2024-06-03"}, fetcher.calls[1])
}

func TestFindTripsRoundTripReturnWindowExcludes(t *testing.T) {
	fetcher := &stubFetcher{
		trips: map[string][]railmax.TripRecord{
			"2024-06-01": {{Origin: "PARIS", Destination: "LYON", DepartureTime: "08:00", ArrivalTime: "10:00"}},
			"2024-06-02": {{Origin: "LYON", Destination: "PARIS", DepartureTime: "09:00", ArrivalTime: "11:00"}},
		},
	}
	engine := newTestEngine(fetcher)

	result, err := engine.FindTrips(context.Background(), railmax.SearchParameters{
		Mode:         railmax.SearchModeRoundTrip,
		Origin:       "PARIS",
		DepartDate:   date("2024-06-01"),
		ReturnDate:   date("2024-06-02"),
		ReturnWindow: &railmax.TimeWindow{Start: "17:00", End: "22:00"},
	})

	require.NoError(t, err)
	require.Equal(t, StatusEmpty, result.Status)
	require.Empty(t, result.RoundTrips)
}
