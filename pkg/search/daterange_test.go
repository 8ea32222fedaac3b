package search

import (
	"context"
	"testing"
	"time"

	"github.com/railmax/railmax/pkg/railmax"
	"github.com/stretchr/testify/require"
)

func TestAggregateRange(t *testing.T) {
	fetcher := &stubFetcher{
		trips: map[string][]railmax.TripRecord{
			"2024-06-01": {{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01"}},
			"2024-06-02": {
				{Origin: "PARIS", Destination: "NICE", Date: "2024-06-02"},
				{Origin: "PARIS", Destination: "LILLE", Date: "2024-06-02"},
			},
		},
	}
	engine := newTestEngine(fetcher)

	trips, err := engine.AggregateRange(context.Background(), date("2024-06-01"), 3, "PARIS", "", nil)

	require.NoError(t, err)
	require.Len(t, trips, 3)
	require.Len(t, fetcher.calls, 3)

	// One query per day, concatenated in date order
	require.Equal(t, []fetchCall{
		{Date: "2024-06-01", Origin: "PARIS"},
		{Date: "2024-06-02", Origin: "PARIS"},
		{Date: "2024-06-03", Origin: "PARIS"},
	}, fetcher.calls)
	require.Equal(t, "2024-06-01", trips[0].Date)
	require.Equal(t, "2024-06-02", trips[1].Date)
}

func TestAggregateRangeZeroDays(t *testing.T) {
	fetcher := &stubFetcher{}
	engine := newTestEngine(fetcher)

	trips, err := engine.AggregateRange(context.Background(), date("2024-06-01"), 0, "PARIS", "", nil)

	require.NoError(t, err)
	require.Empty(t, trips)
	require.Empty(t, fetcher.calls)
}

func TestAggregateRangePartialFailure(t *testing.T) {
	fetcher := &stubFetcher{
		trips: map[string][]railmax.TripRecord{
			"2024-06-01": {{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01"}},
			"2024-06-03": {{Origin: "PARIS", Destination: "NICE", Date: "2024-06-03"}},
		},
		failing: map[string]bool{"2024-06-02": true},
	}
	engine := newTestEngine(fetcher)

	trips, err := engine.AggregateRange(context.Background(), date("2024-06-01"), 3, "PARIS", "", nil)

	// The failed day contributes nothing but the other days still come back
	require.Error(t, err)
	require.Len(t, trips, 2)
	require.Equal(t, "2024-06-01", trips[0].Date)
	require.Equal(t, "2024-06-03", trips[1].Date)
}

func TestAggregateRangeProgress(t *testing.T) {
	fetcher := &stubFetcher{
		trips: map[string][]railmax.TripRecord{
			"2024-06-02": {{Origin: "PARIS", Destination: "LYON", Date: "2024-06-02"}},
		},
	}
	engine := newTestEngine(fetcher)

	var batchSizes []int
	var completions []int

	_, err := engine.AggregateRange(context.Background(), date("2024-06-01"), 2, "PARIS", "", func(day time.Time, batch []railmax.TripRecord, completed int, total int) {
		batchSizes = append(batchSizes, len(batch))
		completions = append(completions, completed)
		require.Equal(t, 2, total)
	})

	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, batchSizes)
	require.Equal(t, []int{1, 2}, completions)
}

func TestAggregateRangeParallelKeepsDateOrder(t *testing.T) {
	fetcher := &stubFetcher{trips: map[string][]railmax.TripRecord{}}
	for day := 0; day < 5; day += 1 {
		key := date("2024-06-01").AddDate(0, 0, day).Format("2006-01-02")
		fetcher.trips[key] = []railmax.TripRecord{{Origin: "PARIS", Destination: "LYON", Date: key}}
	}

	engine := newTestEngine(fetcher)
	engine.Workers = 3

	trips, err := engine.AggregateRange(context.Background(), date("2024-06-01"), 5, "PARIS", "", nil)

	require.NoError(t, err)
	require.Len(t, trips, 5)
	for day := 0; day < 5; day += 1 {
		expected := date("2024-06-01").AddDate(0, 0, day).Format("2006-01-02")
		require.Equal(t, expected, trips[day].Date)
	}
}
