package railmax

import "testing"

func TestTimeWindowContains(t *testing.T) {
	window := TimeWindow{Start: "08:00", End: "12:00"}

	tests := []struct {
		clock    string
		expected bool
	}{
		// Both bounds are inclusive
		{"08:00", true},
		{"12:00", true},
		{"10:30", true},

		{"07:59", false},
		{"12:01", false},
		{"23:00", false},

		{"not-a-time", false},
	}

	for _, tc := range tests {
		if result := window.Contains(tc.clock); result != tc.expected {
			t.Errorf("Contains(%q) = %v, expected %v", tc.clock, result, tc.expected)
		}
	}
}

func TestTimeWindowValid(t *testing.T) {
	tests := []struct {
		window   TimeWindow
		expected bool
	}{
		{TimeWindow{Start: "06:00", End: "22:00"}, true},
		{TimeWindow{Start: "10:00", End: "10:00"}, true},

		// Windows never cross midnight
		{TimeWindow{Start: "22:00", End: "06:00"}, false},
		{TimeWindow{Start: "", End: "22:00"}, false},
		{TimeWindow{Start: "06:00", End: "24:00"}, false},
	}

	for _, tc := range tests {
		if result := tc.window.Valid(); result != tc.expected {
			t.Errorf("TimeWindow{%q, %q}.Valid() = %v, expected %v", tc.window.Start, tc.window.End, result, tc.expected)
		}
	}
}

func TestTripRecordValid(t *testing.T) {
	valid := TripRecord{Origin: "PARIS", Destination: "LYON", Date: "2024-06-01", DepartureTime: "08:00", ArrivalTime: "10:00"}
	if !valid.Valid() {
		t.Error("expected a well-formed record to be valid")
	}

	invalid := []TripRecord{
		{Origin: "", Destination: "LYON", DepartureTime: "08:00", ArrivalTime: "10:00"},
		{Origin: "PARIS", Destination: "", DepartureTime: "08:00", ArrivalTime: "10:00"},
		{Origin: "PARIS", Destination: "LYON", DepartureTime: "26:00", ArrivalTime: "10:00"},
		{Origin: "PARIS", Destination: "LYON", DepartureTime: "08:00", ArrivalTime: ""},
	}
	for index, record := range invalid {
		if record.Valid() {
			t.Errorf("case %d: expected record to be invalid", index)
		}
	}
}
