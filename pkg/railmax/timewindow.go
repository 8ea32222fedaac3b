package railmax

// A TimeWindow is an inclusive closed interval of times-of-day used to filter
// departures. Windows never cross midnight - Start must not be later than End.
type TimeWindow struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// Valid reports whether both bounds parse and Start <= End.
func (w *TimeWindow) Valid() bool {
	startMinutes, err := ParseClock(w.Start)
	if err != nil {
		return false
	}

	endMinutes, err := ParseClock(w.End)
	if err != nil {
		return false
	}

	return startMinutes <= endMinutes
}

// Contains reports whether the given HH:MM clock falls within the window.
// Both bounds are inclusive. Unparseable clocks are never contained.
func (w *TimeWindow) Contains(clock string) bool {
	clockMinutes, err := ParseClock(clock)
	if err != nil {
		return false
	}

	startMinutes, err := ParseClock(w.Start)
	if err != nil {
		return false
	}

	endMinutes, err := ParseClock(w.End)
	if err != nil {
		return false
	}

	return clockMinutes >= startMinutes && clockMinutes <= endMinutes
}
