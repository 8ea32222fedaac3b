package railmax

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// DurationMinutes returns end minus start in minutes, modulo 24 hours. An end
// clock at or before the start is taken as crossing midnight and wraps, so
// 23:50 -> 00:10 is 20 minutes. Equal clocks are 0 minutes, not a full day.
func DurationMinutes(start string, end string) (int, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return 0, err
	}

	endMinutes, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	return ((endMinutes-startMinutes)%minutesPerDay + minutesPerDay) % minutesPerDay, nil
}

// FormatDurationMinutes renders a minute count as "<H>h<MM>", eg "2h15".
func FormatDurationMinutes(minutes int) string {
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

// Duration formats the elapsed time between two HH:MM clocks.
func Duration(start string, end string) (string, error) {
	minutes, err := DurationMinutes(start, end)
	if err != nil {
		return "", err
	}

	return FormatDurationMinutes(minutes), nil
}

// ParseDurationMinutes reads a formatted duration back into minutes. Both the
// "<H>h<MM>" form and a bare minute count ("45") are accepted.
func ParseDurationMinutes(value string) (int, error) {
	if !strings.Contains(value, "h") {
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", value)
		}

		return minutes, nil
	}

	parts := strings.SplitN(value, "h", 2)

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}

	minutes := 0
	if parts[1] != "" {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
	}

	return hours*60 + minutes, nil
}
