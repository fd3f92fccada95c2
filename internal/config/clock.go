package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TudorHulban/meetings"
)

// ParseClock converts "HH:MM" into minutes of day. "24:00" is accepted
// as the exclusive end of the day.
func ParseClock(value string) (int, error) {
	hours, minutes, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0,
			fmt.Errorf("clock %q: expected HH:MM", value)
	}

	if !isDigits(hours) || !isDigits(minutes) {
		return 0,
			fmt.Errorf("clock %q: expected digits only", value)
	}

	h, errHours := strconv.Atoi(hours)
	if errHours != nil {
		return 0,
			fmt.Errorf("clock %q: hours: %w", value, errHours)
	}

	m, errMinutes := strconv.Atoi(minutes)
	if errMinutes != nil {
		return 0,
			fmt.Errorf("clock %q: minutes: %w", value, errMinutes)
	}

	if m > 59 {
		return 0,
			fmt.Errorf("clock %q: out of range", value)
	}

	result := h*60 + m

	if result > meetings.EndOfDay+1 {
		return 0,
			fmt.Errorf("clock %q: past end of day", value)
	}

	return result,
		nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}

	for _, char := range value {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
