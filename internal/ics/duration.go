package ics

import (
	"fmt"
	"strings"
	"time"
)

// icalDuration is a DURATION value. Days and weeks are nominal, they follow
// the calendar, while hours, minutes and seconds are exact.
type icalDuration struct {
	days  int
	clock time.Duration
}

func (d icalDuration) addTo(t time.Time) time.Time {
	return t.AddDate(0, 0, d.days).Add(d.clock)
}

// parseDuration reads values such as PT1H30M, P1D, P2W or -PT15M.
func parseDuration(value string) (icalDuration, error) {
	text := strings.ToUpper(strings.TrimSpace(value))

	sign := 1

	switch {
	case strings.HasPrefix(text, "-"):
		sign = -1
		text = text[1:]

	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	if !strings.HasPrefix(text, "P") || len(text) == 1 {
		return icalDuration{},
			fmt.Errorf("duration %q: expected P[n]W or P[n]DT[n]H[n]M[n]S", value)
	}

	var (
		result     icalDuration
		number     int
		digits     int
		isTimePart bool
		components int
	)

	for _, char := range text[1:] {
		if char >= '0' && char <= '9' {
			number = number*10 + int(char-'0')
			digits++

			continue
		}

		if char == 'T' {
			if isTimePart || digits > 0 {
				return icalDuration{},
					fmt.Errorf("duration %q: misplaced T", value)
			}

			isTimePart = true

			continue
		}

		if digits == 0 {
			return icalDuration{},
				fmt.Errorf("duration %q: %c without a number", value, char)
		}

		switch {
		case char == 'W' && !isTimePart:
			result.days = result.days + 7*number

		case char == 'D' && !isTimePart:
			result.days = result.days + number

		case char == 'H' && isTimePart:
			result.clock = result.clock + time.Duration(number)*time.Hour

		case char == 'M' && isTimePart:
			result.clock = result.clock + time.Duration(number)*time.Minute

		case char == 'S' && isTimePart:
			result.clock = result.clock + time.Duration(number)*time.Second

		default:
			return icalDuration{},
				fmt.Errorf("duration %q: unexpected %c", value, char)
		}

		number = 0
		digits = 0
		components++
	}

	if digits > 0 || components == 0 {
		return icalDuration{},
			fmt.Errorf("duration %q: incomplete", value)
	}

	result.days = sign * result.days
	result.clock = time.Duration(sign) * result.clock

	return result,
		nil
}
