package meetings

import (
	"fmt"
	"strings"
)

// TimeRanges is an ordered sequence of ranges as returned by Query.
type TimeRanges []TimeRange

func (ranges TimeRanges) TotalDuration() int {
	var result int

	for _, r := range ranges {
		result = result + r.Duration()
	}

	return result
}

func (ranges TimeRanges) Equal(other TimeRanges) bool {
	if len(ranges) != len(other) {
		return false
	}

	for ix := range ranges {
		if !ranges[ix].Equal(other[ix]) {
			return false
		}
	}

	return true
}

func (ranges TimeRanges) String() string {
	var sb strings.Builder

	sb.WriteString("[")

	for i, r := range ranges {
		sb.WriteString(r.String())

		if i < len(ranges)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteString("]")

	return sb.String()
}

// Clock renders one range per line with its length in minutes.
func (ranges TimeRanges) Clock() string {
	var sb strings.Builder

	for _, r := range ranges {
		sb.WriteString(
			fmt.Sprintf(
				"%s (%d min)\n",

				r.Clock(),
				r.Duration(),
			),
		)
	}

	return sb.String()
}
