package meetings

import (
	"cmp"
	"fmt"
)

const (
	StartOfDay = 0
	EndOfDay   = 23*60 + 59

	minutesPerDay = EndOfDay + 1
)

var (
	// WholeDay spans [StartOfDay, EndOfDay] with the end minute included.
	WholeDay = TimeRange{start: StartOfDay, duration: minutesPerDay}

	None = TimeRange{}
)

// TimeRange is a half-open interval [start, start+duration) in minutes of day.
// Zero value equals None.
type TimeRange struct {
	start    int
	duration int
}

func NewTimeRangeStartDuration(start, duration int) (TimeRange, error) {
	if duration < 0 {
		return None,
			ErrInvalidRange{
				Caller: "NewTimeRangeStartDuration",
				Start:  start,
				End:    start + duration,
			}
	}

	return TimeRange{
			start:    start,
			duration: duration,
		},
		nil
}

// NewTimeRangeStartEnd builds the range [start, end), or [start, end] when inclusive.
func NewTimeRangeStartEnd(start, end int, inclusive bool) (TimeRange, error) {
	if end < start {
		return None,
			ErrInvalidRange{
				Caller: "NewTimeRangeStartEnd",
				Start:  start,
				End:    end,
			}
	}

	return TimeRange{
			start:    start,
			duration: end - start + ternary(inclusive, 1, 0),
		},
		nil
}

// rangeStartEnd is used where the bounds are ordered by construction.
func rangeStartEnd(start, end int) TimeRange {
	return TimeRange{
		start:    start,
		duration: end - start,
	}
}

func (r TimeRange) Start() int {
	return r.start
}

// End is exclusive.
func (r TimeRange) End() int {
	return r.start + r.duration
}

func (r TimeRange) Duration() int {
	return r.duration
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.End() && other.start < r.End()
}

// Contains reports whether other lies fully inside r.
// An empty other is contained when its start falls within [start, end].
func (r TimeRange) Contains(other TimeRange) bool {
	return r.start <= other.start && other.End() <= r.End()
}

func (r TimeRange) ContainsPoint(minute int) bool {
	return r.start <= minute && minute < r.End()
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.start == other.start && r.duration == other.duration
}

// CompareByStart orders by start then by end, suitable for slices.SortFunc.
func CompareByStart(a, b TimeRange) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}

	return cmp.Compare(a.End(), b.End())
}

func CompareByEnd(a, b TimeRange) int {
	if c := cmp.Compare(a.End(), b.End()); c != 0 {
		return c
	}

	return cmp.Compare(a.start, b.start)
}

func (r TimeRange) String() string {
	return fmt.Sprintf(
		"Range: [%d, %d)",

		r.start,
		r.End(),
	)
}

// Clock renders the range as wall clock, e.g. 09:00-10:30.
func (r TimeRange) Clock() string {
	return formatMinute(r.start) + "-" + formatMinute(r.End())
}

func formatMinute(minute int) string {
	return fmt.Sprintf(
		"%02d:%02d",

		minute/60,
		minute%60,
	)
}
