package meetings

import "slices"

// Merge returns the minimal sorted sequence of non-overlapping ranges
// covering the same minutes as intervals. Touching ranges are joined.
func Merge(intervals []TimeRange) TimeRanges {
	if len(intervals) == 0 {
		return TimeRanges{}
	}

	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, CompareByStart)

	result := make(TimeRanges, 0, len(sorted))

	currentStart := sorted[0].Start()
	currentEnd := sorted[0].End()

	for _, interval := range sorted[1:] {
		if interval.Start() <= currentEnd {
			currentEnd = max(currentEnd, interval.End())

			continue
		}

		result = append(result, rangeStartEnd(currentStart, currentEnd))

		currentStart = interval.Start()
		currentEnd = interval.End()
	}

	return append(result, rangeStartEnd(currentStart, currentEnd))
}

// Complement returns the free gaps of the day around busy, which must be
// sorted and merged. Gaps shorter than minDuration are dropped.
func Complement(busy []TimeRange, minDuration int) TimeRanges {
	result := make(TimeRanges, 0, len(busy)+1)

	addIfLongEnough := func(start, end int) {
		if end-start >= minDuration {
			result = append(result, rangeStartEnd(start, end))
		}
	}

	currentStart := StartOfDay

	for _, interval := range busy {
		if interval.Start() > currentStart {
			addIfLongEnough(currentStart, interval.Start())
		}

		currentStart = max(currentStart, interval.End())
	}

	if currentStart <= EndOfDay {
		addIfLongEnough(currentStart, EndOfDay+1)
	}

	return result
}

// Intersect returns the common parts of a and b, both sorted and merged,
// keeping only those at least minDuration long.
func Intersect(a, b []TimeRange, minDuration int) TimeRanges {
	result := make(TimeRanges, 0, min(len(a), len(b)))

	var i, j int

	for i < len(a) && j < len(b) {
		start := max(a[i].Start(), b[j].Start())
		end := min(a[i].End(), b[j].End())

		if end > start && end-start >= minDuration {
			result = append(result, rangeStartEnd(start, end))
		}

		switch {
		case a[i].End() < b[j].End():
			i++

		case a[i].End() > b[j].End():
			j++

		default:
			i++
			j++
		}
	}

	return result
}
