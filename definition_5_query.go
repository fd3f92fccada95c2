package meetings

import "slices"

type ResponseQuery struct {
	// Slots are the candidate meeting ranges, sorted by start.
	Slots TimeRanges

	AvailableMandatory TimeRanges
	AvailableOptional  TimeRanges

	// IsFallback is set when no range suits the optional attendees too,
	// Slots then holds the non empty mandatory availability alone.
	IsFallback bool
}

// Query returns the ranges of the day in which every mandatory attendee
// is free for at least the requested duration, narrowed to the ranges where
// the optional attendees are free as well whenever any such range exists.
// Nil entries in events are ignored.
func Query(events []*Event, request *MeetingRequest) TimeRanges {
	return QueryWithDetails(events, request).Slots
}

func QueryWithDetails(events []*Event, request *MeetingRequest) *ResponseQuery {
	if request.duration > WholeDay.Duration() {
		return &ResponseQuery{
			Slots:              TimeRanges{},
			AvailableMandatory: TimeRanges{},
			AvailableOptional:  TimeRanges{},
		}
	}

	mandatoryAttendees := request.attendees
	optionalAttendees := request.optionalAttendees

	// with nobody mandatory the optional attendees are the ones to satisfy.
	if mandatoryAttendees.Len() == 0 {
		mandatoryAttendees = optionalAttendees
		optionalAttendees = Attendees{}
	}

	busyMandatory := make([]TimeRange, 0, len(events))
	busyOptional := make([]TimeRange, 0, len(events))

	for _, event := range events {
		if event == nil {
			continue
		}

		if event.isAttendedByAnyOf(mandatoryAttendees) {
			busyMandatory = append(busyMandatory, event.when)
		}

		if event.isAttendedByAnyOf(optionalAttendees) {
			busyOptional = append(busyOptional, event.when)
		}
	}

	availableMandatory := Complement(Merge(busyMandatory), request.duration)
	availableOptional := Complement(Merge(busyOptional), request.duration)

	slots := Intersect(availableMandatory, availableOptional, request.duration)
	if len(slots) == 0 {
		return &ResponseQuery{
			Slots:              slices.Clone(availableMandatory),
			AvailableMandatory: availableMandatory,
			AvailableOptional:  availableOptional,
			IsFallback:         len(availableMandatory) > 0,
		}
	}

	return &ResponseQuery{
		Slots:              slots,
		AvailableMandatory: availableMandatory,
		AvailableOptional:  availableOptional,
	}
}
