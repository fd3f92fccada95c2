package ics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/TudorHulban/meetings"
	appLog "github.com/TudorHulban/meetings/internal/log"
)

const (
	dateLayout = "20060102"
	mailto     = "mailto:"
)

type ParamsReadDay struct {
	// Day is any instant of the wanted date, its location maps
	// event instants to minutes of day.
	Day time.Time

	SourceName string
	Logger     *zap.Logger
}

func (p *ParamsReadDay) bounds() (time.Time, time.Time) {
	dayStart := time.Date(p.Day.Year(), p.Day.Month(), p.Day.Day(), 0, 0, 0, 0, p.Day.Location())

	return dayStart,
		dayStart.AddDate(0, 0, 1)
}

// ReadDay returns the events of the calendar that take time on the given day,
// clipped to it. Recurrence rules are not expanded, only the first occurrence counts.
// Cancelled and transparent events do not take time.
func ReadDay(r io.Reader, params *ParamsReadDay) ([]*meetings.Event, error) {
	if params == nil {
		return nil,
			errors.New("read day: nil params")
	}

	logger := appLog.OrNop(params.Logger).With(zap.String("source", params.SourceName))

	calendar, errParse := ical.ParseCalendar(r)
	if errParse != nil {
		return nil,
			fmt.Errorf("parse calendar %s: %w", params.SourceName, errParse)
	}

	dayStart, dayEnd := params.bounds()

	result := make([]*meetings.Event, 0)

	for _, vevent := range calendar.Events() {
		event, errConvert := convertEvent(vevent, dayStart, dayEnd)
		if errConvert != nil {
			logger.Warn(
				"skipping calendar event",
				zap.String("uid", propertyValue(vevent, ical.ComponentPropertyUniqueId)),
				zap.Error(errConvert),
			)

			continue
		}

		if event == nil {
			continue
		}

		if propertyValue(vevent, ical.ComponentPropertyRrule) != "" {
			logger.Debug(
				"recurrence not expanded",
				zap.String("title", event.Title()),
			)
		}

		result = append(result, event)
	}

	logger.Debug(
		"calendar read",
		zap.Int("events", len(result)),
		zap.Time("day", dayStart),
	)

	return result,
		nil
}

func ReadDayFile(path string, params *ParamsReadDay) ([]*meetings.Event, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("open calendar: %w", errOpen)
	}
	defer f.Close()

	if params == nil || params.SourceName != "" {
		return ReadDay(f, params)
	}

	named := *params
	named.SourceName = path

	return ReadDay(f, &named)
}

// convertEvent returns nil without error when the event does not take time on the day.
func convertEvent(vevent *ical.VEvent, dayStart, dayEnd time.Time) (*meetings.Event, error) {
	if strings.EqualFold(propertyValue(vevent, ical.ComponentPropertyStatus), "CANCELLED") ||
		strings.EqualFold(propertyValue(vevent, ical.ComponentPropertyTransp), "TRANSPARENT") {
		return nil, nil
	}

	start, end, errSpan := eventSpan(vevent, dayStart.Location())
	if errSpan != nil {
		return nil, errSpan
	}

	if !start.Before(dayEnd) || !end.After(dayStart) || !end.After(start) {
		return nil, nil
	}

	when, errRange := meetings.NewTimeRangeStartEnd(
		minuteOfDay(maxTime(start, dayStart), dayStart, false),
		minuteOfDay(minTime(end, dayEnd), dayStart, true),
		false,
	)
	if errRange != nil {
		return nil, errRange
	}

	return meetings.NewEvent(
		&meetings.ParamsNewEvent{
			Title:     title(vevent),
			When:      when,
			Attendees: attendees(vevent),
		},
	)
}

func eventSpan(vevent *ical.VEvent, location *time.Location) (time.Time, time.Time, error) {
	dtStart := vevent.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return time.Time{}, time.Time{},
			errors.New("missing DTSTART")
	}

	dateOnly := isDateOnly(dtStart)

	var start time.Time

	if dateOnly {
		parsed, errStart := time.ParseInLocation(dateLayout, dtStart.Value, location)
		if errStart != nil {
			return time.Time{}, time.Time{},
				fmt.Errorf("all day DTSTART: %w", errStart)
		}

		start = parsed
	} else {
		parsed, errStart := vevent.GetStartAt()
		if errStart != nil {
			return time.Time{}, time.Time{},
				fmt.Errorf("DTSTART: %w", errStart)
		}

		start = parsed
	}

	end, errEnd := eventEnd(vevent, start, dateOnly, location)
	if errEnd != nil {
		return time.Time{}, time.Time{},
			errEnd
	}

	return start, end,
		nil
}

// eventEnd reads DTEND, else DURATION. Without either an all day event lasts
// one day and a timed one has no length.
func eventEnd(vevent *ical.VEvent, start time.Time, dateOnly bool, location *time.Location) (time.Time, error) {
	if dtEnd := vevent.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
		if dateOnly {
			parsed, errEnd := time.ParseInLocation(dateLayout, dtEnd.Value, location)
			if errEnd != nil {
				return time.Time{},
					fmt.Errorf("all day DTEND: %w", errEnd)
			}

			return parsed,
				nil
		}

		parsed, errEnd := vevent.GetEndAt()
		if errEnd != nil {
			return time.Time{},
				fmt.Errorf("DTEND: %w", errEnd)
		}

		return parsed,
			nil
	}

	if value := propertyValue(vevent, ical.ComponentPropertyDuration); value != "" {
		length, errDuration := parseDuration(value)
		if errDuration != nil {
			return time.Time{},
				errDuration
		}

		return length.addTo(start),
			nil
	}

	if dateOnly {
		return start.AddDate(0, 0, 1),
			nil
	}

	return start,
		nil
}

func isDateOnly(property *ical.IANAProperty) bool {
	if values, exists := property.ICalParameters["VALUE"]; exists && len(values) > 0 &&
		strings.EqualFold(values[0], "DATE") {
		return true
	}

	return !strings.Contains(property.Value, "T")
}

// minuteOfDay rounds up when roundUp is set so partial minutes stay busy.
func minuteOfDay(at, dayStart time.Time, roundUp bool) int {
	elapsed := at.Sub(dayStart)

	result := int(elapsed / time.Minute)

	if roundUp && elapsed%time.Minute != 0 {
		result++
	}

	return min(result, meetings.EndOfDay+1)
}

func title(vevent *ical.VEvent) string {
	if summary := strings.TrimSpace(propertyValue(vevent, ical.ComponentPropertySummary)); summary != "" {
		return summary
	}

	if uid := propertyValue(vevent, ical.ComponentPropertyUniqueId); uid != "" {
		return uid
	}

	return "busy"
}

func attendees(vevent *ical.VEvent) []string {
	properties := vevent.GetProperties(ical.ComponentPropertyAttendee)

	result := make([]string, 0, len(properties)+1)

	if organizer := vevent.GetProperty(ical.ComponentPropertyOrganizer); organizer != nil {
		result = append(result, address(organizer.Value))
	}

	for _, property := range properties {
		if strings.EqualFold(firstParameter(property, "PARTSTAT"), "DECLINED") {
			continue
		}

		result = append(result, address(property.Value))
	}

	return result
}

func address(value string) string {
	trimmed := strings.TrimSpace(value)

	if len(trimmed) >= len(mailto) && strings.EqualFold(trimmed[:len(mailto)], mailto) {
		return strings.ToLower(trimmed[len(mailto):])
	}

	return strings.ToLower(trimmed)
}

func firstParameter(property *ical.IANAProperty, name string) string {
	if values, exists := property.ICalParameters[name]; exists && len(values) > 0 {
		return values[0]
	}

	return ""
}

func propertyValue(vevent *ical.VEvent, name ical.ComponentProperty) string {
	if property := vevent.GetProperty(name); property != nil {
		return property.Value
	}

	return ""
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}
