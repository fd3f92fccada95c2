package meetings

import (
	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Event is an existing entry of the day. It is read only once built.
type Event struct {
	title     string
	when      TimeRange
	attendees Attendees
}

type ParamsNewEvent struct {
	Title     string `valid:"required"`
	When      TimeRange
	Attendees []string
}

func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if params == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrNilInput{
					InputName: "ParamsNewEvent",
				},
			}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Meetings",
				Caller:      "NewEvent",
				Issue:       errValidation,
			}
	}

	if !WholeDay.Contains(params.When) {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "When",
					InputValue: params.When.String(),
				},
			}
	}

	return &Event{
			title:     params.Title,
			when:      params.When,
			attendees: NewAttendees(params.Attendees...),
		},
		nil
}

func (e *Event) Title() string {
	return e.title
}

func (e *Event) When() TimeRange {
	return e.when
}

func (e *Event) Attendees() Attendees {
	return e.attendees.Clone()
}

func (e *Event) isAttendedByAnyOf(attendees Attendees) bool {
	return e.attendees.Overlaps(attendees)
}

func (e *Event) String() string {
	return e.title + " " + e.when.String() + " " + e.attendees.String()
}
