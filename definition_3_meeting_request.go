package meetings

import (
	goerrors "github.com/TudorHulban/go-errors"
)

// MeetingRequest describes the meeting to fit into the day.
// Duration may exceed a day, such a request simply has no slots.
type MeetingRequest struct {
	attendees         Attendees
	optionalAttendees Attendees

	duration int
}

type ParamsNewMeetingRequest struct {
	Attendees         []string
	OptionalAttendees []string

	Duration int
}

func NewMeetingRequest(params *ParamsNewMeetingRequest) (*MeetingRequest, error) {
	if params == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewMeetingRequest",
				Issue: goerrors.ErrNilInput{
					InputName: "ParamsNewMeetingRequest",
				},
			}
	}

	if params.Duration < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewMeetingRequest",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Duration",
				},
			}
	}

	return &MeetingRequest{
			attendees:         NewAttendees(params.Attendees...),
			optionalAttendees: NewAttendees(params.OptionalAttendees...),

			duration: params.Duration,
		},
		nil
}

func (r *MeetingRequest) Duration() int {
	return r.duration
}

func (r *MeetingRequest) Attendees() Attendees {
	return r.attendees.Clone()
}

func (r *MeetingRequest) OptionalAttendees() Attendees {
	return r.optionalAttendees.Clone()
}
