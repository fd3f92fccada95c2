package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/TudorHulban/meetings"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel = "info"
	defaultTimezone = "UTC"

	dateLayout = "2006-01-02"
)

// EventConfig is one inline event of the day. Exactly one of End or a positive
// Duration is given.
type EventConfig struct {
	Title     string   `yaml:"title"`
	Start     string   `yaml:"start"`
	End       string   `yaml:"end,omitempty"`
	Duration  int      `yaml:"duration,omitempty"`
	Attendees []string `yaml:"attendees"`
}

type RequestConfig struct {
	Duration  int      `yaml:"duration"`
	Attendees []string `yaml:"attendees"`
	Optional  []string `yaml:"optional"`
}

// ICSConfig points to a calendar file whose events of Date are imported.
type ICSConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Config struct {
	LogLevel string `yaml:"log_level"`

	// Timezone maps calendar instants to minutes of day.
	Timezone string `yaml:"timezone"`

	// Date selects the day imported from ICS sources, as YYYY-MM-DD.
	Date string `yaml:"date"`

	Request RequestConfig `yaml:"request"`
	Events  []EventConfig `yaml:"events"`
	ICS     []ICSConfig   `yaml:"ics"`
}

func (c *Config) Normalize() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}

	if c.Events == nil {
		c.Events = []EventConfig{}
	}

	if c.ICS == nil {
		c.ICS = []ICSConfig{}
	}
}

func Parse(data []byte) (*Config, error) {
	var result Config

	if errUnmarshal := yaml.Unmarshal(data, &result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("parse config: %w", errUnmarshal)
	}

	result.Normalize()

	return &result,
		nil
}

func Load(path string) (*Config, error) {
	if path == "" {
		return nil,
			errors.New("config path is empty")
	}

	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil,
			fmt.Errorf("load config: %w", errRead)
	}

	return Parse(data)
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Day returns midnight of Date in the configured timezone.
func (c *Config) Day() (time.Time, error) {
	location, errLocation := c.Location()
	if errLocation != nil {
		return time.Time{},
			fmt.Errorf("timezone %q: %w", c.Timezone, errLocation)
	}

	if c.Date == "" {
		now := time.Now().In(location)

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location),
			nil
	}

	return time.ParseInLocation(dateLayout, c.Date, location)
}

func (c *Config) MeetingRequest() (*meetings.MeetingRequest, error) {
	return meetings.NewMeetingRequest(
		&meetings.ParamsNewMeetingRequest{
			Attendees:         c.Request.Attendees,
			OptionalAttendees: c.Request.Optional,
			Duration:          c.Request.Duration,
		},
	)
}

func (e *EventConfig) isValid() error {
	if e.End == "" && e.Duration <= 0 {
		return goerrors.ErrValidation{
			Caller: "EventConfig",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Duration",
				InputValue: e.Duration,
				Issue:      errors.New("event needs an end or a positive duration"),
			},
		}
	}

	if e.End != "" && e.Duration != 0 {
		return goerrors.ErrValidation{
			Caller: "EventConfig",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "End",
				InputValue: e.End,
				Issue:      errors.New("event sets both end and duration"),
			},
		}
	}

	return nil
}

func (e *EventConfig) timeRange() (meetings.TimeRange, error) {
	if errValidation := e.isValid(); errValidation != nil {
		return meetings.None,
			errValidation
	}

	start, errStart := ParseClock(e.Start)
	if errStart != nil {
		return meetings.None,
			errStart
	}

	if e.End == "" {
		return meetings.NewTimeRangeStartDuration(start, e.Duration)
	}

	end, errEnd := ParseClock(e.End)
	if errEnd != nil {
		return meetings.None,
			errEnd
	}

	return meetings.NewTimeRangeStartEnd(start, end, false)
}

func (c *Config) InlineEvents() ([]*meetings.Event, error) {
	result := make([]*meetings.Event, 0, len(c.Events))

	for ix, eventConfig := range c.Events {
		when, errRange := eventConfig.timeRange()
		if errRange != nil {
			return nil,
				fmt.Errorf("event %d (%s): %w", ix+1, eventConfig.Title, errRange)
		}

		event, errCr := meetings.NewEvent(
			&meetings.ParamsNewEvent{
				Title:     eventConfig.Title,
				When:      when,
				Attendees: eventConfig.Attendees,
			},
		)
		if errCr != nil {
			return nil,
				fmt.Errorf("event %d (%s): %w", ix+1, eventConfig.Title, errCr)
		}

		result = append(result, event)
	}

	return result,
		nil
}
