package meetings

import (
	"slices"
	"strings"
)

// Attendees is a set of attendee identifiers.
type Attendees map[string]struct{}

func NewAttendees(names ...string) Attendees {
	result := make(Attendees, len(names))

	for _, name := range names {
		result[name] = struct{}{}
	}

	return result
}

func (a Attendees) Has(name string) bool {
	_, exists := a[name]

	return exists
}

func (a Attendees) Len() int {
	return len(a)
}

// Overlaps reports whether the two sets share at least one attendee.
func (a Attendees) Overlaps(other Attendees) bool {
	smaller, larger := a, other
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	for name := range smaller {
		if larger.Has(name) {
			return true
		}
	}

	return false
}

func (a Attendees) Union(other Attendees) Attendees {
	result := make(Attendees, len(a)+len(other))

	for name := range a {
		result[name] = struct{}{}
	}

	for name := range other {
		result[name] = struct{}{}
	}

	return result
}

func (a Attendees) Clone() Attendees {
	return a.Union(nil)
}

// Names returns the attendees sorted.
func (a Attendees) Names() []string {
	result := make([]string, 0, len(a))

	for name := range a {
		result = append(result, name)
	}

	slices.Sort(result)

	return result
}

func (a Attendees) String() string {
	return "{" + strings.Join(a.Names(), ", ") + "}"
}
