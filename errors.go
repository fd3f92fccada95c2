package meetings

import "fmt"

// ErrInvalidRange is returned when a range would end before it starts.
type ErrInvalidRange struct {
	Caller string
	Start  int
	End    int
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf(
		"%s: invalid range, end %d is before start %d",

		e.Caller,
		e.End,
		e.Start,
	)
}
