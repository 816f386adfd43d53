package domain

import "time"

// Event colours, one per reminder kind.
const (
	ColorPink   = "pink"
	ColorPurple = "purple"
	ColorBlue   = "blue"
	ColorGray   = "gray"
)

// CalendarEvent is one displayable occurrence of a reminder. Events are
// computed on every request and never persisted.
//
// ID is stable for a given reminder and occurrence, so repeated expansion
// yields identical events.
type CalendarEvent struct {
	ID       string
	Start    time.Time
	End      time.Time
	Title    string
	Color    string
	Reminder Reminder // source row, for detail display only
}
