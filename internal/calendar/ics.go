package calendar

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/rolodex-crm/backend/internal/domain"
)

// uidDomain qualifies event IDs into globally unique iCalendar UIDs.
const uidDomain = "@rolodex-crm"

// WriteICS writes events as a PUBLISH iCalendar feed. Each occurrence is a
// separate VEVENT, so the feed shows exactly what the calendar view shows.
// stamp is used as DTSTAMP for every event.
func WriteICS(w io.Writer, name string, events []domain.CalendarEvent, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//rolodex-crm//reminders//EN")
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID + uidDomain)
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		ve.SetSummary(ev.Title)
		ve.SetProperty(ical.ComponentPropertyCategories, string(ev.Reminder.Kind))
		if ev.Reminder.Message != "" {
			ve.SetDescription(ev.Reminder.Message)
		}
		if !ev.Reminder.CreatedAt.IsZero() {
			ve.SetCreatedTime(ev.Reminder.CreatedAt)
		}
		if !ev.Reminder.UpdatedAt.IsZero() {
			ve.SetModifiedAt(ev.Reminder.UpdatedAt)
		}
	}

	return cal.SerializeTo(w)
}
