// Package calendar turns stored reminders into calendar events.
//
// Expansion is a pure projection: it reads the record and an injected "now",
// and materialises a bounded window of occurrences. Nothing here touches the
// clock, the database or any package-level state, so callers may expand
// different reminders concurrently.
package calendar

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/rolodex-crm/backend/internal/domain"
)

// Window sizes per recurrence rule.
const (
	EventDuration = time.Hour

	yearsBack    = 2
	yearsAhead   = 5
	monthsAhead  = 24
	weeksAhead   = 52
	daysAhead    = 365
	defaultTitle = "%s - %s"

	secondsPerDay = 24 * 60 * 60
)

// Result is the flattened output of ExpandAll.
type Result struct {
	// Events are ordered by start time, then by ID.
	Events []domain.CalendarEvent
	// Skipped lists the IDs of reminders that produced no events,
	// typically because their date could not be parsed.
	Skipped []string
}

// ExpandAll expands every record against the same now and merges the events
// chronologically.
func ExpandAll(records []domain.ReminderRecord, now time.Time) Result {
	res := Result{Events: []domain.CalendarEvent{}}
	for _, rec := range records {
		events := Expand(rec, now)
		if len(events) == 0 {
			res.Skipped = append(res.Skipped, rec.Reminder.ID.String())
			continue
		}
		res.Events = append(res.Events, events...)
	}
	slices.SortStableFunc(res.Events, compareEvents)
	return res
}

// Expand converts one reminder into its calendar events, ordered by start.
//
// All occurrences are built in now's location using the anchor's time of day
// (09:00 when the reminder has no usable send time). A reminder whose date
// cannot be parsed yields no events. Non-recurring reminders, and recurring
// ones with no or an unknown rule, yield exactly one event at the anchor.
func Expand(rec domain.ReminderRecord, now time.Time) []domain.CalendarEvent {
	r := rec.Reminder
	year, month, day, ok := domain.ParseReminderDate(r.Date)
	if !ok {
		return nil
	}
	hour, minute := domain.SendTimeOrDefault(r.SendTime)
	loc := now.Location()
	anchor := time.Date(year, month, day, hour, minute, 0, 0, loc)

	b := builder{rec: rec, title: Title(rec), color: ColorFor(r.Kind)}

	if !r.IsRecurring {
		return b.single(anchor)
	}
	switch r.Rule {
	case domain.EveryYear:
		return b.yearly(anchor, now)
	case domain.EveryMonth:
		return b.monthly(anchor, now)
	case domain.EveryWeek:
		return b.weekly(anchor, now)
	case domain.EveryDay:
		return b.daily(anchor, now)
	default:
		return b.single(anchor)
	}
}

// Title renders "{contact} - {kind}" with ": {message}" appended when the
// reminder has a message.
func Title(rec domain.ReminderRecord) string {
	name := rec.ContactName
	if name == "" {
		name = domain.UnknownContactName
	}
	title := fmt.Sprintf(defaultTitle, name, rec.Reminder.Kind)
	if rec.Reminder.Message != "" {
		title += ": " + rec.Reminder.Message
	}
	return title
}

// ColorFor maps a reminder kind to its event colour.
func ColorFor(kind domain.ReminderKind) string {
	switch kind {
	case domain.KindBirthday:
		return domain.ColorPink
	case domain.KindAnniversary:
		return domain.ColorPurple
	case domain.KindEvent:
		return domain.ColorBlue
	default:
		return domain.ColorGray
	}
}

type builder struct {
	rec   domain.ReminderRecord
	title string
	color string
}

func (b builder) event(id string, start time.Time) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:       id,
		Start:    start,
		End:      start.Add(EventDuration),
		Title:    b.title,
		Color:    b.color,
		Reminder: b.rec.Reminder,
	}
}

func (b builder) occurrenceID(start time.Time) string {
	return fmt.Sprintf("%s-%d", b.rec.Reminder.ID, start.UnixMilli())
}

func (b builder) single(anchor time.Time) []domain.CalendarEvent {
	return []domain.CalendarEvent{b.event(b.rec.Reminder.ID.String(), anchor)}
}

// yearly emits one event per year from min(anchorYear, nowYear-2) through
// nowYear+5, so an old anchor is listed from its own year onwards.
// A 29 February anchor lands on 1 March in common years.
func (b builder) yearly(anchor, now time.Time) []domain.CalendarEvent {
	first := min(anchor.Year(), now.Year()-yearsBack)
	last := now.Year() + yearsAhead
	events := make([]domain.CalendarEvent, 0, last-first+1)
	for y := first; y <= last; y++ {
		start := time.Date(y, anchor.Month(), anchor.Day(), anchor.Hour(), anchor.Minute(), 0, 0, anchor.Location())
		events = append(events, b.event(fmt.Sprintf("%s-%d", b.rec.Reminder.ID, y), start))
	}
	return events
}

// monthly walks 24 months starting with now's month, placing the anchor's
// day of month in each. Months that lack that day are skipped, except the
// first iteration which is kept with the date normalised into the next month.
func (b builder) monthly(anchor, now time.Time) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, monthsAhead)
	for i := range monthsAhead {
		start := time.Date(now.Year(), now.Month()+time.Month(i), anchor.Day(), anchor.Hour(), anchor.Minute(), 0, 0, anchor.Location())
		if start.Day() != anchor.Day() && i != 0 {
			continue
		}
		events = append(events, b.event(b.occurrenceID(start), start))
	}
	return events
}

// weekly emits 52 occurrences on the anchor's weekday and time, starting with
// the first one at or after now (or the anchor itself when it is in the future).
func (b builder) weekly(anchor, now time.Time) []domain.CalendarEvent {
	start := anchor
	if days := civilDays(anchor, now); days > 0 {
		start = anchor.AddDate(0, 0, days/7*7)
	}
	for start.Before(now) {
		start = start.AddDate(0, 0, 7)
	}
	return b.series(rrule.WEEKLY, start, weeksAhead)
}

// civilDays counts calendar days from a's date to b's date, ignoring the
// time of day and any DST shift between them.
func civilDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((db.Unix() - da.Unix()) / secondsPerDay)
}

// daily emits 365 occurrences, one per calendar day, beginning with the
// anchor day or today when the anchor is already in the past.
func (b builder) daily(anchor, now time.Time) []domain.CalendarEvent {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, anchor.Location())
	first := anchor
	if anchor.Before(today) {
		first = today
	}
	start := time.Date(first.Year(), first.Month(), first.Day(), anchor.Hour(), anchor.Minute(), 0, 0, anchor.Location())
	return b.series(rrule.DAILY, start, daysAhead)
}

// series materialises count occurrences of a fixed-frequency rule from start.
// Occurrences follow wall-clock time in start's location.
func (b builder) series(freq rrule.Frequency, start time.Time, count int) []domain.CalendarEvent {
	rule, err := rrule.NewRRule(rrule.ROption{Freq: freq, Dtstart: start, Count: count})
	if err != nil {
		return nil
	}
	times := rule.All()
	events := make([]domain.CalendarEvent, 0, len(times))
	for _, t := range times {
		t = t.In(start.Location())
		events = append(events, b.event(b.occurrenceID(t), t))
	}
	return events
}

func compareEvents(a, b domain.CalendarEvent) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
