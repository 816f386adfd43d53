package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReminderKind is the category of a reminder. It drives the event colour.
type ReminderKind string

const (
	KindBirthday    ReminderKind = "BIRTHDAY"
	KindAnniversary ReminderKind = "ANNIVERSARY"
	KindEvent       ReminderKind = "EVENT"
	KindOther       ReminderKind = "OTHER"
)

// Valid reports whether k is one of the known reminder kinds.
func (k ReminderKind) Valid() bool {
	switch k {
	case KindBirthday, KindAnniversary, KindEvent, KindOther:
		return true
	}
	return false
}

// RecurrenceRule is the cadence of a recurring reminder.
type RecurrenceRule string

const (
	DoesNotRepeat RecurrenceRule = "DOES_NOT_REPEAT"
	EveryDay      RecurrenceRule = "EVERY_DAY"
	EveryWeek     RecurrenceRule = "EVERY_WEEK"
	EveryMonth    RecurrenceRule = "EVERY_MONTH"
	EveryYear     RecurrenceRule = "EVERY_YEAR"
)

// Valid reports whether r is one of the known recurrence rules.
func (r RecurrenceRule) Valid() bool {
	switch r {
	case DoesNotRepeat, EveryDay, EveryWeek, EveryMonth, EveryYear:
		return true
	}
	return false
}

// Reminder is a dated note, optionally linked to a contact and optionally
// recurring. Date and SendTime keep the store's textual form
// ("2006-01-02" and "15:04:05") so a malformed row still round-trips.
type Reminder struct {
	ID          uuid.UUID
	ContactID   *uuid.UUID // nil when the reminder is not linked to a contact
	Kind        ReminderKind
	Message     string
	Date        string
	SendTime    string // empty when unset
	IsRecurring bool
	Rule        RecurrenceRule
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReminderRecord is a reminder as seen by the calendar: the stored row plus
// the display name of its contact.
type ReminderRecord struct {
	Reminder    Reminder
	ContactName string
}

// ReminderWithContact is a reminder joined with the name of its contact.
// Contact is nil when the reminder has no contact or the contact is gone.
type ReminderWithContact struct {
	Reminder Reminder
	Contact  *ContactName
}

// Record converts r into the calendar input, resolving the display name.
func (r ReminderWithContact) Record() ReminderRecord {
	name := UnknownContactName
	if r.Contact != nil {
		name = r.Contact.String()
	}
	return ReminderRecord{Reminder: r.Reminder, ContactName: name}
}

// DefaultSendHour and DefaultSendMinute apply when a reminder has no usable send time.
const (
	DefaultSendHour   = 9
	DefaultSendMinute = 0
)

// ParseReminderDate parses a stored reminder date. It accepts a plain
// "2006-01-02" date and, for rows written by older clients, a full RFC 3339
// timestamp whose calendar date is used.
func ParseReminderDate(s string) (year int, month time.Month, day int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, false
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return 0, 0, 0, false
		}
	}
	return t.Year(), t.Month(), t.Day(), true
}

// ParseSendTime parses "15:04" or "15:04:05", tolerating a trailing zone
// offset as written by a Postgres timetz column ("09:30:00+00").
func ParseSendTime(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(leadingDigits(parts[1]))
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// SendTimeOrDefault is ParseSendTime falling back to 09:00.
func SendTimeOrDefault(s string) (hour, minute int) {
	if h, m, ok := ParseSendTime(s); ok {
		return h, m
	}
	return DefaultSendHour, DefaultSendMinute
}

func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
