package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rolodex-crm/backend/internal/calendar"
	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/repo"
)

// CalendarName is the display name of the iCalendar feed.
const CalendarName = "Rolodex reminders"

// CalendarService turns the stored reminders into calendar events.
// Events are recomputed on every call and never stored.
type CalendarService struct {
	reminders repo.ReminderRepo
	loc       *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// NewCalendarService constructs a CalendarService. Occurrences are computed in
// loc; a nil loc means UTC.
func NewCalendarService(reminders repo.ReminderRepo, loc *time.Location, logger *slog.Logger) *CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarService{reminders: reminders, loc: loc, logger: logger, now: time.Now}
}

// WithClock replaces the clock the expansion window is anchored on.
func (s *CalendarService) WithClock(now func() time.Time) *CalendarService {
	s.now = now
	return s
}

// Events expands every reminder and returns the events starting in
// [from, to), ordered by start. A nil bound is open.
func (s *CalendarService) Events(ctx context.Context, from, to *time.Time) ([]domain.CalendarEvent, error) {
	rows, err := s.reminders.ListWithContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CalendarService.Events: %w", err)
	}

	records := make([]domain.ReminderRecord, len(rows))
	for i, r := range rows {
		records[i] = r.Record()
	}

	res := calendar.ExpandAll(records, s.now().In(s.loc))
	for _, id := range res.Skipped {
		s.logger.WarnContext(ctx, "reminder produced no calendar events", "reminder_id", id)
	}

	if from == nil && to == nil {
		return res.Events, nil
	}
	out := make([]domain.CalendarEvent, 0, len(res.Events))
	for _, e := range res.Events {
		if from != nil && e.Start.Before(*from) {
			continue
		}
		if to != nil && !e.Start.Before(*to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// ICS writes every event as an iCalendar feed to w.
func (s *CalendarService) ICS(ctx context.Context, w io.Writer) error {
	events, err := s.Events(ctx, nil, nil)
	if err != nil {
		return err
	}
	if err := calendar.WriteICS(w, CalendarName, events, s.now()); err != nil {
		return fmt.Errorf("service.CalendarService.ICS: %w", err)
	}
	return nil
}
