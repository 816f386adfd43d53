package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"
)

// ListCalendarEvents handles GET /calendar/events.
// Optional ?from and ?to (RFC 3339) bound the event start times, from
// inclusive and to exclusive.
func (s *Server) ListCalendarEvents(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	if !queryParam(w, r, "from", &from) || !queryParam(w, r, "to", &to) {
		return
	}
	if from != nil && to != nil && !to.After(*from) {
		badRequest(w, "to must be after from")
		return
	}

	events, err := s.calendar.Events(r.Context(), from, to)
	if err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	out := make([]CalendarEvent, len(events))
	for i, e := range events {
		out[i] = eventToResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCalendarFeed handles GET /calendar.ics.
// The feed is rendered into memory first so a failure can still be
// answered with a JSON error.
func (s *Server) GetCalendarFeed(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.calendar.ICS(r.Context(), &buf); err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="reminders.ics"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
