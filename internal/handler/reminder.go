package handler

import (
	"net/http"

	"github.com/google/uuid"
)

const msgReminderNotFound = "reminder not found"

// ListReminders handles GET /reminders.
// Reminders are ordered by date.
func (s *Server) ListReminders(w http.ResponseWriter, r *http.Request) {
	p, ok := pageParams(w, r)
	if !ok {
		return
	}
	rems, total, err := s.reminders.ListPaged(r.Context(), p)
	if err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, newPage(remindersToResponse(rems), p, total))
}

// CreateReminder handles POST /reminders.
// A contact_id that does not exist is rejected with 422.
func (s *Server) CreateReminder(w http.ResponseWriter, r *http.Request) {
	body, ok := bindBody[ReminderRequest](w, r)
	if !ok {
		return
	}
	created, err := s.reminders.Create(r.Context(), requestToReminder(uuid.Nil, body))
	if err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, reminderToResponse(created))
}

// GetReminder handles GET /reminders/{id}.
func (s *Server) GetReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rem, err := s.reminders.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, reminderToResponse(rem))
}

// UpdateReminder handles PUT /reminders/{id}.
func (s *Server) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	body, ok := bindBody[ReminderRequest](w, r)
	if !ok {
		return
	}
	updated, err := s.reminders.Update(r.Context(), requestToReminder(id, body))
	if err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, reminderToResponse(updated))
}

// DeleteReminder handles DELETE /reminders/{id}.
func (s *Server) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.reminders.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, msgReminderNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
