package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rolodex-crm/backend/internal/domain"
)

const msgContactNotFound = "contact not found"

// pageParams reads the optional ?page and ?limit query parameters.
func pageParams(w http.ResponseWriter, r *http.Request) (domain.PaginationParams, bool) {
	var page, limit *int
	if !queryParam(w, r, "page", &page) || !queryParam(w, r, "limit", &limit) {
		return domain.PaginationParams{}, false
	}
	return domain.NewPaginationParams(page, limit), true
}

// ListContacts handles GET /contacts.
// Contacts are ordered by last and first name.
func (s *Server) ListContacts(w http.ResponseWriter, r *http.Request) {
	p, ok := pageParams(w, r)
	if !ok {
		return
	}
	contacts, total, err := s.contacts.ListPaged(r.Context(), p)
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}

	data := make([]Contact, len(contacts))
	for i, c := range contacts {
		data[i] = contactToResponse(c)
	}
	writeJSON(w, http.StatusOK, newPage(data, p, total))
}

// CreateContact handles POST /contacts.
func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	body, ok := bindBody[ContactRequest](w, r)
	if !ok {
		return
	}
	created, err := s.contacts.Create(r.Context(), requestToContact(uuid.Nil, body))
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, contactToResponse(created))
}

// GetContact handles GET /contacts/{id}.
func (s *Server) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := s.contacts.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, contactToResponse(c))
}

// UpdateContact handles PUT /contacts/{id}. The body replaces every field.
func (s *Server) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	body, ok := bindBody[ContactRequest](w, r)
	if !ok {
		return
	}
	updated, err := s.contacts.Update(r.Context(), requestToContact(id, body))
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, contactToResponse(updated))
}

// DeleteContact handles DELETE /contacts/{id}.
// Locations, socials and reminders of the contact are removed with it.
func (s *Server) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.contacts.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetContactDetails handles GET /contacts/{id}/details.
func (s *Server) GetContactDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	d, err := s.contacts.GetDetails(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, detailsToResponse(d))
}

// ListContactDetails handles GET /contacts/details.
func (s *Server) ListContactDetails(w http.ResponseWriter, r *http.Request) {
	all, err := s.contacts.ListDetails(r.Context())
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	out := make([]ContactDetails, len(all))
	for i, d := range all {
		out[i] = detailsToResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// ListContactReminders handles GET /contacts/{id}/reminders.
func (s *Server) ListContactReminders(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rems, err := s.reminders.ListByContact(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, remindersToResponse(rems))
}
