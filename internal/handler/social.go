package handler

import (
	"net/http"

	"github.com/rolodex-crm/backend/internal/domain"
)

const msgSocialNotFound = "socials not found"

// GetSocials handles GET /contacts/{id}/socials.
func (s *Server) GetSocials(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	so, err := s.socials.Get(r.Context(), contactID)
	if err != nil {
		s.fail(w, r, err, msgSocialNotFound)
		return
	}
	writeJSON(w, http.StatusOK, socialToResponse(so))
}

// UpsertSocials handles PUT /contacts/{id}/socials.
// The body replaces the contact's social links, creating the row if needed.
func (s *Server) UpsertSocials(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	body, ok := bindBody[SocialRequest](w, r)
	if !ok {
		return
	}
	saved, err := s.socials.Upsert(r.Context(), domain.Social{
		ContactID: contactID,
		Instagram: body.Instagram,
		LinkedIn:  body.LinkedIn,
		Discord:   body.Discord,
		Reddit:    body.Reddit,
		GitHub:    body.GitHub,
		Other:     body.Other,
	})
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, socialToResponse(saved))
}

// DeleteSocials handles DELETE /contacts/{id}/socials.
func (s *Server) DeleteSocials(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.socials.Delete(r.Context(), contactID); err != nil {
		s.fail(w, r, err, msgSocialNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
