package handler

import (
	"net/http"

	"github.com/google/uuid"
)

const msgLocationNotFound = "location not found"

// ListLocations handles GET /contacts/{id}/locations.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	locs, err := s.locations.ListByContact(r.Context(), contactID)
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, locationsToResponse(locs))
}

// CreateLocation handles POST /contacts/{id}/locations.
// A new CURRENT location demotes the contact's previous one.
func (s *Server) CreateLocation(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	body, ok := bindBody[LocationRequest](w, r)
	if !ok {
		return
	}
	created, err := s.locations.Create(r.Context(), requestToLocation(contactID, uuid.Nil, body))
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, locationToResponse(created))
}

// GetLocation handles GET /contacts/{id}/locations/{locationId}.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	contactID, locationID, ok := locationPath(w, r)
	if !ok {
		return
	}
	l, err := s.locations.GetByID(r.Context(), contactID, locationID)
	if err != nil {
		s.fail(w, r, err, msgLocationNotFound)
		return
	}
	writeJSON(w, http.StatusOK, locationToResponse(l))
}

// UpdateLocation handles PUT /contacts/{id}/locations/{locationId}.
func (s *Server) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	contactID, locationID, ok := locationPath(w, r)
	if !ok {
		return
	}
	body, ok := bindBody[LocationRequest](w, r)
	if !ok {
		return
	}
	updated, err := s.locations.Update(r.Context(), requestToLocation(contactID, locationID, body))
	if err != nil {
		s.fail(w, r, err, msgLocationNotFound)
		return
	}
	writeJSON(w, http.StatusOK, locationToResponse(updated))
}

// DeleteLocation handles DELETE /contacts/{id}/locations/{locationId}.
func (s *Server) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	contactID, locationID, ok := locationPath(w, r)
	if !ok {
		return
	}
	if err := s.locations.Delete(r.Context(), contactID, locationID); err != nil {
		s.fail(w, r, err, msgLocationNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func locationPath(w http.ResponseWriter, r *http.Request) (contactID, locationID uuid.UUID, ok bool) {
	if contactID, ok = pathUUID(w, r, "id"); !ok {
		return
	}
	locationID, ok = pathUUID(w, r, "locationId")
	return
}
