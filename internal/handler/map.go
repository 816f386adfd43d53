package handler

import (
	"encoding/json"
	"net/http"

	"github.com/paulmach/orb/geojson"
)

// GetMap handles GET /map: one point per contact at its current location.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	fc, err := s.maps.Overview(r.Context())
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeGeoJSON(w, fc)
}

// GetContactMap handles GET /contacts/{id}/map: every location of the
// contact plus the arcs travelled between them.
func (s *Server) GetContactMap(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	fc, err := s.maps.ContactMap(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}
	writeGeoJSON(w, fc)
}

func writeGeoJSON(w http.ResponseWriter, fc *geojson.FeatureCollection) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(fc)
}
