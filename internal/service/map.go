package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/geo"
	"github.com/rolodex-crm/backend/internal/repo"
)

// MapService builds the GeoJSON shown on the map views.
type MapService struct {
	contacts  repo.ContactRepo
	locations repo.LocationRepo
	details   *ContactService
}

// NewMapService constructs a MapService. details supplies the per-contact view.
func NewMapService(contacts repo.ContactRepo, locations repo.LocationRepo, details *ContactService) *MapService {
	return &MapService{contacts: contacts, locations: locations, details: details}
}

// Overview returns one point per contact that has a CURRENT location.
// Contacts without one are left off the map.
func (s *MapService) Overview(ctx context.Context) (*geojson.FeatureCollection, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MapService.Overview: %w", err)
	}
	current, err := s.locations.ListByType(ctx, domain.LocationCurrent)
	if err != nil {
		return nil, fmt.Errorf("service.MapService.Overview: %w", err)
	}

	byContact := make(map[uuid.UUID]domain.Location, len(current))
	for _, l := range current {
		if _, ok := byContact[l.ContactID]; !ok {
			byContact[l.ContactID] = l
		}
	}

	fc := geojson.NewFeatureCollection()
	for _, c := range contacts {
		l, ok := byContact[c.ID]
		if !ok {
			continue
		}
		fc.Append(geo.LocationFeature(l, c.Name().String()))
	}
	return fc, nil
}

// ContactMap returns the locations of one contact with great-circle arcs
// from the current location to each previous one.
func (s *MapService) ContactMap(ctx context.Context, contactID uuid.UUID) (*geojson.FeatureCollection, error) {
	d, err := s.details.GetDetails(ctx, contactID)
	if err != nil {
		return nil, err
	}
	return geo.ContactCollection(d), nil
}
