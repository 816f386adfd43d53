package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/repo"
)

// LocationService implements business logic for a contact's locations.
// Every operation is scoped to a contact, and the contact must exist.
type LocationService struct {
	contacts  repo.ContactRepo
	locations repo.LocationRepo
}

// NewLocationService constructs a LocationService backed by the provided repos.
func NewLocationService(contacts repo.ContactRepo, locations repo.LocationRepo) *LocationService {
	return &LocationService{contacts: contacts, locations: locations}
}

// Create validates and persists a new location. A new CURRENT location
// moves the contact's previous CURRENT location to PREVIOUS; the repo does
// both in one statement.
func (s *LocationService) Create(ctx context.Context, l domain.Location) (domain.Location, error) {
	l, err := normalizeLocation(l)
	if err != nil {
		return domain.Location{}, err
	}
	if _, err := s.contacts.GetByID(ctx, l.ContactID); err != nil {
		return domain.Location{}, err
	}

	return s.locations.Create(ctx, l)
}

// GetByID returns one location of a contact.
func (s *LocationService) GetByID(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error) {
	return s.locations.GetByID(ctx, contactID, locationID)
}

// ListByContact returns all locations of a contact. Returns domain.ErrNotFound
// when the contact does not exist.
func (s *LocationService) ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error) {
	if _, err := s.contacts.GetByID(ctx, contactID); err != nil {
		return nil, err
	}
	return s.locations.ListByContactID(ctx, contactID)
}

// Update validates and updates an existing location. Promoting a location to
// CURRENT demotes the contact's other CURRENT location.
func (s *LocationService) Update(ctx context.Context, l domain.Location) (domain.Location, error) {
	l, err := normalizeLocation(l)
	if err != nil {
		return domain.Location{}, err
	}

	return s.locations.Update(ctx, l)
}

// Delete removes one location of a contact.
func (s *LocationService) Delete(ctx context.Context, contactID, locationID uuid.UUID) error {
	return s.locations.Delete(ctx, contactID, locationID)
}

func normalizeLocation(l domain.Location) (domain.Location, error) {
	l.City = strings.TrimSpace(l.City)
	l.Country = strings.TrimSpace(l.Country)

	if !l.Type.Valid() {
		return domain.Location{}, fmt.Errorf("%w: unknown location type %q", domain.ErrValidation, l.Type)
	}
	if l.City == "" {
		return domain.Location{}, fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if l.Country == "" {
		return domain.Location{}, fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return domain.Location{}, fmt.Errorf("%w: latitude %v out of range", domain.ErrValidation, l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return domain.Location{}, fmt.Errorf("%w: longitude %v out of range", domain.ErrValidation, l.Longitude)
	}
	return l, nil
}
