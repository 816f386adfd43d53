package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/service"
)

// locationHarness records the calls a LocationService makes.
type locationHarness struct {
	contact  domain.Contact
	written  []domain.Location // locations passed to Create or Update
	created  int
	repo     *mockLocationRepo
	contacts *mockContactRepo
}

func newLocationHarness() *locationHarness {
	h := &locationHarness{contact: validContact()}
	h.contact.ID = uuid.New()
	h.contacts = existingContacts(h.contact)
	h.repo = &mockLocationRepo{
		create: func(_ context.Context, l domain.Location) (domain.Location, error) {
			h.created++
			h.written = append(h.written, l)
			l.ID = uuid.New()
			return l, nil
		},
		update: func(_ context.Context, l domain.Location) (domain.Location, error) {
			h.written = append(h.written, l)
			return l, nil
		},
		listByContactID: func(_ context.Context, _ uuid.UUID) ([]domain.Location, error) {
			return []domain.Location{}, nil
		},
	}
	return h
}

func (h *locationHarness) service() *service.LocationService {
	return service.NewLocationService(h.contacts, h.repo)
}

func validLocation(contactID uuid.UUID, typ domain.LocationType) domain.Location {
	return domain.Location{
		ContactID: contactID,
		Type:      typ,
		City:      "London",
		Country:   "United Kingdom",
		Latitude:  51.5074,
		Longitude: -0.1278,
	}
}

func TestLocationService_Create_WritesOnceWithTrimmedFields(t *testing.T) {
	h := newLocationHarness()
	l := validLocation(h.contact.ID, domain.LocationCurrent)
	l.City = "  London "

	got, err := h.service().Create(context.Background(), l)

	require.NoError(t, err)
	require.Len(t, h.written, 1, "create and demotion are a single repo call")
	assert.Equal(t, "London", h.written[0].City)
	assert.Equal(t, domain.LocationCurrent, got.Type)
}

func TestLocationService_Create_RepoError(t *testing.T) {
	h := newLocationHarness()
	h.repo.create = func(_ context.Context, _ domain.Location) (domain.Location, error) {
		return domain.Location{}, errors.New("connection reset")
	}

	_, err := h.service().Create(context.Background(), validLocation(h.contact.ID, domain.LocationCurrent))

	assert.EqualError(t, err, "connection reset")
}

func TestLocationService_Create_UnknownContact(t *testing.T) {
	h := newLocationHarness()

	_, err := h.service().Create(context.Background(), validLocation(uuid.New(), domain.LocationVisited))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, h.created)
}

func TestLocationService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *domain.Location)
	}{
		{"unknown type", func(l *domain.Location) { l.Type = "HOLIDAY" }},
		{"empty type", func(l *domain.Location) { l.Type = "" }},
		{"blank city", func(l *domain.Location) { l.City = "  " }},
		{"blank country", func(l *domain.Location) { l.Country = "" }},
		{"latitude too high", func(l *domain.Location) { l.Latitude = 90.5 }},
		{"latitude too low", func(l *domain.Location) { l.Latitude = -91 }},
		{"longitude too high", func(l *domain.Location) { l.Longitude = 180.01 }},
		{"longitude too low", func(l *domain.Location) { l.Longitude = -200 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newLocationHarness()
			l := validLocation(h.contact.ID, domain.LocationPrevious)
			tc.mutate(&l)

			_, err := h.service().Create(context.Background(), l)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, h.created)
		})
	}
}

func TestLocationService_Create_BoundaryCoordinates(t *testing.T) {
	h := newLocationHarness()
	l := validLocation(h.contact.ID, domain.LocationVisited)
	l.Latitude, l.Longitude = -90, 180

	_, err := h.service().Create(context.Background(), l)

	assert.NoError(t, err)
}

func TestLocationService_Update_PromoteToCurrent(t *testing.T) {
	h := newLocationHarness()
	l := validLocation(h.contact.ID, domain.LocationCurrent)
	l.ID = uuid.New()

	got, err := h.service().Update(context.Background(), l)

	require.NoError(t, err)
	require.Len(t, h.written, 1)
	assert.Equal(t, l.ID, h.written[0].ID)
	assert.Equal(t, domain.LocationCurrent, got.Type)
}

func TestLocationService_Update_NotFound(t *testing.T) {
	h := newLocationHarness()
	h.repo.update = func(_ context.Context, _ domain.Location) (domain.Location, error) {
		return domain.Location{}, domain.ErrNotFound
	}

	_, err := h.service().Update(context.Background(), validLocation(h.contact.ID, domain.LocationCurrent))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationService_ListByContact_UnknownContact(t *testing.T) {
	h := newLocationHarness()

	_, err := h.service().ListByContact(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationService_ListByContact(t *testing.T) {
	h := newLocationHarness()

	got, err := h.service().ListByContact(context.Background(), h.contact.ID)

	require.NoError(t, err)
	assert.Empty(t, got)
}
