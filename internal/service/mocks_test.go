package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

// ---- ContactRepo -----------------------------------------------------------

type mockContactRepo struct {
	create    func(ctx context.Context, c domain.Contact) (domain.Contact, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Contact, error)
	list      func(ctx context.Context) ([]domain.Contact, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error)
	update    func(ctx context.Context, c domain.Contact) (domain.Contact, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	return m.create(ctx, c)
}
func (m *mockContactRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	return m.getByID(ctx, id)
}
func (m *mockContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	return m.list(ctx)
}
func (m *mockContactRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockContactRepo) Update(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	return m.update(ctx, c)
}
func (m *mockContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ContactRepo = (*mockContactRepo)(nil)

// existingContacts returns a ContactRepo whose GetByID finds exactly the given contacts.
func existingContacts(cs ...domain.Contact) *mockContactRepo {
	return &mockContactRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Contact, error) {
			for _, c := range cs {
				if c.ID == id {
					return c, nil
				}
			}
			return domain.Contact{}, domain.ErrNotFound
		},
		list: func(_ context.Context) ([]domain.Contact, error) {
			return cs, nil
		},
	}
}

// ---- LocationRepo ----------------------------------------------------------

type mockLocationRepo struct {
	create          func(ctx context.Context, l domain.Location) (domain.Location, error)
	getByID         func(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error)
	listByContactID func(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error)
	listByType      func(ctx context.Context, t domain.LocationType) ([]domain.Location, error)
	update          func(ctx context.Context, l domain.Location) (domain.Location, error)
	delete          func(ctx context.Context, contactID, locationID uuid.UUID) error
}

func (m *mockLocationRepo) Create(ctx context.Context, l domain.Location) (domain.Location, error) {
	return m.create(ctx, l)
}
func (m *mockLocationRepo) GetByID(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error) {
	return m.getByID(ctx, contactID, locationID)
}
func (m *mockLocationRepo) ListByContactID(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error) {
	return m.listByContactID(ctx, contactID)
}
func (m *mockLocationRepo) ListByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error) {
	return m.listByType(ctx, t)
}
func (m *mockLocationRepo) Update(ctx context.Context, l domain.Location) (domain.Location, error) {
	return m.update(ctx, l)
}
func (m *mockLocationRepo) Delete(ctx context.Context, contactID, locationID uuid.UUID) error {
	return m.delete(ctx, contactID, locationID)
}

var _ repo.LocationRepo = (*mockLocationRepo)(nil)

// ---- SocialRepo ------------------------------------------------------------

type mockSocialRepo struct {
	getByContactID    func(ctx context.Context, contactID uuid.UUID) (domain.Social, error)
	upsert            func(ctx context.Context, s domain.Social) (domain.Social, error)
	deleteByContactID func(ctx context.Context, contactID uuid.UUID) error
}

func (m *mockSocialRepo) GetByContactID(ctx context.Context, contactID uuid.UUID) (domain.Social, error) {
	return m.getByContactID(ctx, contactID)
}
func (m *mockSocialRepo) Upsert(ctx context.Context, s domain.Social) (domain.Social, error) {
	return m.upsert(ctx, s)
}
func (m *mockSocialRepo) DeleteByContactID(ctx context.Context, contactID uuid.UUID) error {
	return m.deleteByContactID(ctx, contactID)
}

var _ repo.SocialRepo = (*mockSocialRepo)(nil)

// ---- ReminderRepo ----------------------------------------------------------

type mockReminderRepo struct {
	create           func(ctx context.Context, r domain.Reminder) (domain.Reminder, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Reminder, error)
	list             func(ctx context.Context) ([]domain.Reminder, error)
	listPaged        func(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error)
	listByContactID  func(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error)
	listWithContacts func(ctx context.Context) ([]domain.ReminderWithContact, error)
	update           func(ctx context.Context, r domain.Reminder) (domain.Reminder, error)
	delete           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReminderRepo) Create(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	return m.create(ctx, r)
}
func (m *mockReminderRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reminder, error) {
	return m.getByID(ctx, id)
}
func (m *mockReminderRepo) List(ctx context.Context) ([]domain.Reminder, error) {
	return m.list(ctx)
}
func (m *mockReminderRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockReminderRepo) ListByContactID(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error) {
	return m.listByContactID(ctx, contactID)
}
func (m *mockReminderRepo) ListWithContacts(ctx context.Context) ([]domain.ReminderWithContact, error) {
	return m.listWithContacts(ctx)
}
func (m *mockReminderRepo) Update(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	return m.update(ctx, r)
}
func (m *mockReminderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ReminderRepo = (*mockReminderRepo)(nil)
