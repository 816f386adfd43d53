package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/repo"
)

// ReminderService implements business logic for Reminder operations.
type ReminderService struct {
	contacts  repo.ContactRepo
	reminders repo.ReminderRepo
}

// NewReminderService constructs a ReminderService backed by the provided repos.
func NewReminderService(contacts repo.ContactRepo, reminders repo.ReminderRepo) *ReminderService {
	return &ReminderService{contacts: contacts, reminders: reminders}
}

// Create validates and persists a new reminder.
func (s *ReminderService) Create(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	r, err := s.normalize(ctx, r)
	if err != nil {
		return domain.Reminder{}, err
	}
	return s.reminders.Create(ctx, r)
}

// GetByID returns a single reminder by ID.
func (s *ReminderService) GetByID(ctx context.Context, id uuid.UUID) (domain.Reminder, error) {
	return s.reminders.GetByID(ctx, id)
}

// List returns all reminders.
func (s *ReminderService) List(ctx context.Context) ([]domain.Reminder, error) {
	return s.reminders.List(ctx)
}

// ListPaged returns one page of reminders and the total count.
func (s *ReminderService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error) {
	return s.reminders.ListPaged(ctx, p)
}

// ListByContact returns the reminders of a contact. Returns domain.ErrNotFound
// when the contact does not exist.
func (s *ReminderService) ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error) {
	if _, err := s.contacts.GetByID(ctx, contactID); err != nil {
		return nil, err
	}
	return s.reminders.ListByContactID(ctx, contactID)
}

// Update validates and updates an existing reminder.
func (s *ReminderService) Update(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	r, err := s.normalize(ctx, r)
	if err != nil {
		return domain.Reminder{}, err
	}
	return s.reminders.Update(ctx, r)
}

// Delete removes a reminder by ID.
func (s *ReminderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reminders.Delete(ctx, id)
}

// normalize validates r and rewrites the send time as "15:04:00".
// A recurring reminder with DOES_NOT_REPEAT is accepted as is; the calendar
// shows it once.
func (s *ReminderService) normalize(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	r.Date = strings.TrimSpace(r.Date)
	r.Message = strings.TrimSpace(r.Message)

	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		return domain.Reminder{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, r.Date)
	}
	if !r.Kind.Valid() {
		return domain.Reminder{}, fmt.Errorf("%w: unknown reminder kind %q", domain.ErrValidation, r.Kind)
	}
	if r.Rule == "" {
		r.Rule = domain.DoesNotRepeat
	}
	if !r.Rule.Valid() {
		return domain.Reminder{}, fmt.Errorf("%w: unknown recurrence rule %q", domain.ErrValidation, r.Rule)
	}

	if st := strings.TrimSpace(r.SendTime); st != "" {
		h, m, ok := domain.ParseSendTime(st)
		if !ok {
			return domain.Reminder{}, fmt.Errorf("%w: send time %q must be HH:MM", domain.ErrValidation, r.SendTime)
		}
		r.SendTime = fmt.Sprintf("%02d:%02d:00", h, m)
	} else {
		r.SendTime = ""
	}

	if r.ContactID != nil {
		if _, err := s.contacts.GetByID(ctx, *r.ContactID); err != nil {
			return domain.Reminder{}, err
		}
	}
	return r, nil
}
