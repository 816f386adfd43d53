// Package service contains the business logic for the contact CRM.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/repo"
)

// ContactService implements business logic for Contact operations and
// assembles the contact detail view from the child repos.
type ContactService struct {
	contacts  repo.ContactRepo
	locations repo.LocationRepo
	socials   repo.SocialRepo
	reminders repo.ReminderRepo
	now       func() time.Time
}

// NewContactService constructs a ContactService backed by the provided repos.
func NewContactService(
	contacts repo.ContactRepo,
	locations repo.LocationRepo,
	socials repo.SocialRepo,
	reminders repo.ReminderRepo,
) *ContactService {
	return &ContactService{
		contacts:  contacts,
		locations: locations,
		socials:   socials,
		reminders: reminders,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to reject future birthdays.
func (s *ContactService) WithClock(now func() time.Time) *ContactService {
	s.now = now
	return s
}

// Create validates and persists a new contact.
func (s *ContactService) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	c, err := s.normalize(c)
	if err != nil {
		return domain.Contact{}, err
	}
	return s.contacts.Create(ctx, c)
}

// GetByID returns a single contact by ID.
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

// List returns all contacts.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

// ListPaged returns one page of contacts and the total count.
func (s *ContactService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error) {
	return s.contacts.ListPaged(ctx, p)
}

// Update validates and updates an existing contact.
func (s *ContactService) Update(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	c, err := s.normalize(c)
	if err != nil {
		return domain.Contact{}, err
	}
	return s.contacts.Update(ctx, c)
}

// Delete removes a contact and everything that belongs to it.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contacts.Delete(ctx, id)
}

// GetDetails returns a contact with its locations split by type, its social
// links and the IDs of its reminders.
func (s *ContactService) GetDetails(ctx context.Context, id uuid.UUID) (domain.ContactDetails, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return domain.ContactDetails{}, err
	}
	return s.details(ctx, c)
}

// ListDetails returns GetDetails for every contact, in List order.
func (s *ContactService) ListDetails(ctx context.Context) ([]domain.ContactDetails, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ContactDetails, 0, len(contacts))
	for _, c := range contacts {
		d, err := s.details(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *ContactService) details(ctx context.Context, c domain.Contact) (domain.ContactDetails, error) {
	d := domain.ContactDetails{
		Contact:     c,
		Past:        []domain.Location{},
		Visited:     []domain.Location{},
		Social:      domain.Social{ContactID: c.ID},
		ReminderIDs: []uuid.UUID{},
	}

	locs, err := s.locations.ListByContactID(ctx, c.ID)
	if err != nil {
		return domain.ContactDetails{}, fmt.Errorf("service.ContactService.details: locations: %w", err)
	}
	for _, l := range locs {
		switch {
		case l.Type == domain.LocationCurrent && d.Current == nil:
			cur := l
			d.Current = &cur
		case l.Type == domain.LocationVisited:
			d.Visited = append(d.Visited, l)
		default:
			// PREVIOUS, plus any stray second CURRENT row.
			d.Past = append(d.Past, l)
		}
	}

	social, err := s.socials.GetByContactID(ctx, c.ID)
	switch {
	case err == nil:
		d.Social = social
	case !errors.Is(err, domain.ErrNotFound):
		return domain.ContactDetails{}, fmt.Errorf("service.ContactService.details: socials: %w", err)
	}

	rems, err := s.reminders.ListByContactID(ctx, c.ID)
	if err != nil {
		return domain.ContactDetails{}, fmt.Errorf("service.ContactService.details: reminders: %w", err)
	}
	for _, r := range rems {
		d.ReminderIDs = append(d.ReminderIDs, r.ID)
	}
	return d, nil
}

// normalize trims the name parts, validates the contact and slugifies its groups.
func (s *ContactService) normalize(c domain.Contact) (domain.Contact, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.MiddleName = strings.TrimSpace(c.MiddleName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)

	if c.FirstName == "" {
		return domain.Contact{}, fmt.Errorf("%w: first name is required", domain.ErrValidation)
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return domain.Contact{}, fmt.Errorf("%w: email %q is not an address", domain.ErrValidation, c.Email)
	}
	for _, e := range c.OtherEmails {
		if !strings.Contains(e, "@") {
			return domain.Contact{}, fmt.Errorf("%w: email %q is not an address", domain.ErrValidation, e)
		}
	}
	if c.Birthday != nil && c.Birthday.After(s.now()) {
		return domain.Contact{}, fmt.Errorf("%w: birthday is in the future", domain.ErrValidation)
	}

	groups, err := normalizeGroups(c.Groups)
	if err != nil {
		return domain.Contact{}, err
	}
	c.Groups = groups
	return c, nil
}

// normalizeGroups slugifies every group name and drops duplicates, keeping
// first-seen order.
func normalizeGroups(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		slug := Slugify(name)
		if slug == "" {
			return nil, fmt.Errorf("%w: group %q has no letters or digits", domain.ErrValidation, name)
		}
		if seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out, nil
}

// Slugify lowercases s and collapses every run of characters that are not
// letters or digits into a single hyphen, trimming hyphens at both ends.
// "Close  Friends!" becomes "close-friends".
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if isSlugRune(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
