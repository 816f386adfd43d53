package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/repo"
)

// SocialService manages the single set of social links a contact may have.
type SocialService struct {
	contacts repo.ContactRepo
	socials  repo.SocialRepo
}

// NewSocialService constructs a SocialService backed by the provided repos.
func NewSocialService(contacts repo.ContactRepo, socials repo.SocialRepo) *SocialService {
	return &SocialService{contacts: contacts, socials: socials}
}

// Get returns the social links of a contact, or domain.ErrNotFound.
func (s *SocialService) Get(ctx context.Context, contactID uuid.UUID) (domain.Social, error) {
	return s.socials.GetByContactID(ctx, contactID)
}

// Upsert trims every handle and stores the links, replacing any existing ones.
func (s *SocialService) Upsert(ctx context.Context, so domain.Social) (domain.Social, error) {
	if _, err := s.contacts.GetByID(ctx, so.ContactID); err != nil {
		return domain.Social{}, err
	}

	for _, h := range []*string{&so.Instagram, &so.LinkedIn, &so.Discord, &so.Reddit, &so.GitHub, &so.Other} {
		*h = strings.TrimSpace(*h)
	}
	return s.socials.Upsert(ctx, so)
}

// Delete removes the social links of a contact.
func (s *SocialService) Delete(ctx context.Context, contactID uuid.UUID) error {
	return s.socials.DeleteByContactID(ctx, contactID)
}
