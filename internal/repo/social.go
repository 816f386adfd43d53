package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rolodex-crm/backend/internal/domain"
)

// SocialRepo defines the persistence operations for the socials table.
// A contact has at most one socials row, so every operation is keyed by contact.
type SocialRepo interface {
	// GetByContactID returns the social links of a contact.
	// Returns domain.ErrNotFound if the contact has none.
	GetByContactID(ctx context.Context, contactID uuid.UUID) (domain.Social, error)

	// Upsert inserts the contact's social links, or overwrites them if a row
	// already exists.
	Upsert(ctx context.Context, s domain.Social) (domain.Social, error)

	// DeleteByContactID removes the social links of a contact.
	// Returns domain.ErrNotFound if the contact has none.
	DeleteByContactID(ctx context.Context, contactID uuid.UUID) error
}

// pgSocialRepo is the Postgres implementation of SocialRepo.
type pgSocialRepo struct {
	db db
}

// NewSocialRepo constructs a SocialRepo backed by the provided db connection.
func NewSocialRepo(db db) SocialRepo {
	return &pgSocialRepo{db: db}
}

const socialColumns = `id, contact_id, instagram, linkedin, discord, reddit, github, other, created_at, updated_at`

func (r *pgSocialRepo) GetByContactID(ctx context.Context, contactID uuid.UUID) (domain.Social, error) {
	const q = `SELECT ` + socialColumns + ` FROM socials WHERE contact_id = @contact_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"contact_id": contactID})
	result, err := scanSocial(row)
	if err != nil {
		return domain.Social{}, fmt.Errorf("repo.SocialRepo.GetByContactID: %w", err)
	}
	return result, nil
}

// Upsert relies on the unique contact_id constraint. On conflict the handles
// are replaced and created_at of the original row is kept.
func (r *pgSocialRepo) Upsert(ctx context.Context, s domain.Social) (domain.Social, error) {
	const q = `
		INSERT INTO socials (contact_id, instagram, linkedin, discord, reddit, github, other)
		VALUES (@contact_id, @instagram, @linkedin, @discord, @reddit, @github, @other)
		ON CONFLICT (contact_id) DO UPDATE
		SET instagram  = EXCLUDED.instagram,
		    linkedin   = EXCLUDED.linkedin,
		    discord    = EXCLUDED.discord,
		    reddit     = EXCLUDED.reddit,
		    github     = EXCLUDED.github,
		    other      = EXCLUDED.other,
		    updated_at = now()
		RETURNING ` + socialColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"contact_id": s.ContactID,
		"instagram":  s.Instagram,
		"linkedin":   s.LinkedIn,
		"discord":    s.Discord,
		"reddit":     s.Reddit,
		"github":     s.GitHub,
		"other":      s.Other,
	})
	result, err := scanSocial(row)
	if err != nil {
		return domain.Social{}, fmt.Errorf("repo.SocialRepo.Upsert: %w", err)
	}
	return result, nil
}

func (r *pgSocialRepo) DeleteByContactID(ctx context.Context, contactID uuid.UUID) error {
	const q = `DELETE FROM socials WHERE contact_id = @contact_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"contact_id": contactID})
	if err != nil {
		return fmt.Errorf("repo.SocialRepo.DeleteByContactID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SocialRepo.DeleteByContactID: %w", domain.ErrNotFound)
	}
	return nil
}

// scanSocial maps a single database row into a domain.Social.
func scanSocial(s scanner) (domain.Social, error) {
	var (
		so        domain.Social
		id        pgtype.UUID
		contactID pgtype.UUID
	)
	err := s.Scan(&id, &contactID, &so.Instagram, &so.LinkedIn, &so.Discord, &so.Reddit,
		&so.GitHub, &so.Other, &so.CreatedAt, &so.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Social{}, domain.ErrNotFound
		}
		return domain.Social{}, err
	}
	so.ID = uuid.UUID(id.Bytes)
	so.ContactID = uuid.UUID(contactID.Bytes)
	return so, nil
}
