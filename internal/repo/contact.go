// Package repo contains all database access logic for the contact CRM.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rolodex-crm/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ContactRepo defines the persistence operations for Contacts.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type ContactRepo interface {
	// Create inserts a new contact and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated).
	Create(ctx context.Context, c domain.Contact) (domain.Contact, error)

	// GetByID retrieves a single contact by its UUID primary key.
	// Returns domain.ErrNotFound if no contact with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error)

	// List returns all contacts ordered by last name, then first name.
	List(ctx context.Context) ([]domain.Contact, error)

	// ListPaged returns one page of contacts in List order and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error)

	// Update overwrites the mutable fields of an existing contact and returns the
	// updated record. Returns domain.ErrNotFound if no contact with that ID exists.
	Update(ctx context.Context, c domain.Contact) (domain.Contact, error)

	// Delete removes a contact by ID together with its locations, socials and
	// reminders. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgContactRepo is the Postgres implementation of ContactRepo.
type pgContactRepo struct {
	db db
}

// NewContactRepo constructs a ContactRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewContactRepo(db db) ContactRepo {
	return &pgContactRepo{db: db}
}

const contactColumns = `id, first_name, middle_name, last_name, phone, email,
	other_phones, other_emails, job_title, company, work, birthday,
	anniversaries, notes, groups, interests, created_at, updated_at`

// Create inserts a new contact row and returns the full persisted record.
func (r *pgContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	const q = `
		INSERT INTO contacts (first_name, middle_name, last_name, phone, email,
			other_phones, other_emails, job_title, company, work, birthday,
			anniversaries, notes, groups, interests)
		VALUES (@first_name, @middle_name, @last_name, @phone, @email,
			@other_phones, @other_emails, @job_title, @company, @work, @birthday,
			@anniversaries, @notes, @groups, @interests)
		RETURNING ` + contactColumns

	row := r.db.QueryRow(ctx, q, contactArgs(c))
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a contact by primary key.
func (r *pgContactRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	const q = `SELECT ` + contactColumns + ` FROM contacts WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all contacts ordered alphabetically.
func (r *pgContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `SELECT ` + contactColumns + ` FROM contacts ORDER BY last_name, first_name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.List: %w", err)
	}
	contacts, err := collectContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.List: %w", err)
	}
	return contacts, nil
}

// ListPaged returns one page of contacts and the total number of contacts.
func (r *pgContactRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error) {
	const countQ = `SELECT count(*) FROM contacts`
	const q = `SELECT ` + contactColumns + `
		FROM contacts
		ORDER BY last_name, first_name, id
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ContactRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ContactRepo.ListPaged: %w", err)
	}
	contacts, err := collectContacts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ContactRepo.ListPaged: %w", err)
	}
	return contacts, total, nil
}

// Update overwrites the mutable fields of a contact and returns the updated record.
func (r *pgContactRepo) Update(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	const q = `
		UPDATE contacts
		SET first_name    = @first_name,
		    middle_name   = @middle_name,
		    last_name     = @last_name,
		    phone         = @phone,
		    email         = @email,
		    other_phones  = @other_phones,
		    other_emails  = @other_emails,
		    job_title     = @job_title,
		    company       = @company,
		    work          = @work,
		    birthday      = @birthday,
		    anniversaries = @anniversaries,
		    notes         = @notes,
		    groups        = @groups,
		    interests     = @interests,
		    updated_at    = now()
		WHERE id = @id
		RETURNING ` + contactColumns

	args := contactArgs(c)
	args["id"] = c.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a contact by primary key. Child rows go with it via ON DELETE CASCADE.
func (r *pgContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM contacts WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ContactRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ContactRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// contactArgs maps the writable contact fields to named query arguments.
// Nil slices are sent as empty arrays so NOT NULL array columns accept them.
func contactArgs(c domain.Contact) pgx.NamedArgs {
	return pgx.NamedArgs{
		"first_name":    c.FirstName,
		"middle_name":   c.MiddleName,
		"last_name":     c.LastName,
		"phone":         c.Phone,
		"email":         c.Email,
		"other_phones":  nonNil(c.OtherPhones),
		"other_emails":  nonNil(c.OtherEmails),
		"job_title":     c.JobTitle,
		"company":       c.Company,
		"work":          c.Work,
		"birthday":      c.Birthday, // nil becomes NULL
		"anniversaries": nonNil(c.Anniversaries),
		"notes":         c.Notes,
		"groups":        nonNil(c.Groups),
		"interests":     nonNil(c.Interests),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanContact maps a single database row into a domain.Contact.
// It handles the UUID and nullable birthday conversions.
func scanContact(s scanner) (domain.Contact, error) {
	var (
		c        domain.Contact
		id       pgtype.UUID
		birthday pgtype.Date
		annivs   []time.Time
	)

	err := s.Scan(&id, &c.FirstName, &c.MiddleName, &c.LastName, &c.Phone, &c.Email,
		&c.OtherPhones, &c.OtherEmails, &c.JobTitle, &c.Company, &c.Work, &birthday,
		&annivs, &c.Notes, &c.Groups, &c.Interests, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contact{}, domain.ErrNotFound
		}
		return domain.Contact{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	if birthday.Valid {
		b := birthday.Time
		c.Birthday = &b
	}
	c.Anniversaries = annivs
	return c, nil
}

func collectContacts(rows pgx.Rows) ([]domain.Contact, error) {
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return contacts, nil
}
