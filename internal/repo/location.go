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

// LocationRepo defines the persistence operations for Locations.
// All write and single-read operations are scoped by contactID to enforce ownership.
type LocationRepo interface {
	// Create inserts a new location and returns the persisted record.
	// A CURRENT location demotes the contact's other CURRENT locations to
	// PREVIOUS in the same statement.
	Create(ctx context.Context, l domain.Location) (domain.Location, error)

	// GetByID retrieves a single location by its UUID, scoped to the given contactID.
	// Returns domain.ErrNotFound if no location with that ID exists under that contact.
	GetByID(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error)

	// ListByContactID returns all locations of a contact, oldest first.
	ListByContactID(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error)

	// ListByType returns the locations of every contact with the given type, oldest first.
	ListByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error)

	// Update overwrites the mutable fields of a location, scoped to the given contactID.
	// Setting the type to CURRENT demotes the contact's other CURRENT locations
	// in the same statement.
	// Returns domain.ErrNotFound if no location with that ID exists under that contact.
	Update(ctx context.Context, l domain.Location) (domain.Location, error)

	// Delete removes a location by ID, scoped to the given contactID.
	// Returns domain.ErrNotFound if no location with that ID exists under that contact.
	Delete(ctx context.Context, contactID, locationID uuid.UUID) error
}

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db db
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLocationRepo(db db) LocationRepo {
	return &pgLocationRepo{db: db}
}

const locationColumns = `id, contact_id, type, address, address2, city, postal_code,
	country, latitude, longitude, comments, created_at, updated_at`

func (r *pgLocationRepo) Create(ctx context.Context, l domain.Location) (domain.Location, error) {
	// The new row is not visible to the demoted CTE, and both run against one
	// snapshot, so only the contact's earlier CURRENT rows are demoted.
	const q = `
		WITH demoted AS (
			UPDATE locations
			SET type = 'PREVIOUS', updated_at = now()
			WHERE @type::text = 'CURRENT'
			  AND contact_id = @contact_id
			  AND type = 'CURRENT'
		)
		INSERT INTO locations (contact_id, type, address, address2, city, postal_code,
			country, latitude, longitude, comments)
		VALUES (@contact_id, @type, @address, @address2, @city, @postal_code,
			@country, @latitude, @longitude, @comments)
		RETURNING ` + locationColumns

	row := r.db.QueryRow(ctx, q, locationArgs(l))
	result, err := scanLocation(row)
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) GetByID(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error) {
	const q = `SELECT ` + locationColumns + `
		FROM locations
		WHERE id = @id AND contact_id = @contact_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": locationID, "contact_id": contactID})
	result, err := scanLocation(row)
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) ListByContactID(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error) {
	const q = `SELECT ` + locationColumns + `
		FROM locations
		WHERE contact_id = @contact_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"contact_id": contactID})
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByContactID: %w", err)
	}
	locations, err := collectLocations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByContactID: %w", err)
	}
	return locations, nil
}

func (r *pgLocationRepo) ListByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error) {
	const q = `SELECT ` + locationColumns + `
		FROM locations
		WHERE type = @type
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"type": string(t)})
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByType: %w", err)
	}
	locations, err := collectLocations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByType: %w", err)
	}
	return locations, nil
}

func (r *pgLocationRepo) Update(ctx context.Context, l domain.Location) (domain.Location, error) {
	// demoted only fires when the location exists under the contact, so a
	// miss leaves the contact's CURRENT location alone.
	const q = `
		WITH demoted AS (
			UPDATE locations
			SET type = 'PREVIOUS', updated_at = now()
			WHERE @type::text = 'CURRENT'
			  AND contact_id = @contact_id
			  AND type = 'CURRENT'
			  AND id <> @id
			  AND EXISTS (SELECT 1 FROM locations WHERE id = @id AND contact_id = @contact_id)
		)
		UPDATE locations
		SET type        = @type,
		    address     = @address,
		    address2    = @address2,
		    city        = @city,
		    postal_code = @postal_code,
		    country     = @country,
		    latitude    = @latitude,
		    longitude   = @longitude,
		    comments    = @comments,
		    updated_at  = now()
		WHERE id = @id AND contact_id = @contact_id
		RETURNING ` + locationColumns

	args := locationArgs(l)
	args["id"] = l.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanLocation(row)
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) Delete(ctx context.Context, contactID, locationID uuid.UUID) error {
	const q = `DELETE FROM locations WHERE id = @id AND contact_id = @contact_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": locationID, "contact_id": contactID})
	if err != nil {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func locationArgs(l domain.Location) pgx.NamedArgs {
	return pgx.NamedArgs{
		"contact_id":  l.ContactID,
		"type":        string(l.Type),
		"address":     l.Address,
		"address2":    l.Address2,
		"city":        l.City,
		"postal_code": l.PostalCode,
		"country":     l.Country,
		"latitude":    l.Latitude,
		"longitude":   l.Longitude,
		"comments":    l.Comments,
	}
}

// scanLocation maps a single database row into a domain.Location.
func scanLocation(s scanner) (domain.Location, error) {
	var (
		l         domain.Location
		id        pgtype.UUID
		contactID pgtype.UUID
		typ       string
	)
	err := s.Scan(&id, &contactID, &typ, &l.Address, &l.Address2, &l.City, &l.PostalCode,
		&l.Country, &l.Latitude, &l.Longitude, &l.Comments, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, domain.ErrNotFound
		}
		return domain.Location{}, err
	}
	l.ID = uuid.UUID(id.Bytes)
	l.ContactID = uuid.UUID(contactID.Bytes)
	l.Type = domain.LocationType(typ)
	return l, nil
}

func collectLocations(rows pgx.Rows) ([]domain.Location, error) {
	defer rows.Close()

	locations := []domain.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return locations, nil
}
