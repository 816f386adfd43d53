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

// ReminderRepo defines the persistence operations for Reminders.
type ReminderRepo interface {
	// Create inserts a new reminder and returns the persisted record.
	Create(ctx context.Context, rem domain.Reminder) (domain.Reminder, error)

	// GetByID retrieves a single reminder by its UUID primary key.
	// Returns domain.ErrNotFound if no reminder with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reminder, error)

	// List returns all reminders ordered by date ascending.
	List(ctx context.Context) ([]domain.Reminder, error)

	// ListPaged returns one page of reminders in List order and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error)

	// ListByContactID returns the reminders of one contact ordered by date ascending.
	ListByContactID(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error)

	// ListWithContacts returns every reminder joined with the name of its contact.
	ListWithContacts(ctx context.Context) ([]domain.ReminderWithContact, error)

	// Update overwrites the mutable fields of a reminder and returns the updated
	// record. Returns domain.ErrNotFound if no reminder with that ID exists.
	Update(ctx context.Context, rem domain.Reminder) (domain.Reminder, error)

	// Delete removes a reminder by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgReminderRepo is the Postgres implementation of ReminderRepo.
type pgReminderRepo struct {
	db db
}

// NewReminderRepo constructs a ReminderRepo backed by the provided db connection.
func NewReminderRepo(db db) ReminderRepo {
	return &pgReminderRepo{db: db}
}

// reminderColumns reads date and send_time back in their textual form so the
// calendar sees exactly what the store holds.
const reminderColumns = `r.id, r.contact_id, r.kind, r.message,
	to_char(r.date, 'YYYY-MM-DD'),
	coalesce(to_char(r.send_time, 'HH24:MI:SS'), ''),
	r.is_recurring, r.recurrence_rule, r.created_at, r.updated_at`

func (r *pgReminderRepo) Create(ctx context.Context, rem domain.Reminder) (domain.Reminder, error) {
	const q = `
		INSERT INTO reminders AS r (contact_id, kind, message, date, send_time, is_recurring, recurrence_rule)
		VALUES (@contact_id, @kind, @message, @date::date, nullif(@send_time, '')::time,
			@is_recurring, @recurrence_rule)
		RETURNING ` + reminderColumns

	row := r.db.QueryRow(ctx, q, reminderArgs(rem))
	result, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("repo.ReminderRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgReminderRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reminder, error) {
	const q = `SELECT ` + reminderColumns + ` FROM reminders r WHERE r.id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("repo.ReminderRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgReminderRepo) List(ctx context.Context) ([]domain.Reminder, error) {
	const q = `SELECT ` + reminderColumns + ` FROM reminders r ORDER BY r.date, r.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ReminderRepo.List: %w", err)
	}
	reminders, err := collectReminders(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ReminderRepo.List: %w", err)
	}
	return reminders, nil
}

func (r *pgReminderRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error) {
	const countQ = `SELECT count(*) FROM reminders`
	const q = `SELECT ` + reminderColumns + `
		FROM reminders r
		ORDER BY r.date, r.id
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ReminderRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ReminderRepo.ListPaged: %w", err)
	}
	reminders, err := collectReminders(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ReminderRepo.ListPaged: %w", err)
	}
	return reminders, total, nil
}

func (r *pgReminderRepo) ListByContactID(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error) {
	const q = `SELECT ` + reminderColumns + `
		FROM reminders r
		WHERE r.contact_id = @contact_id
		ORDER BY r.date, r.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"contact_id": contactID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReminderRepo.ListByContactID: %w", err)
	}
	reminders, err := collectReminders(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ReminderRepo.ListByContactID: %w", err)
	}
	return reminders, nil
}

// ListWithContacts uses a LEFT JOIN so reminders without a contact are kept
// with NULL name columns.
func (r *pgReminderRepo) ListWithContacts(ctx context.Context) ([]domain.ReminderWithContact, error) {
	const q = `SELECT ` + reminderColumns + `, c.first_name, c.middle_name, c.last_name
		FROM reminders r
		LEFT JOIN contacts c ON c.id = r.contact_id
		ORDER BY r.date, r.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ReminderRepo.ListWithContacts: %w", err)
	}
	defer rows.Close()

	out := []domain.ReminderWithContact{}
	for rows.Next() {
		var first, middle, last pgtype.Text
		rem, err := scanReminder(rows, &first, &middle, &last)
		if err != nil {
			return nil, fmt.Errorf("repo.ReminderRepo.ListWithContacts: scan: %w", err)
		}
		item := domain.ReminderWithContact{Reminder: rem}
		if first.Valid {
			item.Contact = &domain.ContactName{First: first.String, Middle: middle.String, Last: last.String}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReminderRepo.ListWithContacts: rows: %w", err)
	}
	return out, nil
}

func (r *pgReminderRepo) Update(ctx context.Context, rem domain.Reminder) (domain.Reminder, error) {
	const q = `
		UPDATE reminders AS r
		SET contact_id      = @contact_id,
		    kind            = @kind,
		    message         = @message,
		    date            = @date::date,
		    send_time       = nullif(@send_time, '')::time,
		    is_recurring    = @is_recurring,
		    recurrence_rule = @recurrence_rule,
		    updated_at      = now()
		WHERE r.id = @id
		RETURNING ` + reminderColumns

	args := reminderArgs(rem)
	args["id"] = rem.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("repo.ReminderRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgReminderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reminders WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ReminderRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReminderRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func reminderArgs(rem domain.Reminder) pgx.NamedArgs {
	return pgx.NamedArgs{
		"contact_id":      rem.ContactID, // nil becomes NULL
		"kind":            string(rem.Kind),
		"message":         rem.Message,
		"date":            rem.Date,
		"send_time":       rem.SendTime,
		"is_recurring":    rem.IsRecurring,
		"recurrence_rule": string(rem.Rule),
	}
}

// scanReminder maps a single database row into a domain.Reminder. Extra
// destinations are scanned after the reminder columns.
func scanReminder(s scanner, extra ...any) (domain.Reminder, error) {
	var (
		rem       domain.Reminder
		id        pgtype.UUID
		contactID pgtype.UUID
		kind      string
		rule      string
	)
	dest := append([]any{&id, &contactID, &kind, &rem.Message, &rem.Date, &rem.SendTime,
		&rem.IsRecurring, &rule, &rem.CreatedAt, &rem.UpdatedAt}, extra...)

	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reminder{}, domain.ErrNotFound
		}
		return domain.Reminder{}, err
	}

	rem.ID = uuid.UUID(id.Bytes)
	if contactID.Valid {
		cid := uuid.UUID(contactID.Bytes)
		rem.ContactID = &cid
	}
	rem.Kind = domain.ReminderKind(kind)
	rem.Rule = domain.RecurrenceRule(rule)
	return rem, nil
}

func collectReminders(rows pgx.Rows) ([]domain.Reminder, error) {
	defer rows.Close()

	reminders := []domain.Reminder{}
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return reminders, nil
}
