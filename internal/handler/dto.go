package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/rolodex-crm/backend/internal/domain"
)

// --- shared -----------------------------------------------------------------

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Page is the envelope of every paginated list response.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func newPage[T any](data []T, p domain.PaginationParams, total int64) Page[T] {
	return Page[T]{
		Data:       data,
		Pagination: Pagination{Page: p.Page, Limit: p.Limit, Total: int(total), TotalPages: p.TotalPages(total)},
	}
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// --- contacts ---------------------------------------------------------------

// Interest is a key/value pair in a contact request or response.
type Interest struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"max=500"`
}

// ContactRequest is the body of POST /contacts and PUT /contacts/{id}.
type ContactRequest struct {
	FirstName     string               `json:"first_name" validate:"required,max=100"`
	MiddleName    string               `json:"middle_name,omitempty" validate:"max=100"`
	LastName      string               `json:"last_name,omitempty" validate:"max=100"`
	Phone         string               `json:"phone,omitempty" validate:"max=50"`
	Email         string               `json:"email,omitempty" validate:"max=254"`
	OtherPhones   []string             `json:"other_phones,omitempty" validate:"dive,max=50"`
	OtherEmails   []string             `json:"other_emails,omitempty" validate:"dive,max=254"`
	JobTitle      string               `json:"job_title,omitempty" validate:"max=200"`
	Company       string               `json:"company,omitempty" validate:"max=200"`
	Work          string               `json:"work,omitempty" validate:"max=500"`
	Birthday      *openapi_types.Date  `json:"birthday,omitempty"`
	Anniversaries []openapi_types.Date `json:"anniversaries,omitempty"`
	Notes         string               `json:"notes,omitempty" validate:"max=10000"`
	Groups        []string             `json:"groups,omitempty" validate:"dive,max=50"`
	Interests     []Interest           `json:"interests,omitempty" validate:"dive"`
}

// Contact is the JSON representation of a contact.
type Contact struct {
	ID            uuid.UUID            `json:"id"`
	FirstName     string               `json:"first_name"`
	MiddleName    string               `json:"middle_name"`
	LastName      string               `json:"last_name"`
	DisplayName   string               `json:"display_name"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	OtherPhones   []string             `json:"other_phones"`
	OtherEmails   []string             `json:"other_emails"`
	JobTitle      string               `json:"job_title"`
	Company       string               `json:"company"`
	Work          string               `json:"work"`
	Birthday      *openapi_types.Date  `json:"birthday,omitempty"`
	Anniversaries []openapi_types.Date `json:"anniversaries"`
	Notes         string               `json:"notes"`
	Groups        []string             `json:"groups"`
	Interests     []Interest           `json:"interests"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ContactDetails is a contact with its locations, socials and reminder IDs.
type ContactDetails struct {
	Contact          Contact     `json:"contact"`
	CurrentLocation  *Location   `json:"current_location"`
	PastLocations    []Location  `json:"past_locations"`
	VisitedLocations []Location  `json:"visited_locations"`
	Socials          Social      `json:"socials"`
	ReminderIDs      []uuid.UUID `json:"reminder_ids"`
}

func requestToContact(id uuid.UUID, body ContactRequest) domain.Contact {
	c := domain.Contact{
		ID:          id,
		FirstName:   body.FirstName,
		MiddleName:  body.MiddleName,
		LastName:    body.LastName,
		Phone:       body.Phone,
		Email:       body.Email,
		OtherPhones: body.OtherPhones,
		OtherEmails: body.OtherEmails,
		JobTitle:    body.JobTitle,
		Company:     body.Company,
		Work:        body.Work,
		Notes:       body.Notes,
		Groups:      body.Groups,
	}
	if body.Birthday != nil {
		b := body.Birthday.Time
		c.Birthday = &b
	}
	for _, a := range body.Anniversaries {
		c.Anniversaries = append(c.Anniversaries, a.Time)
	}
	for _, in := range body.Interests {
		c.Interests = append(c.Interests, domain.Interest{Key: in.Key, Value: in.Value})
	}
	return c
}

func contactToResponse(c domain.Contact) Contact {
	resp := Contact{
		ID:            c.ID,
		FirstName:     c.FirstName,
		MiddleName:    c.MiddleName,
		LastName:      c.LastName,
		DisplayName:   c.Name().String(),
		Phone:         c.Phone,
		Email:         c.Email,
		OtherPhones:   orEmpty(c.OtherPhones),
		OtherEmails:   orEmpty(c.OtherEmails),
		JobTitle:      c.JobTitle,
		Company:       c.Company,
		Work:          c.Work,
		Anniversaries: make([]openapi_types.Date, 0, len(c.Anniversaries)),
		Notes:         c.Notes,
		Groups:        orEmpty(c.Groups),
		Interests:     make([]Interest, 0, len(c.Interests)),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.Birthday != nil {
		resp.Birthday = &openapi_types.Date{Time: *c.Birthday}
	}
	for _, a := range c.Anniversaries {
		resp.Anniversaries = append(resp.Anniversaries, openapi_types.Date{Time: a})
	}
	for _, in := range c.Interests {
		resp.Interests = append(resp.Interests, Interest{Key: in.Key, Value: in.Value})
	}
	return resp
}

func detailsToResponse(d domain.ContactDetails) ContactDetails {
	resp := ContactDetails{
		Contact:          contactToResponse(d.Contact),
		PastLocations:    locationsToResponse(d.Past),
		VisitedLocations: locationsToResponse(d.Visited),
		Socials:          socialToResponse(d.Social),
		ReminderIDs:      orEmpty(d.ReminderIDs),
	}
	if d.Current != nil {
		cur := locationToResponse(*d.Current)
		resp.CurrentLocation = &cur
	}
	return resp
}

// --- locations --------------------------------------------------------------

// LocationRequest is the body of POST and PUT on /contacts/{id}/locations.
type LocationRequest struct {
	Type       string   `json:"type" validate:"required,oneof=CURRENT PREVIOUS VISITED"`
	Address    string   `json:"address,omitempty" validate:"max=500"`
	Address2   string   `json:"address2,omitempty" validate:"max=500"`
	City       string   `json:"city" validate:"required,max=200"`
	PostalCode string   `json:"postal_code,omitempty" validate:"max=20"`
	Country    string   `json:"country" validate:"required,max=100"`
	Latitude   *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Comments   string   `json:"comments,omitempty" validate:"max=2000"`
}

// Location is the JSON representation of a location.
type Location struct {
	ID         uuid.UUID `json:"id"`
	ContactID  uuid.UUID `json:"contact_id"`
	Type       string    `json:"type"`
	Address    string    `json:"address"`
	Address2   string    `json:"address2"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func requestToLocation(contactID, id uuid.UUID, body LocationRequest) domain.Location {
	return domain.Location{
		ID:         id,
		ContactID:  contactID,
		Type:       domain.LocationType(body.Type),
		Address:    body.Address,
		Address2:   body.Address2,
		City:       body.City,
		PostalCode: body.PostalCode,
		Country:    body.Country,
		Latitude:   *body.Latitude,
		Longitude:  *body.Longitude,
		Comments:   body.Comments,
	}
}

func locationToResponse(l domain.Location) Location {
	return Location{
		ID:         l.ID,
		ContactID:  l.ContactID,
		Type:       string(l.Type),
		Address:    l.Address,
		Address2:   l.Address2,
		City:       l.City,
		PostalCode: l.PostalCode,
		Country:    l.Country,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		Comments:   l.Comments,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func locationsToResponse(ls []domain.Location) []Location {
	out := make([]Location, len(ls))
	for i, l := range ls {
		out[i] = locationToResponse(l)
	}
	return out
}

// --- socials ----------------------------------------------------------------

// SocialRequest is the body of PUT /contacts/{id}/socials.
type SocialRequest struct {
	Instagram string `json:"instagram,omitempty" validate:"max=100"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"max=200"`
	Discord   string `json:"discord,omitempty" validate:"max=100"`
	Reddit    string `json:"reddit,omitempty" validate:"max=100"`
	GitHub    string `json:"github,omitempty" validate:"max=100"`
	Other     string `json:"other,omitempty" validate:"max=500"`
}

// Social is the JSON representation of a contact's social links.
type Social struct {
	ContactID uuid.UUID `json:"contact_id"`
	Instagram string    `json:"instagram"`
	LinkedIn  string    `json:"linkedin"`
	Discord   string    `json:"discord"`
	Reddit    string    `json:"reddit"`
	GitHub    string    `json:"github"`
	Other     string    `json:"other"`
}

func socialToResponse(s domain.Social) Social {
	return Social{
		ContactID: s.ContactID,
		Instagram: s.Instagram,
		LinkedIn:  s.LinkedIn,
		Discord:   s.Discord,
		Reddit:    s.Reddit,
		GitHub:    s.GitHub,
		Other:     s.Other,
	}
}

// --- reminders --------------------------------------------------------------

// ReminderRequest is the body of POST /reminders and PUT /reminders/{id}.
type ReminderRequest struct {
	ContactID      *uuid.UUID         `json:"contact_id,omitempty"`
	Kind           string             `json:"kind" validate:"required,oneof=BIRTHDAY ANNIVERSARY EVENT OTHER"`
	Message        string             `json:"message,omitempty" validate:"max=1000"`
	Date           openapi_types.Date `json:"date" validate:"required"`
	SendTime       string             `json:"send_time,omitempty" validate:"max=20"`
	IsRecurring    bool               `json:"is_recurring"`
	RecurrenceRule string             `json:"recurrence_rule,omitempty" validate:"omitempty,oneof=DOES_NOT_REPEAT EVERY_DAY EVERY_WEEK EVERY_MONTH EVERY_YEAR"`
}

// Reminder is the JSON representation of a reminder. Date and SendTime are
// returned exactly as stored.
type Reminder struct {
	ID             uuid.UUID  `json:"id"`
	ContactID      *uuid.UUID `json:"contact_id"`
	Kind           string     `json:"kind"`
	Message        string     `json:"message"`
	Date           string     `json:"date"`
	SendTime       string     `json:"send_time,omitempty"`
	IsRecurring    bool       `json:"is_recurring"`
	RecurrenceRule string     `json:"recurrence_rule"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func requestToReminder(id uuid.UUID, body ReminderRequest) domain.Reminder {
	return domain.Reminder{
		ID:          id,
		ContactID:   body.ContactID,
		Kind:        domain.ReminderKind(body.Kind),
		Message:     body.Message,
		Date:        body.Date.Format(openapi_types.DateFormat),
		SendTime:    body.SendTime,
		IsRecurring: body.IsRecurring,
		Rule:        domain.RecurrenceRule(body.RecurrenceRule),
	}
}

func reminderToResponse(r domain.Reminder) Reminder {
	return Reminder{
		ID:             r.ID,
		ContactID:      r.ContactID,
		Kind:           string(r.Kind),
		Message:        r.Message,
		Date:           r.Date,
		SendTime:       r.SendTime,
		IsRecurring:    r.IsRecurring,
		RecurrenceRule: string(r.Rule),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func remindersToResponse(rs []domain.Reminder) []Reminder {
	out := make([]Reminder, len(rs))
	for i, r := range rs {
		out[i] = reminderToResponse(r)
	}
	return out
}

// --- calendar ---------------------------------------------------------------

// CalendarEvent is one occurrence of a reminder on the calendar.
type CalendarEvent struct {
	ID         string     `json:"id"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Title      string     `json:"title"`
	Color      string     `json:"color"`
	ReminderID uuid.UUID  `json:"reminder_id"`
	ContactID  *uuid.UUID `json:"contact_id,omitempty"`
	Kind       string     `json:"kind"`
}

func eventToResponse(e domain.CalendarEvent) CalendarEvent {
	return CalendarEvent{
		ID:         e.ID,
		Start:      e.Start,
		End:        e.End,
		Title:      e.Title,
		Color:      e.Color,
		ReminderID: e.Reminder.ID,
		ContactID:  e.Reminder.ContactID,
		Kind:       string(e.Reminder.Kind),
	}
}

// --- export -----------------------------------------------------------------

// ExportRow is one row of the JSON export.
type ExportRow struct {
	ContactID     uuid.UUID           `json:"contact_id"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	Email         string              `json:"email,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Company       string              `json:"company,omitempty"`
	Birthday      *openapi_types.Date `json:"birthday,omitempty"`
	Groups        []string            `json:"groups"`
	LocationType  *string             `json:"location_type,omitempty"`
	City          *string             `json:"city,omitempty"`
	Country       *string             `json:"country,omitempty"`
	Latitude      *float64            `json:"latitude,omitempty"`
	Longitude     *float64            `json:"longitude,omitempty"`
	LinkedIn      string              `json:"linkedin,omitempty"`
	GitHub        string              `json:"github,omitempty"`
	Instagram     string              `json:"instagram,omitempty"`
	ReminderCount int                 `json:"reminder_count"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
