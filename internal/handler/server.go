// Package handler implements the HTTP handlers for the contact CRM API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, contact.go, etc.) but all share the same Server struct so
// they can access its dependencies. NewRouter registers them on a chi router.
package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/rolodex-crm/backend/internal/domain"
)

// ContactServicer defines the business operations the contact handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type ContactServicer interface {
	Create(ctx context.Context, c domain.Contact) (domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error)
	Update(ctx context.Context, c domain.Contact) (domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetDetails(ctx context.Context, id uuid.UUID) (domain.ContactDetails, error)
	ListDetails(ctx context.Context) ([]domain.ContactDetails, error)
}

// LocationServicer defines the operations on a contact's locations.
type LocationServicer interface {
	Create(ctx context.Context, l domain.Location) (domain.Location, error)
	GetByID(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error)
	ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error)
	Update(ctx context.Context, l domain.Location) (domain.Location, error)
	Delete(ctx context.Context, contactID, locationID uuid.UUID) error
}

// SocialServicer defines the operations on a contact's social links.
type SocialServicer interface {
	Get(ctx context.Context, contactID uuid.UUID) (domain.Social, error)
	Upsert(ctx context.Context, s domain.Social) (domain.Social, error)
	Delete(ctx context.Context, contactID uuid.UUID) error
}

// ReminderServicer defines the reminder operations.
type ReminderServicer interface {
	Create(ctx context.Context, r domain.Reminder) (domain.Reminder, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reminder, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error)
	ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error)
	Update(ctx context.Context, r domain.Reminder) (domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CalendarServicer produces the expanded reminder events.
type CalendarServicer interface {
	Events(ctx context.Context, from, to *time.Time) ([]domain.CalendarEvent, error)
	ICS(ctx context.Context, w io.Writer) error
}

// MapServicer produces the GeoJSON map views.
type MapServicer interface {
	Overview(ctx context.Context) (*geojson.FeatureCollection, error)
	ContactMap(ctx context.Context, contactID uuid.UUID) (*geojson.FeatureCollection, error)
}

// ExportServicer produces the flat data export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Services groups the dependencies of Server. A nil service leaves its
// routes registered; calling them is a programming error.
type Services struct {
	Contacts  ContactServicer
	Locations LocationServicer
	Socials   SocialServicer
	Reminders ReminderServicer
	Calendar  CalendarServicer
	Map       MapServicer
	Export    ExportServicer
}

// Server holds the service dependencies of every endpoint.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	contacts  ContactServicer
	locations LocationServicer
	socials   SocialServicer
	reminders ReminderServicer
	calendar  CalendarServicer
	maps      MapServicer
	export    ExportServicer
	logger    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(svc Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		contacts:  svc.Contacts,
		locations: svc.Locations,
		socials:   svc.Socials,
		reminders: svc.Reminders,
		calendar:  svc.Calendar,
		maps:      svc.Map,
		export:    svc.Export,
		logger:    logger,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{}, nil)
}

// NewRouter registers every endpoint of s on a new chi router.
// Cross-cutting middleware is applied by the caller.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", s.ListContacts)
		r.Post("/", s.CreateContact)
		r.Get("/details", s.ListContactDetails)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetContact)
			r.Put("/", s.UpdateContact)
			r.Delete("/", s.DeleteContact)
			r.Get("/details", s.GetContactDetails)
			r.Get("/map", s.GetContactMap)
			r.Get("/reminders", s.ListContactReminders)

			r.Get("/locations", s.ListLocations)
			r.Post("/locations", s.CreateLocation)
			r.Get("/locations/{locationId}", s.GetLocation)
			r.Put("/locations/{locationId}", s.UpdateLocation)
			r.Delete("/locations/{locationId}", s.DeleteLocation)

			r.Get("/socials", s.GetSocials)
			r.Put("/socials", s.UpsertSocials)
			r.Delete("/socials", s.DeleteSocials)
		})
	})

	r.Route("/reminders", func(r chi.Router) {
		r.Get("/", s.ListReminders)
		r.Post("/", s.CreateReminder)
		r.Get("/{id}", s.GetReminder)
		r.Put("/{id}", s.UpdateReminder)
		r.Delete("/{id}", s.DeleteReminder)
	})

	r.Get("/calendar/events", s.ListCalendarEvents)
	r.Get("/calendar.ics", s.GetCalendarFeed)
	r.Get("/map", s.GetMap)
	r.Get("/export", s.GetExport)

	return r
}
