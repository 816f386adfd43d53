package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/handler"
)

// ---- mock ContactServicer --------------------------------------------------

type mockContactServicer struct {
	create      func(ctx context.Context, c domain.Contact) (domain.Contact, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Contact, error)
	listPaged   func(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error)
	update      func(ctx context.Context, c domain.Contact) (domain.Contact, error)
	delete      func(ctx context.Context, id uuid.UUID) error
	getDetails  func(ctx context.Context, id uuid.UUID) (domain.ContactDetails, error)
	listDetails func(ctx context.Context) ([]domain.ContactDetails, error)
}

func (m *mockContactServicer) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	return m.create(ctx, c)
}
func (m *mockContactServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	return m.getByID(ctx, id)
}
func (m *mockContactServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockContactServicer) Update(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	return m.update(ctx, c)
}
func (m *mockContactServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockContactServicer) GetDetails(ctx context.Context, id uuid.UUID) (domain.ContactDetails, error) {
	return m.getDetails(ctx, id)
}
func (m *mockContactServicer) ListDetails(ctx context.Context) ([]domain.ContactDetails, error) {
	return m.listDetails(ctx)
}

// ---- mock LocationServicer -------------------------------------------------

type mockLocationServicer struct {
	create        func(ctx context.Context, l domain.Location) (domain.Location, error)
	getByID       func(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error)
	listByContact func(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error)
	update        func(ctx context.Context, l domain.Location) (domain.Location, error)
	delete        func(ctx context.Context, contactID, locationID uuid.UUID) error
}

func (m *mockLocationServicer) Create(ctx context.Context, l domain.Location) (domain.Location, error) {
	return m.create(ctx, l)
}
func (m *mockLocationServicer) GetByID(ctx context.Context, contactID, locationID uuid.UUID) (domain.Location, error) {
	return m.getByID(ctx, contactID, locationID)
}
func (m *mockLocationServicer) ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.Location, error) {
	return m.listByContact(ctx, contactID)
}
func (m *mockLocationServicer) Update(ctx context.Context, l domain.Location) (domain.Location, error) {
	return m.update(ctx, l)
}
func (m *mockLocationServicer) Delete(ctx context.Context, contactID, locationID uuid.UUID) error {
	return m.delete(ctx, contactID, locationID)
}

// ---- mock SocialServicer ---------------------------------------------------

type mockSocialServicer struct {
	get    func(ctx context.Context, contactID uuid.UUID) (domain.Social, error)
	upsert func(ctx context.Context, s domain.Social) (domain.Social, error)
	delete func(ctx context.Context, contactID uuid.UUID) error
}

func (m *mockSocialServicer) Get(ctx context.Context, contactID uuid.UUID) (domain.Social, error) {
	return m.get(ctx, contactID)
}
func (m *mockSocialServicer) Upsert(ctx context.Context, s domain.Social) (domain.Social, error) {
	return m.upsert(ctx, s)
}
func (m *mockSocialServicer) Delete(ctx context.Context, contactID uuid.UUID) error {
	return m.delete(ctx, contactID)
}

// ---- mock ReminderServicer -------------------------------------------------

type mockReminderServicer struct {
	create        func(ctx context.Context, r domain.Reminder) (domain.Reminder, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.Reminder, error)
	listPaged     func(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error)
	listByContact func(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error)
	update        func(ctx context.Context, r domain.Reminder) (domain.Reminder, error)
	delete        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReminderServicer) Create(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	return m.create(ctx, r)
}
func (m *mockReminderServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Reminder, error) {
	return m.getByID(ctx, id)
}
func (m *mockReminderServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Reminder, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockReminderServicer) ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.Reminder, error) {
	return m.listByContact(ctx, contactID)
}
func (m *mockReminderServicer) Update(ctx context.Context, r domain.Reminder) (domain.Reminder, error) {
	return m.update(ctx, r)
}
func (m *mockReminderServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// ---- mock CalendarServicer -------------------------------------------------

type mockCalendarServicer struct {
	events func(ctx context.Context, from, to *time.Time) ([]domain.CalendarEvent, error)
	ics    func(ctx context.Context, w io.Writer) error
}

func (m *mockCalendarServicer) Events(ctx context.Context, from, to *time.Time) ([]domain.CalendarEvent, error) {
	return m.events(ctx, from, to)
}
func (m *mockCalendarServicer) ICS(ctx context.Context, w io.Writer) error {
	return m.ics(ctx, w)
}

// ---- mock MapServicer ------------------------------------------------------

type mockMapServicer struct {
	overview   func(ctx context.Context) (*geojson.FeatureCollection, error)
	contactMap func(ctx context.Context, contactID uuid.UUID) (*geojson.FeatureCollection, error)
}

func (m *mockMapServicer) Overview(ctx context.Context) (*geojson.FeatureCollection, error) {
	return m.overview(ctx)
}
func (m *mockMapServicer) ContactMap(ctx context.Context, contactID uuid.UUID) (*geojson.FeatureCollection, error) {
	return m.contactMap(ctx, contactID)
}

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.ContactServicer  = (*mockContactServicer)(nil)
	_ handler.LocationServicer = (*mockLocationServicer)(nil)
	_ handler.SocialServicer   = (*mockSocialServicer)(nil)
	_ handler.ReminderServicer = (*mockReminderServicer)(nil)
	_ handler.CalendarServicer = (*mockCalendarServicer)(nil)
	_ handler.MapServicer      = (*mockMapServicer)(nil)
	_ handler.ExportServicer   = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a router over the given services. Services a test
// does not need may be left nil.
func newHTTPHandler(svc handler.Services) http.Handler {
	return handler.NewRouter(handler.NewServer(svc, nil))
}

// do sends a request through h and returns the recorded response.
// A non-empty body is sent as JSON.
func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
