package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/rolodex-crm/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"contact_id", "first_name", "last_name", "email", "phone", "company",
	"birthday", "groups", "location_type", "city", "country",
	"latitude", "longitude", "linkedin", "github", "instagram", "reminder_count",
}

// GetExport handles GET /export.
// It returns one row per contact location, with contact fields repeated.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if !queryParam(w, r, "format", &format) {
		return
	}
	if format != nil && *format != "csv" && *format != "json" {
		badRequest(w, "format must be one of: csv, json")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.fail(w, r, err, msgContactNotFound)
		return
	}

	if format != nil && *format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domainRowToJSON(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV.
// Groups within a row are pipe-separated ("|") to keep each location on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// domainRowToJSON maps a domain.ExportRow to its JSON shape.
// Empty location fields become nil pointers (omitted in JSON).
func domainRowToJSON(r domain.ExportRow) ExportRow {
	id, _ := uuid.Parse(r.ContactID)
	row := ExportRow{
		ContactID:     id,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Company:       r.Company,
		Groups:        orEmpty(r.Groups),
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		LinkedIn:      r.LinkedIn,
		GitHub:        r.GitHub,
		Instagram:     r.Instagram,
		ReminderCount: r.ReminderCount,
	}
	if t, err := time.Parse(time.DateOnly, r.Birthday); err == nil {
		row.Birthday = &openapi_types.Date{Time: t}
	}
	if r.LocationType != "" {
		row.LocationType = &r.LocationType
	}
	if r.City != "" {
		row.City = &r.City
	}
	if r.Country != "" {
		row.Country = &r.Country
	}
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Missing coordinates are encoded as empty strings.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.ContactID,
		r.FirstName,
		r.LastName,
		r.Email,
		r.Phone,
		r.Company,
		r.Birthday,
		strings.Join(r.Groups, "|"),
		r.LocationType,
		r.City,
		r.Country,
		formatOptionalFloat(r.Latitude),
		formatOptionalFloat(r.Longitude),
		r.LinkedIn,
		r.GitHub,
		r.Instagram,
		strconv.Itoa(r.ReminderCount),
	}
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
