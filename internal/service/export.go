package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rolodex-crm/backend/internal/domain"
)

// ExportService assembles a flat export of all contacts, their locations,
// social handles and reminder counts.
type ExportService struct {
	contacts *ContactService
}

// NewExportService constructs an ExportService on top of the contact detail view.
func NewExportService(contacts *ContactService) *ExportService {
	return &ExportService{contacts: contacts}
}

// Export returns one ExportRow per location across all contacts, the current
// location first. Contacts with no locations contribute one row with empty
// location fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	all, err := s.contacts.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, d := range all {
		base := contactRow(d)

		locs := make([]domain.Location, 0, 1+len(d.Past)+len(d.Visited))
		if d.Current != nil {
			locs = append(locs, *d.Current)
		}
		locs = append(locs, d.Past...)
		locs = append(locs, d.Visited...)

		if len(locs) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, l := range locs {
			row := base
			row.LocationType = string(l.Type)
			row.City = l.City
			row.Country = l.Country
			lat, lon := l.Latitude, l.Longitude
			row.Latitude = &lat
			row.Longitude = &lon
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// contactRow fills the contact, social and reminder columns shared by every
// row of one contact.
func contactRow(d domain.ContactDetails) domain.ExportRow {
	c := d.Contact
	row := domain.ExportRow{
		ContactID:     c.ID.String(),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Company:       c.Company,
		Groups:        c.Groups,
		LinkedIn:      d.Social.LinkedIn,
		GitHub:        d.Social.GitHub,
		Instagram:     d.Social.Instagram,
		ReminderCount: len(d.ReminderIDs),
	}
	if row.Groups == nil {
		row.Groups = []string{}
	}
	if c.Birthday != nil {
		row.Birthday = c.Birthday.Format(time.DateOnly)
	}
	return row
}
