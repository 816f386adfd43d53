package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per location, with contact fields
// repeated for every location of that contact. Contacts with no locations
// yield one row with zero values for all location fields.
//
// Groups is a slice of slugs, in the order stored on the contact.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	// Contact fields, repeated for every location of the contact.
	ContactID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Birthday  string // "2006-01-02" formatted date, empty when unknown
	Groups    []string

	// Location fields, zero values when the contact has no locations.
	LocationType string
	City         string
	Country      string
	Latitude     *float64
	Longitude    *float64

	// Social handles, empty when the contact has none.
	LinkedIn  string
	GitHub    string
	Instagram string

	// ReminderCount is the number of reminders linked to the contact.
	ReminderCount int
}
