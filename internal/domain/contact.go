// Package domain contains the core data types for the contact CRM.
// It depends only on uuid and the standard library and is imported by every
// other internal package (calendar, repo, service, handler).
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnknownContactName is displayed for reminders that are not linked to a
// contact, or whose contact has no first name.
const UnknownContactName = "Unknown Contact"

// Interest is a free-form key/value pair attached to a contact
// (e.g. "sport" → "climbing").
type Interest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Contact is the top-level aggregate. Locations, socials and reminders
// belong to a contact and are removed with it.
type Contact struct {
	ID            uuid.UUID
	FirstName     string
	MiddleName    string
	LastName      string
	Phone         string
	Email         string
	OtherPhones   []string
	OtherEmails   []string
	JobTitle      string
	Company       string
	Work          string
	Birthday      *time.Time // nil when unknown
	Anniversaries []time.Time
	Notes         string
	Groups        []string // normalised slugs, e.g. "close-friends"
	Interests     []Interest
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Name returns the contact's display name parts.
func (c Contact) Name() ContactName {
	return ContactName{First: c.FirstName, Middle: c.MiddleName, Last: c.LastName}
}

// ContactName holds the parts used to build a display name.
type ContactName struct {
	First  string
	Middle string
	Last   string
}

// String joins the non-empty name parts with single spaces.
// A name without a first name renders as UnknownContactName.
func (n ContactName) String() string {
	if strings.TrimSpace(n.First) == "" {
		return UnknownContactName
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.Middle, n.Last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ContactDetails is a contact together with everything that hangs off it.
// Current is nil when the contact has no CURRENT location.
type ContactDetails struct {
	Contact     Contact
	Current     *Location
	Past        []Location
	Visited     []Location
	Social      Social
	ReminderIDs []uuid.UUID
}
