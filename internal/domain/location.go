package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationType classifies a location in a contact's history.
type LocationType string

const (
	LocationCurrent  LocationType = "CURRENT"
	LocationPrevious LocationType = "PREVIOUS"
	LocationVisited  LocationType = "VISITED"
)

// Valid reports whether t is one of the known location types.
func (t LocationType) Valid() bool {
	switch t {
	case LocationCurrent, LocationPrevious, LocationVisited:
		return true
	}
	return false
}

// Location is an address with coordinates. A contact has at most one
// CURRENT location; older ones are kept as PREVIOUS.
type Location struct {
	ID         uuid.UUID
	ContactID  uuid.UUID
	Type       LocationType
	Address    string
	Address2   string
	City       string
	PostalCode string
	Country    string
	Latitude   float64
	Longitude  float64
	Comments   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
