package domain

import (
	"time"

	"github.com/google/uuid"
)

// Social holds the social-network handles of a contact.
// There is at most one Social row per contact.
type Social struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	Instagram string
	LinkedIn  string
	Discord   string
	Reddit    string
	GitHub    string
	Other     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
