package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodex-crm/backend/internal/domain"
)

func TestSocialRepo_Upsert_Create(t *testing.T) {
	rs := newTestRepos(t)
	ctx := context.Background()

	c := mustCreateContact(t, rs.contacts, "Ada")

	got, err := rs.socials.Upsert(ctx, domain.Social{ContactID: c.ID, GitHub: "ada", LinkedIn: "ada-l"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID)
	assert.Equal(t, c.ID, got.ContactID)
	assert.Equal(t, "ada", got.GitHub)
	assert.Equal(t, "ada-l", got.LinkedIn)
}

func TestSocialRepo_Upsert_ReplacesExisting(t *testing.T) {
	rs := newTestRepos(t)
	ctx := context.Background()

	c := mustCreateContact(t, rs.contacts, "Ada")
	first, err := rs.socials.Upsert(ctx, domain.Social{ContactID: c.ID, GitHub: "ada"})
	require.NoError(t, err)

	second, err := rs.socials.Upsert(ctx, domain.Social{ContactID: c.ID, Instagram: "ada.gram"})

	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert should keep the same row")
	assert.Equal(t, "ada.gram", second.Instagram)
	assert.Empty(t, second.GitHub, "omitted handles are cleared")
}

func TestSocialRepo_GetByContactID_NotFound(t *testing.T) {
	rs := newTestRepos(t)

	_, err := rs.socials.GetByContactID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSocialRepo_DeleteByContactID(t *testing.T) {
	rs := newTestRepos(t)
	ctx := context.Background()

	c := mustCreateContact(t, rs.contacts, "Ada")
	_, err := rs.socials.Upsert(ctx, domain.Social{ContactID: c.ID, Discord: "ada#1815"})
	require.NoError(t, err)

	require.NoError(t, rs.socials.DeleteByContactID(ctx, c.ID))

	err = rs.socials.DeleteByContactID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
