package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHistoryEntryDropsSeconds(t *testing.T) {
	m := Message{
		SenderID:  7,
		Content:   "see you there",
		Timestamp: time.Date(2026, 4, 2, 18, 45, 59, 0, time.UTC),
	}

	entry := m.ToHistoryEntry()
	assert.Equal(t, uint(7), entry.Sender)
	assert.Equal(t, "see you there", entry.Content)
	assert.Equal(t, "18:45", entry.Time)
}

func TestJobResponseLogoLetter(t *testing.T) {
	job := Job{CompanyName: "acme corp"}
	assert.Equal(t, "A", job.ToResponse().LogoLetter)

	blank := Job{}
	assert.Equal(t, "J", blank.ToResponse().LogoLetter)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}

func TestUserResponseHidesSensitiveFields(t *testing.T) {
	u := User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: RoleAlumni}
	resp := u.ToResponse()
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, RoleAlumni, resp.Role)
}
