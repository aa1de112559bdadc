package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Projection Tests
// ============================================================================

func TestUser_Public_CopiesVisibleFields(t *testing.T) {
	now := time.Now().UTC()
	u := User{
		ID:           "user-1",
		Email:        "test@example.com",
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "$2a$12$secret",
		CreatedAt:    now,
	}

	p := u.Public()

	assert.Equal(t, "user-1", p.ID)
	assert.Equal(t, "test@example.com", p.Email)
	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, now, p.CreatedAt)
	assert.False(t, p.AccountConfirmationPending)
}

func TestUser_Public_PendingWhenTokenHashStored(t *testing.T) {
	hash := "$2a$12$tokenhash"
	u := User{ID: "user-1", ConfirmationTokenHash: &hash}

	assert.True(t, u.ConfirmationPending())
	assert.True(t, u.Public().AccountConfirmationPending)
}

func TestUser_Public_NotPendingAfterHashCleared(t *testing.T) {
	u := User{ID: "user-1", ConfirmationTokenHash: nil}

	assert.False(t, u.ConfirmationPending())
	assert.False(t, u.Public().AccountConfirmationPending)
}

// ============================================================================
// Serialization Tests
// ============================================================================

func TestUser_JSONNeverContainsSecretHashes(t *testing.T) {
	hash := "token-hash-value"
	u := User{
		ID:                    "user-1",
		Email:                 "test@example.com",
		PasswordHash:          "password-hash-value",
		ConfirmationTokenHash: &hash,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password-hash-value")
	assert.NotContains(t, string(data), "token-hash-value")
}

func TestPublicUser_JSONShape(t *testing.T) {
	p := PublicUser{
		ID:                         "user-1",
		Email:                      "test@example.com",
		FirstName:                  "John",
		LastName:                   "Doe",
		CreatedAt:                  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		AccountConfirmationPending: true,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.ElementsMatch(t,
		[]string{"id", "email", "firstName", "lastName", "createdAt", "accountConfirmationPending"},
		mapKeys(fields),
	)
	assert.Equal(t, true, fields["accountConfirmationPending"])
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
