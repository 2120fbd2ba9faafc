package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

func seededDirectory() domain.UserDirectory {
	return NewMemoryUserDirectory([]domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Password: "password123"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Password: "password123"},
	}, testLogger())
}

func TestCreateUserEnforcesEmailUniqueness(t *testing.T) {
	directory := seededDirectory()

	_, err := directory.CreateUser("Johnny", "john@example.com", "other")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// Compare is case-sensitive: a different casing is a new account.
	user, err := directory.CreateUser("Johnny", "John@example.com", "other")
	require.NoError(t, err)
	assert.Equal(t, "John@example.com", user.Email)
}

func TestCreateUserCountsPastSeedIDs(t *testing.T) {
	directory := seededDirectory()

	first, err := directory.CreateUser("A", "a@x.com", "pw")
	require.NoError(t, err)
	second, err := directory.CreateUser("B", "b@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, int64(3), first.ID)
	assert.Equal(t, int64(4), second.ID)
}

func TestGetUserByEmail(t *testing.T) {
	directory := seededDirectory()

	user, err := directory.GetUserByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)

	_, err = directory.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
