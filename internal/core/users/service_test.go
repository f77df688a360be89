package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Mosaic/internal/core/users"
	"Mosaic/internal/db/memory"
)

func TestUpsertUserCreatesThenUpdates(t *testing.T) {
	store := memory.New()
	svc := users.NewUserService(store.Users(), nil)
	ctx := context.Background()

	created, err := svc.UpsertUser(ctx, users.UpsertUserRequest{
		ExternalID:  "ext-42",
		Email:       "a@example.com",
		DisplayName: "Alpha",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Same external id refreshes the profile and keeps the local id
	updated, err := svc.UpsertUser(ctx, users.UpsertUserRequest{
		ExternalID:  "ext-42",
		Email:       "a@example.com",
		DisplayName: "Alpha Renamed",
		AvatarURL:   "https://cdn.example.com/new.png",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alpha Renamed", updated.DisplayName)
	assert.Equal(t, "https://cdn.example.com/new.png", updated.AvatarURL)
}

func TestUpsertUserRequiresExternalID(t *testing.T) {
	store := memory.New()
	svc := users.NewUserService(store.Users(), nil)

	_, err := svc.UpsertUser(context.Background(), users.UpsertUserRequest{
		Email: "no-id@example.com",
	})
	assert.ErrorIs(t, err, users.ErrMissingExternalID)
}

func TestGetUserByID(t *testing.T) {
	store := memory.New()
	svc := users.NewUserService(store.Users(), nil)
	ctx := context.Background()

	created, err := svc.UpsertUser(ctx, users.UpsertUserRequest{ExternalID: "ext-1"})
	require.NoError(t, err)

	found, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
