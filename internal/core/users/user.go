package users

import (
	"time"
)

// User represents an account provisioned by the external auth layer.
// This service never creates users on its own initiative: rows are upserted
// when the auth collaborator completes a login, and read back for comment
// attribution and session hydration.
type User struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ExternalID  string    `json:"-" db:"external_id"`
	Email       string    `json:"email" db:"email"`
	DisplayName string    `json:"name" db:"display_name"`
	AvatarURL   string    `json:"avatarUrl" db:"avatar_url"`
	ID          int64     `json:"id" db:"id"`
}

// UpsertUserRequest carries the profile fields delivered by the identity
// provider. ExternalID is the provider's stable subject identifier.
type UpsertUserRequest struct {
	ExternalID  string `json:"externalId"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
}
