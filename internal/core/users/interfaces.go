package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// Upsert inserts a user keyed on the provider's external id, refreshing
	// email, display name and avatar when the row already exists.
	Upsert(ctx context.Context, req UpsertUserRequest) (*User, error)

	// GetByID retrieves a user by local id. Returns ErrUserNotFound when the
	// row does not exist.
	GetByID(ctx context.Context, id int64) (*User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	UpsertUser(ctx context.Context, req UpsertUserRequest) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}
