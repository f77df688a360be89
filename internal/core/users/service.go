package users

import (
	"context"
	"fmt"
	"log/slog"
)

// userService implements the UserService interface
type userService struct {
	repo   UserRepository
	logger *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(repo UserRepository, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{repo: repo, logger: logger}
}

// UpsertUser records a login delivered by the external auth layer.
// Idempotent: repeated logins for the same external id refresh the profile
// fields and return the same local user.
func (s *userService) UpsertUser(ctx context.Context, req UpsertUserRequest) (*User, error) {
	if req.ExternalID == "" {
		return nil, ErrMissingExternalID
	}

	user, err := s.repo.Upsert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	s.logger.Info("user upserted",
		"userID", user.ID,
		"email", user.Email)

	return user, nil
}

// GetUserByID retrieves a user by local id
func (s *userService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
