package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	portsrepo "github.com/harborfleet/crewdesk/internal/core/ports/repositories"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/utils"
)

// userService implements the UserSvc interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvc {
	return &userService{userRepo: userRepo}
}

// RegisterUser creates a new HR user with a bcrypt-hashed password.
func (s *userService) RegisterUser(ctx context.Context, name, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password must not be empty")
	}

	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil, apperrors.ErrDuplicate
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability", "username", username)
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "username", username)
		return nil, err
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID, "username", username)
	return &user, nil
}

// Authenticate verifies credentials and returns the matching user. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for authentication", "username", username)
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", "username", username)
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", "user_id", userID)
		}
		return nil, err
	}
	return user, nil
}
