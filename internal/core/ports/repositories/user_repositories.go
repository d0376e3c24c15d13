package repositories

import (
	"context"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// UserRepository stores HR users for session context. Credentials are
// remote-only; there is no cache tier for them.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
