package services

import (
	"context"
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/platform/config"
	"github.com/harborfleet/crewdesk/internal/utils"
)

// tokenService implements the TokenSvc for issuing JWT session tokens. It
// requires access to application configuration for secrets and expiry
// times.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
