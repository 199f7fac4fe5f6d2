package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
)

// authService is the concrete implementation of AuthService. Session keys
// are HS256 JWTs; the owner of the collections is the "sub" claim.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify session keys.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued key.
	// Keys whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued key remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg. All state is read-only after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueSessionKey signs a new session key for ownerID.
//
// Returns ErrInvalidDataProvided for an empty owner and a wrapped
// ErrSessionKeyCreation when signing fails.
func (a *authService) IssueSessionKey(ctx context.Context, ownerID string) (models.Token, error) {
	if ownerID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateSessionKey(a.tokenIssuer, ownerID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("session key creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrSessionKeyCreation, err)
	}

	return token, nil
}

// ParseSessionKey verifies the signature, issuer and expiry of authKey.
// Any failure is normalised to ErrSessionInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseSessionKey(ctx context.Context, authKey string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionKey(authKey, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session key rejected")
		return models.Token{}, ErrSessionInvalid
	}

	return token, nil
}
