package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrofield/go-field-sync/internal/config"
	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/utils"
	"github.com/agrofield/go-field-sync/models"
)

// authService is the concrete implementation of [AuthService]. It only
// verifies bearer tokens; accounts, registration, and token issuance belong
// to the account service this server trusts through the shared sign key.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens from any other issuer
	// are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] populated with verification
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates tokenString (signature, issuer, expiry) and returns
// the parsed token with its owner id.
//
// Returns:
//   - ErrTokenIsExpired when the token's exp claim is in the past.
//   - ErrTokenIsExpiredOrInvalid for any other validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Err(err).Str("func", "authService.ParseToken").Msg("token expired")
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}

		log.Err(err).Str("func", "authService.ParseToken").Msg("token validation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
