package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofield/go-field-sync/internal/config"
	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/utils"
)

func TestAuthService_ParseToken(t *testing.T) {
	const (
		signKey = "test-sign-key"
		issuer  = "agrofield"
	)

	svc := NewAuthService(config.App{TokenSignKey: signKey, TokenIssuer: issuer}, logger.Nop())
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		tokenString, err := utils.GenerateJWTToken(issuer, 7, time.Hour, signKey)
		require.NoError(t, err)

		token, err := svc.ParseToken(ctx, tokenString)
		require.NoError(t, err)
		assert.Equal(t, int64(7), token.OwnerID)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString, err := utils.GenerateJWTToken(issuer, 7, -time.Hour, signKey)
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, tokenString)
		require.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		tokenString, err := utils.GenerateJWTToken(issuer, 7, time.Hour, "another-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, tokenString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tokenString, err := utils.GenerateJWTToken("someone-else", 7, time.Hour, signKey)
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, tokenString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ParseToken(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}

func TestAppInfoService(t *testing.T) {
	t.Run("version is returned", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{Version: "1.2.3", TokenSignKey: "k", TokenIssuer: "i"}, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := NewAppInfoService(config.App{TokenSignKey: "k", TokenIssuer: "i"}, logger.Nop())
		require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
