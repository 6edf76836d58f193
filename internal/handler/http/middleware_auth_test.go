package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/service"
	"github.com/agrofield/go-field-sync/internal/utils"
	"github.com/agrofield/go-field-sync/models"
)

type mockAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func newHandlerWithAuthService(as service.AuthService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService: as,
		},
		logger: logger.Nop(),
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid-token" {
				t.Fatalf("unexpected token string: %q", tokenString)
			}
			return models.Token{OwnerID: 7}, nil
		},
	})

	var gotOwnerID int64
	var ownerFound bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOwnerID, ownerFound = utils.GetOwnerIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !ownerFound {
		t.Fatalf("owner ID was not stored in context")
	}
	if gotOwnerID != 7 {
		t.Fatalf("expected owner 7, got %d", gotOwnerID)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		parseErr   error
	}{
		{name: "missing header", authHeader: ""},
		{name: "header without token", authHeader: "Bearer"},
		{name: "empty token", authHeader: "Bearer "},
		{name: "expired token", authHeader: "Bearer expired", parseErr: service.ErrTokenIsExpired},
		{name: "invalid token", authHeader: "Bearer garbage", parseErr: service.ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{
				parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
					if tt.parseErr == nil {
						t.Fatalf("ParseToken must not be called for %q", tt.name)
					}
					return models.Token{}, fmt.Errorf("parse: %w", tt.parseErr)
				},
			})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatalf("next handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
		})
	}
}
