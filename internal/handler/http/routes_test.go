package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/service"
	"github.com/agrofield/go-field-sync/models"
)

func newRoutedHandler() *Handler {
	return &Handler{
		services: &service.Services{
			AuthService: &mockAuthService{
				parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
					return models.Token{OwnerID: 7}, nil
				},
			},
			SyncService: &mockSyncService{
				pullFn: func(ctx context.Context, ownerID int64, since *time.Time) ([]models.PullRecord, error) {
					return nil, nil
				},
			},
			AppInfoService: &mockAppInfoService{version: "1.2.3"},
		},
		logger: logger.Nop(),
	}
}

func TestRoutes_VersionIsOpen(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRoutes_SyncRequiresAuth(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
}

func TestRoutes_SyncWithToken(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rr.Code)
	}
}

func TestRoutes_UnsupportedMethodIsHidden(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/sync/pull", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unsupported method, got %d", rr.Code)
	}
}
