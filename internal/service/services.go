package service

import (
	"github.com/agrofield/go-field-sync/internal/config"
	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/store"
)

type Services struct {
	AuthService    AuthService
	SyncService    SyncService
	AppInfoService AppInfoService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	registry := NewDefaultApplierRegistry(
		NewFarmApplier(repos.FarmRepository, logger),
		NewSoilSampleApplier(repos.FarmRepository, repos.SoilSampleRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		SyncService:    NewSyncService(repos, registry, cfg.Sync, logger),
		AppInfoService: appInfo,
	}, nil
}
