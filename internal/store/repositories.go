package store

import (
	"context"

	"github.com/agrofield/go-field-sync/internal/config"
	"github.com/agrofield/go-field-sync/internal/logger"
)

// Repositories bundles every data-access interface the service layer needs.
type Repositories struct {
	SyncLogRepository    SyncLogRepository
	FarmRepository       FarmRepository
	SoilSampleRepository SoilSampleRepository
}

// NewRepositories opens the configured database, applies pending migrations,
// and wires all repositories to the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Repositories{
		SyncLogRepository:    NewSyncLogRepository(db, log),
		FarmRepository:       NewFarmRepository(db, log),
		SoilSampleRepository: NewSoilSampleRepository(db, log),
	}, nil
}
