package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/store"
	"github.com/agrofield/go-field-sync/models"
)

// farmPayload is the subset of a pushed farm record the applier materializes.
// Devices may send more fields (boundary geometry, local notes); those stay
// in the ledger's verbatim payload but are not interpreted here.
type farmPayload struct {
	Name   string   `json:"name"`
	AreaHa *float64 `json:"area_ha"`
}

// FarmApplier materializes "farm" records pushed from field devices.
type FarmApplier struct {
	farmRepository store.FarmRepository

	logger *logger.Logger
}

// NewFarmApplier constructs a [FarmApplier] backed by the given repository.
func NewFarmApplier(farmRepository store.FarmRepository, logger *logger.Logger) *FarmApplier {
	return &FarmApplier{
		farmRepository: farmRepository,
		logger:         logger,
	}
}

// Apply implements [RecordApplier]. It decodes the payload, validates that a
// name is present, and inserts the farm for the owner.
func (a *FarmApplier) Apply(ctx context.Context, ownerID int64, payload json.RawMessage) (int64, error) {
	log := logger.FromContext(ctx)

	var p farmPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Err(err).
			Str("func", "FarmApplier.Apply").
			Int64("owner_id", ownerID).
			Msg("malformed farm payload")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if p.Name == "" {
		return 0, ErrFarmNameMissing
	}

	farm, err := a.farmRepository.Create(ctx, models.Farm{
		OwnerID: ownerID,
		Name:    p.Name,
		AreaHa:  p.AreaHa,
	})
	if err != nil {
		log.Err(err).
			Str("func", "FarmApplier.Apply").
			Int64("owner_id", ownerID).
			Str("name", p.Name).
			Msg("failed to create farm")
		return 0, fmt.Errorf("failed to create farm: %w", err)
	}

	return farm.ID, nil
}
