package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/store"
	"github.com/agrofield/go-field-sync/models"
)

// soilSamplePayload is the decoded shape of a pushed soil_sample record.
// FarmID must reference a server-side farm id: devices are expected to push
// farms first and remap their local farm references from the push response.
type soilSamplePayload struct {
	FarmID int64           `json:"farm_id"`
	PH     *float64        `json:"ph"`
	N      *float64        `json:"n"`
	P      *float64        `json:"p"`
	K      *float64        `json:"k"`
	Extra  json.RawMessage `json:"extra"`
}

// SoilSampleApplier materializes "soil_sample" records pushed from field
// devices. A sample referencing a farm the owner does not have is rejected,
// which surfaces as a per-slot failure in the push response.
type SoilSampleApplier struct {
	farmRepository       store.FarmRepository
	soilSampleRepository store.SoilSampleRepository

	logger *logger.Logger
}

// NewSoilSampleApplier constructs a [SoilSampleApplier] backed by the given
// repositories.
func NewSoilSampleApplier(
	farmRepository store.FarmRepository,
	soilSampleRepository store.SoilSampleRepository,
	logger *logger.Logger,
) *SoilSampleApplier {
	return &SoilSampleApplier{
		farmRepository:       farmRepository,
		soilSampleRepository: soilSampleRepository,
		logger:               logger,
	}
}

// Apply implements [RecordApplier]. It decodes the payload, verifies the
// referenced farm exists and belongs to the owner, and inserts the sample.
func (a *SoilSampleApplier) Apply(ctx context.Context, ownerID int64, payload json.RawMessage) (int64, error) {
	log := logger.FromContext(ctx)

	var p soilSamplePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Err(err).
			Str("func", "SoilSampleApplier.Apply").
			Int64("owner_id", ownerID).
			Msg("malformed soil sample payload")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if p.FarmID == 0 {
		return 0, ErrSoilSampleFarmNotSet
	}

	exists, err := a.farmRepository.Exists(ctx, ownerID, p.FarmID)
	if err != nil {
		log.Err(err).
			Str("func", "SoilSampleApplier.Apply").
			Int64("owner_id", ownerID).
			Int64("farm_id", p.FarmID).
			Msg("failed to check referenced farm")
		return 0, fmt.Errorf("failed to check referenced farm: %w", err)
	}
	if !exists {
		return 0, store.ErrFarmNotFound
	}

	sample, err := a.soilSampleRepository.Create(ctx, models.SoilSample{
		FarmID: p.FarmID,
		PH:     p.PH,
		N:      p.N,
		P:      p.P,
		K:      p.K,
		Extra:  p.Extra,
	})
	if err != nil {
		log.Err(err).
			Str("func", "SoilSampleApplier.Apply").
			Int64("owner_id", ownerID).
			Int64("farm_id", p.FarmID).
			Msg("failed to create soil sample")
		return 0, fmt.Errorf("failed to create soil sample: %w", err)
	}

	return sample.ID, nil
}
