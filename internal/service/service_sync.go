package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agrofield/go-field-sync/internal/config"
	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/store"
	"github.com/agrofield/go-field-sync/models"
)

// syncService is the concrete implementation of [SyncService].
//
// The ledger, not the domain store, is the idempotency authority: Push never
// re-applies a submission the ledger already holds, and a lost race on the
// ledger commit is reconciled by reading back the winner. There is no
// transaction spanning the domain write and the ledger write — the design
// accepts that an applier can run one extra time under a true race in
// exchange for avoiding cross-store two-phase commit.
type syncService struct {
	syncLog     store.SyncLogRepository
	farms       store.FarmRepository
	soilSamples store.SoilSampleRepository
	registry    *ApplierRegistry

	farmPullLimit       uint64
	soilSamplePullLimit uint64

	logger *logger.Logger
}

// NewSyncService constructs a [SyncService] wired to the given repositories
// and applier registry, with pull caps taken from cfg.
func NewSyncService(
	repos *store.Repositories,
	registry *ApplierRegistry,
	cfg config.Sync,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		syncLog:             repos.SyncLogRepository,
		farms:               repos.FarmRepository,
		soilSamples:         repos.SoilSampleRepository,
		registry:            registry,
		farmPullLimit:       cfg.FarmPullLimit,
		soilSamplePullLimit: cfg.SoilSamplePullLimit,
		logger:              logger,
	}
}

// Push implements [SyncService].
//
// Records are processed independently, in input order, with no batch-wide
// atomicity: a failure in one slot is reported in that slot's result and
// processing continues. Per record:
//
//  1. Ledger lookup by (owner, client_id, record_type). A hit returns the
//     previously assigned server id without re-applying, even if the payload
//     differs from the original — first write wins, retries are pure reads.
//  2. On a miss the applier registered for the record type runs. Unknown
//     types are not an error: they proceed with a nil server id so the
//     client still gets a deterministic idempotent response.
//  3. The ledger entry is committed. If the unique constraint rejects it,
//     a concurrent push won the race; the entry is re-read and the winner's
//     server id returned. The duplicate domain write, if any, is accepted.
func (s *syncService) Push(ctx context.Context, ownerID int64, records []models.ClientRecord) ([]models.PushResult, error) {
	log := logger.FromContext(ctx)

	results := make([]models.PushResult, 0, len(records))

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results = append(results, s.pushOne(ctx, log, ownerID, record))
	}

	return results, nil
}

// pushOne runs the full ledger-check / apply / ledger-commit cycle for a
// single record and never fails the batch: every outcome is folded into the
// returned [models.PushResult].
func (s *syncService) pushOne(ctx context.Context, log *logger.Logger, ownerID int64, record models.ClientRecord) models.PushResult {
	result := models.PushResult{
		ClientID:   record.ClientID,
		RecordType: record.RecordType,
	}

	// Step 1: has this submission been processed already?
	existing, err := s.syncLog.Find(ctx, ownerID, record.ClientID, record.RecordType)
	if err == nil {
		result.ServerID = existing.ServerID
		return result
	}
	if !errors.Is(err, store.ErrSyncEntryNotFound) {
		log.Err(err).
			Str("func", "syncService.pushOne").
			Int64("owner_id", ownerID).
			Str("client_id", record.ClientID).
			Msg("ledger lookup failed")
		result.Error = store.ErrExecutingQuery.Error()
		return result
	}

	// Step 2: apply. Unknown record types are ledgered with a null server id.
	var serverID *int64
	if applier, ok := s.registry.Lookup(record.RecordType); ok {
		id, applyErr := applier.Apply(ctx, ownerID, record.Payload)
		if applyErr != nil {
			log.Err(applyErr).
				Str("func", "syncService.pushOne").
				Int64("owner_id", ownerID).
				Str("client_id", record.ClientID).
				Str("record_type", record.RecordType).
				Msg("applier rejected record")
			// No ledger entry: the submission is still unprocessed and a
			// retry with the same client_id may succeed.
			result.Error = applyErr.Error()
			return result
		}
		serverID = &id
	} else {
		log.Debug().
			Str("func", "syncService.pushOne").
			Str("record_type", record.RecordType).
			Msg("no applier for record type, ledgering without server id")
	}

	// Step 3: commit the ledger entry; reconcile a lost race by read-back.
	saved, err := s.syncLog.Record(ctx, models.SyncLogEntry{
		OwnerID:    ownerID,
		ClientID:   record.ClientID,
		RecordType: record.RecordType,
		ServerID:   serverID,
		Payload:    record.Payload,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSyncEntry) {
			winner, findErr := s.syncLog.Find(ctx, ownerID, record.ClientID, record.RecordType)
			if findErr != nil {
				log.Err(findErr).
					Str("func", "syncService.pushOne").
					Int64("owner_id", ownerID).
					Str("client_id", record.ClientID).
					Msg("failed to re-read ledger entry after duplicate commit")
				result.Error = store.ErrExecutingQuery.Error()
				return result
			}
			result.ServerID = winner.ServerID
			return result
		}

		log.Err(err).
			Str("func", "syncService.pushOne").
			Int64("owner_id", ownerID).
			Str("client_id", record.ClientID).
			Msg("failed to commit ledger entry")
		result.Error = err.Error()
		return result
	}

	result.ServerID = saved.ServerID
	return result
}

// Pull implements [SyncService].
//
// It concatenates the owner's farms and soil samples changed at or after
// since (the most recent ones when since is nil), each type independently
// bounded by its configured cap and ordered most-recent-first within the
// type. There is no continuation token: clients page by raising their own
// watermark to the max updated_at they observed.
func (s *syncService) Pull(ctx context.Context, ownerID int64, since *time.Time) ([]models.PullRecord, error) {
	log := logger.FromContext(ctx)

	farms, err := s.farms.ListChangedSince(ctx, ownerID, since, s.farmPullLimit)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Pull").
			Int64("owner_id", ownerID).
			Msg("failed to list changed farms")
		return nil, fmt.Errorf("failed to list changed farms: %w", err)
	}

	samples, err := s.soilSamples.ListChangedSince(ctx, ownerID, since, s.soilSamplePullLimit)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Pull").
			Int64("owner_id", ownerID).
			Msg("failed to list changed soil samples")
		return nil, fmt.Errorf("failed to list changed soil samples: %w", err)
	}

	records := make([]models.PullRecord, 0, len(farms)+len(samples))

	for _, farm := range farms {
		payload, marshalErr := json.Marshal(farm)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to marshal farm payload: %w", marshalErr)
		}

		createdAt := farm.CreatedAt
		records = append(records, models.PullRecord{
			RecordType: models.RecordTypeFarm,
			ServerID:   farm.ID,
			Payload:    payload,
			UpdatedAt:  &createdAt,
		})
	}

	for _, sample := range samples {
		payload, marshalErr := json.Marshal(sample)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to marshal soil sample payload: %w", marshalErr)
		}

		sampleDate := sample.SampleDate
		records = append(records, models.PullRecord{
			RecordType: models.RecordTypeSoilSample,
			ServerID:   sample.ID,
			Payload:    payload,
			UpdatedAt:  &sampleDate,
		})
	}

	return records, nil
}
