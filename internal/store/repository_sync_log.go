package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/models"
)

// syncLogRepository is the SQL-backed implementation of [SyncLogRepository].
// It executes all ledger operations against the "sync_log" table using the
// embedded [*DB] connection.
//
// The table's unique index on (owner_id, client_id, record_type) is the only
// concurrency-control primitive the ledger relies on: no locks are taken, and
// a rejected insert is translated into [ErrDuplicateSyncEntry] for the push
// coordinator to recover from by re-reading the winner.
type syncLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncLogRepository constructs a [SyncLogRepository] backed by the provided
// database connection and logger.
func NewSyncLogRepository(db *DB, logger *logger.Logger) SyncLogRepository {
	return &syncLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Find retrieves the ledger entry for the exact (owner_id, client_id,
// record_type) triple. No partial matching is performed.
//
// Returns [ErrSyncEntryNotFound] when no entry exists, or a wrapped low-level
// error if the query fails.
func (s *syncLogRepository) Find(ctx context.Context, ownerID int64, clientID, recordType string) (models.SyncLogEntry, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, findSyncLogEntry, ownerID, clientID, recordType)

	var entry models.SyncLogEntry
	scanErr := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.ClientID,
		&entry.RecordType,
		&entry.ServerID,
		&entry.Payload,
		&entry.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SyncLogEntry{}, ErrSyncEntryNotFound
		}

		log.Err(scanErr).
			Str("func", "syncLogRepository.Find").
			Int64("owner_id", ownerID).
			Str("client_id", clientID).
			Str("record_type", recordType).
			Msg("failed to scan sync log row")
		return models.SyncLogEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return entry, nil
}

// Record inserts one ledger entry and returns the persisted row.
//
// A unique-constraint rejection means another push committed the same triple
// first; it is reported as [ErrDuplicateSyncEntry] so the caller can re-read
// the winning entry instead of failing. Any other failure is wrapped in
// [ErrExecutingStatement].
func (s *syncLogRepository) Record(ctx context.Context, entry models.SyncLogEntry) (models.SyncLogEntry, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, insertSyncLogEntry,
		entry.OwnerID,
		entry.ClientID,
		entry.RecordType,
		entry.ServerID,
		entry.Payload,
	)

	var saved models.SyncLogEntry
	scanErr := row.Scan(
		&saved.ID,
		&saved.OwnerID,
		&saved.ClientID,
		&saved.RecordType,
		&saved.ServerID,
		&saved.Payload,
		&saved.CreatedAt,
	)
	if scanErr != nil {
		if s.errorClassificator.IsUniqueViolation(scanErr) {
			log.Debug().
				Str("func", "syncLogRepository.Record").
				Int64("owner_id", entry.OwnerID).
				Str("client_id", entry.ClientID).
				Str("record_type", entry.RecordType).
				Msg("concurrent push already recorded this submission")
			return models.SyncLogEntry{}, ErrDuplicateSyncEntry
		}

		log.Err(scanErr).
			Str("func", "syncLogRepository.Record").
			Int64("owner_id", entry.OwnerID).
			Str("client_id", entry.ClientID).
			Str("record_type", entry.RecordType).
			Msg("failed to insert sync log entry")
		return models.SyncLogEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return saved, nil
}
