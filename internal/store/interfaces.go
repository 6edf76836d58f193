package store

import (
	"context"
	"time"

	"github.com/agrofield/go-field-sync/models"
)

// ErrorClassificator inspects driver-level errors so repositories can react
// to well-known SQL failure classes without dialect-specific code.
type ErrorClassificator interface {
	// Classify reports whether a failed operation is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint violation.
	// The sync ledger relies on this as its only concurrency-control signal.
	IsUniqueViolation(err error) bool
}

// SyncLogRepository is the idempotency ledger: the single source of truth for
// "have we already processed this submission".
type SyncLogRepository interface {
	// Find performs an exact-match lookup by the unique
	// (owner_id, client_id, record_type) triple.
	// Returns ErrSyncEntryNotFound when no entry exists.
	Find(ctx context.Context, ownerID int64, clientID, recordType string) (models.SyncLogEntry, error)

	// Record durably commits one ledger entry. Returns ErrDuplicateSyncEntry
	// when the unique constraint rejects the insert because a concurrent push
	// already recorded the same triple.
	Record(ctx context.Context, entry models.SyncLogEntry) (models.SyncLogEntry, error)
}

// FarmRepository is the domain store for farms consumed by the farm applier
// and the pull coordinator.
type FarmRepository interface {
	// Create inserts a farm and returns it with the server-assigned ID.
	Create(ctx context.Context, farm models.Farm) (models.Farm, error)

	// Exists reports whether the farm belongs to the owner. Used by the
	// soil-sample applier to reject orphan references.
	Exists(ctx context.Context, ownerID, farmID int64) (bool, error)

	// ListChangedSince returns the owner's farms created at or after since
	// (all farms when since is nil), most recent first, capped at limit.
	ListChangedSince(ctx context.Context, ownerID int64, since *time.Time, limit uint64) ([]models.Farm, error)
}

// SoilSampleRepository is the domain store for soil samples consumed by the
// soil-sample applier and the pull coordinator.
type SoilSampleRepository interface {
	// Create inserts a sample and returns it with the server-assigned ID.
	Create(ctx context.Context, sample models.SoilSample) (models.SoilSample, error)

	// ListChangedSince returns samples belonging to the owner's farms taken
	// at or after since (all samples when since is nil), most recent first,
	// capped at limit. Ownership is resolved through the farms table.
	ListChangedSince(ctx context.Context, ownerID int64, since *time.Time, limit uint64) ([]models.SoilSample, error)
}
