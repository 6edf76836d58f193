package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agrofield/go-field-sync/models"
)

// SyncService is the synchronization core: the push coordinator that applies
// client-created records effectively once, and the pull coordinator that
// produces bounded incremental snapshots.
type SyncService interface {
	// Push processes an ordered batch of client records and returns one
	// result per record, in the same order. Individual record failures do
	// not abort the batch; the returned error covers request-level problems
	// only (e.g. context cancellation).
	Push(ctx context.Context, ownerID int64, records []models.ClientRecord) ([]models.PushResult, error)

	// Pull returns the owner's records changed at or after since (the most
	// recent records when since is nil), bounded by the configured per-type
	// caps.
	Pull(ctx context.Context, ownerID int64, since *time.Time) ([]models.PullRecord, error)
}

// RecordApplier materializes one submitted record in its domain store and
// returns the server-assigned identifier. Appliers must tolerate an
// occasional redundant invocation: the push coordinator's domain write and
// ledger write are sequential, not atomic, so a crash or a true race between
// concurrent retries can invoke an applier one extra time for the same
// submission.
type RecordApplier interface {
	Apply(ctx context.Context, ownerID int64, payload json.RawMessage) (int64, error)
}

// AuthService validates bearer tokens minted by the account service.
// Issuance, registration, and session management live outside this service.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
