package models

import (
	"encoding/json"
	"time"
)

// Well-known record types handled by the shipped appliers. The set is open:
// any other string is accepted by the push endpoint and ledgered with a null
// server id.
const (
	RecordTypeFarm       = "farm"
	RecordTypeSoilSample = "soil_sample"
)

// ClientRecord is one item of a push batch: a record created on a device
// while offline, identified by a client-generated id.
type ClientRecord struct {
	// ClientID is the device-minted idempotency key, unique per owner and
	// record type.
	ClientID string `json:"client_id"`

	// RecordType selects the applier that materializes the payload.
	RecordType string `json:"record_type"`

	// Payload is the record body as an opaque JSON object. Its shape is the
	// applier's business, not the sync engine's.
	Payload json.RawMessage `json:"payload"`
}

// PushRequest is the body of POST /api/sync/push: an ordered batch of
// client-created records.
type PushRequest struct {
	Records []ClientRecord `json:"records"`
}

// PushResult is the outcome for a single slot of a push batch. The response
// carries exactly one result per submitted record, in submission order.
//
// A nil ServerID with an empty Error means the record type was not recognised
// (the submission is still ledgered). A non-empty Error means the applier or
// the ledger failed for this slot only; the client should retry just this record.
type PushResult struct {
	ClientID   string `json:"client_id"`
	RecordType string `json:"record_type"`
	ServerID   *int64 `json:"server_id"`
	Error      string `json:"error,omitempty"`
}

// PushResponse is the body returned by POST /api/sync/push.
type PushResponse struct {
	Results []PushResult `json:"results"`
}

// PullRecord is one server-side record returned by an incremental pull.
type PullRecord struct {
	RecordType string          `json:"record_type"`
	ServerID   int64           `json:"server_id"`
	Payload    json.RawMessage `json:"payload"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

// PullResponse is the body returned by GET /api/sync/pull.
type PullResponse struct {
	Records []PullRecord `json:"records"`
}
