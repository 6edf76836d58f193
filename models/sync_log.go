package models

import (
	"encoding/json"
	"time"
)

// SyncLogEntry is one row of the idempotency ledger: the durable proof that a
// particular client submission has already been processed.
//
// The triple (OwnerID, ClientID, RecordType) is unique — at most one entry ever
// exists for a given client-generated submission. That constraint is what turns
// at-least-once delivery (devices retry on timeout or network loss) into
// effectively-once application: a retry finds the entry and becomes a pure read.
//
// Entries are created exactly once, never mutated, and never deleted.
type SyncLogEntry struct {
	// ID is the server-side primary key of the ledger row.
	ID int64 `json:"id"`

	// OwnerID identifies the account that submitted the record.
	// It is part of the unique key so that colliding client ids from
	// different owners remain fully isolated.
	OwnerID int64 `json:"owner_id"`

	// ClientID is the identifier minted by the submitting device before any
	// server contact, typically a random token. Unique per owner and record type.
	ClientID string `json:"client_id"`

	// RecordType is the open-ended string tag naming the kind of record
	// ("farm", "soil_sample", ...). Unknown types are still ledgered.
	RecordType string `json:"record_type"`

	// ServerID is the identifier assigned by the domain store when the record
	// was applied. Nil only for record types no applier recognised.
	ServerID *int64 `json:"server_id"`

	// Payload is the submitted record body, retained verbatim for audit and
	// debugging. The ledger never interprets it.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the moment the entry was committed. Immutable.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SyncLogEntry model.
func (e SyncLogEntry) TableName() string {
	return "sync_log"
}
