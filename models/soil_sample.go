package models

import (
	"encoding/json"
	"time"
)

// SoilSample is a lab or in-field measurement attached to a farm. Ownership is
// indirect: a sample belongs to whoever owns its farm, which is why pull
// queries join through the farms table.
type SoilSample struct {
	// ID is the server-assigned identifier returned to syncing clients.
	ID int64 `json:"id"`

	// FarmID references the parent farm. Submissions referencing a farm the
	// owner does not have are rejected by the applier.
	FarmID int64 `json:"farm_id"`

	// PH, N, P, K are the measured values; any of them may be absent.
	PH *float64 `json:"ph"`
	N  *float64 `json:"n"`
	P  *float64 `json:"p"`
	K  *float64 `json:"k"`

	// Extra carries device-specific measurements the schema does not model.
	Extra json.RawMessage `json:"extra"`

	// SampleDate doubles as the change watermark for incremental pulls.
	SampleDate time.Time `json:"sample_date"`
}

// TableName returns the name of the database table
// associated with the SoilSample model.
func (s SoilSample) TableName() string {
	return "soil_samples"
}
