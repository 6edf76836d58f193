package models

import "time"

// Farm is a field boundary registered by an owner. The sync engine never
// inspects farms beyond obtaining their server-assigned identifier; the farm
// store owns the semantics.
type Farm struct {
	// ID is the server-assigned identifier returned to syncing clients.
	ID int64 `json:"id"`

	// OwnerID is the account the farm belongs to.
	OwnerID int64 `json:"-"`

	// Name is the display name of the farm ("North Field").
	Name string `json:"name"`

	// AreaHa is the farm area in hectares, when the device reported one.
	AreaHa *float64 `json:"area_ha"`

	// CreatedAt doubles as the change watermark for incremental pulls.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Farm model.
func (f Farm) TableName() string {
	return "farms"
}
