package service

import (
	"github.com/agrofield/go-field-sync/models"
)

// ApplierRegistry maps record_type strings to their [RecordApplier]. The set
// of types is open-ended: the push coordinator treats a missing entry as "not
// applicable" rather than an error, so new record types can be introduced
// (and old clients keep working) without touching the coordinator.
//
// The registry is populated once at startup and read-only afterwards, which
// makes it safe for concurrent use by request workers.
type ApplierRegistry struct {
	appliers map[string]RecordApplier
}

// NewApplierRegistry constructs an empty registry.
func NewApplierRegistry() *ApplierRegistry {
	return &ApplierRegistry{
		appliers: make(map[string]RecordApplier),
	}
}

// Register binds an applier to a record type, replacing any previous binding.
func (r *ApplierRegistry) Register(recordType string, applier RecordApplier) {
	r.appliers[recordType] = applier
}

// Lookup returns the applier for recordType and whether one is registered.
func (r *ApplierRegistry) Lookup(recordType string) (RecordApplier, bool) {
	applier, ok := r.appliers[recordType]
	return applier, ok
}

// NewDefaultApplierRegistry builds the registry with the two record types the
// field devices produce today: farms and soil samples.
func NewDefaultApplierRegistry(farms *FarmApplier, soilSamples *SoilSampleApplier) *ApplierRegistry {
	registry := NewApplierRegistry()
	registry.Register(models.RecordTypeFarm, farms)
	registry.Register(models.RecordTypeSoilSample, soilSamples)
	return registry
}
