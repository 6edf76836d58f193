package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrVersionIsNotSpecified is returned at startup when the application
	// version is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidSinceTimestamp is returned when a pull request carries a
	// `since` value that cannot be parsed as an RFC 3339 timestamp. The
	// whole pull fails; no per-record processing happens.
	ErrInvalidSinceTimestamp = errors.New("invalid since timestamp")

	// Applier payload validation errors. Each one fails only the record slot
	// that carried the bad payload.
	ErrFarmNameMissing      = errors.New("farm payload has no name")
	ErrSoilSampleFarmNotSet = errors.New("soil sample payload has no farm_id")
)
