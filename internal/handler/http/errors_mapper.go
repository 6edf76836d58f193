package http

import (
	"errors"
	"net/http"

	"github.com/agrofield/go-field-sync/internal/service"
	"github.com/agrofield/go-field-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidSinceTimestamp:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrFarmNameMissing:         http.StatusBadRequest,
	service.ErrSoilSampleFarmNotSet:    http.StatusBadRequest,

	store.ErrSyncEntryNotFound:  http.StatusNotFound,
	store.ErrDuplicateSyncEntry: http.StatusConflict,
	store.ErrFarmNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
