package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/service"
	"github.com/agrofield/go-field-sync/internal/utils"
	"github.com/agrofield/go-field-sync/models"
)

// push applies a batch of client-created records for the authenticated owner.
//
// The request body is a [models.PushRequest]; the response is a
// [models.PushResponse] with one result per submitted record, in the same
// order. Individual record failures are reported inside their result slot and
// do not fail the request: the client inspects each slot to decide what to
// retry.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.push").Msg("no owner ID was given")
		http.Error(w, "no owner ID was given", http.StatusUnauthorized)
		return
	}

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	results, err := h.services.SyncService.Push(ctx, ownerID, pushRequest.Records)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("error processing push batch")
		http.Error(w, "error processing push batch", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PushResponse{Results: results}, http.StatusOK)
}

// pull returns the owner's recently changed records, bounded per record type.
//
// The optional "since" query parameter is an RFC 3339 timestamp; records
// changed at or after it are returned. A malformed "since" fails the whole
// request with HTTP 400 before any data is read.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pull").Msg("no owner ID was given")
		http.Error(w, "no owner ID was given", http.StatusUnauthorized)
		return
	}

	var since *time.Time
	if sinceParam := r.URL.Query().Get("since"); sinceParam != "" {
		parsed, err := time.Parse(time.RFC3339, sinceParam)
		if err != nil {
			log.Err(err).
				Str("func", "*Handler.pull").
				Str("since", sinceParam).
				Msg("malformed since timestamp")
			http.Error(w, service.ErrInvalidSinceTimestamp.Error(), http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	records, err := h.services.SyncService.Pull(ctx, ownerID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error pulling changed records")
		http.Error(w, "error pulling changed records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PullResponse{Records: records}, http.StatusOK)
}
