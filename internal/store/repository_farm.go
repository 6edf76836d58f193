package store

import (
	"context"
	"fmt"
	"time"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/models"
)

// farmRepository is the SQL-backed implementation of [FarmRepository].
//
// Every public method obtains a context-scoped logger via [logger.FromContext]
// so that all database interactions are traced with structured fields.
type farmRepository struct {
	*DB
	logger *logger.Logger
}

// NewFarmRepository constructs a [FarmRepository] backed by the provided
// database connection and logger.
func NewFarmRepository(db *DB, logger *logger.Logger) FarmRepository {
	return &farmRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a farm row and returns the persisted record with its
// server-assigned ID and creation timestamp.
func (f *farmRepository) Create(ctx context.Context, farm models.Farm) (models.Farm, error) {
	log := logger.FromContext(ctx)

	row := f.DB.QueryRowContext(ctx, insertFarm, farm.OwnerID, farm.Name, farm.AreaHa)

	var saved models.Farm
	scanErr := row.Scan(
		&saved.ID,
		&saved.OwnerID,
		&saved.Name,
		&saved.AreaHa,
		&saved.CreatedAt,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "farmRepository.Create").
			Int64("owner_id", farm.OwnerID).
			Str("name", farm.Name).
			Msg("failed to insert farm")
		return models.Farm{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return saved, nil
}

// Exists reports whether a farm with the given id belongs to the given owner.
// A farm owned by someone else is indistinguishable from an absent one.
func (f *farmRepository) Exists(ctx context.Context, ownerID, farmID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	scanErr := f.DB.QueryRowContext(ctx, farmExists, farmID, ownerID).Scan(&exists)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "farmRepository.Exists").
			Int64("owner_id", ownerID).
			Int64("farm_id", farmID).
			Msg("failed to check farm existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return exists, nil
}

// ListChangedSince retrieves the owner's farms created at or after since
// (all of them when since is nil), most recent first, capped at limit.
func (f *farmRepository) ListChangedSince(ctx context.Context, ownerID int64, since *time.Time, limit uint64) ([]models.Farm, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFarmsQuery(ownerID, since, limit)
	if err != nil {
		log.Err(err).
			Str("func", "farmRepository.ListChangedSince").
			Int64("owner_id", ownerID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := f.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "farmRepository.ListChangedSince").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing farms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	farms := make([]models.Farm, 0, 50)

	for rows.Next() {
		var farm models.Farm

		scanErr := rows.Scan(
			&farm.ID,
			&farm.OwnerID,
			&farm.Name,
			&farm.AreaHa,
			&farm.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "farmRepository.ListChangedSince").
				Int64("owner_id", ownerID).
				Msg("failed to scan farm row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		farms = append(farms, farm)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "farmRepository.ListChangedSince").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return farms, nil
}
