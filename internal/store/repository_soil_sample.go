package store

import (
	"context"
	"fmt"
	"time"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/models"
)

// soilSampleRepository is the SQL-backed implementation of [SoilSampleRepository].
type soilSampleRepository struct {
	*DB
	logger *logger.Logger
}

// NewSoilSampleRepository constructs a [SoilSampleRepository] backed by the
// provided database connection and logger.
func NewSoilSampleRepository(db *DB, logger *logger.Logger) SoilSampleRepository {
	return &soilSampleRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a soil sample row and returns the persisted record with its
// server-assigned ID and sample timestamp.
func (s *soilSampleRepository) Create(ctx context.Context, sample models.SoilSample) (models.SoilSample, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, insertSoilSample,
		sample.FarmID,
		sample.PH,
		sample.N,
		sample.P,
		sample.K,
		sample.Extra,
	)

	var saved models.SoilSample
	scanErr := row.Scan(
		&saved.ID,
		&saved.FarmID,
		&saved.PH,
		&saved.N,
		&saved.P,
		&saved.K,
		&saved.Extra,
		&saved.SampleDate,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "soilSampleRepository.Create").
			Int64("farm_id", sample.FarmID).
			Msg("failed to insert soil sample")
		return models.SoilSample{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return saved, nil
}

// ListChangedSince retrieves soil samples belonging to the owner's farms taken
// at or after since (all of them when since is nil), most recent first, capped
// at limit. The join through farms enforces owner isolation.
func (s *soilSampleRepository) ListChangedSince(ctx context.Context, ownerID int64, since *time.Time, limit uint64) ([]models.SoilSample, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSoilSamplesQuery(ownerID, since, limit)
	if err != nil {
		log.Err(err).
			Str("func", "soilSampleRepository.ListChangedSince").
			Int64("owner_id", ownerID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := s.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "soilSampleRepository.ListChangedSince").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing soil samples")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	samples := make([]models.SoilSample, 0, 50)

	for rows.Next() {
		var sample models.SoilSample

		scanErr := rows.Scan(
			&sample.ID,
			&sample.FarmID,
			&sample.PH,
			&sample.N,
			&sample.P,
			&sample.K,
			&sample.Extra,
			&sample.SampleDate,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "soilSampleRepository.ListChangedSince").
				Int64("owner_id", ownerID).
				Msg("failed to scan soil sample row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		samples = append(samples, sample)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "soilSampleRepository.ListChangedSince").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return samples, nil
}
