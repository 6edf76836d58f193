package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/models"
)

var soilSampleColumns = []string{"id", "farm_id", "ph", "n", "p", "k", "extra", "sample_date"}

func TestSoilSampleRepository_Create(t *testing.T) {
	ctx := context.Background()
	sampleDate := time.Date(2026, 3, 3, 8, 30, 0, 0, time.UTC)
	ph := 6.8
	n := 11.2

	t.Run("inserts and returns the persisted sample", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("INSERT INTO soil_samples").
			WithArgs(int64(42), ph, n, nil, nil, []byte(`{"lab":"agro-x"}`)).
			WillReturnRows(sqlmock.NewRows(soilSampleColumns).
				AddRow(int64(9), int64(42), ph, n, nil, nil, []byte(`{"lab":"agro-x"}`), sampleDate))

		repo := NewSoilSampleRepository(db, logger.Nop())

		saved, err := repo.Create(ctx, models.SoilSample{
			FarmID: 42,
			PH:     &ph,
			N:      &n,
			Extra:  json.RawMessage(`{"lab":"agro-x"}`),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), saved.ID)
		assert.Equal(t, int64(42), saved.FarmID)
		require.NotNil(t, saved.PH)
		assert.InDelta(t, ph, *saved.PH, 1e-9)
		assert.Nil(t, saved.P)
		assert.Nil(t, saved.K)
		assert.True(t, saved.SampleDate.Equal(sampleDate))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is wrapped", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("INSERT INTO soil_samples").
			WillReturnError(errors.New("connection reset"))

		repo := NewSoilSampleRepository(db, logger.Nop())

		_, err := repo.Create(ctx, models.SoilSample{FarmID: 42})
		require.ErrorIs(t, err, ErrExecutingStatement)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSoilSampleRepository_ListChangedSince(t *testing.T) {
	ctx := context.Background()
	sampleDate := time.Date(2026, 3, 3, 8, 30, 0, 0, time.UTC)
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ph := 6.8

	t.Run("returns samples of the owner's farms via join", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("FROM soil_samples s JOIN farms f ON f.id = s.farm_id").
			WithArgs(int64(7), since).
			WillReturnRows(sqlmock.NewRows(soilSampleColumns).
				AddRow(int64(10), int64(42), ph, nil, nil, nil, []byte(`{}`), sampleDate.Add(time.Hour)).
				AddRow(int64(9), int64(42), nil, nil, nil, nil, nil, sampleDate))

		repo := NewSoilSampleRepository(db, logger.Nop())

		samples, err := repo.ListChangedSince(ctx, 7, &since, 500)
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.Equal(t, int64(10), samples[0].ID)
		assert.Equal(t, int64(9), samples[1].ID)
		assert.Nil(t, samples[1].PH)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil since omits the lower bound", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("FROM soil_samples s JOIN farms f ON f.id = s.farm_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(soilSampleColumns))

		repo := NewSoilSampleRepository(db, logger.Nop())

		samples, err := repo.ListChangedSince(ctx, 7, nil, 500)
		require.NoError(t, err)
		assert.Empty(t, samples)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("FROM soil_samples s JOIN farms f ON f.id = s.farm_id").
			WillReturnError(errors.New("connection reset"))

		repo := NewSoilSampleRepository(db, logger.Nop())

		_, err := repo.ListChangedSince(ctx, 7, nil, 500)
		require.ErrorIs(t, err, ErrExecutingQuery)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
