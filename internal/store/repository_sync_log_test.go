package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/models"
)

var syncLogColumns = []string{"id", "owner_id", "client_id", "record_type", "server_id", "payload", "created_at"}

func newMockedDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &DB{
		DB:                 mockDB,
		driver:             "pgx",
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func TestSyncLogRepository_Find(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	serverID := int64(42)

	tests := []struct {
		name         string
		prepareMocks func(mock sqlmock.Sqlmock)
		want         models.SyncLogEntry
		wantErr      error
	}{
		{
			name: "entry found",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, owner_id, client_id, record_type, server_id, payload, created_at").
					WithArgs(int64(7), "dev1-farm-001", "farm").
					WillReturnRows(sqlmock.NewRows(syncLogColumns).
						AddRow(int64(1), int64(7), "dev1-farm-001", "farm", serverID, []byte(`{"name":"North Field"}`), createdAt))
			},
			want: models.SyncLogEntry{
				ID:         1,
				OwnerID:    7,
				ClientID:   "dev1-farm-001",
				RecordType: "farm",
				ServerID:   &serverID,
				Payload:    json.RawMessage(`{"name":"North Field"}`),
				CreatedAt:  createdAt,
			},
		},
		{
			name: "entry with null server id",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, owner_id, client_id, record_type, server_id, payload, created_at").
					WithArgs(int64(7), "dev1-track-001", "gps_track").
					WillReturnRows(sqlmock.NewRows(syncLogColumns).
						AddRow(int64(2), int64(7), "dev1-track-001", "gps_track", nil, []byte(`{}`), createdAt))
			},
			want: models.SyncLogEntry{
				ID:         2,
				OwnerID:    7,
				ClientID:   "dev1-track-001",
				RecordType: "gps_track",
				ServerID:   nil,
				Payload:    json.RawMessage(`{}`),
				CreatedAt:  createdAt,
			},
		},
		{
			name: "no entry",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, owner_id, client_id, record_type, server_id, payload, created_at").
					WithArgs(int64(7), "dev1-farm-404", "farm").
					WillReturnRows(sqlmock.NewRows(syncLogColumns))
			},
			wantErr: ErrSyncEntryNotFound,
		},
		{
			name: "query failure",
			prepareMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, owner_id, client_id, record_type, server_id, payload, created_at").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockedDB(t)
			tt.prepareMocks(mock)

			repo := NewSyncLogRepository(db, logger.Nop())

			clientID := tt.want.ClientID
			recordType := tt.want.RecordType
			if tt.wantErr != nil {
				clientID, recordType = "dev1-farm-404", "farm"
			}

			got, err := repo.Find(ctx, 7, clientID, recordType)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSyncLogRepository_Record(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	serverID := int64(42)

	entry := models.SyncLogEntry{
		OwnerID:    7,
		ClientID:   "dev1-farm-001",
		RecordType: "farm",
		ServerID:   &serverID,
		Payload:    json.RawMessage(`{"name":"North Field"}`),
	}

	t.Run("inserts and returns the persisted entry", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("INSERT INTO sync_log").
			WithArgs(int64(7), "dev1-farm-001", "farm", serverID, []byte(`{"name":"North Field"}`)).
			WillReturnRows(sqlmock.NewRows(syncLogColumns).
				AddRow(int64(1), int64(7), "dev1-farm-001", "farm", serverID, []byte(`{"name":"North Field"}`), createdAt))

		repo := NewSyncLogRepository(db, logger.Nop())

		saved, err := repo.Record(ctx, entry)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		require.NotNil(t, saved.ServerID)
		assert.Equal(t, serverID, *saved.ServerID)
		assert.True(t, saved.CreatedAt.Equal(createdAt))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation becomes ErrDuplicateSyncEntry", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("INSERT INTO sync_log").
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "ux_sync_log_owner_client_type",
			})

		repo := NewSyncLogRepository(db, logger.Nop())

		_, err := repo.Record(ctx, entry)
		require.ErrorIs(t, err, ErrDuplicateSyncEntry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other database errors are wrapped", func(t *testing.T) {
		db, mock := newMockedDB(t)

		mock.ExpectQuery("INSERT INTO sync_log").
			WillReturnError(&pgconn.PgError{Code: "53300"})

		repo := NewSyncLogRepository(db, logger.Nop())

		_, err := repo.Record(ctx, entry)
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrDuplicateSyncEntry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
