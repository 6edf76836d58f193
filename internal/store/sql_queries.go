package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	findSyncLogEntry = `SELECT id, owner_id, client_id, record_type, server_id, payload, created_at
		FROM sync_log
		WHERE owner_id = $1 AND client_id = $2 AND record_type = $3;`

	insertSyncLogEntry = `INSERT INTO sync_log (owner_id, client_id, record_type, server_id, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, client_id, record_type, server_id, payload, created_at;`

	insertFarm = `INSERT INTO farms (owner_id, name, area_ha)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, area_ha, created_at;`

	farmExists = `SELECT EXISTS (
		SELECT 1 FROM farms WHERE id = $1 AND owner_id = $2
	);`

	insertSoilSample = `INSERT INTO soil_samples (farm_id, ph, n, p, k, extra)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, farm_id, ph, n, p, k, extra, sample_date;`
)

// queryBuilder produces $N-parameterised SQL, which both the pgx and the
// sqlite3 drivers accept.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListFarmsQuery assembles the bounded incremental-pull query for farms:
// owner-scoped, optionally bounded below by since, most recent first.
func buildListFarmsQuery(ownerID int64, since *time.Time, limit uint64) (string, []any, error) {
	query := queryBuilder.
		Select("id", "owner_id", "name", "area_ha", "created_at").
		From("farms").
		Where(sq.Eq{"owner_id": ownerID})

	if since != nil {
		query = query.Where(sq.GtOrEq{"created_at": *since})
	}

	return query.
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
}

// buildListSoilSamplesQuery assembles the bounded incremental-pull query for
// soil samples. Ownership is resolved through the farms table so that one
// owner can never pull another owner's samples.
func buildListSoilSamplesQuery(ownerID int64, since *time.Time, limit uint64) (string, []any, error) {
	query := queryBuilder.
		Select("s.id", "s.farm_id", "s.ph", "s.n", "s.p", "s.k", "s.extra", "s.sample_date").
		From("soil_samples s").
		Join("farms f ON f.id = s.farm_id").
		Where(sq.Eq{"f.owner_id": ownerID})

	if since != nil {
		query = query.Where(sq.GtOrEq{"s.sample_date": *since})
	}

	return query.
		OrderBy("s.sample_date DESC").
		Limit(limit).
		ToSql()
}
