package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greeter/internal/model"
	"greeter/internal/repository"
)

// DisasterPostgres is a PostgreSQL implementation of repository.DisasterRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DisasterPostgres struct {
	db *sql.DB
}

// NewDisasterPostgres creates a new DisasterPostgres repository.
func NewDisasterPostgres(db *sql.DB) *DisasterPostgres {
	return &DisasterPostgres{db: db}
}

var _ repository.DisasterRepository = (*DisasterPostgres)(nil)

// CreateBatch inserts every record inside one transaction.
func (r *DisasterPostgres) CreateBatch(ctx context.Context, disasters []model.Disaster) (err error) {
	const q = `
		INSERT INTO disasters (disaster_name, disaster_type, latitude, longitude, date_time, county, state, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, d := range disasters {
		if _, err = tx.ExecContext(ctx, q,
			string(d.Name),
			string(d.Type),
			string(d.Latitude),
			string(d.Longitude),
			string(d.DateTime),
			string(d.County),
			string(d.State),
			string(d.Country),
		); err != nil {
			return fmt.Errorf("insert disaster %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Latest fetches the newest record by insertion time.
func (r *DisasterPostgres) Latest(ctx context.Context) (*model.Disaster, error) {
	const q = `
		SELECT id, disaster_name, disaster_type, latitude, longitude, date_time, county, state, country, created_at
		FROM disasters
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var (
		d                                                     model.Disaster
		name, typ, lat, lon, dateTime, county, state, country string
	)
	err := r.db.QueryRowContext(ctx, q).Scan(
		&d.ID,
		&name,
		&typ,
		&lat,
		&lon,
		&dateTime,
		&county,
		&state,
		&country,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	d.Name, d.Type = model.Text(name), model.Text(typ)
	d.Latitude, d.Longitude = model.Text(lat), model.Text(lon)
	d.DateTime = model.Text(dateTime)
	d.County, d.State, d.Country = model.Text(county), model.Text(state), model.Text(country)
	return &d, nil
}
