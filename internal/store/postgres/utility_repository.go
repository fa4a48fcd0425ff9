package postgres

import (
	"context"
	"errors"

	"dormdesk/internal/domain/utility"
	"dormdesk/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// utilityRepository implements UtilityRepository with pure data access
type utilityRepository struct {
	db querier
}

// NewUtilityRepository creates a new utility service repository
func NewUtilityRepository(db *pgxpool.Pool) *utilityRepository {
	return &utilityRepository{db: db}
}

// Save saves a utility service (insert or update)
func (r *utilityRepository) Save(ctx context.Context, s *utility.Service) error {
	if s.ID == 0 {
		return r.insert(ctx, s)
	}
	return r.update(ctx, s)
}

// FindByID finds a utility service by ID
func (r *utilityRepository) FindByID(ctx context.Context, id int64) (*utility.Service, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, unit, unit_price, created_at, updated_at
		FROM utility_services
		WHERE id = $1`, id)

	return scanUtility(row)
}

// List returns a page of utility services plus the total count
func (r *utilityRepository) List(ctx context.Context, limit, offset int) ([]*utility.Service, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM utility_services`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, unit, unit_price, created_at, updated_at
		FROM utility_services
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var services []*utility.Service
	for rows.Next() {
		s, err := scanUtility(rows)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}

	return services, total, rows.Err()
}

// FindAll returns every utility service ordered by name
func (r *utilityRepository) FindAll(ctx context.Context) ([]*utility.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, unit, unit_price, created_at, updated_at
		FROM utility_services
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*utility.Service
	for rows.Next() {
		s, err := scanUtility(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

// Delete removes a utility service by ID
func (r *utilityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM utility_services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// insert creates a new utility service record
func (r *utilityRepository) insert(ctx context.Context, s *utility.Service) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO utility_services (name, unit, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		s.Name, s.Unit, int64(s.UnitPrice), s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
}

// update modifies an existing utility service record
func (r *utilityRepository) update(ctx context.Context, s *utility.Service) error {
	_, err := r.db.Exec(ctx, `
		UPDATE utility_services
		SET name = $1, unit = $2, unit_price = $3, updated_at = $4
		WHERE id = $5`,
		s.Name, s.Unit, int64(s.UnitPrice), s.UpdatedAt, s.ID)

	return err
}

// scanUtility scans a row into a utility service domain object
func scanUtility(row pgx.Row) (*utility.Service, error) {
	var s utility.Service
	var price int64

	err := row.Scan(&s.ID, &s.Name, &s.Unit, &price, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}

	s.UnitPrice = utility.Money(price)
	return &s, nil
}
