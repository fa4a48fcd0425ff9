package postgres

import (
	"context"
	"errors"

	"dormdesk/internal/domain/usage"
	"dormdesk/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// usageRepository implements UsageRepository with pure data access
type usageRepository struct {
	db querier
}

// NewUsageRepository creates a new service usage repository
func NewUsageRepository(db *pgxpool.Pool) *usageRepository {
	return &usageRepository{db: db}
}

// Save saves a usage record (insert or update)
func (r *usageRepository) Save(ctx context.Context, u *usage.Usage) error {
	if u.ID == 0 {
		return r.insert(ctx, u)
	}
	return r.update(ctx, u)
}

// FindByID finds a usage record by ID
func (r *usageRepository) FindByID(ctx context.Context, id int64) (*usage.Usage, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, room_id, service_id, quantity, month, year, created_at, updated_at
		FROM service_usage
		WHERE id = $1`, id)

	return scanUsage(row)
}

// List returns a page of usage records plus the total count, newest period first
func (r *usageRepository) List(ctx context.Context, limit, offset int) ([]*usage.Usage, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM service_usage`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, service_id, quantity, month, year, created_at, updated_at
		FROM service_usage
		ORDER BY year DESC, month DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := collectUsage(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindAll returns every usage record, newest period first
func (r *usageRepository) FindAll(ctx context.Context) ([]*usage.Usage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, service_id, quantity, month, year, created_at, updated_at
		FROM service_usage
		ORDER BY year DESC, month DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsage(rows)
}

// FindByRoomID returns usage records for a room with pagination
func (r *usageRepository) FindByRoomID(ctx context.Context, roomID int64, limit, offset int) ([]*usage.Usage, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM service_usage WHERE room_id = $1`, roomID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, service_id, quantity, month, year, created_at, updated_at
		FROM service_usage
		WHERE room_id = $1
		ORDER BY year DESC, month DESC, id DESC
		LIMIT $2 OFFSET $3`, roomID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := collectUsage(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Delete removes a usage record by ID
func (r *usageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_usage WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteByRoomID removes all usage records for a room
func (r *usageRepository) DeleteByRoomID(ctx context.Context, roomID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM service_usage WHERE room_id = $1`, roomID)
	return err
}

// insert creates a new usage record
func (r *usageRepository) insert(ctx context.Context, u *usage.Usage) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO service_usage (room_id, service_id, quantity, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		u.RoomID, u.ServiceID, u.Quantity, u.Month, u.Year, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
}

// update modifies an existing usage record
func (r *usageRepository) update(ctx context.Context, u *usage.Usage) error {
	_, err := r.db.Exec(ctx, `
		UPDATE service_usage
		SET room_id = $1, service_id = $2, quantity = $3, month = $4, year = $5, updated_at = $6
		WHERE id = $7`,
		u.RoomID, u.ServiceID, u.Quantity, u.Month, u.Year, u.UpdatedAt, u.ID)

	return err
}

// scanUsage scans a row into a usage domain object
func scanUsage(row pgx.Row) (*usage.Usage, error) {
	var u usage.Usage
	err := row.Scan(&u.ID, &u.RoomID, &u.ServiceID, &u.Quantity, &u.Month, &u.Year, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func collectUsage(rows pgx.Rows) ([]*usage.Usage, error) {
	var records []*usage.Usage
	for rows.Next() {
		u, err := scanUsage(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, u)
	}
	return records, rows.Err()
}
