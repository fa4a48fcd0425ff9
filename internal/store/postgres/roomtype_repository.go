package postgres

import (
	"context"
	"errors"

	"dormdesk/internal/domain/roomtype"
	"dormdesk/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// roomTypeRepository implements RoomTypeRepository with pure data access
type roomTypeRepository struct {
	db querier
}

// NewRoomTypeRepository creates a new room type repository
func NewRoomTypeRepository(db *pgxpool.Pool) *roomTypeRepository {
	return &roomTypeRepository{db: db}
}

// Save saves a room type (insert or update)
func (r *roomTypeRepository) Save(ctx context.Context, t *roomtype.RoomType) error {
	if t.ID == 0 {
		return r.insert(ctx, t)
	}
	return r.update(ctx, t)
}

// FindByID finds a room type by ID
func (r *roomTypeRepository) FindByID(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, capacity, monthly_rate, description, created_at, updated_at
		FROM room_types
		WHERE id = $1`, id)

	return scanRoomType(row)
}

// List returns a page of room types plus the total count
func (r *roomTypeRepository) List(ctx context.Context, limit, offset int) ([]*roomtype.RoomType, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM room_types`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, capacity, monthly_rate, description, created_at, updated_at
		FROM room_types
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var types []*roomtype.RoomType
	for rows.Next() {
		t, err := scanRoomType(rows)
		if err != nil {
			return nil, 0, err
		}
		types = append(types, t)
	}

	return types, total, rows.Err()
}

// FindAll returns every room type, newest first
func (r *roomTypeRepository) FindAll(ctx context.Context) ([]*roomtype.RoomType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, capacity, monthly_rate, description, created_at, updated_at
		FROM room_types
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*roomtype.RoomType
	for rows.Next() {
		t, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Delete removes a room type by ID
func (r *roomTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// insert creates a new room type record
func (r *roomTypeRepository) insert(ctx context.Context, t *roomtype.RoomType) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO room_types (name, capacity, monthly_rate, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		t.Name, t.Capacity, int64(t.MonthlyRate), t.Description, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
}

// update modifies an existing room type record
func (r *roomTypeRepository) update(ctx context.Context, t *roomtype.RoomType) error {
	_, err := r.db.Exec(ctx, `
		UPDATE room_types
		SET name = $1, capacity = $2, monthly_rate = $3, description = $4, updated_at = $5
		WHERE id = $6`,
		t.Name, t.Capacity, int64(t.MonthlyRate), t.Description, t.UpdatedAt, t.ID)

	return err
}

// scanRoomType scans a row into a room type domain object
func scanRoomType(row pgx.Row) (*roomtype.RoomType, error) {
	var t roomtype.RoomType
	var rate int64

	err := row.Scan(&t.ID, &t.Name, &t.Capacity, &rate, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}

	t.MonthlyRate = roomtype.Money(rate)
	return &t, nil
}
