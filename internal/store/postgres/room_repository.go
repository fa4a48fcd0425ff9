package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dormdesk/internal/domain/room"
	"dormdesk/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// roomRepository implements RoomRepository with pure data access
type roomRepository struct {
	db querier
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *roomRepository {
	return &roomRepository{db: db}
}

// Save saves a room (insert or update)
func (r *roomRepository) Save(ctx context.Context, rm *room.Room) error {
	if rm.ID == 0 {
		return r.insert(ctx, rm)
	}
	return r.update(ctx, rm)
}

// FindByID finds a room by ID
func (r *roomRepository) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, number, floor, room_type_id, status, note, created_at, updated_at
		FROM rooms
		WHERE id = $1`, id)

	return scanRoom(row)
}

// List returns a page of rooms plus the total count
func (r *roomRepository) List(ctx context.Context, limit, offset int) ([]*room.Room, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM rooms`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, number, floor, room_type_id, status, note, created_at, updated_at
		FROM rooms
		ORDER BY number ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rooms []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, rm)
	}

	return rooms, total, rows.Err()
}

// FindAll returns every room ordered by number
func (r *roomRepository) FindAll(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, floor, room_type_id, status, note, created_at, updated_at
		FROM rooms
		ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}

	return rooms, rows.Err()
}

// Delete removes a room by ID
func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// CountByRoomType counts rooms that reference a room type
func (r *roomRepository) CountByRoomType(ctx context.Context, roomTypeID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM rooms WHERE room_type_id = $1`, roomTypeID).Scan(&n)
	return n, err
}

// insert creates a new room record
func (r *roomRepository) insert(ctx context.Context, rm *room.Room) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO rooms (number, floor, room_type_id, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		rm.Number, rm.Floor, rm.RoomTypeID, string(rm.Status), rm.Note, rm.CreatedAt, rm.UpdatedAt).Scan(&rm.ID)
}

// update modifies an existing room record
func (r *roomRepository) update(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET number = $1, floor = $2, room_type_id = $3, status = $4, note = $5, updated_at = $6
		WHERE id = $7`,
		rm.Number, rm.Floor, rm.RoomTypeID, string(rm.Status), rm.Note, rm.UpdatedAt, rm.ID)

	return err
}

// scanRoom scans a row into a room domain object
func scanRoom(row pgx.Row) (*room.Room, error) {
	var rm room.Room
	var note sql.NullString

	err := row.Scan(&rm.ID, &rm.Number, &rm.Floor, &rm.RoomTypeID, &rm.Status, &note, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}

	if note.Valid {
		rm.Note = note.String
	}

	return &rm, nil
}
