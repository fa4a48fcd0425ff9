package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dormdesk/internal/domain/contract"
	"dormdesk/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// contractRepository implements ContractRepository with pure data access
type contractRepository struct {
	db querier
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *pgxpool.Pool) *contractRepository {
	return &contractRepository{db: db}
}

// Save saves a contract (insert or update)
func (r *contractRepository) Save(ctx context.Context, c *contract.Contract) error {
	if c.ID == 0 {
		return r.insert(ctx, c)
	}
	return r.update(ctx, c)
}

// FindByID finds a contract by ID
func (r *contractRepository) FindByID(ctx context.Context, id int64) (*contract.Contract, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, tenant_name, room_id, start_date, end_date, status, created_at, updated_at
		FROM contracts
		WHERE id = $1`, id)

	return scanContract(row)
}

// List returns a page of contracts plus the total count, newest first
func (r *contractRepository) List(ctx context.Context, limit, offset int) ([]*contract.Contract, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM contracts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, tenant_name, room_id, start_date, end_date, status, created_at, updated_at
		FROM contracts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []*contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, c)
	}

	return contracts, total, rows.Err()
}

// FindAll returns every contract, newest first
func (r *contractRepository) FindAll(ctx context.Context) ([]*contract.Contract, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tenant_name, room_id, start_date, end_date, status, created_at, updated_at
		FROM contracts
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []*contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

// Delete removes a contract by ID
func (r *contractRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// EndActiveByRoomID marks all active contracts on a room as ended
func (r *contractRepository) EndActiveByRoomID(ctx context.Context, roomID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE contracts
		SET status = $1, end_date = now(), updated_at = now()
		WHERE room_id = $2 AND status = $3`,
		string(contract.StatusEnded), roomID, string(contract.StatusActive))
	return err
}

// insert creates a new contract record
func (r *contractRepository) insert(ctx context.Context, c *contract.Contract) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO contracts (tenant_name, room_id, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		c.TenantName, c.RoomID, c.StartDate, c.EndDate, string(c.Status), c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
}

// update modifies an existing contract record
func (r *contractRepository) update(ctx context.Context, c *contract.Contract) error {
	_, err := r.db.Exec(ctx, `
		UPDATE contracts
		SET tenant_name = $1, room_id = $2, start_date = $3, end_date = $4, status = $5, updated_at = $6
		WHERE id = $7`,
		c.TenantName, c.RoomID, c.StartDate, c.EndDate, string(c.Status), c.UpdatedAt, c.ID)

	return err
}

// scanContract scans a row into a contract domain object
func scanContract(row pgx.Row) (*contract.Contract, error) {
	var c contract.Contract
	var end sql.NullTime

	err := row.Scan(&c.ID, &c.TenantName, &c.RoomID, &c.StartDate, &end, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}

	if end.Valid {
		t := end.Time
		c.EndDate = &t
	}

	return &c, nil
}
