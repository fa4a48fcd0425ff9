package postgres

import (
	"context"

	"dormdesk/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// unitOfWork implements UnitOfWork interface
type unitOfWork struct {
	db *pgxpool.Pool
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *pgxpool.Pool) repositories.UnitOfWork {
	return &unitOfWork{db: db}
}

// Begin starts a new transaction
func (uow *unitOfWork) Begin(ctx context.Context) (repositories.Transaction, error) {
	tx, err := uow.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	return &transaction{tx: tx}, nil
}

// transaction implements Transaction interface. The repositories it hands
// out share the underlying pgx.Tx, so every operation through them commits
// or rolls back together.
type transaction struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *transaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *transaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// RoomRepository returns a transactional room repository
func (t *transaction) RoomRepository() repositories.RoomRepository {
	return &roomRepository{db: t.tx}
}

// UsageRepository returns a transactional usage repository
func (t *transaction) UsageRepository() repositories.UsageRepository {
	return &usageRepository{db: t.tx}
}

// ContractRepository returns a transactional contract repository
func (t *transaction) ContractRepository() repositories.ContractRepository {
	return &contractRepository{db: t.tx}
}
