package repositories

import (
	"context"
	"errors"

	"dormdesk/internal/domain/contract"
	"dormdesk/internal/domain/room"
	"dormdesk/internal/domain/roomtype"
	"dormdesk/internal/domain/usage"
	"dormdesk/internal/domain/utility"
)

// ErrNotFound is returned when a record does not exist. Implementations
// translate their driver's no-rows error into it.
var ErrNotFound = errors.New("record not found")

// RoomRepository defines the contract for room data access
type RoomRepository interface {
	Save(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id int64) (*room.Room, error)
	List(ctx context.Context, limit, offset int) ([]*room.Room, int, error)
	FindAll(ctx context.Context) ([]*room.Room, error)
	Delete(ctx context.Context, id int64) error
	CountByRoomType(ctx context.Context, roomTypeID int64) (int, error)
}

// RoomTypeRepository defines the contract for room type data access
type RoomTypeRepository interface {
	Save(ctx context.Context, t *roomtype.RoomType) error
	FindByID(ctx context.Context, id int64) (*roomtype.RoomType, error)
	List(ctx context.Context, limit, offset int) ([]*roomtype.RoomType, int, error)
	FindAll(ctx context.Context) ([]*roomtype.RoomType, error)
	Delete(ctx context.Context, id int64) error
}

// UtilityRepository defines the contract for utility service data access
type UtilityRepository interface {
	Save(ctx context.Context, s *utility.Service) error
	FindByID(ctx context.Context, id int64) (*utility.Service, error)
	List(ctx context.Context, limit, offset int) ([]*utility.Service, int, error)
	FindAll(ctx context.Context) ([]*utility.Service, error)
	Delete(ctx context.Context, id int64) error
}

// UsageRepository defines the contract for service usage data access
type UsageRepository interface {
	Save(ctx context.Context, u *usage.Usage) error
	FindByID(ctx context.Context, id int64) (*usage.Usage, error)
	List(ctx context.Context, limit, offset int) ([]*usage.Usage, int, error)
	FindAll(ctx context.Context) ([]*usage.Usage, error)
	FindByRoomID(ctx context.Context, roomID int64, limit, offset int) ([]*usage.Usage, int, error)
	Delete(ctx context.Context, id int64) error
	DeleteByRoomID(ctx context.Context, roomID int64) error
}

// ContractRepository defines the contract data access
type ContractRepository interface {
	Save(ctx context.Context, c *contract.Contract) error
	FindByID(ctx context.Context, id int64) (*contract.Contract, error)
	List(ctx context.Context, limit, offset int) ([]*contract.Contract, int, error)
	FindAll(ctx context.Context) ([]*contract.Contract, error)
	Delete(ctx context.Context, id int64) error
	EndActiveByRoomID(ctx context.Context, roomID int64) error
}

// UnitOfWork defines transactional operations
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction defines a database transaction
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	RoomRepository() RoomRepository
	UsageRepository() UsageRepository
	ContractRepository() ContractRepository
}
