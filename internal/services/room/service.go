package room

import (
	"context"
	"errors"
	"strings"

	"dormdesk/internal/cache"
	"dormdesk/internal/domain/room"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

// cacheResource prefixes this service's list cache keys.
const cacheResource = "rooms"

// Request carries the editable room fields of a create or update.
type Request struct {
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	RoomTypeID int64  `json:"roomTypeId"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
}

// Service handles room administration
type Service struct {
	rooms repositories.RoomRepository
	types repositories.RoomTypeRepository
	uow   repositories.UnitOfWork
	cache cache.ListCache
}

// NewService creates a new room service
func NewService(rooms repositories.RoomRepository, types repositories.RoomTypeRepository, uow repositories.UnitOfWork, c cache.ListCache) *Service {
	return &Service{rooms: rooms, types: types, uow: uow, cache: c}
}

// List returns one page of rooms, read through the list cache.
func (s *Service) List(ctx context.Context, params crud.ListParams) (*crud.Page[*room.Room], error) {
	params.Normalize()

	var page crud.Page[*room.Room]
	if s.cache.Get(ctx, cacheResource, params.Page, params.Size, &page) {
		return &page, nil
	}

	items, total, err := s.rooms.List(ctx, params.Size, (params.Page-1)*params.Size)
	if err != nil {
		return nil, &services.ServiceError{Op: "list_rooms", Err: err}
	}

	page = crud.Page[*room.Room]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: crud.PageCount(total, params.Size),
	}
	s.cache.Set(ctx, cacheResource, params.Page, params.Size, page)
	return &page, nil
}

// GetAll returns every room, for select options.
func (s *Service) GetAll(ctx context.Context) ([]*room.Room, error) {
	items, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, &services.ServiceError{Op: "get_all_rooms", Err: err}
	}
	return items, nil
}

// Get returns a single room by ID.
func (s *Service) Get(ctx context.Context, id int64) (*room.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

// Create validates the request and inserts a new room.
func (s *Service) Create(ctx context.Context, req Request) (*room.Room, error) {
	if err := s.validate(ctx, &req); err != nil {
		return nil, err
	}

	rm, err := room.NewRoom(req.Number, req.Floor, req.RoomTypeID, room.Status(req.Status), req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.Save(ctx, rm); err != nil {
		return nil, &services.ServiceError{Op: "save_room", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return rm, nil
}

// Update validates the request and applies it to an existing room.
func (s *Service) Update(ctx context.Context, id int64, req Request) (*room.Room, error) {
	if err := s.validate(ctx, &req); err != nil {
		return nil, err
	}

	rm, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rm.Update(req.Number, req.Floor, req.RoomTypeID, room.Status(req.Status), req.Note); err != nil {
		return nil, err
	}
	if err := s.rooms.Save(ctx, rm); err != nil {
		return nil, &services.ServiceError{Op: "save_room", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return rm, nil
}

// Delete removes a room together with its usage history and ends its
// active contracts, atomically.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return &services.ServiceError{Op: "begin_tx", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.UsageRepository().DeleteByRoomID(ctx, id); err != nil {
		return &services.ServiceError{Op: "delete_room_usage", Err: err}
	}
	if err := tx.ContractRepository().EndActiveByRoomID(ctx, id); err != nil {
		return &services.ServiceError{Op: "end_room_contracts", Err: err}
	}
	if err := tx.RoomRepository().Delete(ctx, id); err != nil {
		return &services.ServiceError{Op: "delete_room", Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return &services.ServiceError{Op: "commit_tx", Err: err}
	}

	// Usage rows and contracts changed along with the room.
	s.cache.Invalidate(ctx, cacheResource)
	s.cache.Invalidate(ctx, "usage")
	s.cache.Invalidate(ctx, "contracts")
	return nil
}

// validate normalizes and checks the request field by field. The room
// type reference must exist.
func (s *Service) validate(ctx context.Context, req *Request) error {
	req.Number = strings.TrimSpace(req.Number)
	if req.Number == "" {
		return &services.ValidationError{Field: "number", Message: "room number is required"}
	}
	if req.Floor < 0 {
		return &services.ValidationError{Field: "floor", Message: "floor cannot be negative"}
	}
	if req.RoomTypeID <= 0 {
		return &services.ValidationError{Field: "roomTypeId", Message: "room type is required"}
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Status == "" {
		req.Status = string(room.StatusAvailable)
	}
	if !room.Status(req.Status).Valid() {
		return &services.ValidationError{Field: "status", Message: "must be available, occupied or maintenance"}
	}

	if _, err := s.types.FindByID(ctx, req.RoomTypeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &services.ValidationError{Field: "roomTypeId", Message: "room type does not exist"}
		}
		return &services.ServiceError{Op: "find_room_type", Err: err}
	}
	return nil
}
