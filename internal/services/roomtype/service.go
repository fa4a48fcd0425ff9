package roomtype

import (
	"context"
	"strings"

	"dormdesk/internal/cache"
	"dormdesk/internal/domain/roomtype"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

// cacheResource prefixes this service's list cache keys.
const cacheResource = "room-types"

// Request carries the editable room-type fields of a create or update.
type Request struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	MonthlyRate int64  `json:"monthlyRate"`
	Description string `json:"description,omitempty"`
}

// Service handles room-type administration
type Service struct {
	types repositories.RoomTypeRepository
	rooms repositories.RoomRepository
	cache cache.ListCache
}

// NewService creates a new room-type service
func NewService(types repositories.RoomTypeRepository, rooms repositories.RoomRepository, c cache.ListCache) *Service {
	return &Service{types: types, rooms: rooms, cache: c}
}

// List returns one page of room types, read through the list cache.
func (s *Service) List(ctx context.Context, params crud.ListParams) (*crud.Page[*roomtype.RoomType], error) {
	params.Normalize()

	var page crud.Page[*roomtype.RoomType]
	if s.cache.Get(ctx, cacheResource, params.Page, params.Size, &page) {
		return &page, nil
	}

	items, total, err := s.types.List(ctx, params.Size, (params.Page-1)*params.Size)
	if err != nil {
		return nil, &services.ServiceError{Op: "list_room_types", Err: err}
	}

	page = crud.Page[*roomtype.RoomType]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: crud.PageCount(total, params.Size),
	}
	s.cache.Set(ctx, cacheResource, params.Page, params.Size, page)
	return &page, nil
}

// GetAll returns every room type, for select options.
func (s *Service) GetAll(ctx context.Context) ([]*roomtype.RoomType, error) {
	items, err := s.types.FindAll(ctx)
	if err != nil {
		return nil, &services.ServiceError{Op: "get_all_room_types", Err: err}
	}
	return items, nil
}

// Get returns a single room type by ID.
func (s *Service) Get(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	return s.types.FindByID(ctx, id)
}

// Create validates the request and inserts a new room type.
func (s *Service) Create(ctx context.Context, req Request) (*roomtype.RoomType, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	t, err := roomtype.NewRoomType(req.Name, req.Capacity, roomtype.Money(req.MonthlyRate), req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.types.Save(ctx, t); err != nil {
		return nil, &services.ServiceError{Op: "save_room_type", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return t, nil
}

// Update validates the request and applies it to an existing room type.
func (s *Service) Update(ctx context.Context, id int64, req Request) (*roomtype.RoomType, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	t, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Update(req.Name, req.Capacity, roomtype.Money(req.MonthlyRate), req.Description); err != nil {
		return nil, err
	}
	if err := s.types.Save(ctx, t); err != nil {
		return nil, &services.ServiceError{Op: "save_room_type", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return t, nil
}

// Delete removes a room type. A type still referenced by rooms cannot be
// deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.rooms.CountByRoomType(ctx, id)
	if err != nil {
		return &services.ServiceError{Op: "count_rooms", Err: err}
	}
	if n > 0 {
		return &services.ValidationError{Field: "id", Message: "room type is still in use by rooms"}
	}

	if err := s.types.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return &services.ServiceError{Op: "delete_room_type", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return nil
}

// validate normalizes and checks the request field by field.
func validate(req *Request) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return &services.ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Capacity < 1 || req.Capacity > roomtype.MaxCapacity {
		return &services.ValidationError{Field: "capacity", Message: "capacity must be between 1 and 10"}
	}
	if req.MonthlyRate <= 0 {
		return &services.ValidationError{Field: "monthlyRate", Message: "monthly rate must be positive"}
	}
	return nil
}
