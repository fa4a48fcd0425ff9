package usage

import (
	"context"
	"errors"

	"dormdesk/internal/cache"
	"dormdesk/internal/domain/usage"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

// cacheResource prefixes this service's list cache keys.
const cacheResource = "usage"

// Request carries the editable service-usage fields of a create or
// update.
type Request struct {
	RoomID    int64 `json:"roomId"`
	ServiceID int64 `json:"serviceId"`
	Quantity  int   `json:"quantity"`
	Month     int   `json:"month"`
	Year      int   `json:"year"`
}

// Service handles service-usage administration
type Service struct {
	records   repositories.UsageRepository
	rooms     repositories.RoomRepository
	utilities repositories.UtilityRepository
	cache     cache.ListCache
}

// NewService creates a new service-usage service
func NewService(records repositories.UsageRepository, rooms repositories.RoomRepository, utilities repositories.UtilityRepository, c cache.ListCache) *Service {
	return &Service{records: records, rooms: rooms, utilities: utilities, cache: c}
}

// List returns one page of usage records, read through the list cache.
func (s *Service) List(ctx context.Context, params crud.ListParams) (*crud.Page[*usage.Usage], error) {
	params.Normalize()

	var page crud.Page[*usage.Usage]
	if s.cache.Get(ctx, cacheResource, params.Page, params.Size, &page) {
		return &page, nil
	}

	items, total, err := s.records.List(ctx, params.Size, (params.Page-1)*params.Size)
	if err != nil {
		return nil, &services.ServiceError{Op: "list_usage", Err: err}
	}

	page = crud.Page[*usage.Usage]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: crud.PageCount(total, params.Size),
	}
	s.cache.Set(ctx, cacheResource, params.Page, params.Size, page)
	return &page, nil
}

// GetAll returns every usage record.
func (s *Service) GetAll(ctx context.Context) ([]*usage.Usage, error) {
	items, err := s.records.FindAll(ctx)
	if err != nil {
		return nil, &services.ServiceError{Op: "get_all_usage", Err: err}
	}
	return items, nil
}

// Get returns a single usage record by ID.
func (s *Service) Get(ctx context.Context, id int64) (*usage.Usage, error) {
	return s.records.FindByID(ctx, id)
}

// ListByRoom returns a room's usage records with pagination. Backs the
// navigation link from the room screen.
func (s *Service) ListByRoom(ctx context.Context, roomID int64, params crud.ListParams) (*crud.Page[*usage.Usage], error) {
	params.Normalize()
	items, total, err := s.records.FindByRoomID(ctx, roomID, params.Size, (params.Page-1)*params.Size)
	if err != nil {
		return nil, &services.ServiceError{Op: "list_room_usage", Err: err}
	}
	return &crud.Page[*usage.Usage]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: crud.PageCount(total, params.Size),
	}, nil
}

// Create validates the request and inserts a new usage record.
func (s *Service) Create(ctx context.Context, req Request) (*usage.Usage, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	u, err := usage.NewUsage(req.RoomID, req.ServiceID, req.Quantity, req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	if err := s.records.Save(ctx, u); err != nil {
		return nil, &services.ServiceError{Op: "save_usage", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return u, nil
}

// Update validates the request and applies it to an existing usage
// record.
func (s *Service) Update(ctx context.Context, id int64, req Request) (*usage.Usage, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	u, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.Update(req.RoomID, req.ServiceID, req.Quantity, req.Month, req.Year); err != nil {
		return nil, err
	}
	if err := s.records.Save(ctx, u); err != nil {
		return nil, &services.ServiceError{Op: "save_usage", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return u, nil
}

// Delete removes a usage record by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return &services.ServiceError{Op: "delete_usage", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return nil
}

// validate checks the request field by field. Both foreign keys must
// reference existing records.
func (s *Service) validate(ctx context.Context, req Request) error {
	if req.RoomID <= 0 {
		return &services.ValidationError{Field: "roomId", Message: "room is required"}
	}
	if req.ServiceID <= 0 {
		return &services.ValidationError{Field: "serviceId", Message: "service is required"}
	}
	if req.Quantity <= 0 {
		return &services.ValidationError{Field: "quantity", Message: "quantity must be positive"}
	}
	if req.Month < 1 || req.Month > 12 {
		return &services.ValidationError{Field: "month", Message: "month must be between 1 and 12"}
	}
	if req.Year < usage.MinYear {
		return &services.ValidationError{Field: "year", Message: "year is out of range"}
	}

	if _, err := s.rooms.FindByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &services.ValidationError{Field: "roomId", Message: "room does not exist"}
		}
		return &services.ServiceError{Op: "find_room", Err: err}
	}
	if _, err := s.utilities.FindByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &services.ValidationError{Field: "serviceId", Message: "service does not exist"}
		}
		return &services.ServiceError{Op: "find_service", Err: err}
	}
	return nil
}
