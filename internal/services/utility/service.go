package utility

import (
	"context"
	"strings"

	"dormdesk/internal/cache"
	"dormdesk/internal/domain/utility"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

// cacheResource prefixes this service's list cache keys.
const cacheResource = "utilities"

// Request carries the editable utility-service fields of a create or
// update.
type Request struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitPrice int64  `json:"unitPrice"`
}

// Service handles utility-service administration
type Service struct {
	utilities repositories.UtilityRepository
	cache     cache.ListCache
}

// NewService creates a new utility service
func NewService(utilities repositories.UtilityRepository, c cache.ListCache) *Service {
	return &Service{utilities: utilities, cache: c}
}

// List returns one page of utility services, read through the list cache.
func (s *Service) List(ctx context.Context, params crud.ListParams) (*crud.Page[*utility.Service], error) {
	params.Normalize()

	var page crud.Page[*utility.Service]
	if s.cache.Get(ctx, cacheResource, params.Page, params.Size, &page) {
		return &page, nil
	}

	items, total, err := s.utilities.List(ctx, params.Size, (params.Page-1)*params.Size)
	if err != nil {
		return nil, &services.ServiceError{Op: "list_utilities", Err: err}
	}

	page = crud.Page[*utility.Service]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: crud.PageCount(total, params.Size),
	}
	s.cache.Set(ctx, cacheResource, params.Page, params.Size, page)
	return &page, nil
}

// GetAll returns every utility service, for select options.
func (s *Service) GetAll(ctx context.Context) ([]*utility.Service, error) {
	items, err := s.utilities.FindAll(ctx)
	if err != nil {
		return nil, &services.ServiceError{Op: "get_all_utilities", Err: err}
	}
	return items, nil
}

// Get returns a single utility service by ID.
func (s *Service) Get(ctx context.Context, id int64) (*utility.Service, error) {
	return s.utilities.FindByID(ctx, id)
}

// Create validates the request and inserts a new utility service.
func (s *Service) Create(ctx context.Context, req Request) (*utility.Service, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	u, err := utility.NewService(req.Name, req.Unit, utility.Money(req.UnitPrice))
	if err != nil {
		return nil, err
	}
	if err := s.utilities.Save(ctx, u); err != nil {
		return nil, &services.ServiceError{Op: "save_utility", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return u, nil
}

// Update validates the request and applies it to an existing utility
// service.
func (s *Service) Update(ctx context.Context, id int64, req Request) (*utility.Service, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	u, err := s.utilities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.Update(req.Name, req.Unit, utility.Money(req.UnitPrice)); err != nil {
		return nil, err
	}
	if err := s.utilities.Save(ctx, u); err != nil {
		return nil, &services.ServiceError{Op: "save_utility", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return u, nil
}

// Delete removes a utility service by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.utilities.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return &services.ServiceError{Op: "delete_utility", Err: err}
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
	req.Unit = strings.TrimSpace(req.Unit)
	if req.Unit == "" {
		return &services.ValidationError{Field: "unit", Message: "billing unit is required"}
	}
	if req.UnitPrice <= 0 {
		return &services.ValidationError{Field: "unitPrice", Message: "unit price must be positive"}
	}
	return nil
}
