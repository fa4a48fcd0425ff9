package contract

import (
	"context"
	"errors"
	"strings"
	"time"

	"dormdesk/internal/cache"
	"dormdesk/internal/domain/contract"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

// cacheResource prefixes this service's list cache keys.
const cacheResource = "contracts"

// DateLayout is the wire format for contract dates.
const DateLayout = "2006-01-02"

// Request carries the editable contract fields of a create or update.
// Dates travel as "YYYY-MM-DD"; an empty end date means open-ended.
type Request struct {
	TenantName string `json:"tenantName"`
	RoomID     int64  `json:"roomId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	Status     string `json:"status"`
}

// View is the wire representation of a contract; dates are flattened to
// "YYYY-MM-DD" so the form can bind them directly.
type View struct {
	ID         int64  `json:"id"`
	TenantName string `json:"tenantName"`
	RoomID     int64  `json:"roomId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	Status     string `json:"status"`
}

func toView(c *contract.Contract) *View {
	v := &View{
		ID:         c.ID,
		TenantName: c.TenantName,
		RoomID:     c.RoomID,
		StartDate:  c.StartDate.Format(DateLayout),
		Status:     string(c.Status),
	}
	if c.EndDate != nil {
		v.EndDate = c.EndDate.Format(DateLayout)
	}
	return v
}

// Service handles contract administration
type Service struct {
	contracts repositories.ContractRepository
	rooms     repositories.RoomRepository
	cache     cache.ListCache
}

// NewService creates a new contract service
func NewService(contracts repositories.ContractRepository, rooms repositories.RoomRepository, c cache.ListCache) *Service {
	return &Service{contracts: contracts, rooms: rooms, cache: c}
}

// List returns one page of contracts, read through the list cache.
func (s *Service) List(ctx context.Context, params crud.ListParams) (*crud.Page[*View], error) {
	params.Normalize()

	var page crud.Page[*View]
	if s.cache.Get(ctx, cacheResource, params.Page, params.Size, &page) {
		return &page, nil
	}

	items, total, err := s.contracts.List(ctx, params.Size, (params.Page-1)*params.Size)
	if err != nil {
		return nil, &services.ServiceError{Op: "list_contracts", Err: err}
	}

	views := make([]*View, 0, len(items))
	for _, c := range items {
		views = append(views, toView(c))
	}

	page = crud.Page[*View]{
		Items: views,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: crud.PageCount(total, params.Size),
	}
	s.cache.Set(ctx, cacheResource, params.Page, params.Size, page)
	return &page, nil
}

// GetAll returns every contract.
func (s *Service) GetAll(ctx context.Context) ([]*View, error) {
	items, err := s.contracts.FindAll(ctx)
	if err != nil {
		return nil, &services.ServiceError{Op: "get_all_contracts", Err: err}
	}
	views := make([]*View, 0, len(items))
	for _, c := range items {
		views = append(views, toView(c))
	}
	return views, nil
}

// Get returns a single contract by ID.
func (s *Service) Get(ctx context.Context, id int64) (*View, error) {
	c, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toView(c), nil
}

// Create validates the request and inserts a new contract.
func (s *Service) Create(ctx context.Context, req Request) (*View, error) {
	start, end, err := s.validate(ctx, &req)
	if err != nil {
		return nil, err
	}

	c, err := contract.NewContract(req.TenantName, req.RoomID, start, end, contract.Status(req.Status))
	if err != nil {
		return nil, err
	}
	if err := s.contracts.Save(ctx, c); err != nil {
		return nil, &services.ServiceError{Op: "save_contract", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return toView(c), nil
}

// Update validates the request and applies it to an existing contract.
func (s *Service) Update(ctx context.Context, id int64, req Request) (*View, error) {
	start, end, err := s.validate(ctx, &req)
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(req.TenantName, req.RoomID, start, end, contract.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.contracts.Save(ctx, c); err != nil {
		return nil, &services.ServiceError{Op: "save_contract", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return toView(c), nil
}

// Delete removes a contract by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.contracts.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return &services.ServiceError{Op: "delete_contract", Err: err}
	}

	s.cache.Invalidate(ctx, cacheResource)
	return nil
}

// validate normalizes and checks the request field by field, returning
// the parsed dates. The room reference must exist.
func (s *Service) validate(ctx context.Context, req *Request) (time.Time, *time.Time, error) {
	var zero time.Time

	req.TenantName = strings.TrimSpace(req.TenantName)
	if req.TenantName == "" {
		return zero, nil, &services.ValidationError{Field: "tenantName", Message: "tenant name is required"}
	}
	if req.RoomID <= 0 {
		return zero, nil, &services.ValidationError{Field: "roomId", Message: "room is required"}
	}

	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return zero, nil, &services.ValidationError{Field: "startDate", Message: "must be a date (YYYY-MM-DD)"}
	}
	var end *time.Time
	if req.EndDate != "" {
		e, err := time.Parse(DateLayout, req.EndDate)
		if err != nil {
			return zero, nil, &services.ValidationError{Field: "endDate", Message: "must be a date (YYYY-MM-DD)"}
		}
		if e.Before(start) {
			return zero, nil, &services.ValidationError{Field: "endDate", Message: "must not be before startDate"}
		}
		end = &e
	}

	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Status == "" {
		req.Status = string(contract.StatusActive)
	}
	if !contract.Status(req.Status).Valid() {
		return zero, nil, &services.ValidationError{Field: "status", Message: "must be active, ended or cancelled"}
	}

	if _, err := s.rooms.FindByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return zero, nil, &services.ValidationError{Field: "roomId", Message: "room does not exist"}
		}
		return zero, nil, &services.ServiceError{Op: "find_room", Err: err}
	}

	return start, end, nil
}
