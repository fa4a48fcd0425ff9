package contract

import (
	"fmt"
	"strings"
	"time"
)

// Contract binds a resident to a room for a period of time.
type Contract struct {
	ID         int64      `json:"id"`
	TenantName string     `json:"tenantName"`
	RoomID     int64      `json:"roomId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"` // nil = open-ended
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Status represents contract lifecycle status
type Status string

const (
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusEnded, StatusCancelled:
		return true
	}
	return false
}

// NewContract creates a contract with validation. A zero status defaults
// to active.
func NewContract(tenantName string, roomID int64, start time.Time, end *time.Time, status Status) (*Contract, error) {
	if status == "" {
		status = StatusActive
	}
	if err := validate(tenantName, roomID, start, end, status); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Contract{
		TenantName: strings.TrimSpace(tenantName),
		RoomID:     roomID,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update applies editable fields following the same rules as creation.
func (c *Contract) Update(tenantName string, roomID int64, start time.Time, end *time.Time, status Status) error {
	if err := validate(tenantName, roomID, start, end, status); err != nil {
		return err
	}
	c.TenantName = strings.TrimSpace(tenantName)
	c.RoomID = roomID
	c.StartDate = start
	c.EndDate = end
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}

// End closes an active contract at the given date.
func (c *Contract) End(at time.Time) error {
	if c.Status != StatusActive {
		return DomainError{Code: ErrNotActive, Message: fmt.Sprintf("contract %d is %s, not active", c.ID, c.Status)}
	}
	if at.Before(c.StartDate) {
		return DomainError{Code: ErrInvalidDates, Message: "end date is before start date"}
	}
	c.EndDate = &at
	c.Status = StatusEnded
	c.UpdatedAt = time.Now()
	return nil
}

// IsActive checks if the contract is currently in force.
func (c *Contract) IsActive() bool {
	return c.Status == StatusActive
}

func validate(tenantName string, roomID int64, start time.Time, end *time.Time, status Status) error {
	if strings.TrimSpace(tenantName) == "" {
		return DomainError{Code: ErrInvalidTenant, Message: "tenant name is required"}
	}
	if roomID <= 0 {
		return DomainError{Code: ErrInvalidRoom, Message: fmt.Sprintf("invalid room ID: %d", roomID)}
	}
	if start.IsZero() {
		return DomainError{Code: ErrInvalidDates, Message: "start date is required"}
	}
	if end != nil && end.Before(start) {
		return DomainError{Code: ErrInvalidDates, Message: "end date is before start date"}
	}
	if !status.Valid() {
		return DomainError{Code: ErrInvalidStatus, Message: fmt.Sprintf("unknown status: %s", status)}
	}
	return nil
}

// DomainError represents a domain-level error
type DomainError struct {
	Message string
	Code    string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("domain error [%s]: %s", e.Code, e.Message)
}

// Domain error codes
const (
	ErrInvalidTenant = "INVALID_TENANT"
	ErrInvalidRoom   = "INVALID_ROOM"
	ErrInvalidDates  = "INVALID_DATES"
	ErrInvalidStatus = "INVALID_STATUS"
	ErrNotActive     = "NOT_ACTIVE"
)
