package utility

import (
	"fmt"
	"strings"
	"time"
)

// Service is a metered utility offered to rooms (electricity, water, ...).
// Usage rows reference it by ID.
type Service struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"` // billing unit, e.g. "kWh"
	UnitPrice Money     `json:"unitPrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Money is a monetary amount in the smallest currency unit (cents).
type Money int64

// NewService creates a utility service with validation.
func NewService(name, unit string, unitPrice Money) (*Service, error) {
	if err := validate(name, unit, unitPrice); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Service{
		Name:      strings.TrimSpace(name),
		Unit:      strings.TrimSpace(unit),
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update applies editable fields following the same rules as creation.
func (s *Service) Update(name, unit string, unitPrice Money) error {
	if err := validate(name, unit, unitPrice); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(name)
	s.Unit = strings.TrimSpace(unit)
	s.UnitPrice = unitPrice
	s.UpdatedAt = time.Now()
	return nil
}

func validate(name, unit string, unitPrice Money) error {
	if strings.TrimSpace(name) == "" {
		return DomainError{Code: ErrInvalidName, Message: "service name is required"}
	}
	if strings.TrimSpace(unit) == "" {
		return DomainError{Code: ErrInvalidUnit, Message: "billing unit is required"}
	}
	if unitPrice <= 0 {
		return DomainError{Code: ErrInvalidPrice, Message: fmt.Sprintf("unit price must be positive: %d", unitPrice)}
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
	ErrInvalidName  = "INVALID_NAME"
	ErrInvalidUnit  = "INVALID_UNIT"
	ErrInvalidPrice = "INVALID_PRICE"
)
