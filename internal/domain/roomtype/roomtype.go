package roomtype

import (
	"fmt"
	"strings"
	"time"
)

// RoomType describes a category of dormitory rooms and its pricing.
type RoomType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	MonthlyRate Money     `json:"monthlyRate"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Money is a monetary amount in the smallest currency unit (cents).
type Money int64

// MaxCapacity caps how many residents a single room may hold.
const MaxCapacity = 10

// NewRoomType creates a room type with validation.
func NewRoomType(name string, capacity int, rate Money, description string) (*RoomType, error) {
	if err := validate(name, capacity, rate); err != nil {
		return nil, err
	}
	now := time.Now()
	return &RoomType{
		Name:        strings.TrimSpace(name),
		Capacity:    capacity,
		MonthlyRate: rate,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update applies editable fields following the same rules as creation.
func (t *RoomType) Update(name string, capacity int, rate Money, description string) error {
	if err := validate(name, capacity, rate); err != nil {
		return err
	}
	t.Name = strings.TrimSpace(name)
	t.Capacity = capacity
	t.MonthlyRate = rate
	t.Description = strings.TrimSpace(description)
	t.UpdatedAt = time.Now()
	return nil
}

func validate(name string, capacity int, rate Money) error {
	if strings.TrimSpace(name) == "" {
		return DomainError{Code: ErrInvalidName, Message: "name is required"}
	}
	if capacity < 1 || capacity > MaxCapacity {
		return DomainError{Code: ErrInvalidCapacity, Message: fmt.Sprintf("capacity must be between 1 and %d", MaxCapacity)}
	}
	if rate <= 0 {
		return DomainError{Code: ErrInvalidRate, Message: "monthly rate must be positive"}
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
	ErrInvalidName     = "INVALID_NAME"
	ErrInvalidCapacity = "INVALID_CAPACITY"
	ErrInvalidRate     = "INVALID_RATE"
)
