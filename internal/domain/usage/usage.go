package usage

import (
	"fmt"
	"time"
)

// Usage records how much of a utility service a room consumed in a given
// billing month.
type Usage struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"roomId"`
	ServiceID int64     `json:"serviceId"`
	Quantity  int       `json:"quantity"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MinYear is the earliest billing year accepted.
const MinYear = 2000

// NewUsage creates a usage record with validation.
func NewUsage(roomID, serviceID int64, quantity, month, year int) (*Usage, error) {
	if err := validate(roomID, serviceID, quantity, month, year); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Usage{
		RoomID:    roomID,
		ServiceID: serviceID,
		Quantity:  quantity,
		Month:     month,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update applies editable fields following the same rules as creation.
func (u *Usage) Update(roomID, serviceID int64, quantity, month, year int) error {
	if err := validate(roomID, serviceID, quantity, month, year); err != nil {
		return err
	}
	u.RoomID = roomID
	u.ServiceID = serviceID
	u.Quantity = quantity
	u.Month = month
	u.Year = year
	u.UpdatedAt = time.Now()
	return nil
}

// Period returns the billing period as "YYYY-MM".
func (u *Usage) Period() string {
	return fmt.Sprintf("%04d-%02d", u.Year, u.Month)
}

func validate(roomID, serviceID int64, quantity, month, year int) error {
	if roomID <= 0 {
		return DomainError{Code: ErrInvalidRoom, Message: fmt.Sprintf("invalid room ID: %d", roomID)}
	}
	if serviceID <= 0 {
		return DomainError{Code: ErrInvalidService, Message: fmt.Sprintf("invalid service ID: %d", serviceID)}
	}
	if quantity <= 0 {
		return DomainError{Code: ErrInvalidQuantity, Message: fmt.Sprintf("quantity must be positive: %d", quantity)}
	}
	if month < 1 || month > 12 {
		return DomainError{Code: ErrInvalidPeriod, Message: fmt.Sprintf("month must be between 1 and 12: %d", month)}
	}
	if year < MinYear {
		return DomainError{Code: ErrInvalidPeriod, Message: fmt.Sprintf("year must be %d or later: %d", MinYear, year)}
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
	ErrInvalidRoom     = "INVALID_ROOM"
	ErrInvalidService  = "INVALID_SERVICE"
	ErrInvalidQuantity = "INVALID_QUANTITY"
	ErrInvalidPeriod   = "INVALID_PERIOD"
)
