package room

import (
	"fmt"
	"strings"
	"time"
)

// Room represents a single dormitory room.
type Room struct {
	ID         int64     `json:"id"`
	Number     string    `json:"number"`
	Floor      int       `json:"floor"`
	RoomTypeID int64     `json:"roomTypeId"`
	Status     Status    `json:"status"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Status represents room occupancy status
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

// NewRoom creates a room with validation. A zero status defaults to available.
func NewRoom(number string, floor int, roomTypeID int64, status Status, note string) (*Room, error) {
	if status == "" {
		status = StatusAvailable
	}
	if err := validate(number, floor, roomTypeID, status); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Room{
		Number:     strings.TrimSpace(number),
		Floor:      floor,
		RoomTypeID: roomTypeID,
		Status:     status,
		Note:       strings.TrimSpace(note),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update applies editable fields following the same rules as creation.
func (r *Room) Update(number string, floor int, roomTypeID int64, status Status, note string) error {
	if err := validate(number, floor, roomTypeID, status); err != nil {
		return err
	}
	r.Number = strings.TrimSpace(number)
	r.Floor = floor
	r.RoomTypeID = roomTypeID
	r.Status = status
	r.Note = strings.TrimSpace(note)
	r.UpdatedAt = time.Now()
	return nil
}

// UnderMaintenance checks if the room is closed for maintenance.
func (r *Room) UnderMaintenance() bool {
	return r.Status == StatusMaintenance
}

func validate(number string, floor int, roomTypeID int64, status Status) error {
	if strings.TrimSpace(number) == "" {
		return DomainError{Code: ErrInvalidNumber, Message: "room number is required"}
	}
	if floor < 0 {
		return DomainError{Code: ErrInvalidFloor, Message: fmt.Sprintf("floor cannot be negative: %d", floor)}
	}
	if roomTypeID <= 0 {
		return DomainError{Code: ErrInvalidRoomType, Message: fmt.Sprintf("invalid room type ID: %d", roomTypeID)}
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
	ErrInvalidNumber   = "INVALID_NUMBER"
	ErrInvalidFloor    = "INVALID_FLOOR"
	ErrInvalidRoomType = "INVALID_ROOM_TYPE"
	ErrInvalidStatus   = "INVALID_STATUS"
)
