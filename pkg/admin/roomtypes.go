package admin

import (
	"dormdesk/pkg/client"
	"dormdesk/pkg/crud"
)

// RoomType is the wire record for the room-type screen.
type RoomType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	MonthlyRate int64  `json:"monthlyRate"`
	Description string `json:"description,omitempty"`
}

// RoomTypeDraft is the editable working copy behind the create/edit form.
type RoomTypeDraft struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	MonthlyRate int64  `json:"monthlyRate"`
	Description string `json:"description,omitempty"`
}

// maxCapacity mirrors the server-side bound on room capacity.
const maxCapacity = 10

// ValidateRoomTypeDraft applies the room-type field rules.
func ValidateRoomTypeDraft(d RoomTypeDraft) crud.FieldErrors {
	errs := crud.FieldErrors{}
	crud.RequireString(errs, "name", d.Name)
	crud.RequireRange(errs, "capacity", d.Capacity, 1, maxCapacity)
	crud.RequirePositive(errs, "monthlyRate", d.MonthlyRate)
	return errs
}

func seedRoomType(t RoomType) RoomTypeDraft {
	return RoomTypeDraft{
		Name:        t.Name,
		Capacity:    t.Capacity,
		MonthlyRate: t.MonthlyRate,
		Description: t.Description,
	}
}

func defaultRoomTypeDraft() RoomTypeDraft {
	return RoomTypeDraft{Capacity: 1}
}

// NewRoomTypeController builds the controller and client for the
// room-type screen.
func NewRoomTypeController(o Options) (*crud.Controller[RoomType, RoomTypeDraft], *client.Client[RoomType, RoomTypeDraft], error) {
	return newController("room-types", o, ValidateRoomTypeDraft, seedRoomType, defaultRoomTypeDraft)
}
