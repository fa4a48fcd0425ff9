package admin

import (
	"dormdesk/pkg/client"
	"dormdesk/pkg/crud"
)

// Room is the wire record for the room screen. RoomTypeID links to the
// room-type screen by identifier.
type Room struct {
	ID         int64  `json:"id"`
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	RoomTypeID int64  `json:"roomTypeId"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
}

// RoomDraft is the editable working copy behind the create/edit form.
type RoomDraft struct {
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	RoomTypeID int64  `json:"roomTypeId"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
}

// Room statuses offered by the status select.
var RoomStatuses = []string{"available", "occupied", "maintenance"}

// ValidateRoomDraft applies the room field rules.
func ValidateRoomDraft(d RoomDraft) crud.FieldErrors {
	errs := crud.FieldErrors{}
	crud.RequireString(errs, "number", d.Number)
	crud.RequireMin(errs, "floor", d.Floor, 0)
	crud.RequireID(errs, "roomTypeId", d.RoomTypeID)
	crud.RequireOneOf(errs, "status", d.Status, RoomStatuses...)
	return errs
}

func seedRoom(r Room) RoomDraft {
	return RoomDraft{
		Number:     r.Number,
		Floor:      r.Floor,
		RoomTypeID: r.RoomTypeID,
		Status:     r.Status,
		Note:       r.Note,
	}
}

func defaultRoomDraft() RoomDraft {
	return RoomDraft{Status: "available"}
}

// NewRoomController builds the controller and client for the room screen.
func NewRoomController(o Options) (*crud.Controller[Room, RoomDraft], *client.Client[Room, RoomDraft], error) {
	return newController("rooms", o, ValidateRoomDraft, seedRoom, defaultRoomDraft)
}
