package admin

import (
	"time"

	"dormdesk/pkg/client"
	"dormdesk/pkg/crud"
)

// Usage is the wire record for the service-usage screen. RoomID and
// ServiceID link to the room and utility-service screens by identifier.
type Usage struct {
	ID        int64 `json:"id"`
	RoomID    int64 `json:"roomId"`
	ServiceID int64 `json:"serviceId"`
	Quantity  int   `json:"quantity"`
	Month     int   `json:"month"`
	Year      int   `json:"year"`
}

// UsageDraft is the editable working copy behind the create/edit form.
type UsageDraft struct {
	RoomID    int64 `json:"roomId"`
	ServiceID int64 `json:"serviceId"`
	Quantity  int   `json:"quantity"`
	Month     int   `json:"month"`
	Year      int   `json:"year"`
}

// minYear mirrors the server-side bound on the billing year.
const minYear = 2000

// ValidateUsageDraft applies the service-usage field rules.
func ValidateUsageDraft(d UsageDraft) crud.FieldErrors {
	errs := crud.FieldErrors{}
	crud.RequireID(errs, "roomId", d.RoomID)
	crud.RequireID(errs, "serviceId", d.ServiceID)
	crud.RequirePositive(errs, "quantity", int64(d.Quantity))
	crud.RequireRange(errs, "month", d.Month, 1, 12)
	crud.RequireMin(errs, "year", d.Year, minYear)
	return errs
}

func seedUsage(u Usage) UsageDraft {
	return UsageDraft{
		RoomID:    u.RoomID,
		ServiceID: u.ServiceID,
		Quantity:  u.Quantity,
		Month:     u.Month,
		Year:      u.Year,
	}
}

// defaultUsageDraft starts a new record in the current billing month.
func defaultUsageDraft() UsageDraft {
	now := time.Now()
	return UsageDraft{Month: int(now.Month()), Year: now.Year()}
}

// NewUsageController builds the controller and client for the
// service-usage screen.
func NewUsageController(o Options) (*crud.Controller[Usage, UsageDraft], *client.Client[Usage, UsageDraft], error) {
	return newController("usage", o, ValidateUsageDraft, seedUsage, defaultUsageDraft)
}
