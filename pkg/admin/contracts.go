package admin

import (
	"time"

	"dormdesk/pkg/client"
	"dormdesk/pkg/crud"
)

// Contract is the wire record for the contract screen. RoomID links to
// the room screen by identifier.
type Contract struct {
	ID         int64  `json:"id"`
	TenantName string `json:"tenantName"`
	RoomID     int64  `json:"roomId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	Status     string `json:"status"`
}

// ContractDraft is the editable working copy behind the create/edit form.
// Dates travel as "YYYY-MM-DD"; an empty end date means open-ended.
type ContractDraft struct {
	TenantName string `json:"tenantName"`
	RoomID     int64  `json:"roomId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	Status     string `json:"status"`
}

// DateLayout is the wire format for contract dates.
const DateLayout = "2006-01-02"

// Contract statuses offered by the status select.
var ContractStatuses = []string{"active", "ended", "cancelled"}

// ValidateContractDraft applies the contract field rules.
func ValidateContractDraft(d ContractDraft) crud.FieldErrors {
	errs := crud.FieldErrors{}
	crud.RequireString(errs, "tenantName", d.TenantName)
	crud.RequireID(errs, "roomId", d.RoomID)
	crud.RequireOneOf(errs, "status", d.Status, ContractStatuses...)

	start, err := time.Parse(DateLayout, d.StartDate)
	if err != nil {
		errs["startDate"] = "startDate must be a date (YYYY-MM-DD)"
	}
	if d.EndDate != "" {
		end, err := time.Parse(DateLayout, d.EndDate)
		if err != nil {
			errs["endDate"] = "endDate must be a date (YYYY-MM-DD)"
		} else if _, ok := errs["startDate"]; !ok && end.Before(start) {
			errs["endDate"] = "endDate must not be before startDate"
		}
	}
	return errs
}

func seedContract(c Contract) ContractDraft {
	return ContractDraft{
		TenantName: c.TenantName,
		RoomID:     c.RoomID,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Status:     c.Status,
	}
}

// defaultContractDraft starts a new active contract from today.
func defaultContractDraft() ContractDraft {
	return ContractDraft{
		StartDate: time.Now().Format(DateLayout),
		Status:    "active",
	}
}

// NewContractController builds the controller and client for the
// contract screen.
func NewContractController(o Options) (*crud.Controller[Contract, ContractDraft], *client.Client[Contract, ContractDraft], error) {
	return newController("contracts", o, ValidateContractDraft, seedContract, defaultContractDraft)
}
