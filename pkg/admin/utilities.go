package admin

import (
	"dormdesk/pkg/client"
	"dormdesk/pkg/crud"
)

// Utility is the wire record for the utility-service screen.
type Utility struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitPrice int64  `json:"unitPrice"`
}

// UtilityDraft is the editable working copy behind the create/edit form.
type UtilityDraft struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitPrice int64  `json:"unitPrice"`
}

// ValidateUtilityDraft applies the utility-service field rules.
func ValidateUtilityDraft(d UtilityDraft) crud.FieldErrors {
	errs := crud.FieldErrors{}
	crud.RequireString(errs, "name", d.Name)
	crud.RequireString(errs, "unit", d.Unit)
	crud.RequirePositive(errs, "unitPrice", d.UnitPrice)
	return errs
}

func seedUtility(u Utility) UtilityDraft {
	return UtilityDraft{Name: u.Name, Unit: u.Unit, UnitPrice: u.UnitPrice}
}

func defaultUtilityDraft() UtilityDraft {
	return UtilityDraft{}
}

// NewUtilityController builds the controller and client for the
// utility-service screen.
func NewUtilityController(o Options) (*crud.Controller[Utility, UtilityDraft], *client.Client[Utility, UtilityDraft], error) {
	return newController("utilities", o, ValidateUtilityDraft, seedUtility, defaultUtilityDraft)
}
