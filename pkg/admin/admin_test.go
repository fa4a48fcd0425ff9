package admin

import (
	"testing"
	"time"
)

func TestValidateRoomDraft(t *testing.T) {
	valid := RoomDraft{Number: "A-101", Floor: 1, RoomTypeID: 2, Status: "available"}
	if errs := ValidateRoomDraft(valid); !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}

	cases := []struct {
		name  string
		mut   func(*RoomDraft)
		field string
	}{
		{"empty number", func(d *RoomDraft) { d.Number = " " }, "number"},
		{"negative floor", func(d *RoomDraft) { d.Floor = -1 }, "floor"},
		{"zero room type", func(d *RoomDraft) { d.RoomTypeID = 0 }, "roomTypeId"},
		{"negative room type", func(d *RoomDraft) { d.RoomTypeID = -2 }, "roomTypeId"},
		{"unknown status", func(d *RoomDraft) { d.Status = "demolished" }, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := valid
			c.mut(&d)
			errs := ValidateRoomDraft(d)
			if _, ok := errs[c.field]; !ok {
				t.Fatalf("expected error on %s, got %v", c.field, errs)
			}
		})
	}
}

func TestValidateRoomTypeDraft(t *testing.T) {
	valid := RoomTypeDraft{Name: "Double", Capacity: 2, MonthlyRate: 450000}
	if errs := ValidateRoomTypeDraft(valid); !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}

	cases := []struct {
		name  string
		mut   func(*RoomTypeDraft)
		field string
	}{
		{"empty name", func(d *RoomTypeDraft) { d.Name = "" }, "name"},
		{"zero capacity", func(d *RoomTypeDraft) { d.Capacity = 0 }, "capacity"},
		{"capacity over max", func(d *RoomTypeDraft) { d.Capacity = 11 }, "capacity"},
		{"zero rate", func(d *RoomTypeDraft) { d.MonthlyRate = 0 }, "monthlyRate"},
		{"negative rate", func(d *RoomTypeDraft) { d.MonthlyRate = -5 }, "monthlyRate"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := valid
			c.mut(&d)
			errs := ValidateRoomTypeDraft(d)
			if _, ok := errs[c.field]; !ok {
				t.Fatalf("expected error on %s, got %v", c.field, errs)
			}
		})
	}
}

func TestValidateUtilityDraft(t *testing.T) {
	valid := UtilityDraft{Name: "Electricity", Unit: "kWh", UnitPrice: 3500}
	if errs := ValidateUtilityDraft(valid); !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}

	d := valid
	d.UnitPrice = 0
	if errs := ValidateUtilityDraft(d); errs.Valid() {
		t.Fatal("expected error for zero unit price")
	}
	d = valid
	d.Unit = ""
	if errs := ValidateUtilityDraft(d); errs.Valid() {
		t.Fatal("expected error for missing unit")
	}
}

func TestValidateUsageDraft(t *testing.T) {
	valid := UsageDraft{RoomID: 1, ServiceID: 2, Quantity: 120, Month: 6, Year: 2026}
	if errs := ValidateUsageDraft(valid); !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}

	cases := []struct {
		name  string
		mut   func(*UsageDraft)
		field string
	}{
		{"zero room", func(d *UsageDraft) { d.RoomID = 0 }, "roomId"},
		{"zero service", func(d *UsageDraft) { d.ServiceID = 0 }, "serviceId"},
		{"zero quantity", func(d *UsageDraft) { d.Quantity = 0 }, "quantity"},
		{"negative quantity", func(d *UsageDraft) { d.Quantity = -3 }, "quantity"},
		{"month too low", func(d *UsageDraft) { d.Month = 0 }, "month"},
		{"month too high", func(d *UsageDraft) { d.Month = 13 }, "month"},
		{"year too early", func(d *UsageDraft) { d.Year = 1999 }, "year"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := valid
			c.mut(&d)
			errs := ValidateUsageDraft(d)
			if _, ok := errs[c.field]; !ok {
				t.Fatalf("expected error on %s, got %v", c.field, errs)
			}
		})
	}
}

func TestValidateContractDraft(t *testing.T) {
	valid := ContractDraft{
		TenantName: "Minh Tran",
		RoomID:     1,
		StartDate:  "2026-09-01",
		Status:     "active",
	}
	if errs := ValidateContractDraft(valid); !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}

	d := valid
	d.StartDate = "01/09/2026"
	if errs := ValidateContractDraft(d); errs["startDate"] == "" {
		t.Fatal("expected error for malformed start date")
	}

	d = valid
	d.EndDate = "2026-08-01"
	if errs := ValidateContractDraft(d); errs["endDate"] == "" {
		t.Fatal("expected error for end date before start date")
	}

	d = valid
	d.EndDate = "2027-08-31"
	if errs := ValidateContractDraft(d); !errs.Valid() {
		t.Fatalf("expected valid draft with later end date, got %v", errs)
	}
}

func TestDefaultDrafts(t *testing.T) {
	if d := defaultRoomDraft(); d.Status != "available" {
		t.Fatalf("expected default room status available, got %q", d.Status)
	}
	if d := defaultRoomTypeDraft(); d.Capacity != 1 {
		t.Fatalf("expected default capacity 1, got %d", d.Capacity)
	}

	now := time.Now()
	ud := defaultUsageDraft()
	if ud.Month != int(now.Month()) || ud.Year != now.Year() {
		t.Fatalf("expected current billing period, got %d-%d", ud.Year, ud.Month)
	}

	cd := defaultContractDraft()
	if cd.Status != "active" {
		t.Fatalf("expected default contract status active, got %q", cd.Status)
	}
	if _, err := time.Parse(DateLayout, cd.StartDate); err != nil {
		t.Fatalf("expected parsable default start date, got %q", cd.StartDate)
	}
}
