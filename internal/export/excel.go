// Package export renders resource collections as xlsx workbooks for the
// per-screen export buttons.
package export

import (
	"fmt"

	"dormdesk/internal/domain/room"
	"dormdesk/internal/domain/roomtype"
	"dormdesk/internal/domain/usage"
	"dormdesk/internal/domain/utility"
	contractsvc "dormdesk/internal/services/contract"

	"github.com/xuri/excelize/v2"
)

// workbook writes a single-sheet workbook with a header row followed by
// the data rows.
func workbook(sheet string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Rooms renders the room collection.
func Rooms(items []*room.Room) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, r := range items {
		rows = append(rows, []any{r.ID, r.Number, r.Floor, r.RoomTypeID, string(r.Status), r.Note})
	}
	return workbook("Rooms", []string{"ID", "Number", "Floor", "Room Type ID", "Status", "Note"}, rows)
}

// RoomTypes renders the room-type collection.
func RoomTypes(items []*roomtype.RoomType) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, t := range items {
		rows = append(rows, []any{t.ID, t.Name, t.Capacity, int64(t.MonthlyRate), t.Description})
	}
	return workbook("Room Types", []string{"ID", "Name", "Capacity", "Monthly Rate", "Description"}, rows)
}

// Utilities renders the utility-service collection.
func Utilities(items []*utility.Service) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, u := range items {
		rows = append(rows, []any{u.ID, u.Name, u.Unit, int64(u.UnitPrice)})
	}
	return workbook("Utility Services", []string{"ID", "Name", "Unit", "Unit Price"}, rows)
}

// Usage renders the service-usage collection.
func Usage(items []*usage.Usage) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, u := range items {
		rows = append(rows, []any{u.ID, u.RoomID, u.ServiceID, u.Quantity, u.Period()})
	}
	return workbook("Service Usage", []string{"ID", "Room ID", "Service ID", "Quantity", "Period"}, rows)
}

// Contracts renders the contract collection.
func Contracts(items []*contractsvc.View) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, c := range items {
		rows = append(rows, []any{c.ID, c.TenantName, c.RoomID, c.StartDate, c.EndDate, c.Status})
	}
	return workbook("Contracts", []string{"ID", "Tenant", "Room ID", "Start Date", "End Date", "Status"}, rows)
}
