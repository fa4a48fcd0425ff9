package handlers

import (
	"encoding/json"
	"net/http"

	"dormdesk/internal/export"
	roomsvc "dormdesk/internal/services/room"
	usagesvc "dormdesk/internal/services/usage"
)

// ListRooms handles paginated room listing
func ListRooms(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), parseListParams(r))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// AllRooms returns the unpaginated room collection
func AllRooms(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// GetRoom returns a single room by ID
func GetRoom(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		rm, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rm)
	}
}

// CreateRoom handles room creation
func CreateRoom(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roomsvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		rm, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rm)
	}
}

// UpdateRoom handles room updates
func UpdateRoom(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req roomsvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		rm, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rm)
	}
}

// DeleteRoom handles room deletion
func DeleteRoom(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportRooms downloads the room collection as a workbook
func ExportRooms(svc *roomsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		data, err := export.Rooms(items)
		if err != nil {
			respondError(w, err)
			return
		}
		writeWorkbook(w, "rooms.xlsx", data)
	}
}

// ListRoomUsage lists one room's usage records; backs the navigation
// link from the room screen to its consumption history.
func ListRoomUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		page, err := svc.ListByRoom(r.Context(), id, parseListParams(r))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}
