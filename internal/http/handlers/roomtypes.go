package handlers

import (
	"encoding/json"
	"net/http"

	"dormdesk/internal/export"
	typesvc "dormdesk/internal/services/roomtype"
)

// ListRoomTypes handles paginated room-type listing
func ListRoomTypes(svc *typesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), parseListParams(r))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// AllRoomTypes returns the unpaginated room-type collection
func AllRoomTypes(svc *typesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// GetRoomType returns a single room type by ID
func GetRoomType(svc *typesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		t, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// CreateRoomType handles room-type creation
func CreateRoomType(svc *typesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req typesvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

// UpdateRoomType handles room-type updates
func UpdateRoomType(svc *typesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req typesvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// DeleteRoomType handles room-type deletion
func DeleteRoomType(svc *typesvc.Service) http.HandlerFunc {
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

// ExportRoomTypes downloads the room-type collection as a workbook
func ExportRoomTypes(svc *typesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		data, err := export.RoomTypes(items)
		if err != nil {
			respondError(w, err)
			return
		}
		writeWorkbook(w, "room-types.xlsx", data)
	}
}
