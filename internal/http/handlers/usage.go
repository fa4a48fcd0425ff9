package handlers

import (
	"encoding/json"
	"net/http"

	"dormdesk/internal/export"
	usagesvc "dormdesk/internal/services/usage"
)

// ListUsage handles paginated service-usage listing
func ListUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), parseListParams(r))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// AllUsage returns the unpaginated service-usage collection
func AllUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// GetUsage returns a single service-usage record by ID
func GetUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		u, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// CreateUsage handles service-usage creation
func CreateUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req usagesvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		u, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, u)
	}
}

// UpdateUsage handles service-usage updates
func UpdateUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req usagesvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		u, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// DeleteUsage handles service-usage deletion
func DeleteUsage(svc *usagesvc.Service) http.HandlerFunc {
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

// ExportUsage downloads the service-usage collection as a workbook
func ExportUsage(svc *usagesvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		data, err := export.Usage(items)
		if err != nil {
			respondError(w, err)
			return
		}
		writeWorkbook(w, "service-usage.xlsx", data)
	}
}
