package handlers

import (
	"encoding/json"
	"net/http"

	"dormdesk/internal/export"
	utilitysvc "dormdesk/internal/services/utility"
)

// ListUtilities handles paginated utility-service listing
func ListUtilities(svc *utilitysvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), parseListParams(r))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// AllUtilities returns the unpaginated utility-service collection
func AllUtilities(svc *utilitysvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// GetUtility returns a single utility service by ID
func GetUtility(svc *utilitysvc.Service) http.HandlerFunc {
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

// CreateUtility handles utility-service creation
func CreateUtility(svc *utilitysvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req utilitysvc.Request
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

// UpdateUtility handles utility-service updates
func UpdateUtility(svc *utilitysvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req utilitysvc.Request
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

// DeleteUtility handles utility-service deletion
func DeleteUtility(svc *utilitysvc.Service) http.HandlerFunc {
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

// ExportUtilities downloads the utility-service collection as a workbook
func ExportUtilities(svc *utilitysvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		data, err := export.Utilities(items)
		if err != nil {
			respondError(w, err)
			return
		}
		writeWorkbook(w, "utilities.xlsx", data)
	}
}
