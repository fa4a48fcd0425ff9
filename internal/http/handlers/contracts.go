package handlers

import (
	"encoding/json"
	"net/http"

	"dormdesk/internal/export"
	contractsvc "dormdesk/internal/services/contract"
)

// ListContracts handles paginated contract listing
func ListContracts(svc *contractsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), parseListParams(r))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// AllContracts returns the unpaginated contract collection
func AllContracts(svc *contractsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// GetContract returns a single contract by ID
func GetContract(svc *contractsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		c, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// CreateContract handles contract creation
func CreateContract(svc *contractsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contractsvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// UpdateContract handles contract updates
func UpdateContract(svc *contractsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req contractsvc.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// DeleteContract handles contract deletion
func DeleteContract(svc *contractsvc.Service) http.HandlerFunc {
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

// ExportContracts downloads the contract collection as a workbook
func ExportContracts(svc *contractsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		data, err := export.Contracts(items)
		if err != nil {
			respondError(w, err)
			return
		}
		writeWorkbook(w, "contracts.xlsx", data)
	}
}
