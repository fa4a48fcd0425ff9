package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dormdesk/internal/domain/contract"
	"dormdesk/internal/domain/room"
	"dormdesk/internal/domain/roomtype"
	"dormdesk/internal/domain/usage"
	"dormdesk/internal/domain/utility"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"

	"github.com/go-chi/chi/v5"
)

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fieldError is the 400 payload for a rejected field; the form shows the
// message inline next to the field.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps service errors onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, fieldError{Field: ve.Field, Message: ve.Message})
		return
	}
	if msg, ok := domainMessage(err); ok {
		writeJSON(w, http.StatusBadRequest, fieldError{Message: msg})
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// domainMessage extracts the message from any entity's validation error,
// so a domain-level rejection still answers 400 rather than 500.
func domainMessage(err error) (string, bool) {
	var (
		rtErr roomtype.DomainError
		rmErr room.DomainError
		utErr utility.DomainError
		usErr usage.DomainError
		ctErr contract.DomainError
	)
	switch {
	case errors.As(err, &rtErr):
		return rtErr.Message, true
	case errors.As(err, &rmErr):
		return rmErr.Message, true
	case errors.As(err, &utErr):
		return utErr.Message, true
	case errors.As(err, &usErr):
		return usErr.Message, true
	case errors.As(err, &ctErr):
		return ctErr.Message, true
	}
	return "", false
}

// parseListParams parses page/size query parameters; Normalize applies
// the defaults and the allowed page sizes.
func parseListParams(r *http.Request) crud.ListParams {
	var p crud.ListParams
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Size = n
		}
	}
	p.Normalize()
	return p
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeWorkbook sends xlsx bytes as a file download.
func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}
