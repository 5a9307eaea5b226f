package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorDetail is the machine-readable half of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope every non-2xx JSON body uses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v with the given status. Encoding failures at this
// point mean the response is already partially written; nothing sensible can
// be sent, so they are swallowed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeNotFound responds 404 with a caller-supplied message; the handler is
// the layer that knows what was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// writeValidation responds 422 with the human-readable part of a wrapped
// domain.ErrValidation error.
func writeValidation(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
}

// writeBadRequest responds 422 for a request rejected before reaching the
// service layer (missing or malformed body).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// writeInternal responds 500 without leaking the underlying error.
func writeInternal(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal", Message: "internal server error"}})
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.PreferenceService.Set: validation error: preferences
// already set" → "preferences already set".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
