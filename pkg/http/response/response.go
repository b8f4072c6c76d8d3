package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire shape shared by every API response. Status is always
// "success" or "error"; smoketest tooling keys off that field.
type Envelope map[string]interface{}

// ErrorBody represents a standardized error response.
type ErrorBody struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Success writes a success envelope, merging the supplied payload fields.
func Success(w http.ResponseWriter, httpStatus int, payload Envelope) {
	body := Envelope{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(body)
}

// Error writes a standardized error response to the HTTP response writer.
func Error(w http.ResponseWriter, httpStatus int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(ErrorBody{
		Status:  "error",
		Error:   code,
		Message: message,
	})
}

// ValidationError writes a validation error response with field information.
func ValidationError(w http.ResponseWriter, code, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorBody{
		Status:  "error",
		Error:   code,
		Message: message,
		Field:   field,
	})
}

// InternalError writes an internal server error response.
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// NotFound writes a not found error response.
func NotFound(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusNotFound, code, message)
}

// BadRequest writes a bad request error response.
func BadRequest(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusBadRequest, code, message)
}

// Conflict writes a conflict error response.
func Conflict(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusConflict, code, message)
}

// ServiceUnavailable writes a service unavailable error response.
func ServiceUnavailable(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusServiceUnavailable, code, message)
}
