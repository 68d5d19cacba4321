package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInvalidState  = "invalid_state"
	ErrCodeValidation    = "validation_error"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses. Success is
// always explicit; callers must not infer failure from the HTTP status alone.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes an APIResponse with success=true and the given message and data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: true, Message: message, Data: data})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode,
// and encodes an APIResponse with success=false and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Message: message,
		Error:   &APIError{Code: code, Message: message},
	})
}
