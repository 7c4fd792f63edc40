package httpx

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for domain-level rejections (not found,
// conflict, unauthenticated).
type MessageResponse struct {
	Msg string `json:"msg" example:"The Item is not found!"`
} // @name MessageResponse

// ErrorsResponse is the body for validation failures and unexpected errors.
type ErrorsResponse struct {
	Errors []string          `json:"errors" example:"name is required"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorsResponse

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {"msg": message} response.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessageResponse{Msg: message})
}

// Errors writes a {"errors": [...]} response.
func Errors(w http.ResponseWriter, status int, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	JSON(w, status, ErrorsResponse{Errors: messages})
}

// SafeError returns the error message for client responses.
// In production (isProduction=true), internal server errors (5xx) are replaced
// with a generic message to avoid leaking implementation details.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
