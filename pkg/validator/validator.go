package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/catalog/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FieldError is one failed field in declaration order.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors converts validator.ValidationErrors into field/message pairs,
// preserving struct field order. Any other error yields nil.
func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Message: formatFieldError(e)})
	}
	return out
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	fields := FieldErrors(err)
	errs := make(map[string]string, len(fields))
	for _, f := range fields {
		errs[f.Field] = f.Message
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", e.Field())
	case "numeric", "e164":
		return fmt.Sprintf("%s must be a valid phone number", e.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s failed validation on '%s'", e.Field(), e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes a 400 {"errors": [...], "fields": {...}} response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Errors(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if err := Validate(&req); err != nil {
		fields := FieldErrors(err)
		resp := httpx.ErrorsResponse{
			Errors: make([]string, 0, len(fields)),
			Fields: make(map[string]string, len(fields)),
		}
		for _, f := range fields {
			resp.Errors = append(resp.Errors, f.Message)
			resp.Fields[f.Field] = f.Message
		}
		httpx.JSON(w, http.StatusBadRequest, resp)
		return nil, false
	}
	return &req, true
}
