package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
)

type sampleStruct struct {
	Name     string  `json:"name"     validate:"required,max=10"`
	ImageURL string  `json:"imageUrl" validate:"required,url"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "phone", ImageURL: "http://x/y.png", Price: 1}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFieldErrors_PreservesDeclarationOrder(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Price: -1})
	got := pkgvalidator.FieldErrors(err)
	want := []pkgvalidator.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "imageUrl", Message: "imageUrl is required"},
		{Field: "price", Message: "price must be greater than or equal to 0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input sampleStruct
		field string
		want  string
	}{
		{"url", sampleStruct{Name: "ok", ImageURL: "not a url"}, "imageUrl", "imageUrl must be a valid URL"},
		{"max", sampleStruct{Name: "12345678901", ImageURL: "http://x"}, "name", "name must be at most 10 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.input))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type categoryReq struct {
	Name string `json:"name" validate:"required"`
}

func TestValidateRequest_valid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Electronics"}`))
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[categoryReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Electronics" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[categoryReq](w, r); ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[categoryReq](w, r); ok {
		t.Fatal("expected ok=false for empty name")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var body struct {
		Errors []string          `json:"errors"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"name is required"}, body.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if body.Fields["name"] != "name is required" {
		t.Errorf("unexpected fields: %v", body.Fields)
	}
}
