package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghuser/catalog/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Message(w, http.StatusNotFound, "Category is not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"msg": "Category is not found"}, body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Errors(w, http.StatusInternalServerError, "connection refused")

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	want := map[string]any{"errors": []any{"connection refused"}}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_NoMessagesEncodesEmptyList(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Errors(w, http.StatusBadRequest)

	if got := w.Body.String(); got != "{\"errors\":[]}\n" {
		t.Errorf("unexpected body: %q", got)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: relation \"items\" does not exist")

	if got := httpx.SafeError(err, http.StatusInternalServerError, false); got != err.Error() {
		t.Errorf("development should surface message, got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production should hide 5xx message, got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusNotFound, true); got != err.Error() {
		t.Errorf("production should keep 4xx message, got %q", got)
	}
}
