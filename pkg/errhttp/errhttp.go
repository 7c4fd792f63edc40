// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a row to the rules table for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/pkg/telemetry"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
	itemdomain "github.com/ghuser/catalog/services/item/domain"
)

type kind int

const (
	kindNotFound kind = iota
	kindConflict
	kindInvalid
	kindUnauthenticated
)

type rule struct {
	sentinel error
	kind     kind
}

// First match wins.
var rules = []rule{
	{categorydomain.ErrCategoryNotFound, kindNotFound},
	{itemdomain.ErrItemNotFound, kindNotFound},
	{categorydomain.ErrCategoryAlreadyExists, kindConflict},
	{itemdomain.ErrMobileAlreadyExists, kindConflict},
	{categorydomain.ErrInvalidCategory, kindInvalid},
	{itemdomain.ErrInvalidItem, kindInvalid},
	{auth.ErrUnauthenticated, kindUnauthenticated},
	{auth.ErrIdentityNotFound, kindUnauthenticated},
}

// Options configures a Writer.
type Options struct {
	// LegacyConflictStatus answers conflicts with 401 instead of 409.
	LegacyConflictStatus bool
	// HideInternalErrors replaces 5xx messages with the status text.
	HideInternalErrors bool
	// Log receives every 5xx. Nil discards.
	Log logger.Logger
}

// Writer writes the response for an error returned by an application service.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
//
//	not found / not owned → 404 {"msg": ...}
//	duplicate name/mobile → 409 {"msg": ...} (401 in legacy mode)
//	domain validation     → 400 {"errors": [...]}
//	unauthenticated       → 401 {"msg": ...}
//	anything else         → 500 {"errors": [...]}, reported to Sentry
type Writer struct {
	conflictStatus int
	hideInternal   bool
	log            logger.Logger
}

// NewWriter returns a Writer for opts.
func NewWriter(opts Options) *Writer {
	w := &Writer{
		conflictStatus: http.StatusConflict,
		hideInternal:   opts.HideInternalErrors,
		log:            opts.Log,
	}
	if opts.LegacyConflictStatus {
		w.conflictStatus = http.StatusUnauthorized
	}
	if w.log == nil {
		w.log = logger.Discard()
	}
	return w
}

// Write maps err to a status and body and writes it.
func (wr *Writer) Write(w http.ResponseWriter, r *http.Request, err error) {
	for _, rl := range rules {
		if !errors.Is(err, rl.sentinel) {
			continue
		}
		switch rl.kind {
		case kindNotFound:
			httpx.Message(w, http.StatusNotFound, rl.sentinel.Error())
		case kindConflict:
			httpx.Message(w, wr.conflictStatus, rl.sentinel.Error())
		case kindInvalid:
			httpx.Errors(w, http.StatusBadRequest, err.Error())
		case kindUnauthenticated:
			httpx.Message(w, http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
		}
		return
	}

	wr.log.ErrorContext(r.Context(), "request failed", "error", err)
	telemetry.CaptureError(r.Context(), err)
	httpx.Errors(w, http.StatusInternalServerError,
		httpx.SafeError(err, http.StatusInternalServerError, wr.hideInternal))
}

