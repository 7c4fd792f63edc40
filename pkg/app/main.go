// Package app holds the infrastructure shared by every bounded context.
package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/database"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/pkg/redisx"
	"github.com/ghuser/catalog/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, request_id and user_id are injected:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db      *database.Database // nil with STORE_DRIVER=memory
	Logger  logger.Logger
	Events  *events.Bus    // nil with STORE_DRIVER=memory
	Redis   *redisx.Client // nil unless AUTH_MODE=session
	Metrics *telemetry.Metrics
	Errors  *errhttp.Writer

	// Authenticate resolves the caller on owner-scoped routes.
	Authenticate auth.Middleware
	// SessionStore is set when AUTH_MODE=session; nil in the worker.
	SessionStore sessions.Store
}

// Publisher returns the outbox publisher for repositories, or nil when
// there is no event bus.
func (a *Application) Publisher() events.TxPublisher {
	if a.Events == nil {
		return nil
	}
	return a.Events
}
