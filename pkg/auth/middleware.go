package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/pkg/logger"
)

const (
	sessionName      = "catalog_session"
	sessionUserIDKey = "user_id"
	sessionNameKey   = "name"
	sessionEmailKey  = "email"
)

// Middleware is the shape shared by every authentication middleware here.
type Middleware func(http.Handler) http.Handler

// Authenticate is a chi middleware that resolves the bearer credential with
// resolver and injects the Identity into the request context.
// A missing or rejected credential yields 401 {"msg": ...}; a resolver
// failure yields 500 {"errors": [...]}. Either way the handler never runs.
//
// After this middleware, handlers can safely call auth.IdentityFromCtx(r.Context()).
func Authenticate(resolver Resolver, log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := BearerToken(r)
			if err != nil {
				log.WarnContext(r.Context(), "missing bearer credential")
				httpx.Message(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}

			id, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, ErrUnauthenticated) {
					log.WarnContext(r.Context(), "credential rejected", "error", err)
					httpx.Message(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
					return
				}
				log.ErrorContext(r.Context(), "credential resolution failed", "error", err)
				httpx.Errors(w, http.StatusInternalServerError, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r, id)))
		})
	}
}

// RequireSession is the cookie-session counterpart of Authenticate. The
// session is written by the user service into the shared store; its user_id
// value is the identity. Returns 401 if the session is missing or lacks a user_id.
func RequireSession(store sessions.Store, log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.Message(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}

			userID, ok := session.Values[sessionUserIDKey].(string)
			if !ok || userID == "" {
				log.WarnContext(r.Context(), "session missing user_id")
				httpx.Message(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}

			id := Identity{ID: userID}
			id.Name, _ = session.Values[sessionNameKey].(string)
			id.Email, _ = session.Values[sessionEmailKey].(string)

			next.ServeHTTP(w, r.WithContext(withIdentity(r, id)))
		})
	}
}

func withIdentity(r *http.Request, id Identity) context.Context {
	ctx := WithIdentity(r.Context(), id)
	return logger.AppendCtx(ctx, slog.String("user_id", id.ID))
}
