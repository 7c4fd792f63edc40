package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	remoteProfilePath = "/users/me"
	maxProfileBytes   = 64 << 10
)

// RemoteResolver delegates credential verification to the external user
// service: the bearer token is forwarded to GET {baseURL}/users/me.
//
//   - 200 with a profile carrying an id → Identity
//   - 401 / 403                          → ErrUnauthenticated
//   - anything else, or transport error  → collaborator failure (500)
type RemoteResolver struct {
	baseURL string
	client  *http.Client
}

// NewRemoteResolver returns a RemoteResolver with an otel-instrumented client.
func NewRemoteResolver(baseURL string, timeout time.Duration) *RemoteResolver {
	return &RemoteResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type remoteProfile struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Resolve asks the user service who owns credential.
func (rr *RemoteResolver) Resolve(ctx context.Context, credential string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rr.baseURL+remoteProfilePath, http.NoBody)
	if err != nil {
		return Identity{}, fmt.Errorf("user service: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := rr.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("user service: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return Identity{}, fmt.Errorf("%w: rejected by user service", ErrUnauthenticated)
	default:
		return Identity{}, fmt.Errorf("user service: unexpected status %d", resp.StatusCode)
	}

	var p remoteProfile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes)).Decode(&p); err != nil {
		return Identity{}, fmt.Errorf("user service: decode profile: %w", err)
	}
	id := p.ID
	if id == "" {
		id = p.AltID
	}
	if id == "" {
		return Identity{}, fmt.Errorf("%w: profile has no id", ErrUnauthenticated)
	}
	return Identity{ID: id, Name: p.Name, Email: p.Email}, nil
}
