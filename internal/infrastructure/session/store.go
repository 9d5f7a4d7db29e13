package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"` // success | error | warning
	Message string `json:"message"`
}

// Session is the server-side state behind one cookie: who is logged in,
// their role, and any pending flash messages.
type Session struct {
	Username string  `json:"username"`
	Role     string  `json:"role"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

type Store interface {
	// Create stores a new session and returns its opaque ID.
	Create(ctx context.Context, s Session) (string, error)

	// Get returns the session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session; deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// PushFlash appends a flash message to an existing session.
	PushFlash(ctx context.Context, id string, f Flash) error

	// PopFlashes returns and clears the pending flash messages.
	PopFlashes(ctx context.Context, id string) ([]Flash, error)
}
