package ports

import (
	"context"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

// SessionService is the single owner of session state. Only it mutates the
// session; everything else reads snapshots.
type SessionService interface {
	// Hydrate restores the session from the credential store. It runs its
	// load exactly once per process; later calls are no-ops.
	Hydrate(ctx context.Context)

	// Login and Register reject with *domain.ValidationError before any
	// network call on bad input, and otherwise return the AuthAPI's error
	// unchanged. On any failure the session settles back to anonymous.
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, input RegisterInput) error

	// Logout is local-only and always leaves the session anonymous.
	Logout(ctx context.Context)

	// Snapshot returns the current session view.
	Snapshot() domain.SessionSnapshot

	// Token returns the current bearer token, or "" when anonymous. Used as
	// the upstream client's token source.
	Token() string
}
