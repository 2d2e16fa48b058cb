package ports

import (
	"context"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

// CredentialStore persists exactly one credential pair: the token under one
// key and the serialized user record under a second.
//
// Load never surfaces a parse error: a stored pair where either half is
// missing or the user does not decode is treated as corrupted, both keys are
// cleared as a side effect, and (nil, nil) is returned. Errors are reserved
// for storage-level failures (I/O, connectivity).
type CredentialStore interface {
	Load(ctx context.Context) (*domain.Credentials, error)
	// Save writes both keys with no caller-visible partial state.
	Save(ctx context.Context, token string, user *domain.User) error
	// Clear deletes both keys. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
