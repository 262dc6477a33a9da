// Package scope selects where a gateway operation is persisted: the remote
// store for a signed-in owner, or the in-memory guest store otherwise.
package scope

import (
	"context"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

// Scope is the partition a request writes to.
type Scope struct {
	// Key is the owner account ID when Remote, else the guest session ID.
	Key    uuid.UUID
	Remote bool
}

// FromCtx prefers the signed-in owner and falls back to the guest session.
// Returns domain.ErrUnauthorized when the context carries neither.
func FromCtx(ctx context.Context) (Scope, error) {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return Scope{Key: id, Remote: true}, nil
	}
	if id, ok := ctxutil.GuestSessionFromCtx(ctx); ok {
		return Scope{Key: id}, nil
	}
	return Scope{}, domain.ErrUnauthorized
}

// Owner returns the owner to address notices and change events to; guests
// have none.
func (s Scope) Owner() uuid.UUID {
	if s.Remote {
		return s.Key
	}
	return uuid.Nil
}

// Mode names the strategy for logs.
func (s Scope) Mode() string {
	if s.Remote {
		return "remote"
	}
	return "local"
}
