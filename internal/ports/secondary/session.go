package secondary

import "context"

// SessionProvider exposes the current authenticated user identity. An empty
// id means the user is a guest and remote mirroring is disabled.
type SessionProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}
