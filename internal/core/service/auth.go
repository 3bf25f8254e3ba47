package service

import (
	"context"
	"sync"
	"sync/atomic"
	"tempest/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Authorizer interface {
	IsPrivileged(userID string) bool
}

// OwnerAuthorizer holds the developer allowlist. It starts empty and is seeded once with the application
// owner when the gateway connection is first established.
type OwnerAuthorizer struct {
	developers  map[string]struct{}
	seeded      bool
	mutex       sync.Mutex
	connections atomic.Int64
	app         port.ApplicationInfo
}

func NewOwnerAuthorizer(app port.ApplicationInfo) *OwnerAuthorizer {
	return &OwnerAuthorizer{
		developers: make(map[string]struct{}),
		app:        app,
	}
}

func (a *OwnerAuthorizer) IsPrivileged(userID string) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	_, ok := a.developers[userID]
	return ok
}

// SeedOnce adds ownerID to the allowlist unless it was already seeded, and reports whether it did.
func (a *OwnerAuthorizer) SeedOnce(ownerID string) bool {
	if ownerID == "" {
		return false
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.seeded {
		return false
	}

	a.developers[ownerID] = struct{}{}
	a.seeded = true

	return true
}

func (a *OwnerAuthorizer) Seeded() bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.seeded
}

// OnConnected is called for every established gateway connection. Until seeding succeeds, each call
// fetches the application owner and seeds the allowlist with it.
func (a *OwnerAuthorizer) OnConnected(ctx context.Context) {
	count := a.connections.Add(1)
	l := log.With().Int64("connection", count).Logger()

	if a.Seeded() {
		l.Debug().Msg("developer list already seeded")
		return
	}

	ownerID, err := a.app.ApplicationOwner(ctx)
	if err != nil {
		l.Warn().Err(err).Msg("failed to fetch application owner, retrying on next connection")
		return
	}

	if a.SeedOnce(ownerID) {
		l.Info().Str("ownerId", ownerID).Msg("seeded developer list with application owner")
	}
}
