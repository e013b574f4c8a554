package service

import (
	"context"
	"sync"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// ConsentGate decides whether the risk disclaimer blocks one mount.
//
// A gate starts Unknown, which renders as dismissed so the modal never
// flashes. Load resolves it exactly once from durable storage. A missing,
// falsy or unreadable record resolves to NotAcknowledged: storage failures
// fail toward showing the disclaimer, never toward hiding it.
type ConsentGate struct {
	store ports.DurableStore
	log   zerolog.Logger

	once   sync.Once
	mu     sync.Mutex
	status domain.ConsentStatus
}

// NewConsentGate creates an unresolved gate. A nil store behaves as
// unavailable storage.
func NewConsentGate(store ports.DurableStore, log zerolog.Logger) *ConsentGate {
	return &ConsentGate{
		store:  store,
		log:    log,
		status: domain.ConsentUnknown,
	}
}

// State returns the current rendered state.
func (g *ConsentGate) State() domain.ConsentState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return domain.StateFor(g.status)
}

// Banner is rendered on every page whatever the modal state.
func (g *ConsentGate) Banner() domain.Banner {
	return domain.DefaultBanner()
}

// Load performs the single storage read of this mount and returns the
// resolved state. Later calls return the current state without reading.
// If Acknowledge already ran, the read result is discarded.
func (g *ConsentGate) Load(ctx context.Context) domain.ConsentState {
	g.once.Do(func() {
		resolved := g.read(ctx)

		g.mu.Lock()
		if !g.status.Resolved() {
			g.status = resolved
		}
		g.mu.Unlock()

		g.log.Debug().Str("status", string(resolved)).Msg("consent resolved")
	})
	return g.State()
}

// Acknowledge records the user's confirmation. The durable write is issued
// before the in-memory flip so a reload right after never re-shows the
// modal. It is idempotent and never fails: a failed write still dismisses
// the modal for this mount.
func (g *ConsentGate) Acknowledge(ctx context.Context) domain.ConsentState {
	if err := g.write(ctx); err != nil {
		g.log.Warn().Err(err).Msg("acknowledgment not persisted, disclaimer will show again next visit")
	}

	g.mu.Lock()
	g.status = domain.ConsentAcknowledged
	g.mu.Unlock()

	return g.State()
}

func (g *ConsentGate) read(ctx context.Context) domain.ConsentStatus {
	if g.store == nil {
		g.log.Warn().Err(ports.ErrStorageUnavailable).Msg("acknowledgment read failed, showing disclaimer")
		return domain.ConsentNotAcknowledged
	}

	value, found, err := g.store.Get(ctx, domain.AcknowledgmentKey)
	if err != nil {
		g.log.Warn().Err(err).Msg("acknowledgment read failed, showing disclaimer")
		return domain.ConsentNotAcknowledged
	}
	if !found || !domain.IsTruthy(value) {
		return domain.ConsentNotAcknowledged
	}
	return domain.ConsentAcknowledged
}

func (g *ConsentGate) write(ctx context.Context) error {
	if g.store == nil {
		return ports.ErrStorageUnavailable
	}
	return g.store.Set(ctx, domain.AcknowledgmentKey, domain.AcknowledgedValue)
}
