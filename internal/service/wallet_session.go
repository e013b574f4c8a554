package service

import (
	"context"
	"fmt"
	"sync"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
)

// WalletSessionView projects the wallet provider's connected signal onto
// the call-to-action. It owns no state beyond the last observed session and
// never mutates the wallet.
type WalletSessionView struct {
	signal    ports.WalletSignal
	connector ports.WalletConnector

	mu        sync.RWMutex
	session   domain.WalletSession
	observers []func(domain.WalletView)
}

// NewWalletSessionView creates a view that renders as disconnected until the
// provider says otherwise.
func NewWalletSessionView(signal ports.WalletSignal, connector ports.WalletConnector) *WalletSessionView {
	return &WalletSessionView{signal: signal, connector: connector}
}

// View returns exactly one of the connect affordance or the connected
// indicator.
func (v *WalletSessionView) View() domain.WalletView {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return domain.ViewFor(v.session)
}

// OnChange registers fn to be called with every new view.
func (v *WalletSessionView) OnChange(fn func(domain.WalletView)) {
	v.mu.Lock()
	v.observers = append(v.observers, fn)
	v.mu.Unlock()
}

// Sync reads the provider's current session once.
func (v *WalletSessionView) Sync(ctx context.Context) error {
	s, err := v.signal.Current(ctx)
	if err != nil {
		return fmt.Errorf("reading wallet session: %w", err)
	}
	v.Observe(s)
	return nil
}

// Observe applies a pushed session. Sessions older than the one already
// observed are ignored. Observers are notified only when the rendered view
// changes.
func (v *WalletSessionView) Observe(s domain.WalletSession) {
	v.mu.Lock()
	if s.OlderThan(v.session) {
		v.mu.Unlock()
		return
	}
	prev := domain.ViewFor(v.session)
	v.session = s
	next := domain.ViewFor(s)
	observers := append([]func(domain.WalletView){}, v.observers...)
	v.mu.Unlock()

	if prev == next {
		return
	}
	for _, fn := range observers {
		fn(next)
	}
}

// Run subscribes to the provider and applies every pushed session until ctx
// is done or the provider closes the subscription.
func (v *WalletSessionView) Run(ctx context.Context) error {
	updates, err := v.signal.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribing to wallet session: %w", err)
	}
	v.Consume(ctx, updates)
	return nil
}

// Consume applies sessions from updates until ctx is done or updates closes.
func (v *WalletSessionView) Consume(ctx context.Context, updates <-chan domain.WalletSession) {
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-updates:
			if !ok {
				return
			}
			v.Observe(s)
		}
	}
}

// Activate is the user pressing the connect affordance. It invokes the
// provider's connection flow once when disconnected and reports whether it
// did. Activating the connected indicator does nothing.
func (v *WalletSessionView) Activate(ctx context.Context) (bool, error) {
	if v.View().Kind == domain.ViewConnected {
		return false, nil
	}
	if err := v.connector.RequestConnection(ctx); err != nil {
		return true, fmt.Errorf("requesting wallet connection: %w", err)
	}
	return true, nil
}
