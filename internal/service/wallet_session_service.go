package service

import (
	"context"
	"errors"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const watchBuffer = 8

type walletSessionService struct {
	provider ports.WalletProvider
	registry ports.WalletRegistry
	log      zerolog.Logger
}

// NewWalletSessionService creates the per-device wallet session service.
func NewWalletSessionService(provider ports.WalletProvider, registry ports.WalletRegistry, log zerolog.Logger) ports.WalletSessionService {
	return &walletSessionService{provider: provider, registry: registry, log: log}
}

func (s *walletSessionService) View(ctx context.Context, deviceID string) (domain.WalletView, error) {
	view := s.newView(deviceID)
	if err := view.Sync(ctx); err != nil {
		return domain.WalletView{}, apperror.ErrWalletProvider(err)
	}
	return view.View(), nil
}

func (s *walletSessionService) Connect(ctx context.Context, deviceID string) (domain.WalletView, *domain.ConnectChallenge, error) {
	view := s.newView(deviceID)
	if err := view.Sync(ctx); err != nil {
		return domain.WalletView{}, nil, apperror.ErrWalletProvider(err)
	}

	activated, err := view.Activate(ctx)
	if err != nil {
		return domain.WalletView{}, nil, apperror.ErrWalletProvider(err)
	}
	if !activated {
		return view.View(), nil, nil
	}

	challenge, err := s.registry.PendingChallenge(ctx, deviceID)
	if err != nil {
		return domain.WalletView{}, nil, apperror.ErrWalletProvider(err)
	}

	s.log.Debug().Str("device_id", deviceID).Msg("wallet connection requested")
	return view.View(), challenge, nil
}

// Watch streams the rendered view: the current one first, then one per
// change, until ctx is done.
func (s *walletSessionService) Watch(ctx context.Context, deviceID string) (<-chan domain.WalletView, error) {
	signal := s.provider.Signal(deviceID)
	updates, err := signal.Subscribe(ctx)
	if err != nil {
		return nil, apperror.ErrWalletProvider(err)
	}

	view := NewWalletSessionView(signal, s.provider.Connector(deviceID))
	if err := view.Sync(ctx); err != nil {
		return nil, apperror.ErrWalletProvider(err)
	}

	out := make(chan domain.WalletView, watchBuffer)
	out <- view.View()
	view.OnChange(func(v domain.WalletView) {
		select {
		case out <- v:
		case <-ctx.Done():
		}
	})

	go func() {
		defer close(out)
		view.Consume(ctx, updates)
	}()

	return out, nil
}

func (s *walletSessionService) CompleteConnection(ctx context.Context, deviceID, address, signature string) (domain.WalletView, error) {
	session, err := s.registry.Complete(ctx, deviceID, address, signature)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrNoPendingChallenge):
			return domain.WalletView{}, apperror.ErrNoPendingChallenge()
		case errors.Is(err, ports.ErrChallengeReplayed):
			return domain.WalletView{}, apperror.ErrChallengeReplayed()
		case errors.Is(err, ports.ErrSignatureMismatch):
			return domain.WalletView{}, apperror.ErrInvalidWalletSignature()
		}
		return domain.WalletView{}, apperror.ErrWalletProvider(err)
	}

	s.log.Info().Str("device_id", deviceID).Str("address", session.Address).Msg("wallet connected")
	return domain.ViewFor(session), nil
}

func (s *walletSessionService) Disconnect(ctx context.Context, deviceID string) (domain.WalletView, error) {
	if err := s.registry.Disconnect(ctx, deviceID); err != nil {
		return domain.WalletView{}, apperror.ErrWalletProvider(err)
	}
	return domain.ViewFor(domain.WalletSession{}), nil
}

func (s *walletSessionService) newView(deviceID string) *WalletSessionView {
	return NewWalletSessionView(s.provider.Signal(deviceID), s.provider.Connector(deviceID))
}
