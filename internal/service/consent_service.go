package service

import (
	"context"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type consentService struct {
	storage ports.DeviceStorage
	log     zerolog.Logger
}

// NewConsentService creates the per-device consent service. Every call
// mounts a fresh ConsentGate on the device's durable store.
func NewConsentService(storage ports.DeviceStorage, log zerolog.Logger) ports.ConsentService {
	return &consentService{storage: storage, log: log}
}

func (s *consentService) Mount(ctx context.Context, deviceID string) domain.ConsentState {
	return s.gate(deviceID).Load(ctx)
}

func (s *consentService) Acknowledge(ctx context.Context, deviceID string) domain.ConsentState {
	state := s.gate(deviceID).Acknowledge(ctx)
	s.log.Info().Str("device_id", deviceID).Msg("risk disclaimer acknowledged")
	return state
}

func (s *consentService) gate(deviceID string) *ConsentGate {
	var store ports.DurableStore
	if s.storage != nil {
		store = s.storage.ForDevice(deviceID)
	}
	return NewConsentGate(store, s.log.With().Str("device_id", deviceID).Logger())
}
