package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConsentGate_InitialStateSuppressesModal(t *testing.T) {
	gate := NewConsentGate(newFakeStore(), newTestLogger())

	s := gate.State()
	assert.Equal(t, domain.ConsentUnknown, s.Status)
	assert.True(t, s.Dismissed)
	assert.False(t, s.ModalVisible)
}

func TestConsentGate_FirstVisitShowsModal(t *testing.T) {
	gate := NewConsentGate(newFakeStore(), newTestLogger())

	s := gate.Load(context.Background())

	assert.Equal(t, domain.ConsentNotAcknowledged, s.Status)
	assert.False(t, s.Dismissed)
	assert.True(t, s.ModalVisible)
}

func TestConsentGate_PriorAcknowledgmentNeverShowsModal(t *testing.T) {
	store := newFakeStore()
	store.data[domain.AcknowledgmentKey] = "true"
	gate := NewConsentGate(store, newTestLogger())

	before := gate.State()
	after := gate.Load(context.Background())

	for _, s := range []domain.ConsentState{before, after, gate.State()} {
		assert.True(t, s.Dismissed)
		assert.False(t, s.ModalVisible)
	}
	assert.Equal(t, domain.ConsentAcknowledged, after.Status)
}

func TestConsentGate_EmptyValueIsNotAcknowledged(t *testing.T) {
	store := newFakeStore()
	store.data[domain.AcknowledgmentKey] = ""
	gate := NewConsentGate(store, newTestLogger())

	assert.True(t, gate.Load(context.Background()).ModalVisible)
}

func TestConsentGate_LoadReadsOnce(t *testing.T) {
	store := newFakeStore()
	gate := NewConsentGate(store, newTestLogger())

	gate.Load(context.Background())
	store.data[domain.AcknowledgmentKey] = "true" // written by another tab
	s := gate.Load(context.Background())

	assert.Equal(t, 1, store.reads)
	assert.True(t, s.ModalVisible, "a mount resolves exactly once")
}

func TestConsentGate_AcknowledgePersistsAndDismisses(t *testing.T) {
	store := newFakeStore()
	gate := NewConsentGate(store, newTestLogger())
	gate.Load(context.Background())

	s := gate.Acknowledge(context.Background())

	assert.True(t, s.Dismissed)
	assert.False(t, s.ModalVisible)
	v, ok := store.value(domain.AcknowledgmentKey)
	require.True(t, ok)
	assert.Equal(t, "true", v)

	// A fresh mount on the same storage never shows the modal.
	reloaded := NewConsentGate(store, newTestLogger()).Load(context.Background())
	assert.True(t, reloaded.Dismissed)
	assert.False(t, reloaded.ModalVisible)
}

func TestConsentGate_AcknowledgeIsIdempotent(t *testing.T) {
	once := NewConsentGate(newFakeStore(), newTestLogger())
	once.Load(context.Background())
	want := once.Acknowledge(context.Background())

	store := newFakeStore()
	twice := NewConsentGate(store, newTestLogger())
	twice.Load(context.Background())
	twice.Acknowledge(context.Background())
	got := twice.Acknowledge(context.Background())

	assert.Equal(t, want, got)
	v, _ := store.value(domain.AcknowledgmentKey)
	assert.Equal(t, "true", v)
}

func TestConsentGate_StorageFailureDegradesToModalEveryLoad(t *testing.T) {
	store := newFakeStore()
	store.failRead = true
	store.failSet = true

	for i := 0; i < 3; i++ {
		gate := NewConsentGate(store, newTestLogger())
		s := gate.Load(context.Background())
		assert.True(t, s.ModalVisible, "load %d", i)

		assert.NotPanics(t, func() {
			s = gate.Acknowledge(context.Background())
		})
		assert.False(t, s.ModalVisible, "acknowledgment still dismisses this mount")
	}
}

func TestConsentGate_NilStoreIsUnavailable(t *testing.T) {
	gate := NewConsentGate(nil, newTestLogger())

	assert.True(t, gate.Load(context.Background()).ModalVisible)
	assert.False(t, gate.Acknowledge(context.Background()).ModalVisible)
}

func TestConsentGate_WriteIssuedBeforeFlip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDurableStore(ctrl)
	gate := NewConsentGate(store, newTestLogger())

	store.EXPECT().Get(gomock.Any(), domain.AcknowledgmentKey).Return("", false, nil)
	store.EXPECT().Set(gomock.Any(), domain.AcknowledgmentKey, "true").DoAndReturn(
		func(ctx context.Context, key, value string) error {
			assert.True(t, gate.State().ModalVisible, "state must not flip before the write is issued")
			return nil
		},
	)

	gate.Load(context.Background())
	gate.Acknowledge(context.Background())
	assert.False(t, gate.State().ModalVisible)
}

func TestConsentGate_AcknowledgeDuringPendingRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDurableStore(ctrl)
	gate := NewConsentGate(store, newTestLogger())

	release := make(chan struct{})
	store.EXPECT().Get(gomock.Any(), domain.AcknowledgmentKey).DoAndReturn(
		func(ctx context.Context, key string) (string, bool, error) {
			<-release
			return "", false, errors.New("quota exceeded")
		},
	)
	store.EXPECT().Set(gomock.Any(), domain.AcknowledgmentKey, "true").Return(nil)

	loaded := make(chan domain.ConsentState)
	go func() { loaded <- gate.Load(context.Background()) }()

	// Still unresolved: no flash while the read is pending.
	assert.False(t, gate.State().ModalVisible)

	gate.Acknowledge(context.Background())
	close(release)

	select {
	case s := <-loaded:
		assert.False(t, s.ModalVisible, "a late read never re-opens an acknowledged gate")
		assert.Equal(t, domain.ConsentAcknowledged, s.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not return")
	}
}

func TestConsentGate_Banner(t *testing.T) {
	gate := NewConsentGate(newFakeStore(), newTestLogger())
	before := gate.Banner()
	gate.Load(context.Background())
	gate.Acknowledge(context.Background())

	assert.Equal(t, before, gate.Banner(), "banner does not depend on the modal")
	assert.Contains(t, before.Text, "Use at your own risk")
}

func TestConsentService_ExampleScenario(t *testing.T) {
	storage := newFakeDeviceStorage()
	svc := NewConsentService(storage, newTestLogger())
	ctx := context.Background()

	first := svc.Mount(ctx, "device-a")
	assert.True(t, first.ModalVisible)

	acked := svc.Acknowledge(ctx, "device-a")
	assert.False(t, acked.ModalVisible)
	v, ok := storage.store("device-a").value("agent-battles-warning-acknowledged")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	reload := svc.Mount(ctx, "device-a")
	assert.False(t, reload.ModalVisible)
	assert.True(t, reload.Dismissed)

	other := svc.Mount(ctx, "device-b")
	assert.True(t, other.ModalVisible, "acknowledgment is not synced across devices")
}

func TestConsentService_NilStorage(t *testing.T) {
	svc := NewConsentService(nil, newTestLogger())

	assert.True(t, svc.Mount(context.Background(), "d").ModalVisible)
	assert.False(t, svc.Acknowledge(context.Background(), "d").ModalVisible)
}
