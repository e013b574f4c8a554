package memory

import (
	"context"
	"sync"
	"testing"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceStorage_RoundTrip(t *testing.T) {
	storage := NewDeviceStorage()
	ctx := context.Background()

	_, found, err := storage.ForDevice("a").Get(ctx, domain.AcknowledgmentKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.ForDevice("a").Set(ctx, domain.AcknowledgmentKey, "true"))

	v, found, err := storage.ForDevice("a").Get(ctx, domain.AcknowledgmentKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)

	_, found, err = storage.ForDevice("b").Get(ctx, domain.AcknowledgmentKey)
	require.NoError(t, err)
	assert.False(t, found, "devices are isolated")
}

func TestDeviceStorage_ConcurrentDevices(t *testing.T) {
	storage := NewDeviceStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			store := storage.ForDevice(string(rune('a' + id%26)))
			_ = store.Set(ctx, domain.AcknowledgmentKey, "true")
			_, _, _ = store.Get(ctx, domain.AcknowledgmentKey)
		}(i)
	}
	wg.Wait()

	_, found, err := storage.ForDevice("a").Get(ctx, domain.AcknowledgmentKey)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUnavailable(t *testing.T) {
	store := Unavailable{}.ForDevice("a")

	_, _, err := store.Get(context.Background(), domain.AcknowledgmentKey)
	assert.ErrorIs(t, err, ports.ErrStorageUnavailable)
	assert.ErrorIs(t, store.Set(context.Background(), domain.AcknowledgmentKey, "true"), ports.ErrStorageUnavailable)
}
