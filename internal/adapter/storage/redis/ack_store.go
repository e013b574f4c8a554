package redis

import (
	"context"
	"errors"
	"fmt"

	"agent-battles-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// DeviceStorage implements ports.DeviceStorage on plain Redis strings.
// Keys never expire: an acknowledgment lives until the device is forgotten.
type DeviceStorage struct {
	client *goredis.Client
	prefix string
}

// NewDeviceStorage creates a Redis-backed device storage.
func NewDeviceStorage(client *goredis.Client) *DeviceStorage {
	return &DeviceStorage{
		client: client,
		prefix: "device:",
	}
}

// ForDevice returns the durable store of one device.
func (s *DeviceStorage) ForDevice(deviceID string) ports.DurableStore {
	return &deviceStore{client: s.client, prefix: s.prefix + deviceID + ":"}
}

type deviceStore struct {
	client *goredis.Client
	prefix string
}

func (s *deviceStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *deviceStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
