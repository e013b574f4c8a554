// Package memory holds process-local device storage, for single-instance
// deployments and for simulating a device without durable storage.
package memory

import (
	"context"
	"sync"

	"agent-battles-gateway/internal/core/ports"
)

// DeviceStorage keeps every device's values in process memory. Values are
// lost on restart.
type DeviceStorage struct {
	mu      sync.RWMutex
	devices map[string]map[string]string
}

// NewDeviceStorage creates an empty in-memory device storage.
func NewDeviceStorage() *DeviceStorage {
	return &DeviceStorage{devices: make(map[string]map[string]string)}
}

// ForDevice returns the store of one device.
func (s *DeviceStorage) ForDevice(deviceID string) ports.DurableStore {
	return &deviceStore{parent: s, deviceID: deviceID}
}

type deviceStore struct {
	parent   *DeviceStorage
	deviceID string
}

func (d *deviceStore) Get(_ context.Context, key string) (string, bool, error) {
	d.parent.mu.RLock()
	defer d.parent.mu.RUnlock()
	v, ok := d.parent.devices[d.deviceID][key]
	return v, ok, nil
}

func (d *deviceStore) Set(_ context.Context, key string, value string) error {
	d.parent.mu.Lock()
	defer d.parent.mu.Unlock()
	values, ok := d.parent.devices[d.deviceID]
	if !ok {
		values = make(map[string]string)
		d.parent.devices[d.deviceID] = values
	}
	values[key] = value
	return nil
}

// Unavailable is device storage that rejects every read and write, like a
// browser with storage disabled.
type Unavailable struct{}

func (Unavailable) ForDevice(string) ports.DurableStore { return unavailableStore{} }

type unavailableStore struct{}

func (unavailableStore) Get(context.Context, string) (string, bool, error) {
	return "", false, ports.ErrStorageUnavailable
}

func (unavailableStore) Set(context.Context, string, string) error {
	return ports.ErrStorageUnavailable
}
