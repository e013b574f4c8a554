package service

import (
	"context"
	"io"
	"sync"

	"agent-battles-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// fakeStore is an in-memory DurableStore with switchable failures.
type fakeStore struct {
	mu       sync.Mutex
	data     map[string]string
	failRead bool
	failSet  bool
	reads    int
	writes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.failRead {
		return "", false, ports.ErrStorageUnavailable
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.failSet {
		return ports.ErrStorageUnavailable
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// fakeDeviceStorage scopes fakeStores per device.
type fakeDeviceStorage struct {
	mu      sync.Mutex
	devices map[string]*fakeStore
}

func newFakeDeviceStorage() *fakeDeviceStorage {
	return &fakeDeviceStorage{devices: map[string]*fakeStore{}}
}

func (f *fakeDeviceStorage) ForDevice(deviceID string) ports.DurableStore {
	return f.store(deviceID)
}

func (f *fakeDeviceStorage) store(deviceID string) *fakeStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.devices[deviceID]
	if !ok {
		s = newFakeStore()
		f.devices[deviceID] = s
	}
	return s
}
