package postgres

import (
	"context"
	"errors"
	"fmt"

	"agent-battles-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// DeviceStorage implements ports.DeviceStorage on the device_preferences
// table. Rows are upserted and never deleted.
type DeviceStorage struct {
	pool Pool
}

// NewDeviceStorage creates a PostgreSQL-backed device storage.
func NewDeviceStorage(pool Pool) *DeviceStorage {
	return &DeviceStorage{pool: pool}
}

// ForDevice returns the store of one device.
func (s *DeviceStorage) ForDevice(deviceID string) ports.DurableStore {
	return &preferenceRepo{pool: s.pool, deviceID: deviceID}
}

type preferenceRepo struct {
	pool     Pool
	deviceID string
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM device_preferences WHERE device_id = $1 AND key = $2`

	var value string
	err := r.pool.QueryRow(ctx, query, r.deviceID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get device preference: %w", err)
	}
	return value, true, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO device_preferences (device_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (device_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, r.deviceID, key, value); err != nil {
		return fmt.Errorf("upsert device preference: %w", err)
	}
	return nil
}
