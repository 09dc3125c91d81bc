package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"daynix/internal/model"
)

// Singleton records are stored as JSON in the key-value table; the engine
// treats persistence as an opaque store.
const (
	keyPreferences = "userPreferences"
	keySettings    = "appSettings"
)

func (r *implRepository) GetPreferences(ctx context.Context) (model.Preferences, bool, error) {
	var prefs model.Preferences
	found, err := r.getRecord(ctx, keyPreferences, &prefs)
	if err != nil {
		return model.Preferences{}, false, err
	}
	return prefs, found, nil
}

func (r *implRepository) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	return r.putRecord(ctx, keyPreferences, prefs)
}

func (r *implRepository) GetSettings(ctx context.Context) (model.Settings, error) {
	var settings model.Settings
	if _, err := r.getRecord(ctx, keySettings, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (r *implRepository) SaveSettings(ctx context.Context, settings model.Settings) error {
	return r.putRecord(ctx, keySettings, settings)
}

func (r *implRepository) getRecord(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.l.Errorf(ctx, "sqlite repository: decode record %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func (r *implRepository) putRecord(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	return err
}
