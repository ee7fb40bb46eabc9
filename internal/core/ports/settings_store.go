package ports

import "context"

// SettingsStore is the read-only merchant settings key/value store.
type SettingsStore interface {
	// GetSetting returns found=false for a key that was never stored.
	GetSetting(ctx context.Context, key string) (value string, found bool, err error)
}
