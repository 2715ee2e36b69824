package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"gorm.io/gorm"
)

// SettingsCounter hands out numbers from the settings table. Each call is a
// single upsert statement, so concurrent callers never see the same value.
type SettingsCounter struct {
	db *gorm.DB
}

// NewSettingsCounter creates a new SettingsCounter
func NewSettingsCounter(db *gorm.DB) *SettingsCounter {
	return &SettingsCounter{db: db}
}

const incrementSQL = `INSERT INTO settings (setting_key, setting_value, updated_at) VALUES (?, 1, ?)
ON CONFLICT (setting_key) DO UPDATE SET setting_value = settings.setting_value + 1, updated_at = excluded.updated_at
RETURNING setting_value`

func (c *SettingsCounter) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, shared.NewDomainError(shared.CodeInvalidInput, "Counter key cannot be empty")
	}
	var value int64
	if err := c.db.WithContext(ctx).Raw(incrementSQL, key, time.Now()).Scan(&value).Error; err != nil {
		return 0, translateError(err)
	}
	return value, nil
}

// Current returns the last value handed out for key, 0 when none was
func (c *SettingsCounter) Current(ctx context.Context, key string) (int64, error) {
	var value int64
	err := c.db.WithContext(ctx).Table("settings").
		Select("setting_value").
		Where("setting_key = ?", key).
		Scan(&value).Error
	if err != nil {
		return 0, translateError(err)
	}
	return value, nil
}

var _ shared.SequenceCounter = (*SettingsCounter)(nil)
