package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the user-tuned look settings stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	SmoothTime       float64 `json:"smoothTime"`
}

// ItemStore is the subset of *gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the gdata store for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = m
	return nil
}

// SetStore replaces the settings store. Passing nil disables persistence.
func SetStore(s ItemStore) {
	store = s
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		logging.L().Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		logging.L().Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// CurrentSettings captures the persisted subset of a look configuration.
func CurrentSettings(look cfg.LookConfig) *SavedSettings {
	return &SavedSettings{
		MouseSensitivity: look.MouseSensitivity,
		SmoothTime:       look.SmoothTime,
	}
}

// ApplySavedSettings copies saved values onto look. Non-positive values are ignored.
func ApplySavedSettings(look *cfg.LookConfig, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.MouseSensitivity > 0 {
		look.MouseSensitivity = saved.MouseSensitivity
	}
	if saved.SmoothTime > 0 {
		look.SmoothTime = saved.SmoothTime
	}
}
