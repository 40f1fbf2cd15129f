package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// SavedSettings represents the settings and progress stored on disk
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	Muted         bool    `json:"muted"`
	ShowDebug     bool    `json:"showDebug"`
	BestShipParts int     `json:"bestShipParts"`
	IntroSeen     bool    `json:"introSeen"`
}

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const settingsItem = "settings"

var store itemStore

// InitPersistence opens the per-user data directory for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	store = m
	return nil
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		SFXVolume: cfg.Settings.SFXVolume,
		Muted:     cfg.Settings.Muted,
		ShowDebug: cfg.Settings.ShowDebug,
	}
}

// LoadSettings loads settings from disk, falling back to the defaults when
// nothing is stored or the data cannot be read.
func LoadSettings() SavedSettings {
	settings := DefaultSettings()
	if store == nil {
		return settings
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load settings")
		return settings
	}
	if len(data) == 0 {
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("Could not parse saved settings")
		return DefaultSettings()
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		log.Warn().Err(err).Msg("Could not save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// updateSettings loads, modifies and saves the stored settings in one go.
func updateSettings(change func(s *SavedSettings)) {
	s := LoadSettings()
	change(&s)
	_ = SaveSettings(s)
}

// MarkIntroSeen records that the story intro has been shown.
func MarkIntroSeen() {
	updateSettings(func(s *SavedSettings) { s.IntroSeen = true })
}
