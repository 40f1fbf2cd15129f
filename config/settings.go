package config

// SettingsConfig holds the defaults for settings persisted between runs.
type SettingsConfig struct {
	AppName   string
	Muted     bool
	ShowDebug bool
	SFXVolume float64
}

// Settings is the global persisted-settings defaults
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:   "celestial_survivor",
		Muted:     false,
		ShowDebug: false,
		SFXVolume: 0.6,
	}
}
