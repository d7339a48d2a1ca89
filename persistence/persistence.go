package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/generic-star/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// Defaults returns the settings used before anything was saved.
func Defaults() SavedSettings {
	return SavedSettings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store keeps user settings between runs. A nil Store loads defaults and
// saves nothing.
type Store struct {
	items itemStore
}

// Open initializes the gdata manager for settings storage
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &Store{items: m}, nil
}

// LoadSettings loads settings from disk. Missing or unreadable settings fall
// back to the defaults.
func (s *Store) LoadSettings() SavedSettings {
	settings := Defaults()
	if s == nil {
		return settings
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return settings
	}
	if len(data) == 0 {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return Defaults()
	}
	return settings
}

// SaveSettings saves settings to disk
func (s *Store) SaveSettings(settings SavedSettings) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
