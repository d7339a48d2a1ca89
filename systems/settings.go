package systems

import (
	"log"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/persistence"
	"github.com/automoto/generic-star/sound"
	"github.com/yohamta/donburi/ecs"
)

// ApplySettings pushes saved preferences into the sound manager.
func ApplySettings(m *sound.Manager, s persistence.SavedSettings) {
	m.SetMusicVolume(s.MusicVolume)
	m.SetSFXVolume(s.SFXVolume)
	m.SetMuted(s.Muted)
}

// UpdateSettings handles the debug overlay and mute toggles. Mute changes
// are saved straight away.
func UpdateSettings(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if s.Input.IsActionDownBtn(cfg.ActionToggleDebug) {
		s.Debug = !s.Debug
	}
	if s.Input.IsActionDownBtn(cfg.ActionMute) {
		settings.Muted = !settings.Muted
		s.Sound.SetMuted(settings.Muted)
		if err := s.Store.SaveSettings(*settings); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}
