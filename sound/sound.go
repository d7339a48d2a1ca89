package sound

import (
	"time"

	"github.com/automoto/generic-star/mathutil"
)

type category int

const (
	categorySFX category = iota
	categoryMusic
)

// Sound is a loaded clip that can be played, paused and looped. A nil Sound
// ignores every call.
type Sound struct {
	m        *Manager
	player   Player
	path     string
	kind     category
	volume   float64
	repeat   bool
	playing  bool
	fading   bool
	oneShot  bool
	finished bool
}

// Play starts or resumes the sound. A non-nil repeat also sets looping.
func (s *Sound) Play(repeat *bool) {
	if s == nil {
		return
	}
	if repeat != nil {
		s.repeat = *repeat
	}
	s.playing = true
	s.apply()
	s.player.Play()
}

func (s *Sound) Pause() {
	if s == nil {
		return
	}
	s.playing = false
	s.player.Pause()
}

// Stop pauses and rewinds to the start.
func (s *Sound) Stop() {
	if s == nil {
		return
	}
	s.playing = false
	s.player.Pause()
	_ = s.player.Rewind()
}

func (s *Sound) IsPlaying() bool {
	if s == nil {
		return false
	}
	return s.player.IsPlaying()
}

func (s *Sound) SetRepeat(repeat bool) {
	if s == nil {
		return
	}
	s.repeat = repeat
}

func (s *Sound) Repeat() bool {
	return s != nil && s.repeat
}

// SetCurrentTime seeks to seconds from the start.
func (s *Sound) SetCurrentTime(seconds float64) {
	if s == nil {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	_ = s.player.SetPosition(time.Duration(seconds * float64(time.Second)))
}

// SetVolume sets the clip volume in [0, 1]. The master volume for the
// clip's category is applied on top.
func (s *Sound) SetVolume(volume float64) {
	if s == nil {
		return
	}
	s.volume = mathutil.ClampFloat(volume, 0, 1)
	s.apply()
}

func (s *Sound) Volume() float64 {
	if s == nil {
		return 0
	}
	return s.volume
}

func (s *Sound) apply() {
	if s.fading {
		return
	}
	s.player.SetVolume(s.volume * s.m.master(s.kind))
}

// update restarts looping clips that reached the end.
func (s *Sound) update() {
	if !s.playing || s.player.IsPlaying() {
		return
	}
	if s.repeat {
		_ = s.player.Rewind()
		s.player.Play()
		return
	}
	s.playing = false
	if s.oneShot {
		s.finished = true
	}
}
