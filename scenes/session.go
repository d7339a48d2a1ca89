package scenes

import (
	"fmt"
	"io/fs"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/input"
	"github.com/automoto/generic-star/persistence"
	"github.com/automoto/generic-star/physics"
	"github.com/automoto/generic-star/rooms"
	"github.com/automoto/generic-star/sound"
	"github.com/automoto/generic-star/tasks"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/features/math"
)

// SessionOptions configures NewSession. Game is the game directory holding
// images, sounds and rooms. A nil Gravity leaves the world without gravity,
// in which case free blocks and players get a fallback pull. Audio and
// Input default to the ebiten implementations.
type SessionOptions struct {
	Game    fs.FS
	Gravity *math.Vec2
	Debug   bool

	Audio sound.Backend
	Input input.Source
	Store *persistence.Store
}

// Session is the explicit context of one running game. Every service a
// system needs hangs off it.
type Session struct {
	components.SessionData

	Game     fs.FS
	Settings persistence.SavedSettings
}

var audioContext *audio.Context

// NewSession builds the services for a game. The ebiten audio context is
// created once per process and shared by later sessions.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Game == nil {
		return nil, fmt.Errorf("new session: no game directory")
	}
	if opts.Audio == nil {
		if audioContext == nil {
			audioContext = audio.NewContext(cfg.Audio.SampleRate)
		}
		opts.Audio = sound.ContextBackend{Context: audioContext}
	}
	if opts.Input == nil {
		opts.Input = input.EbitenSource{}
	}
	var gravity math.Vec2
	if opts.Gravity != nil {
		gravity = *opts.Gravity
	}

	q := tasks.NewQueue()
	s := &Session{
		SessionData: components.SessionData{
			Input:    input.NewManager(opts.Input),
			Sound:    sound.NewManager(opts.Audio, opts.Game, q),
			Graphics: graphics.NewPlugin(opts.Game, q),
			Physics:  physics.NewWorld(gravity),
			Tasks:    q,
			Store:    opts.Store,
			Debug:    opts.Debug || cfg.Debug.Enabled,
		},
		Game:     opts.Game,
		Settings: opts.Store.LoadSettings(),
	}
	return s, nil
}

// LoadRoom finds a room by name in the game's rooms directory.
func (s *Session) LoadRoom(name string) (*rooms.Room, error) {
	return rooms.Find(s.Game, cfg.Game.RoomsDir, name)
}

// Close destroys every body and joint. The session must not be used after.
func (s *Session) Close() {
	s.Physics.Destroy()
}
