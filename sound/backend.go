package sound

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player is the part of *audio.Player a Sound drives.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetPosition(offset time.Duration) error
	SetVolume(volume float64)
	Volume() float64
	Close() error
}

// Backend creates players over decoded PCM.
type Backend interface {
	SampleRate() int
	NewPlayer(pcm []byte) Player
}

// ContextBackend plays through an ebiten audio context.
type ContextBackend struct {
	Context *audio.Context
}

func (b ContextBackend) SampleRate() int {
	return b.Context.SampleRate()
}

func (b ContextBackend) NewPlayer(pcm []byte) Player {
	return b.Context.NewPlayerFromBytes(pcm)
}
