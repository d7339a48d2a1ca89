package sound

import (
	"io/fs"
	"log"
	"path"

	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
	"github.com/automoto/generic-star/tasks"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Manager loads and plays sounds from a file system. Decoding happens on the
// task queue; decoded clips are cached by path.
type Manager struct {
	backend Backend
	fsys    fs.FS
	tasks   *tasks.Queue

	pcm     map[string][]byte
	music   map[string]*Sound
	loading map[string]bool
	sounds  []*Sound
	fades   map[*Sound]*gween.Tween

	sfxVolume   float64
	musicVolume float64
	muted       bool
}

func NewManager(backend Backend, fsys fs.FS, q *tasks.Queue) *Manager {
	return &Manager{
		backend:     backend,
		fsys:        fsys,
		tasks:       q,
		pcm:         make(map[string][]byte),
		music:       make(map[string]*Sound),
		loading:     make(map[string]bool),
		fades:       make(map[*Sound]*gween.Tween),
		sfxVolume:   cfg.Audio.DefaultSFXVol,
		musicVolume: cfg.Audio.DefaultMusicVol,
	}
}

// load decodes p once and caches the result. failed, when set, runs on the
// frame thread if the clip cannot be read or decoded.
func (m *Manager) load(p string, done func([]byte), failed func()) {
	if data, ok := m.pcm[p]; ok {
		done(data)
		return
	}
	rate := m.backend.SampleRate()
	m.tasks.Go("sound:"+p, func() (any, error) {
		raw, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return nil, err
		}
		return decode(rate, p, raw)
	}, func(v any, err error) {
		if err != nil {
			log.Printf("Sound: could not load %s: %v", p, err)
			if failed != nil {
				failed()
			}
			return
		}
		data := v.([]byte)
		m.pcm[p] = data
		done(data)
	})
}

func (m *Manager) newSound(p string, data []byte, kind category) *Sound {
	s := &Sound{m: m, player: m.backend.NewPlayer(data), path: p, kind: kind, volume: 1}
	m.sounds = append(m.sounds, s)
	return s
}

// PlaySound plays a clip once, fire and forget. volume is clamped to [0, 1]
// and start is an offset in seconds.
func (m *Manager) PlaySound(p string, volume, start float64) {
	p = path.Clean(p)
	volume = mathutil.ClampFloat(volume, 0, 1)
	m.load(p, func(data []byte) {
		s := m.newSound(p, data, categorySFX)
		s.oneShot = true
		s.volume = volume
		s.SetCurrentTime(start)
		s.Play(nil)
	}, nil)
}

// CreateSound loads a clip and hands it to onLoaded on the frame thread.
func (m *Manager) CreateSound(p string, onLoaded func(*Sound)) {
	p = path.Clean(p)
	m.load(p, func(data []byte) {
		s := m.newSound(p, data, categorySFX)
		if onLoaded != nil {
			onLoaded(s)
		}
	}, nil)
}

// Music returns the looping music clip for p. It returns nil until the clip
// has loaded; the first call starts loading it.
func (m *Manager) Music(p string) *Sound {
	p = path.Clean(p)
	if s, ok := m.music[p]; ok {
		return s
	}
	if m.loading[p] {
		return nil
	}
	m.loading[p] = true
	m.load(p, func(data []byte) {
		delete(m.loading, p)
		s := m.newSound(p, data, categoryMusic)
		s.repeat = true
		m.music[p] = s
	}, func() {
		// Let a later call try again.
		delete(m.loading, p)
	})
	return nil
}

// FadeOut lowers s to silence over frames frames and then stops it.
func (m *Manager) FadeOut(s *Sound, frames int) {
	if s == nil {
		return
	}
	if frames <= 0 {
		s.Stop()
		return
	}
	start := s.player.Volume()
	m.fades[s] = gween.New(float32(start), 0, float32(frames), ease.Linear)
	s.fading = true
}

// Update advances fades, loops finished repeating clips and releases spent
// one-shot clips. Call it once per frame.
func (m *Manager) Update() {
	for s, tw := range m.fades {
		v, done := tw.Update(1)
		s.player.SetVolume(float64(v))
		if done {
			delete(m.fades, s)
			s.fading = false
			s.Stop()
			s.apply()
		}
	}

	live := m.sounds[:0]
	for _, s := range m.sounds {
		s.update()
		if s.finished {
			_ = s.player.Close()
			continue
		}
		live = append(live, s)
	}
	for i := len(live); i < len(m.sounds); i++ {
		m.sounds[i] = nil
	}
	m.sounds = live
}

func (m *Manager) master(kind category) float64 {
	if m.muted {
		return 0
	}
	if kind == categoryMusic {
		return m.musicVolume
	}
	return m.sfxVolume
}

func (m *Manager) refresh() {
	for _, s := range m.sounds {
		s.apply()
	}
}

func (m *Manager) SetSFXVolume(v float64) {
	m.sfxVolume = mathutil.ClampFloat(v, 0, 1)
	m.refresh()
}

func (m *Manager) SetMusicVolume(v float64) {
	m.musicVolume = mathutil.ClampFloat(v, 0, 1)
	m.refresh()
}

func (m *Manager) SFXVolume() float64 {
	return m.sfxVolume
}

func (m *Manager) MusicVolume() float64 {
	return m.musicVolume
}

func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	m.refresh()
}

func (m *Manager) Muted() bool {
	return m.muted
}
