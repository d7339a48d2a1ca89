package input

import (
	cfg "github.com/automoto/generic-star/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Manager tracks level and edge state for keys, mouse buttons and bound
// actions. Edge state for a key or button is set when it goes down and is
// cleared by a release or by reading it, so each press is seen at most once.
type Manager struct {
	src Source

	keys    map[ebiten.Key]bool
	keyBtn  map[ebiten.Key]bool
	mouse   map[ebiten.MouseButton]bool
	mouseBn map[ebiten.MouseButton]bool
	mx, my  int

	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool

	pressed  []ebiten.Key
	gamepads []ebiten.GamepadID
}

func NewManager(src Source) *Manager {
	return &Manager{
		src:     src,
		keys:    make(map[ebiten.Key]bool),
		keyBtn:  make(map[ebiten.Key]bool),
		mouse:   make(map[ebiten.MouseButton]bool),
		mouseBn: make(map[ebiten.MouseButton]bool),
	}
}

// Update polls the source. Call it once per frame before any query.
func (m *Manager) Update() {
	m.pressed = m.src.AppendPressedKeys(m.pressed[:0])
	down := make(map[ebiten.Key]bool, len(m.pressed))
	for _, k := range m.pressed {
		down[k] = true
		if !m.keys[k] {
			m.keyBtn[k] = true
		}
	}
	for k := range m.keys {
		if !down[k] {
			delete(m.keyBtn, k)
		}
	}
	m.keys = down

	for _, b := range mouseButtons {
		pressed := m.src.IsMouseButtonPressed(b)
		if pressed && !m.mouse[b] {
			m.mouseBn[b] = true
		}
		if !pressed {
			m.mouseBn[b] = false
		}
		m.mouse[b] = pressed
	}
	m.mx, m.my = m.src.CursorPosition()

	m.updateActions()
}

// IsKeyDown reports whether k is held. Reading the level state also consumes
// a pending press, so a later IsKeyDownBtn for the same press is false.
func (m *Manager) IsKeyDown(k ebiten.Key) bool {
	delete(m.keyBtn, k)
	return m.keys[k]
}

// IsKeyDownBtn reports a fresh press of k and resets it.
func (m *Manager) IsKeyDownBtn(k ebiten.Key) bool {
	ret := m.keyBtn[k]
	delete(m.keyBtn, k)
	return ret
}

func (m *Manager) IsMouseDown(b ebiten.MouseButton) bool {
	m.mouseBn[b] = false
	return m.mouse[b]
}

func (m *Manager) IsMouseDownBtn(b ebiten.MouseButton) bool {
	ret := m.mouseBn[b]
	m.mouseBn[b] = false
	return ret
}

func (m *Manager) MouseX() int {
	return m.mx
}

func (m *Manager) MouseY() int {
	return m.my
}

func (m *Manager) updateActions() {
	m.previous = m.current
	m.current = [cfg.ActionCount]bool{}

	m.gamepads = m.src.AppendGamepadIDs(m.gamepads[:0])

	for id, binding := range cfg.Input.Bindings {
		for _, k := range binding.Keys {
			if m.keys[k] {
				m.current[id] = true
			}
		}
		for _, gp := range m.gamepads {
			for _, btn := range binding.StandardGamepadButtons {
				if m.src.IsStandardGamepadButtonPressed(gp, btn) {
					m.current[id] = true
				}
			}
		}
	}

	// Left stick doubles as the d-pad for movement.
	deadzone := cfg.Input.AnalogDeadzone
	for _, gp := range m.gamepads {
		h := m.src.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone {
			m.current[cfg.ActionMoveLeft] = true
		}
		if h > deadzone {
			m.current[cfg.ActionMoveRight] = true
		}
	}
}

// IsActionDown reports whether any key or button bound to id is held.
func (m *Manager) IsActionDown(id cfg.ActionID) bool {
	return m.current[id]
}

// IsActionDownBtn reports whether id went down this frame.
func (m *Manager) IsActionDownBtn(id cfg.ActionID) bool {
	return m.current[id] && !m.previous[id]
}

// IsActionReleased reports whether id went up this frame.
func (m *Manager) IsActionReleased(id cfg.ActionID) bool {
	return !m.current[id] && m.previous[id]
}
