package input

import (
	"testing"

	cfg "github.com/automoto/generic-star/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeSource struct {
	keys    []ebiten.Key
	mouse   map[ebiten.MouseButton]bool
	x, y    int
	pads    []ebiten.GamepadID
	buttons map[ebiten.StandardGamepadButton]bool
	axisH   float64
}

func (f *fakeSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.keys...)
}

func (f *fakeSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return f.mouse[b]
}

func (f *fakeSource) CursorPosition() (int, int) {
	return f.x, f.y
}

func (f *fakeSource) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return append(ids, f.pads...)
}

func (f *fakeSource) IsStandardGamepadButtonPressed(_ ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return f.buttons[b]
}

func (f *fakeSource) StandardGamepadAxisValue(_ ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	if axis == ebiten.StandardGamepadAxisLeftStickHorizontal {
		return f.axisH
	}
	return 0
}

func newFake() *fakeSource {
	return &fakeSource{
		mouse:   map[ebiten.MouseButton]bool{},
		buttons: map[ebiten.StandardGamepadButton]bool{},
	}
}

func TestKeyEdgeResetsOnRead(t *testing.T) {
	src := newFake()
	m := NewManager(src)

	src.keys = []ebiten.Key{ebiten.KeySpace}
	m.Update()
	if !m.IsKeyDownBtn(ebiten.KeySpace) {
		t.Fatal("first read of a fresh press should be true")
	}
	if m.IsKeyDownBtn(ebiten.KeySpace) {
		t.Fatal("second read of the same press should be false")
	}
	if !m.IsKeyDown(ebiten.KeySpace) {
		t.Fatal("level state should stay true while held")
	}

	// Still held: no new edge.
	m.Update()
	if m.IsKeyDownBtn(ebiten.KeySpace) {
		t.Fatal("held key should not produce another edge")
	}

	src.keys = nil
	m.Update()
	src.keys = []ebiten.Key{ebiten.KeySpace}
	m.Update()
	if !m.IsKeyDownBtn(ebiten.KeySpace) {
		t.Fatal("press after release should produce an edge")
	}
}

func TestLevelReadConsumesEdge(t *testing.T) {
	src := newFake()
	m := NewManager(src)

	src.keys = []ebiten.Key{ebiten.KeyZ}
	m.Update()
	if !m.IsKeyDown(ebiten.KeyZ) {
		t.Fatal("IsKeyDown = false")
	}
	if m.IsKeyDownBtn(ebiten.KeyZ) {
		t.Fatal("IsKeyDown should consume the pending press")
	}
}

func TestReleaseClearsUnreadEdge(t *testing.T) {
	src := newFake()
	m := NewManager(src)

	src.keys = []ebiten.Key{ebiten.KeyA}
	m.Update()
	src.keys = nil
	m.Update()
	if m.IsKeyDownBtn(ebiten.KeyA) {
		t.Fatal("a released key should not report a press")
	}
}

func TestMouse(t *testing.T) {
	src := newFake()
	m := NewManager(src)

	src.mouse[ebiten.MouseButtonLeft] = true
	src.x, src.y = 12, 34
	m.Update()

	if m.MouseX() != 12 || m.MouseY() != 34 {
		t.Fatalf("cursor = (%d, %d), want (12, 34)", m.MouseX(), m.MouseY())
	}
	if !m.IsMouseDownBtn(ebiten.MouseButtonLeft) || m.IsMouseDownBtn(ebiten.MouseButtonLeft) {
		t.Fatal("mouse edge should be true exactly once")
	}
	if !m.IsMouseDown(ebiten.MouseButtonLeft) {
		t.Fatal("mouse level should be true while held")
	}
	if m.IsMouseDown(ebiten.MouseButtonRight) {
		t.Fatal("right button was never pressed")
	}
}

func TestActions(t *testing.T) {
	src := newFake()
	m := NewManager(src)

	src.keys = []ebiten.Key{ebiten.KeyUp}
	m.Update()
	if !m.IsActionDown(cfg.ActionJump) || !m.IsActionDownBtn(cfg.ActionJump) {
		t.Fatal("jump should be down and just pressed")
	}
	m.Update()
	if !m.IsActionDown(cfg.ActionJump) || m.IsActionDownBtn(cfg.ActionJump) {
		t.Fatal("held jump should not be just pressed")
	}
	src.keys = nil
	m.Update()
	if !m.IsActionReleased(cfg.ActionJump) {
		t.Fatal("jump should report release")
	}

	src.pads = []ebiten.GamepadID{0}
	src.buttons[ebiten.StandardGamepadButtonRightLeft] = true
	src.axisH = -0.9
	m.Update()
	if !m.IsActionDown(cfg.ActionRun) {
		t.Fatal("gamepad binding for run not seen")
	}
	if !m.IsActionDown(cfg.ActionMoveLeft) || m.IsActionDown(cfg.ActionMoveRight) {
		t.Fatal("left stick should map to move left only")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"left", ebiten.KeyArrowLeft},
		{"z", ebiten.KeyZ},
		{"space", ebiten.KeySpace},
		{"numpad4", ebiten.KeyNumpad4},
		{"f12", ebiten.KeyF12},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseKey(%q) = (%v, %v), want %v", tt.name, got, err, tt.want)
		}
		if name, ok := KeyName(got); !ok || name != tt.name {
			t.Errorf("KeyName(%v) = %q, want %q", got, name, tt.name)
		}
	}
	if _, err := ParseKey("hyper"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}
