package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source is the raw device state the Manager polls once per frame.
type Source interface {
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	CursorPosition() (int, int)
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

// EbitenSource reads the devices ebiten is tracking.
type EbitenSource struct{}

func (EbitenSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (EbitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (EbitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenSource) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

// IsStandardGamepadButtonPressed ignores pads without a standard layout.
func (EbitenSource) IsStandardGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (EbitenSource) StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}
