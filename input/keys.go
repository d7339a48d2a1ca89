package input

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames are the names level files use for keyboard bindings.
var keyNames = map[string]ebiten.Key{
	"a":            ebiten.KeyA,
	"b":            ebiten.KeyB,
	"c":            ebiten.KeyC,
	"d":            ebiten.KeyD,
	"e":            ebiten.KeyE,
	"f":            ebiten.KeyF,
	"g":            ebiten.KeyG,
	"h":            ebiten.KeyH,
	"i":            ebiten.KeyI,
	"j":            ebiten.KeyJ,
	"k":            ebiten.KeyK,
	"l":            ebiten.KeyL,
	"m":            ebiten.KeyM,
	"n":            ebiten.KeyN,
	"o":            ebiten.KeyO,
	"p":            ebiten.KeyP,
	"q":            ebiten.KeyQ,
	"r":            ebiten.KeyR,
	"s":            ebiten.KeyS,
	"t":            ebiten.KeyT,
	"u":            ebiten.KeyU,
	"v":            ebiten.KeyV,
	"w":            ebiten.KeyW,
	"x":            ebiten.KeyX,
	"y":            ebiten.KeyY,
	"z":            ebiten.KeyZ,
	"zero":         ebiten.KeyDigit0,
	"one":          ebiten.KeyDigit1,
	"two":          ebiten.KeyDigit2,
	"three":        ebiten.KeyDigit3,
	"four":         ebiten.KeyDigit4,
	"five":         ebiten.KeyDigit5,
	"six":          ebiten.KeyDigit6,
	"seven":        ebiten.KeyDigit7,
	"eight":        ebiten.KeyDigit8,
	"nine":         ebiten.KeyDigit9,
	"numpad0":      ebiten.KeyNumpad0,
	"numpad1":      ebiten.KeyNumpad1,
	"numpad2":      ebiten.KeyNumpad2,
	"numpad3":      ebiten.KeyNumpad3,
	"numpad4":      ebiten.KeyNumpad4,
	"numpad5":      ebiten.KeyNumpad5,
	"numpad6":      ebiten.KeyNumpad6,
	"numpad7":      ebiten.KeyNumpad7,
	"numpad8":      ebiten.KeyNumpad8,
	"numpad9":      ebiten.KeyNumpad9,
	"f1":           ebiten.KeyF1,
	"f2":           ebiten.KeyF2,
	"f3":           ebiten.KeyF3,
	"f4":           ebiten.KeyF4,
	"f5":           ebiten.KeyF5,
	"f6":           ebiten.KeyF6,
	"f7":           ebiten.KeyF7,
	"f8":           ebiten.KeyF8,
	"f9":           ebiten.KeyF9,
	"f10":          ebiten.KeyF10,
	"f11":          ebiten.KeyF11,
	"f12":          ebiten.KeyF12,
	"tab":          ebiten.KeyTab,
	"tilde":        ebiten.KeyBackquote,
	"minus":        ebiten.KeyMinus,
	"plus":         ebiten.KeyEqual,
	"backspace":    ebiten.KeyBackspace,
	"leftBrace":    ebiten.KeyBracketLeft,
	"rightBrace":   ebiten.KeyBracketRight,
	"pipe":         ebiten.KeyBackslash,
	"colon":        ebiten.KeySemicolon,
	"quote":        ebiten.KeyQuote,
	"enter":        ebiten.KeyEnter,
	"lessThan":     ebiten.KeyComma,
	"greaterThan":  ebiten.KeyPeriod,
	"questionMark": ebiten.KeySlash,
	"shift":        ebiten.KeyShift,
	"control":      ebiten.KeyControl,
	"windows":      ebiten.KeyMeta,
	"alt":          ebiten.KeyAlt,
	"space":        ebiten.KeySpace,
	"left":         ebiten.KeyArrowLeft,
	"up":           ebiten.KeyArrowUp,
	"right":        ebiten.KeyArrowRight,
	"down":         ebiten.KeyArrowDown,
	"numpadMinus":  ebiten.KeyNumpadSubtract,
	"numpadPlus":   ebiten.KeyNumpadAdd,
	"numpadPeriod": ebiten.KeyNumpadDecimal,
	"numpadDivide": ebiten.KeyNumpadDivide,
	"numpadStar":   ebiten.KeyNumpadMultiply,
	"insert":       ebiten.KeyInsert,
	"del":          ebiten.KeyDelete,
	"end":          ebiten.KeyEnd,
	"home":         ebiten.KeyHome,
	"pageUp":       ebiten.KeyPageUp,
	"pageDown":     ebiten.KeyPageDown,
	"esc":          ebiten.KeyEscape,
}

var nameOfKey = func() map[ebiten.Key]string {
	m := make(map[ebiten.Key]string, len(keyNames))
	for name, k := range keyNames {
		m[k] = name
	}
	return m
}()

// ParseKey resolves a key name such as "left", "z" or "numpad4".
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// KeyName is the inverse of ParseKey. ok is false for keys without a name.
func KeyName(k ebiten.Key) (name string, ok bool) {
	name, ok = nameOfKey[k]
	return name, ok
}

// KeyNames lists every accepted key name in sorted order.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
