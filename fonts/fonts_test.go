package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(10); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	face := Debug.Get()
	if face == nil {
		t.Fatal("debug face is nil")
	}
	if h := face.Metrics().Height; h <= 0 {
		t.Errorf("line height = %v, want positive", h)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unregistered font")
		}
	}()
	FontName("nope").Get()
}
