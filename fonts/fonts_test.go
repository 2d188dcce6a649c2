package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Title} {
		if name.Get() == nil {
			t.Errorf("font %s is nil", name)
		}
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("garbage accepted as a font")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("missing font did not panic")
		}
	}()
	FontName("missing").Get()
}
