package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseGoRegular(t *testing.T) {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname != "Go Regular" {
		t.Errorf("expected font name 'Go Regular', have %q", f.Fontname)
	}
	if !f.HasRune('a') {
		t.Errorf("expected Go Regular to map 'a'")
	}
	if f.HasRune(0xFE8D) {
		t.Errorf("Go Regular has no Arabic presentation forms")
	}
	if m := f.Missing('a', 0xFE8D, 'b', 0x0628); len(m) != 2 || m[0] != 0xFE8D || m[1] != 0x0628 {
		t.Errorf("unexpected missing runes %U", m)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadOpenTypeFont(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Filepath != path {
		t.Errorf("file path not recorded")
	}
	if _, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "none.ttf")); err == nil {
		t.Errorf("expected an error for a missing font file")
	}
	if _, err = ParseOpenTypeFont([]byte("no font at all")); err == nil {
		t.Errorf("expected an error for garbage input")
	}
}

func TestLocate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if p, err := Locate(path); err != nil || p != path {
		t.Errorf("expected existing file to be located as is, have %q, %v", p, err)
	}
	f, err := LoadFont(path)
	if err != nil || f.Fontname != "Go Regular" {
		t.Errorf("cannot load located font: %v", err)
	}
	if _, err := Locate("no-such-font-3f9a1c.ttf"); err == nil {
		t.Errorf("expected error for unknown font")
	}
}
