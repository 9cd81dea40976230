/*
Package fontload loads fonts for probing their character coverage.
*/
package fontload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font together with its original bytes.
// It keeps a scratch buffer for cmap lookups and must not be used by more
// than one goroutine at a time.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
	buf      sfnt.Buffer
}

var ttcTag = []byte("ttcf")

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file. For font
// collections the first font is used.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// Locate resolves a font given by file path or by the file name of an
// installed system font, e.g. "Amiri-Regular.ttf".
func Locate(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("font %q not found: %w", name, err)
	}
	return path, nil
}

// LoadFont locates a font with [Locate] and loads it.
func LoadFont(name string) (*ScalableFont, error) {
	path, err := Locate(name)
	if err != nil {
		return nil, err
	}
	return LoadOpenTypeFont(path)
}

// ParseOpenTypeFont loads an OpenType font (TTF, OTF or TTC) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if bytes.HasPrefix(fbytes, ttcTag) {
		var coll *sfnt.Collection
		if coll, err = sfnt.ParseCollection(fbytes); err != nil {
			return nil, err
		}
		f.SFNT, err = coll.Font(0)
	} else {
		f.SFNT, err = sfnt.Parse(f.Binary)
	}
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(&f.buf, sfnt.NameIDFull); err != nil {
		f.Fontname = "(unnamed)"
	}
	return f, nil
}

// HasRune reports whether the font's cmap maps r to a glyph other than
// .notdef.
func (f *ScalableFont) HasRune(r rune) bool {
	gid, err := f.SFNT.GlyphIndex(&f.buf, r)
	return err == nil && gid != 0
}

// Missing returns the runes of rs not mapped by the font's cmap, in order.
func (f *ScalableFont) Missing(rs ...rune) []rune {
	var missing []rune
	for _, r := range rs {
		if !f.HasRune(r) {
			missing = append(missing, r)
		}
	}
	return missing
}
