package letters

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// PresentationGlyph describes a code point of the Arabic presentation form
// blocks as far as the Unicode character database tells.
type PresentationGlyph struct {
	Base rune // first letter of the compatibility composition
	Form Form // positional form, from the character name
	Name string
}

var (
	presentationOnce sync.Once
	presentation     map[rune]PresentationGlyph
)

// LookupPresentation classifies glyph r by its Unicode name and NFKC mapping.
// It is independent of any letter table and is used to validate tables and to
// annotate shaped output.
func LookupPresentation(r rune) (PresentationGlyph, bool) {
	presentationOnce.Do(func() {
		presentation = buildPresentationMap()
	})
	p, ok := presentation[r]
	return p, ok
}

func buildPresentationMap() map[rune]PresentationGlyph {
	out := make(map[rune]PresentationGlyph, 1024)
	addRange := func(from, to rune) {
		for u := from; u <= to; u++ {
			name := runenames.Name(u)
			form, ok := formFromName(name)
			if !ok {
				continue
			}
			if base := compatibilityBase(u); base != 0 {
				out[u] = PresentationGlyph{Base: base, Form: form, Name: name}
			}
		}
	}
	addRange(0xFB50, 0xFDFF) // Arabic Presentation Forms-A
	addRange(0xFE70, 0xFEFF) // Arabic Presentation Forms-B
	return out
}

func formFromName(name string) (Form, bool) {
	if name == "" || !strings.Contains(name, "ARABIC") {
		return NotSupported, false
	}
	switch {
	case strings.HasSuffix(name, "ISOLATED FORM"):
		return Isolated, true
	case strings.HasSuffix(name, "FINAL FORM"):
		return Final, true
	case strings.HasSuffix(name, "INITIAL FORM"):
		return Initial, true
	case strings.HasSuffix(name, "MEDIAL FORM"):
		return Medial, true
	}
	return NotSupported, false
}

func compatibilityBase(u rune) rune {
	for _, x := range norm.NFKC.String(string(u)) {
		if unicode.Is(unicode.M, x) {
			continue
		}
		if unicode.In(x, unicode.Arabic) {
			return x
		}
	}
	return 0
}
