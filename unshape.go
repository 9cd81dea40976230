package arshape

import (
	"strings"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
)

// lamAlef lists the ALEF variant of each LAM-ALEF presentation ligature,
// U+FEF5 … U+FEFC, isolated and final form alternating.
var lamAlef = [...]rune{
	0x0622, 0x0622, // with MADDA ABOVE
	0x0623, 0x0623, // with HAMZA ABOVE
	0x0625, 0x0625, // with HAMZA BELOW
	0x0627, 0x0627,
}

const lam rune = 0x0644

func lamAlefVariant(c rune) (rune, bool) {
	if c < 0xFEF5 || c > 0xFEFC {
		return 0, false
	}
	return lamAlef[c-0xFEF5], true
}

// Unshape maps presentation forms in text back to logical letters.
//
// Ligature glyphs are expanded to their letters, whether or not r has the
// ligature enabled. Code points without a mapping are copied. Deleted
// diacritics and tatweels cannot be restored.
func (r *Reshaper) Unshape(text string) string {
	r.reverseOnce.Do(r.buildReverse)
	rs := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if r.table.Contains(c) {
			sb.WriteRune(c)
			continue
		}
		if alef, ok := lamAlefVariant(c); ok {
			sb.WriteRune(lam)
			// a diacritic pair following a LAM-ALEF belongs to LAM and ALEF
			if i+2 < len(rs) && letters.IsHarakat(rs[i+1]) && letters.IsHarakat(rs[i+2]) {
				i++
				sb.WriteRune(rs[i])
			}
			sb.WriteRune(alef)
			continue
		}
		if lig, ok := ligatures.ByGlyph(c); ok {
			sb.WriteString(lig.Sequences[0])
			continue
		}
		if l, ok := r.reverse[c]; ok {
			sb.WriteRune(l)
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// buildReverse maps every glyph of the letter table to its letter. If two
// letters share a glyph, the one declared first wins.
func (r *Reshaper) buildReverse() {
	r.reverse = make(map[rune]rune, 4*r.table.Len())
	for _, e := range r.table.Entries() {
		for _, g := range e.Forms {
			if g == 0 || g == e.Letter {
				continue
			}
			if _, dup := r.reverse[g]; !dup {
				r.reverse[g] = e.Letter
			}
		}
	}
	tracer().Debugf("unshaping map for table %s has %d glyphs", r.table.Variant(), len(r.reverse))
}
