package arshape

import (
	"github.com/npillmayer/arshape/letters"
)

// ligate collapses enabled ligatures in the buffer. Longer patterns are
// matched first; a span once taken by a ligature is not matched again.
// Candidates whose computed form has no glyph leave the buffer unchanged.
func (r *Reshaper) ligate(buf *shapingBuffer) {
	blocked := func(i int) bool {
		return buf.slots[i].r == letters.ZWJ
	}
	claims := r.matcher.Scan(buf.runes(), blocked, func(start, end int, ids []int) bool {
		form := ligatureForm(buf.slots[start].form, buf.slots[end-1].form)
		for _, id := range ids {
			lig := r.ligs[id]
			g := lig.Glyph(form)
			if g == 0 {
				continue
			}
			tracer().Debugf("ligature %s at [%d,%d) in form %s", lig.Name, start, end, form)
			buf.slots[start] = slot{r: g, form: letters.NotSupported}
			for i := start + 1; i < end; i++ {
				buf.slots[i] = slot{form: letters.NotSupported}
			}
			return true
		}
		return false
	})
	tracer().Debugf("%d ligatures applied", claims.Len())
}

// ligatureForm derives the form of a ligature from the forms of the first
// and last letter it replaces. A ligature starting a joined run is isolated
// or initial, one continuing a run is medial or final.
func ligatureForm(first, last letters.Form) letters.Form {
	opensRun := first != letters.Medial && first != letters.Final
	closesRun := last != letters.Initial && last != letters.Medial
	switch {
	case opensRun && closesRun:
		return letters.Isolated
	case opensRun:
		return letters.Initial
	case closesRun:
		return letters.Final
	}
	return letters.Medial
}
