package arshape

import (
	"strings"

	"github.com/npillmayer/arshape/letters"
)

// slot is a single entry of the shaping buffer. A slot with form
// NotSupported carries a rune to be copied verbatim; this is either a code
// point unknown to the letter table or a resolved ligature glyph. Slots
// consumed by a ligature have r == 0.
type slot struct {
	r    rune
	form letters.Form
}

func (s slot) consumed() bool {
	return s.r == 0
}

// shapingBuffer is owned by a single call to Reshape.
type shapingBuffer struct {
	slots   []slot
	harakat map[int][]rune // slot index (or -1) → diacritics following it
}

func newShapingBuffer(capacity int) *shapingBuffer {
	return &shapingBuffer{
		slots: make([]slot, 0, capacity),
	}
}

// addHaraka records diacritic h after the last slot. If shift is set, h is
// recorded one slot earlier and in front of diacritics already there.
func (buf *shapingBuffer) addHaraka(h rune, shift bool) {
	pos := len(buf.slots) - 1
	if shift {
		pos--
	}
	if pos < -1 {
		pos = -1
	}
	if buf.harakat == nil {
		buf.harakat = make(map[int][]rune)
	}
	if shift {
		buf.harakat[pos] = append([]rune{h}, buf.harakat[pos]...)
	} else {
		buf.harakat[pos] = append(buf.harakat[pos], h)
	}
}

func (buf *shapingBuffer) runes() []rune {
	rs := make([]rune, len(buf.slots))
	for i, s := range buf.slots {
		rs[i] = s.r
	}
	return rs
}

// --- Positional forms ------------------------------------------------------

// shape runs the positional pass over text. Every retained code point gets
// a slot; diacritics are collected in the harakat map.
func (r *Reshaper) shape(text string) *shapingBuffer {
	buf := newShapingBuffer(len(text) / 2)
	for _, c := range text {
		switch {
		case letters.IsHarakat(c):
			if !r.conf.DeleteHarakat {
				buf.addHaraka(c, r.conf.ShiftHarakatPosition)
			}
		case c == letters.Tatweel && r.conf.DeleteTatweel:
		case c == letters.ZWJ && !r.conf.SupportZWJ:
		case !r.table.Contains(c):
			buf.slots = append(buf.slots, slot{r: c, form: letters.NotSupported})
		default:
			r.appendLetter(buf, c)
		}
	}
	return buf
}

// appendLetter joins letter c to the end of the buffer if both c and the
// previous slot allow it. Joining looks at the immediate neighbour only, so
// at most the previous slot has to change its form.
func (r *Reshaper) appendLetter(buf *shapingBuffer, c rune) {
	n := len(buf.slots)
	if n == 0 {
		buf.slots = append(buf.slots, slot{r: c, form: r.isolated})
		return
	}
	prev := &buf.slots[n-1]
	switch {
	case prev.form == letters.NotSupported,
		!r.table.ConnectsBefore(c),
		!r.table.ConnectsAfter(prev.r),
		prev.form == letters.Final && !r.table.ConnectsBoth(prev.r):
		buf.slots = append(buf.slots, slot{r: c, form: r.isolated})
	case prev.form == r.isolated:
		prev.form = letters.Initial
		buf.slots = append(buf.slots, slot{r: c, form: letters.Final})
	default:
		prev.form = letters.Medial
		buf.slots = append(buf.slots, slot{r: c, form: letters.Final})
	}
}

// --- Assembly --------------------------------------------------------------

// assemble renders the buffer. ZWJ slots and consumed slots produce no
// output, but diacritics recorded for them are kept.
func (r *Reshaper) assemble(buf *shapingBuffer) string {
	var sb strings.Builder
	sb.Grow(4 * len(buf.slots))
	r.writeHarakat(&sb, buf, -1)
	for i, s := range buf.slots {
		if !s.consumed() && s.r != letters.ZWJ {
			sb.WriteRune(r.glyph(s))
		}
		r.writeHarakat(&sb, buf, i)
	}
	return sb.String()
}

func (r *Reshaper) writeHarakat(sb *strings.Builder, buf *shapingBuffer, pos int) {
	if r.conf.DeleteHarakat {
		return
	}
	for _, h := range buf.harakat[pos] {
		sb.WriteRune(h)
	}
}

// glyph returns the output code point for s. Letters lacking a glyph for
// their form stay logical.
func (r *Reshaper) glyph(s slot) rune {
	if !s.form.IsPositional() {
		return s.r
	}
	if g := r.table.Glyph(s.r, s.form); g != 0 {
		return g
	}
	return s.r
}
