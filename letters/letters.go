package letters

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Special code points which take part in shaping without being letters.
const (
	Tatweel rune = 0x0640 // ARABIC TATWEEL
	ZWJ     rune = 0x200D // ZERO WIDTH JOINER
)

// Form is the positional form a letter takes in shaped text.
type Form int8

// Positional forms. The first four index the glyph slots of an [Entry].
const (
	Isolated Form = iota
	Initial
	Medial
	Final
	// Unshaped leaves a letter in its logical form.
	Unshaped
	// NotSupported marks a code point which is copied verbatim.
	NotSupported
)

var formNames = [...]string{"ISOLATED", "INITIAL", "MEDIAL", "FINAL", "UNSHAPED", "NOT_SUPPORTED"}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int8(f))
	}
	return formNames[f]
}

// IsPositional is true for the four forms which select a glyph slot.
func (f Form) IsPositional() bool {
	return f >= Isolated && f <= Final
}

// Entry is a letter together with its positional glyphs.
type Entry struct {
	Letter rune
	Forms  [4]rune
}

// Glyph returns the glyph for form f, or 0 if the letter does not have one.
func (e Entry) Glyph(f Form) rune {
	if !f.IsPositional() {
		return 0
	}
	return e.Forms[f]
}

// ConnectsBefore is true if the letter may join the letter preceding it.
func (e Entry) ConnectsBefore() bool {
	return e.Forms[Final] != 0 || e.Forms[Medial] != 0
}

// ConnectsAfter is true if the letter may join the letter following it.
func (e Entry) ConnectsAfter() bool {
	return e.Forms[Initial] != 0 || e.Forms[Medial] != 0
}

// ConnectsBoth is true if the letter may sit in the middle of a joined run.
func (e Entry) ConnectsBoth() bool {
	return e.Forms[Medial] != 0
}

// --- Variants --------------------------------------------------------------

// Variant selects one of the letter tables.
type Variant uint8

const (
	// Arabic uses presentation glyphs for every form, including isolated ones.
	Arabic Variant = iota
	// ArabicV2 keeps isolated letters in their logical form. This suits fonts
	// whose isolated presentation glyphs are missing or poorly designed.
	ArabicV2
	// Kurdish is ArabicV2 extended by the letters of Sorani orthography.
	Kurdish
)

var variantNames = [...]string{"Arabic", "ArabicV2", "Kurdish"}

func (v Variant) String() string {
	if int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// ErrUnknownVariant is returned by [ParseVariant] for unknown table names.
var ErrUnknownVariant = errors.New("letters: unknown letter table variant")

// ParseVariant maps a table name to a variant. Matching ignores case and
// surrounding white space.
func ParseVariant(name string) (Variant, error) {
	name = strings.TrimSpace(name)
	for i, n := range variantNames {
		if strings.EqualFold(n, name) {
			return Variant(i), nil
		}
	}
	return Arabic, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// --- Tables ----------------------------------------------------------------

// Table is an immutable letter table. Entries keep their declaration order.
type Table struct {
	variant Variant
	entries []Entry
	index   map[rune]int
}

func newTable(v Variant, groups ...[]Entry) *Table {
	t := &Table{variant: v, index: make(map[rune]int, 128)}
	for _, g := range groups {
		for _, e := range g {
			if i, ok := t.index[e.Letter]; ok {
				t.entries[i] = e
				continue
			}
			t.index[e.Letter] = len(t.entries)
			t.entries = append(t.entries, e)
		}
	}
	return t
}

var (
	tablesOnce sync.Once
	tables     [3]*Table
)

// ForVariant returns the letter table for v. Unknown variants fall back to
// [Arabic].
func ForVariant(v Variant) *Table {
	tablesOnce.Do(func() {
		v2 := isolatedAsLogical(arabicEntries)
		tables[Arabic] = newTable(Arabic, arabicEntries)
		tables[ArabicV2] = newTable(ArabicV2, v2)
		tables[Kurdish] = newTable(Kurdish, v2, kurdishExtraEntries)
	})
	if int(v) >= len(tables) {
		v = Arabic
	}
	return tables[v]
}

func isolatedAsLogical(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Forms[Isolated] = e.Letter
		out[i] = e
	}
	return out
}

// Variant returns the variant t has been built for.
func (t *Table) Variant() Variant {
	return t.variant
}

// Len returns the number of letters in t.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup finds the entry for letter r.
func (t *Table) Lookup(r rune) (Entry, bool) {
	i, ok := t.index[r]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Contains is true if r is a base letter of t.
func (t *Table) Contains(r rune) bool {
	_, ok := t.index[r]
	return ok
}

// Glyph returns the glyph of letter r in form f, or 0.
func (t *Table) Glyph(r rune, f Form) rune {
	if e, ok := t.Lookup(r); ok {
		return e.Glyph(f)
	}
	return 0
}

// Entries returns a copy of all entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ConnectsBefore reports whether letter r may join the letter before it.
// Letters not in t never connect.
func (t *Table) ConnectsBefore(r rune) bool {
	e, ok := t.Lookup(r)
	return ok && e.ConnectsBefore()
}

// ConnectsAfter reports whether letter r may join the letter after it.
func (t *Table) ConnectsAfter(r rune) bool {
	e, ok := t.Lookup(r)
	return ok && e.ConnectsAfter()
}

// ConnectsBoth reports whether letter r has a medial form.
func (t *Table) ConnectsBoth(r rune) bool {
	e, ok := t.Lookup(r)
	return ok && e.ConnectsBoth()
}
