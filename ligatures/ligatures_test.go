package ligatures

import (
	"testing"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.ligatures")
	defer teardown()
	//
	if n := len(InGroups(Sentences)); n != 3 {
		t.Errorf("expected 3 sentence ligatures, have %d", n)
	}
	if n := len(InGroups(Words)); n != 9 {
		t.Errorf("expected 9 word ligatures, have %d", n)
	}
	if Len() != len(InGroups(All)) || len(InGroups(None)) != 0 {
		t.Errorf("groups do not partition the registry")
	}
	seen := make(map[string]bool)
	for _, name := range Names() {
		if seen[Key(name)] {
			t.Errorf("duplicate ligature name %q", name)
		}
		seen[Key(name)] = true
	}
	for _, l := range List() {
		if len(l.Sequences) == 0 || len(l.Glyphs()) == 0 {
			t.Errorf("ligature %q has no sequence or no glyph", l.Name)
		}
	}
}

func TestGlyphSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.ligatures")
	defer teardown()
	//
	for _, l := range List() {
		for f := letters.Isolated; f <= letters.Final; f++ {
			g := l.Glyph(f)
			if g == 0 {
				continue
			}
			if p, ok := letters.LookupPresentation(g); ok && p.Form != f {
				t.Errorf("%s: glyph %U in slot %s is named %s", l.Name, g, f, p.Name)
			}
		}
	}
}

func TestLookups(t *testing.T) {
	l, ok := ByName("  arabic ligature lam with alef ")
	if !ok || l.Glyph(letters.Final) != 0xFEFC {
		t.Errorf("expected LAM WITH ALEF with final FEFC, have %+v", l)
	}
	if l.Glyph(letters.NotSupported) != 0 {
		t.Errorf("non-positional forms have no glyph")
	}
	l, ok = ByGlyph(0xFDF2)
	if !ok || l.Name != "ARABIC LIGATURE ALLAH" {
		t.Errorf("expected FDF2 to belong to ALLAH, have %q", l.Name)
	}
	l, ok = ByGlyph(0xFDFC)
	if !ok || len(l.Sequences) != 2 {
		t.Errorf("expected RIAL SIGN with two spellings, have %+v", l)
	}
	if _, ok = ByGlyph(0x0628); ok {
		t.Errorf("BEH is not a ligature glyph")
	}
	bism, _ := Priority("ARABIC LIGATURE BISMILLAH AR-RAHMAN AR-RAHEEM")
	allah, _ := Priority("ARABIC LIGATURE ALLAH")
	lamAlef, _ := Priority("ARABIC LIGATURE LAM WITH ALEF")
	if !(bism < allah && allah < lamAlef) {
		t.Errorf("sentences should precede words, words should precede letters")
	}
	if g, _ := GroupOf("RIAL SIGN"); g != Words {
		t.Errorf("RIAL SIGN should be a word ligature, is %s", g)
	}
	if _, ok = GroupOf("ARABIC LIGATURE NOTHING"); ok {
		t.Errorf("unknown ligature found")
	}
}

func TestGroupString(t *testing.T) {
	if s := (Sentences | Letters).String(); s != "sentences|letters" {
		t.Errorf("unexpected group name %q", s)
	}
	if None.String() != "none" {
		t.Errorf("unexpected group name %q", None.String())
	}
}

func TestParseGroup(t *testing.T) {
	for in, want := range map[string]Group{
		"sentences|letters": Sentences | Letters,
		"words, letters":    Words | Letters,
		"All":               All,
		"none":              None,
		"":                  None,
	} {
		g, err := ParseGroup(in)
		if err != nil || g != want {
			t.Errorf("ParseGroup(%q) = %v, %v; want %v", in, g, err, want)
		}
	}
	if _, err := ParseGroup("glyphs"); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestListCoversAllGroups(t *testing.T) {
	if n := len(List()); n != Len() || n != len(InGroups(All)) {
		t.Errorf("List has %d ligatures, Len %d, all groups %d", n, Len(), len(InGroups(All)))
	}
	if len(InGroups(None)) != 0 {
		t.Errorf("expected no ligatures for empty group")
	}
}
