package letters

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Glyphs which deliberately deviate from their Unicode decomposition.
var presentationExceptions = map[rune]bool{
	0x0677: true, // FBDD decomposes to U + high hamza
	0x06D5: true, // Kurdish AE borrows the final form of HEH
}

func TestTablesAgreeWithUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.letters")
	defer teardown()
	//
	for _, v := range []Variant{Arabic, ArabicV2, Kurdish} {
		for _, e := range ForVariant(v).Entries() {
			if e.Letter == ZWJ || e.Letter == Tatweel || presentationExceptions[e.Letter] {
				continue
			}
			for f := Isolated; f <= Final; f++ {
				g := e.Glyph(f)
				if g == 0 || g == e.Letter {
					continue
				}
				p, ok := LookupPresentation(g)
				if !ok {
					t.Errorf("%s: glyph %U of %U is not a presentation form", v, g, e.Letter)
					continue
				}
				if p.Form != f || p.Base != e.Letter {
					t.Errorf("%s: %U in slot %s is %s of %U (%s)", v, g, f, p.Form, p.Base, p.Name)
				}
			}
		}
	}
}

func TestVariants(t *testing.T) {
	arabic, v2, kurdish := ForVariant(Arabic), ForVariant(ArabicV2), ForVariant(Kurdish)
	if arabic.Len() != v2.Len() {
		t.Errorf("ArabicV2 should have the letters of Arabic, have %d vs %d", v2.Len(), arabic.Len())
	}
	if kurdish.Len() != v2.Len()+4 {
		t.Errorf("expected Kurdish to add four letters, has %d vs %d", kurdish.Len(), v2.Len())
	}
	if g := arabic.Glyph(0x0628, Isolated); g != 0xFE8F {
		t.Errorf("expected isolated BEH to be FE8F, is %U", g)
	}
	if g := v2.Glyph(0x0628, Isolated); g != 0x0628 {
		t.Errorf("expected isolated BEH to stay logical in ArabicV2, is %U", g)
	}
	if g := v2.Glyph(0x0628, Medial); g != 0xFE92 {
		t.Errorf("expected medial BEH to be FE92 in ArabicV2, is %U", g)
	}
	if g := kurdish.Glyph(0x06D5, Final); g != 0xFEEA {
		t.Errorf("expected final AE to be FEEA, is %U", g)
	}
	if arabic.Contains(0x06B5) || !kurdish.Contains(0x06B5) {
		t.Errorf("LAM WITH SMALL V should be Kurdish only")
	}
	if ForVariant(Variant(42)) != arabic {
		t.Errorf("unknown variants should fall back to Arabic")
	}
	entries := arabic.Entries()
	entries[0].Forms[Isolated] = 'x'
	if arabic.Entries()[0].Forms[Isolated] == 'x' {
		t.Errorf("Entries must return a copy")
	}
}

func TestConnectivity(t *testing.T) {
	tab := ForVariant(Arabic)
	cases := []struct {
		r                    rune
		before, after, inner bool
	}{
		{0x0628, true, true, true},    // BEH
		{0x0627, true, false, false},  // ALEF
		{0x0621, false, false, false}, // HAMZA
		{Tatweel, true, true, true},
		{ZWJ, true, true, true},
		{'x', false, false, false},
	}
	for _, c := range cases {
		if tab.ConnectsBefore(c.r) != c.before {
			t.Errorf("ConnectsBefore(%U) should be %v", c.r, c.before)
		}
		if tab.ConnectsAfter(c.r) != c.after {
			t.Errorf("ConnectsAfter(%U) should be %v", c.r, c.after)
		}
		if tab.ConnectsBoth(c.r) != c.inner {
			t.Errorf("ConnectsBoth(%U) should be %v", c.r, c.inner)
		}
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant(" arabicV2 ")
	if err != nil || v != ArabicV2 {
		t.Errorf("expected ArabicV2, have %s, %v", v, err)
	}
	if _, err = ParseVariant("Persian"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, have %v", err)
	}
	if Kurdish.String() != "Kurdish" || Variant(9).String() != "Variant(9)" {
		t.Errorf("unexpected variant names %s, %s", Kurdish, Variant(9))
	}
}

func TestForms(t *testing.T) {
	if !Final.IsPositional() || Unshaped.IsPositional() || NotSupported.IsPositional() {
		t.Errorf("only the four glyph slots are positional")
	}
	if NotSupported.String() != "NOT_SUPPORTED" {
		t.Errorf("unexpected form name %s", NotSupported)
	}
	var e Entry
	if e.Glyph(Unshaped) != 0 {
		t.Errorf("Unshaped has no glyph slot")
	}
}

func TestHarakat(t *testing.T) {
	for _, r := range []rune{0x064B, 0x064E, 0x0651, 0x0652, 0x0670, 0x0610, 0x06ED, 0x08F0} {
		if !IsHarakat(r) {
			t.Errorf("%U should be a haraka", r)
		}
	}
	for _, r := range []rune{0x0627, Tatweel, 0x0660, 0x06DD, 0x06E9, ZWJ, 'a'} {
		if IsHarakat(r) {
			t.Errorf("%U should not be a haraka", r)
		}
	}
}

func TestLookupPresentation(t *testing.T) {
	p, ok := LookupPresentation(0xFEDF)
	if !ok || p.Base != 0x0644 || p.Form != Initial {
		t.Errorf("expected FEDF to be initial LAM, have %+v", p)
	}
	p, ok = LookupPresentation(0xFEFC)
	if !ok || p.Base != 0x0644 || p.Form != Final {
		t.Errorf("expected FEFC to be a final ligature starting with LAM, have %+v", p)
	}
	if _, ok = LookupPresentation(0xFDFD); ok {
		t.Errorf("BISMILLAH has no positional form")
	}
	if _, ok = LookupPresentation(0x0628); ok {
		t.Errorf("logical letters are not presentation glyphs")
	}
}
