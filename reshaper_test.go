package arshape

import (
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ReshapeTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestReshaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape")
	defer teardown()
	suite.Run(t, new(ReshapeTestEnviron))
}

// run once, before test suite methods
func (env *ReshapeTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("arshape").SetTraceLevel(tracing.LevelInfo)
}

func (env *ReshapeTestEnviron) reshaper(o config.Overrides) *Reshaper {
	conf, err := config.Load(config.WithoutEnvironment(), config.WithOverrides(o))
	env.Require().NoError(err, "cannot load test configuration")
	r, err := New(conf)
	env.Require().NoError(err, "cannot create reshaper")
	return r
}

func (env *ReshapeTestEnviron) allLigatures(o config.Overrides) *Reshaper {
	conf, err := config.Load(config.WithoutEnvironment(), config.WithOverrides(o))
	env.Require().NoError(err)
	conf.SetLigatureGroups(ligatures.All)
	r, err := New(conf)
	env.Require().NoError(err)
	return r
}

type fixture struct {
	in, out string
}

func (env *ReshapeTestEnviron) check(r *Reshaper, cases []fixture) {
	for i, c := range cases {
		env.Equal(c.out, r.Reshape(c.in), "case #%d: %q", i, c.in)
	}
}

// --- Tests -----------------------------------------------------------------

func (env *ReshapeTestEnviron) TestDefaultReshaping() {
	env.check(Default(), []fixture{
		{"السلام عليكم", "ﺍﻟﺴﻼﻡ ﻋﻠﻴﻜﻢ"},
		{"السَلَاْمٌ عَلَيْكُمْ", "ﺍﻟﺴﻼﻡ ﻋﻠﻴﻜﻢ"},
		{"چۆمان", "ﭼﯚﻣﺎﻥ"},
		{"گۆیژە", "ﮔﯚﯾﮋە"},
		{"ﺧﯚﻣﺎﻥ ﺧﯚﺵ", "ﺧﯚﻣﺎﻥ ﺧﯚﺵ"},
		{"", ""},
		{"abc 123", "abc 123"},
	})
}

func (env *ReshapeTestEnviron) TestReshapingWithHarakat() {
	r := env.reshaper(config.Overrides{"delete_harakat": false})
	env.check(r, []fixture{
		{"السَلَاْمٌ عَلَيْكُمْ", "ﺍﻟﺴَﻼَْﻡٌ ﻋَﻠَﻴْﻜُﻢْ"},
		{"\u064E\u0628", "\u064E\uFE8F"},
	})
}

func (env *ReshapeTestEnviron) TestShiftHarakat() {
	r := env.reshaper(config.Overrides{"delete_harakat": false, "shift_harakat_position": true})
	env.check(r, []fixture{
		{"\u0628\u064E\u0628", "\u064E\uFE91\uFE90"},
		{"\u0628\u064E\u0651\u0628", "\u0651\u064E\uFE91\uFE90"},
	})
	r = env.reshaper(config.Overrides{"delete_harakat": false})
	env.Equal("\uFE91\u064E\u0651\uFE90", r.Reshape("\u0628\u064E\u0651\u0628"))
}

func (env *ReshapeTestEnviron) TestHarakatPreservation() {
	text := "إِنَّ ٱلْحَمْدَ لِلَّهِ نَحْمَدُهُ وَنَسْتَعِينُهُ"
	keep := env.reshaper(config.Overrides{"delete_harakat": false})
	shift := env.reshaper(config.Overrides{"delete_harakat": false, "shift_harakat_position": true})
	drop := Default()
	want := countHarakat(text)
	env.Require().True(want > 10)
	env.Equal(want, countHarakat(keep.Reshape(text)), "diacritics lost")
	env.Equal(want, countHarakat(shift.Reshape(text)), "diacritics lost when shifting")
	env.Equal(0, countHarakat(drop.Reshape(text)), "diacritics not deleted")
}

func countHarakat(s string) int {
	n := 0
	for _, c := range s {
		if letters.IsHarakat(c) {
			n++
		}
	}
	return n
}

func (env *ReshapeTestEnviron) TestIsolatedLetters() {
	r := Default()
	v2 := env.reshaper(config.Overrides{"language": "ArabicV2"})
	unshaped := env.reshaper(config.Overrides{"use_unshaped_instead_of_isolated": true})
	for _, e := range r.Table().Entries() {
		if e.Letter == letters.ZWJ {
			continue
		}
		l := string(e.Letter)
		env.Equal(string(e.Glyph(letters.Isolated)), r.Reshape(l), "letter %U", e.Letter)
		env.Equal(l, v2.Reshape(l), "letter %U", e.Letter)
		env.Equal(l, unshaped.Reshape(l), "letter %U", e.Letter)
	}
}

func (env *ReshapeTestEnviron) TestUnshapedInsteadOfIsolated() {
	r := env.reshaper(config.Overrides{"use_unshaped_instead_of_isolated": true})
	env.check(r, []fixture{
		{"ب", "ب"},
		{"لا", "ﻻ"},
		{"سلا", "ﺳﻼ"},
		{"با", "ﺑﺎ"},
	})
}

func (env *ReshapeTestEnviron) TestConnectivity() {
	r := env.reshaper(config.Overrides{"support_ligatures": false})
	tab := r.Table()
	for _, a := range tab.Entries() {
		if !a.ConnectsAfter() || a.Letter == letters.ZWJ || a.Letter == letters.Tatweel {
			continue
		}
		for _, b := range tab.Entries() {
			if !b.ConnectsBefore() || b.Letter == letters.ZWJ || b.Letter == letters.Tatweel {
				continue
			}
			out := []rune(r.Reshape(string([]rune{a.Letter, b.Letter})))
			env.Require().Len(out, 2)
			isolated := out[0] == a.Glyph(letters.Isolated) && out[1] == b.Glyph(letters.Isolated)
			env.False(isolated, "%U %U must join", a.Letter, b.Letter)
		}
	}
}

func (env *ReshapeTestEnviron) TestTatweel() {
	env.Equal("ﺑـﺎ", Default().Reshape("بـا"))
	r := env.reshaper(config.Overrides{"delete_tatweel": true})
	env.Equal("ﺑﺎ", r.Reshape("بـا"))
}

func (env *ReshapeTestEnviron) TestZWJ() {
	r := Default()
	env.Equal("\uFE91\uFE8E", r.Reshape("\u0628\u200D\u0627"))
	env.Equal("\uFE91", r.Reshape("\u0628\u200D"))
	env.Equal("\uFE90", r.Reshape("\u200D\u0628"))
	env.Equal("\uFE91 \uFE8F", r.Reshape("\u0628\u200D \u0628"))
	env.NotContains(r.Reshape("\u200D\u200D\u0628\u200D\u200D"), "\u200D")
	off := env.reshaper(config.Overrides{"support_zwj": false})
	env.Equal("\uFE8F", off.Reshape("\u0628\u200D"))
}

func (env *ReshapeTestEnviron) TestZWJKeepsTypedHarakatPosition() {
	r := env.reshaper(config.Overrides{"delete_harakat": false})
	env.Equal("\uFE91\u064E\uFE8E", r.Reshape("\u0628\u200D\u064E\u0627"))
	env.Equal("\uFE91\u064E\uFE8E", r.Reshape("\u0628\u064E\u200D\u0627"))
}

func (env *ReshapeTestEnviron) TestLigatures() {
	r := env.allLigatures(nil)
	env.check(r, []fixture{
		{"\u0645\u064A\u0646", "\uFEE3\uFC94"},
		{"الله", "ﷲ"},
		{"محمد", "ﷴ"},
	})
	withoutAllah := env.reshaper(config.Overrides{"ARABIC LIGATURE ALLAH": false})
	env.Equal("ﺍﻟﻠﻪ", withoutAllah.Reshape("الله"))
	none := env.reshaper(config.Overrides{"support_ligatures": false})
	env.Equal("ﺍﻟﻠﻪ", none.Reshape("الله"))
}

func (env *ReshapeTestEnviron) TestLigaturePriority() {
	conf := config.Default()
	conf.SetLigatureGroups(ligatures.All)
	env.Require().NoError(conf.EnableLigature("ARABIC LIGATURE MOHAMMAD", false))
	r, err := New(conf)
	env.Require().NoError(err)
	env.Equal("\uFD8A\uFEAA", r.Reshape("محمد"), "letter ligature expected without word ligature")
}

func (env *ReshapeTestEnviron) TestBismillah() {
	bism := "بسم الله الرحمن الرحيم"
	r := env.reshaper(config.Overrides{"ARABIC LIGATURE BISMILLAH AR-RAHMAN AR-RAHEEM": true})
	env.Equal("﷽", r.Reshape(bism))
	env.Equal("(﷽)", r.Reshape("("+bism+")"))
	shaped := Default().Reshape(bism)
	env.NotContains(shaped, "﷽")
	env.Contains(shaped, "ﷲ")
}

func (env *ReshapeTestEnviron) TestConfigIsCopied() {
	conf := config.Default()
	r, err := New(conf)
	env.Require().NoError(err)
	conf.DeleteHarakat = false
	env.True(r.Config().DeleteHarakat)
	_, err = New(nil)
	env.Error(err)
}

func (env *ReshapeTestEnviron) TestConcurrentUse() {
	r := env.allLigatures(config.Overrides{"delete_harakat": false})
	text := "السَلَاْمٌ عَلَيْكُمْ محمد الله"
	want := r.Reshape(text)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := r.Reshape(text); got != want {
					env.T().Errorf("concurrent reshape differs: %q", got)
					return
				}
				_ = r.Unshape(want)
			}
		}()
	}
	wg.Wait()
}

func (env *ReshapeTestEnviron) TestReshapeStream() {
	r := Default()
	text := "السلام عليكم\nبـا\n\nالله"
	var out strings.Builder
	env.Require().NoError(r.ReshapeStream(strings.NewReader(text), &out))
	env.Equal(r.Reshape(text), out.String())
}

func TestLigatureForm(t *testing.T) {
	I, N, M, F := letters.Isolated, letters.Initial, letters.Medial, letters.Final
	table := [4][4]letters.Form{
		{I, N, N, I},
		{I, N, N, I},
		{F, M, M, F},
		{F, M, M, F},
	}
	for a := I; a <= F; a++ {
		for b := I; b <= F; b++ {
			if f := ligatureForm(a, b); f != table[a][b] {
				t.Errorf("ligature form for (%s, %s) is %s, expected %s", a, b, f, table[a][b])
			}
		}
	}
	if f := ligatureForm(letters.Unshaped, letters.Unshaped); f != I {
		t.Errorf("unshaped endpoints should give an isolated ligature, have %s", f)
	}
}
