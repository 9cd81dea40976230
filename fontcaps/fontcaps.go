/*
Package fontcaps derives reshaper settings from the character coverage of
a font.

Many fonts cover the Arabic block but only part of the presentation forms.
Reshaping text to glyphs a font does not have yields boxes, so a font's cmap
decides which ligatures may be enabled and whether isolated letters should
stay in their logical form.
*/
package fontcaps

import (
	"fmt"
	"sort"

	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/internal/fontload"
	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arshape.fontcaps'.
func tracer() tracing.Trace {
	return tracing.Select("arshape.fontcaps")
}

// Coverage reports which presentation glyphs of the Arabic letter table and
// of a set of ligatures a font maps.
type Coverage struct {
	Font            string
	Groups          ligatures.Group
	MissingIsolated []rune          // letters without an isolated glyph in the font
	Ligatures       map[string]bool // ligature name → all glyphs present
}

// Probe checks the cmap of f against the isolated letter glyphs and the
// ligatures in groups.
func Probe(f *fontload.ScalableFont, groups ligatures.Group) (*Coverage, error) {
	if f == nil || f.SFNT == nil {
		return nil, fmt.Errorf("arshape/fontcaps: no font to probe")
	}
	cov := &Coverage{
		Font:      f.Fontname,
		Groups:    groups,
		Ligatures: make(map[string]bool),
	}
	for _, e := range letters.ForVariant(letters.Arabic).Entries() {
		g := e.Glyph(letters.Isolated)
		if g == 0 || g == e.Letter {
			continue
		}
		if !f.HasRune(g) {
			cov.MissingIsolated = append(cov.MissingIsolated, e.Letter)
		}
	}
	for _, l := range ligatures.InGroups(groups) {
		cov.Ligatures[l.Name] = len(f.Missing(l.Glyphs()...)) == 0
	}
	tracer().Infof("font %q: %d isolated letters missing, %d of %d ligatures covered",
		cov.Font, len(cov.MissingIsolated), len(cov.Covered()), len(cov.Ligatures))
	return cov, nil
}

// Covered returns the names of fully covered ligatures, sorted.
func (cov *Coverage) Covered() []string {
	return cov.names(true)
}

// Uncovered returns the names of ligatures with missing glyphs, sorted.
func (cov *Coverage) Uncovered() []string {
	return cov.names(false)
}

func (cov *Coverage) names(covered bool) []string {
	var names []string
	for name, ok := range cov.Ligatures {
		if ok == covered {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Overrides turns the coverage into configuration overrides. Ligatures
// outside the probed groups are left untouched.
func (cov *Coverage) Overrides() config.Overrides {
	o := config.Overrides{
		config.KeyUseUnshapedInsteadOfIsolated: len(cov.MissingIsolated) > 0,
	}
	for name, ok := range cov.Ligatures {
		o[name] = ok
	}
	return o
}

// ForFont returns configuration overrides suited to font f.
func ForFont(f *fontload.ScalableFont, groups ligatures.Group) (config.Overrides, error) {
	cov, err := Probe(f, groups)
	if err != nil {
		return nil, err
	}
	return cov.Overrides(), nil
}

// ForFontFile loads a font file and returns configuration overrides suited
// to it. Installed system fonts may be given by file name.
func ForFontFile(path string, groups ligatures.Group) (config.Overrides, error) {
	f, err := fontload.LoadFont(path)
	if err != nil {
		return nil, fmt.Errorf("arshape/fontcaps: %w", err)
	}
	return ForFont(f, groups)
}
