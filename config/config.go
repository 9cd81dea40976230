package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

//go:embed default-config.ini
var defaultINI []byte

// Option keys as they appear in configuration files.
const (
	KeyLanguage                     = "language"
	KeySupportLigatures             = "support_ligatures"
	KeyDeleteHarakat                = "delete_harakat"
	KeyShiftHarakatPosition         = "shift_harakat_position"
	KeyDeleteTatweel                = "delete_tatweel"
	KeySupportZWJ                   = "support_zwj"
	KeyUseUnshapedInsteadOfIsolated = "use_unshaped_instead_of_isolated"
)

var boolKeys = []string{
	KeySupportLigatures,
	KeyDeleteHarakat,
	KeyShiftHarakatPosition,
	KeyDeleteTatweel,
	KeySupportZWJ,
	KeyUseUnshapedInsteadOfIsolated,
}

// Config holds the options of a reshaper.
type Config struct {
	Language                     letters.Variant // letter table to use
	SupportLigatures             bool            // run the ligature pass
	DeleteHarakat                bool            // drop diacritics
	ShiftHarakatPosition         bool            // re-insert diacritics one letter earlier
	DeleteTatweel                bool            // drop TATWEEL
	SupportZWJ                   bool            // ZWJ forces joins
	UseUnshapedInsteadOfIsolated bool            // isolated letters stay logical
	ligatures                    map[string]struct{}
}

// Default returns the bundled default configuration, without consulting
// the environment.
func Default() *Config {
	src, err := parseINI("default-config.ini", defaultINI)
	if err != nil {
		panic(fmt.Sprintf("arshape/config: bundled defaults are broken: %v", err))
	}
	conf, err := resolve([]schukoLayer{{name: src.name, conf: src}})
	if err != nil {
		panic(fmt.Sprintf("arshape/config: bundled defaults are broken: %v", err))
	}
	return conf
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	cc := *c
	cc.ligatures = make(map[string]struct{}, len(c.ligatures))
	for k := range c.ligatures {
		cc.ligatures[k] = struct{}{}
	}
	return &cc
}

// Enabled reports whether the ligature with the given name is switched on.
// It does not consider SupportLigatures.
func (c *Config) Enabled(name string) bool {
	_, ok := c.ligatures[ligatures.Key(name)]
	return ok
}

// EnableLigature switches a single ligature on or off.
func (c *Config) EnableLigature(name string, on bool) error {
	lig, ok := ligatures.ByName(name)
	if !ok {
		return configError(ErrUnknownKey, "", name, "no ligature with this name")
	}
	if c.ligatures == nil {
		c.ligatures = make(map[string]struct{})
	}
	if on {
		c.ligatures[ligatures.Key(lig.Name)] = struct{}{}
	} else {
		delete(c.ligatures, ligatures.Key(lig.Name))
	}
	return nil
}

// SetLigatureGroups enables exactly the ligatures of the classes in g.
func (c *Config) SetLigatureGroups(g ligatures.Group) {
	c.ligatures = make(map[string]struct{})
	for _, l := range ligatures.InGroups(g) {
		c.ligatures[ligatures.Key(l.Name)] = struct{}{}
	}
}

// EnabledLigatures returns the names of enabled ligatures in priority order.
func (c *Config) EnabledLigatures() []string {
	var names []string
	for _, name := range ligatures.Names() {
		if c.Enabled(name) {
			names = append(names, name)
		}
	}
	return names
}

// Validate checks the fields of a configuration assembled in code.
func (c *Config) Validate() error {
	if c.Language > letters.Kurdish {
		return configError(ErrInvalidValue, "", KeyLanguage, c.Language.String())
	}
	for k := range c.ligatures {
		if _, ok := ligatures.ByName(k); !ok {
			return configError(ErrUnknownKey, "", k, "no ligature with this name")
		}
	}
	return nil
}

// WriteINI writes c as a complete ini document, suitable for [WithFile].
func (c *Config) WriteINI(w io.Writer) error {
	f := ini.Empty()
	sec, err := f.NewSection(Section)
	if err != nil {
		return err
	}
	values := []struct{ key, value string }{
		{KeyLanguage, c.Language.String()},
		{KeySupportLigatures, formatBool(c.SupportLigatures)},
		{KeyDeleteHarakat, formatBool(c.DeleteHarakat)},
		{KeyShiftHarakatPosition, formatBool(c.ShiftHarakatPosition)},
		{KeyDeleteTatweel, formatBool(c.DeleteTatweel)},
		{KeySupportZWJ, formatBool(c.SupportZWJ)},
		{KeyUseUnshapedInsteadOfIsolated, formatBool(c.UseUnshapedInsteadOfIsolated)},
	}
	for _, v := range values {
		if _, err := sec.NewKey(v.key, v.value); err != nil {
			return err
		}
	}
	for _, name := range ligatures.Names() {
		if _, err := sec.NewKey(name, formatBool(c.Enabled(name))); err != nil {
			return err
		}
	}
	_, err = f.WriteTo(w)
	return err
}

// INI renders c as an ini document.
func (c *Config) INI() string {
	var buf bytes.Buffer
	if err := c.WriteINI(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// ParseLanguage maps a language option to a letter table. Besides table
// names it accepts BCP 47 tags of languages written in Arabic script; Kurdish
// tags select the Kurdish table.
func ParseLanguage(s string) (letters.Variant, error) {
	if v, err := letters.ParseVariant(s); err == nil {
		return v, nil
	}
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return letters.Arabic, fmt.Errorf("%w: %q", letters.ErrUnknownVariant, s)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ckb", "ku", "kmr", "sdh":
		return letters.Kurdish, nil
	}
	if script, _ := tag.Script(); script.String() == "Arab" {
		return letters.Arabic, nil
	}
	return letters.Arabic, fmt.Errorf("%w: %q is not written in Arabic script", letters.ErrUnknownVariant, s)
}
