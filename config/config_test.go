package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reshaper.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write test configuration: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	conf := Default()
	if conf.Language != letters.Arabic {
		t.Errorf("expected default language Arabic, have %s", conf.Language)
	}
	if !conf.SupportLigatures || !conf.DeleteHarakat || !conf.SupportZWJ {
		t.Errorf("expected ligatures, harakat deletion and ZWJ support to be on: %+v", conf)
	}
	if conf.DeleteTatweel || conf.ShiftHarakatPosition || conf.UseUnshapedInsteadOfIsolated {
		t.Errorf("unexpected default flags: %+v", conf)
	}
	if !conf.Enabled("ARABIC LIGATURE ALLAH") || !conf.Enabled("arabic ligature lam with alef") {
		t.Errorf("expected ALLAH and LAM WITH ALEF ligatures to be enabled")
	}
	if conf.Enabled("ARABIC LIGATURE AKBAR") {
		t.Errorf("AKBAR ligature should be disabled by default")
	}
	if n := len(conf.EnabledLigatures()); n != 5 {
		t.Errorf("expected 5 ligatures enabled by default, have %d: %v", n, conf.EnabledLigatures())
	}
}

func TestLoadOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	conf, err := Load(WithoutEnvironment(), WithOverrides(Overrides{
		"Delete_Harakat":        false,
		" language ":            "Kurdish",
		"ARABIC LIGATURE AKBAR": "yes",
		"ARABIC LIGATURE ALLAH": "off",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if conf.DeleteHarakat {
		t.Errorf("override for delete_harakat ignored")
	}
	if conf.Language != letters.Kurdish {
		t.Errorf("expected Kurdish, have %s", conf.Language)
	}
	if !conf.Enabled("ARABIC LIGATURE AKBAR") || conf.Enabled("ARABIC LIGATURE ALLAH") {
		t.Errorf("ligature overrides ignored: %v", conf.EnabledLigatures())
	}
}

func TestLoadFilePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	path := writeFile(t, "[ArabicReshaper]\ndelete_tatweel = on\nSUPPORT_ZWJ = no\n")
	conf, err := Load(WithoutEnvironment(), WithFile(path), WithOverrides(Overrides{"support_zwj": true}))
	if err != nil {
		t.Fatal(err)
	}
	if !conf.DeleteTatweel {
		t.Errorf("file value for delete_tatweel ignored")
	}
	if !conf.SupportZWJ {
		t.Errorf("override should win over file value for support_zwj")
	}
	if !conf.DeleteHarakat {
		t.Errorf("keys missing from file should fall back to defaults")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	envPath := writeFile(t, "[ArabicReshaper]\nlanguage = ArabicV2\n")
	t.Setenv(EnvFile, envPath)
	conf, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if conf.Language != letters.ArabicV2 {
		t.Errorf("environment file not loaded, language is %s", conf.Language)
	}
	explicit := writeFile(t, "[ArabicReshaper]\ndelete_tatweel = yes\n")
	conf, err = Load(WithFile(explicit))
	if err != nil {
		t.Fatal(err)
	}
	if conf.Language != letters.Arabic || !conf.DeleteTatweel {
		t.Errorf("explicit file should replace the environment file: %+v", conf)
	}
	conf, err = Load(WithoutEnvironment())
	if err != nil || conf.Language != letters.Arabic {
		t.Errorf("WithoutEnvironment should ignore %s", EnvFile)
	}
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.ini"))
	if _, err = Load(); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, have %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	noSection := writeFile(t, "[Reshaper]\ndelete_tatweel = yes\n")
	cases := []struct {
		name string
		opts []Option
		kind error
		key  string
	}{
		{"unknown key", []Option{WithOverrides(Overrides{"delete_kashida": true})}, ErrUnknownKey, "delete_kashida"},
		{"not a boolean", []Option{WithOverrides(Overrides{"delete_tatweel": "maybe"})}, ErrInvalidValue, KeyDeleteTatweel},
		{"bad ligature value", []Option{WithOverrides(Overrides{"ARABIC LIGATURE ALLAH": 7})}, ErrInvalidValue, "ARABIC LIGATURE ALLAH"},
		{"bad language", []Option{WithOverrides(Overrides{"language": "Klingon"})}, ErrInvalidValue, KeyLanguage},
		{"missing section", []Option{WithFile(noSection)}, ErrMissingSection, ""},
		{"missing file", []Option{WithFile(filepath.Join(t.TempDir(), "nope.ini"))}, ErrFileNotFound, ""},
	}
	for _, c := range cases {
		conf, err := Load(append([]Option{WithoutEnvironment()}, c.opts...)...)
		if conf != nil {
			t.Errorf("%s: expected no configuration on error", c.name)
		}
		if !errors.Is(err, c.kind) {
			t.Errorf("%s: expected %v, have %v", c.name, c.kind, err)
			continue
		}
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected a *ConfigError, have %T", c.name, err)
			continue
		}
		if c.key != "" && ce.Key != c.key {
			t.Errorf("%s: expected key %q in error, have %q", c.name, c.key, ce.Key)
		}
	}
}

func TestWithSchukoSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	src := testconfig.Conf{
		"support_zwj":                      "no",
		"use_unshaped_instead_of_isolated": "yes",
	}
	conf, err := Load(WithoutEnvironment(), WithSource("test", src))
	if err != nil {
		t.Fatal(err)
	}
	if conf.SupportZWJ || !conf.UseUnshapedInsteadOfIsolated {
		t.Errorf("schuko source ignored: %+v", conf)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in      string
		variant letters.Variant
		ok      bool
	}{
		{"Arabic", letters.Arabic, true},
		{"arabicv2", letters.ArabicV2, true},
		{" KURDISH ", letters.Kurdish, true},
		{"ar", letters.Arabic, true},
		{"fa-IR", letters.Arabic, true},
		{"ur", letters.Arabic, true},
		{"ckb", letters.Kurdish, true},
		{"en", letters.Arabic, false},
		{"not a tag", letters.Arabic, false},
	}
	for _, c := range cases {
		v, err := ParseLanguage(c.in)
		if (err == nil) != c.ok {
			t.Errorf("ParseLanguage(%q): unexpected error state %v", c.in, err)
			continue
		}
		if c.ok && v != c.variant {
			t.Errorf("ParseLanguage(%q) = %s, expected %s", c.in, v, c.variant)
		}
	}
}

func TestLigatureGroups(t *testing.T) {
	conf := Default()
	conf.SetLigatureGroups(ligatures.Sentences | ligatures.Words)
	if len(conf.EnabledLigatures()) != len(ligatures.InGroups(ligatures.Sentences|ligatures.Words)) {
		t.Errorf("expected sentence and word ligatures only, have %v", conf.EnabledLigatures())
	}
	if conf.Enabled("ARABIC LIGATURE LAM WITH ALEF") {
		t.Errorf("letter ligatures should be disabled")
	}
	conf.SetLigatureGroups(ligatures.None)
	if len(conf.EnabledLigatures()) != 0 {
		t.Errorf("expected no ligatures")
	}
	if err := conf.EnableLigature("ARABIC LIGATURE AKBAR", true); err != nil || !conf.Enabled("ARABIC LIGATURE AKBAR") {
		t.Errorf("cannot enable single ligature: %v", err)
	}
	if err := conf.EnableLigature("ARABIC LIGATURE NOTHING", true); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey for unknown ligature, have %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	conf := Default()
	clone := conf.Clone()
	clone.DeleteHarakat = false
	_ = clone.EnableLigature("ARABIC LIGATURE ALLAH", false)
	if !conf.DeleteHarakat || !conf.Enabled("ARABIC LIGATURE ALLAH") {
		t.Errorf("changing a clone modified the original")
	}
}

func TestWriteINIReload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.config")
	defer teardown()
	//
	conf := Default()
	conf.Language = letters.Kurdish
	conf.DeleteHarakat = false
	conf.SetLigatureGroups(ligatures.All)
	path := writeFile(t, conf.INI())
	reloaded, err := Load(WithoutEnvironment(), WithFile(path))
	if err != nil {
		t.Fatalf("cannot reload written configuration: %v", err)
	}
	if reloaded.Language != letters.Kurdish || reloaded.DeleteHarakat {
		t.Errorf("options lost in ini rendering: %+v", reloaded)
	}
	if len(reloaded.EnabledLigatures()) != ligatures.Len() {
		t.Errorf("expected all %d ligatures, have %d", ligatures.Len(), len(reloaded.EnabledLigatures()))
	}
}
