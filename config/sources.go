package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"gopkg.in/ini.v1"
)

// Section is the name of the ini section holding reshaper options.
const Section = "ArabicReshaper"

// normalizeKey lower-cases a key and trims surrounding white space.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// keyLister is implemented by configuration layers able to enumerate their
// keys. Only those layers are checked for unknown keys.
type keyLister interface {
	Keys() []string
}

// --- ini documents ---------------------------------------------------------

// iniSource adapts the reshaper section of an ini document to
// schuko.Configuration.
type iniSource struct {
	name    string
	section *ini.Section
}

var _ schuko.Configuration = (*iniSource)(nil)

// parseINI reads an ini document from a file path or a byte slice.
func parseINI(name string, source interface{}) (*iniSource, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, source)
	if err != nil {
		if p, ok := source.(string); ok && errors.Is(err, fs.ErrNotExist) {
			return nil, configError(ErrFileNotFound, p, "", err.Error())
		}
		return nil, configError(ErrInvalidValue, name, "", fmt.Sprintf("cannot parse ini document: %v", err))
	}
	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, configError(ErrMissingSection, name, "", fmt.Sprintf("expected section [%s]", Section))
	}
	return &iniSource{name: name, section: sec}, nil
}

// loadINIFile loads an ini file from disk.
func loadINIFile(path string) (*iniSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, configError(ErrFileNotFound, path, "", err.Error())
	}
	return parseINI(path, path)
}

func (s *iniSource) InitDefaults() {}

func (s *iniSource) IsSet(key string) bool {
	return s.section.HasKey(normalizeKey(key))
}

func (s *iniSource) GetString(key string) string {
	k, err := s.section.GetKey(normalizeKey(key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(k.String())
}

func (s *iniSource) GetInt(key string) int {
	n, _ := strconv.Atoi(s.GetString(key))
	return n
}

func (s *iniSource) GetBool(key string) bool {
	b, _ := parseBool(s.GetString(key))
	return b
}

func (s *iniSource) IsInteractive() bool {
	return false
}

func (s *iniSource) Keys() []string {
	return s.section.KeyStrings()
}

// --- in-memory overrides ---------------------------------------------------

// Overrides is an in-memory configuration layer. Values may be booleans or
// strings; keys are matched case-insensitively.
type Overrides map[string]interface{}

var _ schuko.Configuration = Overrides{}

func (o Overrides) lookup(key string) (interface{}, bool) {
	key = normalizeKey(key)
	if v, ok := o[key]; ok {
		return v, true
	}
	for k, v := range o {
		if normalizeKey(k) == key {
			return v, true
		}
	}
	return nil, false
}

// InitDefaults is part of schuko.Configuration and does nothing.
func (o Overrides) InitDefaults() {}

// IsSet reports whether key is overridden.
func (o Overrides) IsSet(key string) bool {
	_, ok := o.lookup(key)
	return ok
}

// GetString returns the override for key as a string.
func (o Overrides) GetString(key string) string {
	v, ok := o.lookup(key)
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// GetInt returns the override for key as an integer, or 0.
func (o Overrides) GetInt(key string) int {
	v, _ := o.lookup(key)
	switch x := v.(type) {
	case int:
		return x
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	}
	return 0
}

// GetBool returns the override for key as a boolean, or false.
func (o Overrides) GetBool(key string) bool {
	b, _ := parseBool(o.GetString(key))
	return b
}

// IsInteractive is part of schuko.Configuration and always false.
func (o Overrides) IsInteractive() bool {
	return false
}

// Keys returns the normalized keys of o, sorted.
func (o Overrides) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, normalizeKey(k))
	}
	sort.Strings(keys)
	return keys
}

// --- values ----------------------------------------------------------------

var errNotABool = errors.New("not a boolean")

// parseBool accepts the boolean spellings of ini files.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, errNotABool
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
