package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko"
)

// EnvFile is the environment variable naming a configuration file.
const EnvFile = "ARSHAPE_CONFIGURATION_FILE"

// Option tunes [Load].
type Option func(*loader)

type schukoLayer struct {
	name string
	conf schuko.Configuration
}

type loader struct {
	file      string
	useEnv    bool
	sources   []schukoLayer
	overrides Overrides
}

// WithFile layers an ini file over the defaults. The environment variable
// [EnvFile] is not consulted if a file is given.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = path
	}
}

// WithoutEnvironment ignores the environment variable [EnvFile].
func WithoutEnvironment() Option {
	return func(l *loader) {
		l.useEnv = false
	}
}

// WithSource layers any schuko configuration over files. Such a source is
// queried with lower-case keys.
func WithSource(name string, conf schuko.Configuration) Option {
	return func(l *loader) {
		if conf != nil {
			l.sources = append(l.sources, schukoLayer{name: name, conf: conf})
		}
	}
}

// WithOverrides layers in-memory values on top of everything else. Repeated
// use merges the maps, later values winning.
func WithOverrides(o Overrides) Option {
	return func(l *loader) {
		if l.overrides == nil {
			l.overrides = make(Overrides, len(o))
		}
		for k, v := range o {
			l.overrides[normalizeKey(k)] = v
		}
	}
}

// Load assembles a configuration from the bundled defaults, an optional
// configuration file and the layers given as options.
func Load(opts ...Option) (*Config, error) {
	l := &loader{useEnv: true}
	for _, opt := range opts {
		opt(l)
	}
	def, err := parseINI("default-config.ini", defaultINI)
	if err != nil {
		return nil, err
	}
	layers := []schukoLayer{{name: def.name, conf: def}}
	file, fromEnv := l.file, false
	if file == "" && l.useEnv {
		file = os.Getenv(EnvFile)
		fromEnv = file != ""
	}
	if file != "" {
		src, err := loadINIFile(file)
		if err != nil {
			var ce *ConfigError
			if fromEnv && errors.As(err, &ce) && ce.Kind == ErrFileNotFound {
				ce.Issue = fmt.Sprintf("named by environment variable %s", EnvFile)
			}
			return nil, err
		}
		tracer().Infof("loading reshaper configuration from %s", file)
		layers = append(layers, schukoLayer{name: file, conf: src})
	}
	layers = append(layers, l.sources...)
	if len(l.overrides) > 0 {
		layers = append(layers, schukoLayer{name: "overrides", conf: l.overrides})
	}
	return resolve(layers)
}

// resolve computes a configuration from layers, the last one winning.
func resolve(layers []schukoLayer) (*Config, error) {
	for _, layer := range layers {
		if err := checkKeys(layer); err != nil {
			return nil, err
		}
	}
	lookup := func(key string) (string, string, bool) {
		for i := len(layers) - 1; i >= 0; i-- {
			if layers[i].conf.IsSet(key) {
				return layers[i].conf.GetString(key), layers[i].name, true
			}
		}
		return "", "", false
	}
	conf := &Config{ligatures: make(map[string]struct{})}
	value, source, ok := lookup(KeyLanguage)
	if !ok {
		return nil, configError(ErrMissingKey, "", KeyLanguage, "")
	}
	lang, err := ParseLanguage(value)
	if err != nil {
		return nil, configError(ErrInvalidValue, source, KeyLanguage, err.Error())
	}
	conf.Language = lang
	flags := map[string]*bool{
		KeySupportLigatures:             &conf.SupportLigatures,
		KeyDeleteHarakat:                &conf.DeleteHarakat,
		KeyShiftHarakatPosition:         &conf.ShiftHarakatPosition,
		KeyDeleteTatweel:                &conf.DeleteTatweel,
		KeySupportZWJ:                   &conf.SupportZWJ,
		KeyUseUnshapedInsteadOfIsolated: &conf.UseUnshapedInsteadOfIsolated,
	}
	for _, key := range boolKeys {
		value, source, ok := lookup(key)
		if !ok {
			return nil, configError(ErrMissingKey, "", key, "")
		}
		b, err := parseBool(value)
		if err != nil {
			return nil, configError(ErrInvalidValue, source, key, fmt.Sprintf("%q is not a boolean", value))
		}
		*flags[key] = b
	}
	for _, name := range ligatures.Names() {
		key := ligatures.Key(name)
		value, source, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := parseBool(value)
		if err != nil {
			return nil, configError(ErrInvalidValue, source, name, fmt.Sprintf("%q is not a boolean", value))
		}
		if b {
			conf.ligatures[key] = struct{}{}
		}
	}
	tracer().Debugf("reshaper configuration: language=%s, %d ligatures enabled",
		conf.Language, len(conf.ligatures))
	return conf, nil
}

// checkKeys rejects keys which are neither options nor ligature names.
func checkKeys(layer schukoLayer) error {
	lister, ok := layer.conf.(keyLister)
	if !ok {
		return nil
	}
	for _, key := range lister.Keys() {
		if !isKnownKey(key) {
			return configError(ErrUnknownKey, layer.name, key, "")
		}
	}
	return nil
}

func isKnownKey(key string) bool {
	key = normalizeKey(key)
	if key == KeyLanguage {
		return true
	}
	for _, k := range boolKeys {
		if k == key {
			return true
		}
	}
	_, ok := ligatures.ByName(key)
	return ok
}
