/*
Package golden runs reshaper regression fixtures.

A fixture is a JSON file holding a configuration context, the input as a
list of code points and the expected output. Code points are used instead of
strings to keep combining marks and presentation forms readable in diffs.
*/
package golden

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/arshape"
	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/ligatures"
)

// Operations a fixture may exercise.
const (
	OpReshape = "reshape"
	OpUnshape = "unshape"
)

// Context configures the reshaper for a fixture.
type Context struct {
	Operation string            `json:"operation"`
	Options   map[string]string `json:"options,omitempty"`   // configuration keys and values
	Ligatures string            `json:"ligatures,omitempty"` // ligature groups, replacing the configured set
}

// Fixture is a single regression case.
type Fixture struct {
	Name          string   `json:"-"`
	SchemaVersion int      `json:"schema_version,omitempty"`
	Context       Context  `json:"context"`
	Input         []uint32 `json:"input"`  // Unicode code points
	Output        []uint32 `json:"output"` // expected code points
}

func (f Fixture) validate() error {
	switch f.Context.Operation {
	case OpReshape, OpUnshape:
	default:
		return fmt.Errorf("fixture: invalid operation %q", f.Context.Operation)
	}
	if len(f.Input) == 0 {
		return fmt.Errorf("fixture: input must not be empty")
	}
	if _, err := scalars(f.Input); err != nil {
		return err
	}
	if _, err := scalars(f.Output); err != nil {
		return err
	}
	return nil
}

func scalars(cps []uint32) ([]rune, error) {
	runes := make([]rune, len(cps))
	for i, cp := range cps {
		if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
			return nil, fmt.Errorf("fixture: code point [%d]=%d is not a valid Unicode scalar", i, cp)
		}
		runes[i] = rune(cp)
	}
	return runes, nil
}

// Reshaper builds the reshaper a fixture asks for. The environment is not
// consulted.
func (f Fixture) Reshaper() (*arshape.Reshaper, error) {
	o := make(config.Overrides, len(f.Context.Options))
	for k, v := range f.Context.Options {
		o[k] = v
	}
	conf, err := config.Load(config.WithoutEnvironment(), config.WithOverrides(o))
	if err != nil {
		return nil, err
	}
	if f.Context.Ligatures != "" {
		g, err := ligatures.ParseGroup(f.Context.Ligatures)
		if err != nil {
			return nil, err
		}
		conf.SetLigatureGroups(g)
		conf.SupportLigatures = g != ligatures.None
	}
	return arshape.New(conf)
}

// Run applies the fixture's operation to its input.
func (f Fixture) Run() ([]uint32, error) {
	r, err := f.Reshaper()
	if err != nil {
		return nil, err
	}
	in, err := scalars(f.Input)
	if err != nil {
		return nil, err
	}
	var out string
	if f.Context.Operation == OpUnshape {
		out = r.Unshape(string(in))
	} else {
		out = r.Reshape(string(in))
	}
	got := make([]uint32, 0, len(out))
	for _, c := range out {
		got = append(got, uint32(c))
	}
	return got, nil
}

// Compare reports the first difference between got and want.
func Compare(got, want []uint32) error {
	n := min(len(got), len(want))
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			return fmt.Errorf("code point [%d] mismatch: got=%U want=%U", i, got[i], want[i])
		}
	}
	if len(got) != len(want) {
		return fmt.Errorf("unequal number of code points: got %d, want %d", len(got), len(want))
	}
	return nil
}

// Load reads a fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, err
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, err
	}
	if err := f.validate(); err != nil {
		return Fixture{}, err
	}
	f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return f, nil
}

// LoadDir reads all *.json fixtures of a directory, sorted by file name.
func LoadDir(dir string) ([]Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(strings.ToLower(name), ".json") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	out := make([]Fixture, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, fmt.Errorf("load fixture %s: %w", p, err)
		}
		out = append(out, f)
	}
	return out, nil
}
