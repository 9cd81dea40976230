package arshape

import (
	"fmt"
	"sync"

	"github.com/npillmayer/arshape/config"
	"github.com/npillmayer/arshape/internal/matcher"
	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
)

// Reshaper reshapes and unshapes text according to a fixed configuration.
type Reshaper struct {
	conf     *config.Config
	table    *letters.Table
	isolated letters.Form         // Isolated, or Unshaped if configured
	ligs     []ligatures.Ligature // enabled ligatures; pattern IDs index into it
	matcher  *matcher.Matcher     // nil if ligatures are switched off

	reverseOnce sync.Once
	reverse     map[rune]rune // presentation glyph → logical letter
}

// New creates a reshaper for conf. conf is validated and copied, later
// changes to it do not affect the reshaper.
func New(conf *config.Config) (*Reshaper, error) {
	if conf == nil {
		return nil, fmt.Errorf("arshape: configuration missing")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	r := &Reshaper{
		conf:     conf.Clone(),
		table:    letters.ForVariant(conf.Language),
		isolated: letters.Isolated,
	}
	if r.conf.UseUnshapedInsteadOfIsolated {
		r.isolated = letters.Unshaped
	}
	if r.conf.SupportLigatures {
		r.compileLigatures()
	}
	tracer().Debugf("new reshaper: table %s, %d ligature patterns", r.table.Variant(), r.matcher.Len())
	return r, nil
}

// Default returns a fresh reshaper with the bundled default configuration.
// It does not consult the environment; use [config.Load] for that.
func Default() *Reshaper {
	r, err := New(config.Default())
	if err != nil {
		panic(fmt.Sprintf("arshape: default configuration does not validate: %v", err))
	}
	return r
}

// Config returns a copy of the configuration r has been created with.
func (r *Reshaper) Config() *config.Config {
	return r.conf.Clone()
}

// Table returns the letter table in use.
func (r *Reshaper) Table() *letters.Table {
	return r.table
}

func (r *Reshaper) compileLigatures() {
	var patterns []matcher.Pattern
	for _, l := range ligatures.List() {
		if !r.conf.Enabled(l.Name) {
			continue
		}
		id := len(r.ligs)
		r.ligs = append(r.ligs, l)
		for _, seq := range l.Sequences {
			patterns = append(patterns, matcher.Pattern{Seq: []rune(seq), ID: id})
		}
	}
	if len(patterns) > 0 {
		r.matcher = matcher.New(patterns)
	}
}

// Reshape returns text with every letter replaced by its contextual
// presentation form, and enabled ligatures applied.
func (r *Reshaper) Reshape(text string) string {
	if text == "" {
		return ""
	}
	buf := r.shape(text)
	if r.matcher != nil {
		r.ligate(buf)
	}
	return r.assemble(buf)
}
