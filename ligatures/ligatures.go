package ligatures

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/arshape/letters"
)

// Ligature maps logical letter sequences to a presentation glyph.
type Ligature struct {
	Name      string
	Sequences []string // first sequence is the canonical one
	Forms     [4]rune  // indexed by letters.Isolated … letters.Final
}

// Glyph returns the ligature glyph for form f, or 0.
func (l Ligature) Glyph(f letters.Form) rune {
	if !f.IsPositional() {
		return 0
	}
	return l.Forms[f]
}

// Glyphs returns the non-zero glyphs of l.
func (l Ligature) Glyphs() []rune {
	gs := make([]rune, 0, 4)
	for _, g := range l.Forms {
		if g != 0 {
			gs = append(gs, g)
		}
	}
	return gs
}

// Group is a set of ligature classes.
type Group uint8

// Ligature classes. Groups may be combined.
const (
	Sentences Group = 1 << iota
	Words
	Letters

	None Group = 0
	All        = Sentences | Words | Letters
)

func (g Group) String() string {
	if g == None {
		return "none"
	}
	var parts []string
	if g&Sentences != 0 {
		parts = append(parts, "sentences")
	}
	if g&Words != 0 {
		parts = append(parts, "words")
	}
	if g&Letters != 0 {
		parts = append(parts, "letters")
	}
	return strings.Join(parts, "|")
}

// ParseGroup reads a group name as produced by [Group.String]. Parts may be
// separated by '|', ',' or '+'; "all" and "none" are understood as well.
func ParseGroup(s string) (Group, error) {
	var g Group
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ',' || r == '+' || r == ' '
	})
	for _, p := range parts {
		switch p {
		case "sentences":
			g |= Sentences
		case "words":
			g |= Words
		case "letters":
			g |= Letters
		case "all":
			g |= All
		case "none":
		default:
			return None, fmt.Errorf("ligatures: unknown group %q", p)
		}
	}
	return g, nil
}

// Key normalizes a ligature name for lookups and configuration keys.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type registry struct {
	all     []Ligature
	groups  []Group
	byKey   map[string]int
	byGlyph map[rune]int
}

var (
	registryOnce sync.Once
	reg          registry
)

func table() *registry {
	registryOnce.Do(func() {
		add := func(g Group, ligs []Ligature) {
			for _, l := range ligs {
				reg.all = append(reg.all, l)
				reg.groups = append(reg.groups, g)
			}
		}
		add(Sentences, sentenceLigatures)
		add(Words, wordLigatures)
		add(Letters, letterLigatures)
		reg.byKey = make(map[string]int, len(reg.all))
		reg.byGlyph = make(map[rune]int, 2*len(reg.all))
		for i, l := range reg.all {
			reg.byKey[Key(l.Name)] = i
			for _, g := range l.Forms {
				if _, dup := reg.byGlyph[g]; g != 0 && !dup {
					reg.byGlyph[g] = i
				}
			}
		}
	})
	return &reg
}

// List returns every ligature in priority order.
func List() []Ligature {
	r := table()
	out := make([]Ligature, len(r.all))
	copy(out, r.all)
	return out
}

// Len returns the number of known ligatures.
func Len() int {
	return len(table().all)
}

// InGroups returns the ligatures of the classes in g, in priority order.
func InGroups(g Group) []Ligature {
	r := table()
	var out []Ligature
	for i, l := range r.all {
		if r.groups[i]&g != 0 {
			out = append(out, l)
		}
	}
	return out
}

// Names returns the names of all ligatures in priority order.
func Names() []string {
	r := table()
	names := make([]string, len(r.all))
	for i, l := range r.all {
		names[i] = l.Name
	}
	return names
}

// ByName looks up a ligature by name, ignoring case.
func ByName(name string) (Ligature, bool) {
	r := table()
	i, ok := r.byKey[Key(name)]
	if !ok {
		return Ligature{}, false
	}
	return r.all[i], true
}

// Priority returns the declaration index of a ligature; lower is stronger.
func Priority(name string) (int, bool) {
	i, ok := table().byKey[Key(name)]
	return i, ok
}

// GroupOf returns the class of a ligature.
func GroupOf(name string) (Group, bool) {
	r := table()
	i, ok := r.byKey[Key(name)]
	if !ok {
		return None, false
	}
	return r.groups[i], true
}

// ByGlyph finds the ligature which owns presentation glyph g. If several
// ligatures share a glyph, the first declared one wins.
func ByGlyph(g rune) (Ligature, bool) {
	r := table()
	i, ok := r.byGlyph[g]
	if !ok {
		return Ligature{}, false
	}
	return r.all[i], true
}
