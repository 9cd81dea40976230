/*
Package matcher finds fixed rune sequences in a text, longest patterns first.

Patterns are kept in a trie keyed by their runes. A scan walks the pattern
length classes from longest to shortest and every class from left to right.
Accepted matches claim their span, and later candidates overlapping a claimed
span are skipped. Claimed spans live in a red-black tree ordered by start
position.
*/
package matcher

import (
	"sort"

	"github.com/derekparker/trie"
)

// Pattern is a rune sequence to search for. ID is handed back to the client
// on a match and otherwise opaque.
type Pattern struct {
	Seq []rune
	ID  int
}

// Matcher is a compiled set of patterns. It is immutable after New and may be
// used by concurrent scans.
type Matcher struct {
	dict    *trie.Trie
	lengths []int // distinct pattern lengths, descending
	count   int
}

// New compiles patterns into a matcher. Patterns with an identical sequence
// are kept in the order given. Empty patterns are ignored.
func New(patterns []Pattern) *Matcher {
	m := &Matcher{dict: trie.New()}
	ids := make(map[string][]int)
	var keys []string
	seen := make(map[int]bool)
	for _, p := range patterns {
		if len(p.Seq) == 0 {
			continue
		}
		key := string(p.Seq)
		if _, ok := ids[key]; !ok {
			keys = append(keys, key)
		}
		ids[key] = append(ids[key], p.ID)
		if !seen[len(p.Seq)] {
			seen[len(p.Seq)] = true
			m.lengths = append(m.lengths, len(p.Seq))
		}
		m.count++
	}
	for _, key := range keys {
		m.dict.Add(key, ids[key])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(m.lengths)))
	return m
}

// Len returns the number of patterns in m.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Lengths returns the distinct pattern lengths, longest first.
func (m *Matcher) Lengths() []int {
	if m == nil {
		return nil
	}
	return append([]int(nil), m.lengths...)
}

// Lookup returns the IDs of all patterns equal to seq.
func (m *Matcher) Lookup(seq []rune) []int {
	if m == nil || len(seq) == 0 {
		return nil
	}
	node, ok := m.dict.Find(string(seq))
	if !ok {
		return nil
	}
	ids, _ := node.Meta().([]int)
	return ids
}

// Accept is called for a candidate match text[start:end] with the IDs of the
// patterns equal to it. Returning true claims the span.
type Accept func(start, end int, ids []int) bool

// Scan searches text for all patterns. Positions for which blocked returns
// true never take part in a match; blocked may be nil.
// Scan returns the claimed spans.
func (m *Matcher) Scan(text []rune, blocked func(int) bool, accept Accept) *Claims {
	claims := NewClaims()
	if m == nil || m.count == 0 {
		return claims
	}
	for _, l := range m.lengths {
		for start := 0; start+l <= len(text); start++ {
			end := start + l
			if claims.Overlaps(start, end) || isBlocked(blocked, start, end) {
				continue
			}
			ids := m.Lookup(text[start:end])
			if len(ids) == 0 {
				continue
			}
			if accept(start, end, ids) {
				claims.Claim(start, end)
				start = end - 1
			}
		}
	}
	return claims
}

func isBlocked(blocked func(int) bool, start, end int) bool {
	if blocked == nil {
		return false
	}
	for i := start; i < end; i++ {
		if blocked(i) {
			return true
		}
	}
	return false
}
