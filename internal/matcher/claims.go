package matcher

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Claims is a set of disjoint half-open intervals [start, end).
type Claims struct {
	tree *redblacktree.Tree // start → end
}

// NewClaims creates an empty interval set.
func NewClaims() *Claims {
	return &Claims{tree: redblacktree.NewWithIntComparator()}
}

// Overlaps reports whether [start, end) intersects a claimed interval.
func (c *Claims) Overlaps(start, end int) bool {
	if end <= start {
		return false
	}
	// the only candidate is the interval with the greatest start below end
	node, found := c.tree.Floor(end - 1)
	if !found {
		return false
	}
	return node.Value.(int) > start
}

// Claim adds [start, end). It returns false, leaving c unchanged, if the
// interval is empty or overlaps a claimed one.
func (c *Claims) Claim(start, end int) bool {
	if end <= start || c.Overlaps(start, end) {
		return false
	}
	c.tree.Put(start, end)
	return true
}

// Contains reports whether position i is claimed.
func (c *Claims) Contains(i int) bool {
	return c.Overlaps(i, i+1)
}

// Len returns the number of claimed intervals.
func (c *Claims) Len() int {
	return c.tree.Size()
}

// Spans returns the claimed intervals ordered by start.
func (c *Claims) Spans() [][2]int {
	spans := make([][2]int, 0, c.tree.Size())
	it := c.tree.Iterator()
	for it.Next() {
		spans = append(spans, [2]int{it.Key().(int), it.Value().(int)})
	}
	return spans
}
