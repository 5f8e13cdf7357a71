package tree

import (
	"sort"
	"sync"

	"github.com/sadopc/dutree/internal/size"
)

// Cmp orders two sibling nodes; it must be a total order for sort
// stability to have an observable effect.
type Cmp func(a, b *Node) int

// ParSortBy recursively sorts n's children (and their children, and so on)
// according to cmp. The sort is stable, so siblings that compare equal
// keep their relative order; this makes ParSortBy idempotent.
func (n *Node) ParSortBy(cmp Cmp) {
	if len(n.children) > 1 {
		sort.SliceStable(n.children, func(i, j int) bool {
			return cmp(n.children[i], n.children[j]) < 0
		})
	}
	parallelRecurse(n.children, func(c *Node) { c.ParSortBy(cmp) })
}

// RetainPred decides whether a child at the given depth (0 for a
// direct child of the node ParRetain was called on) should survive.
type RetainPred func(child *Node, depth uint64) bool

// ParRetain drops, at every node of the subtree rooted at n, the children
// for which pred returns false, then recurses into the survivors. Sizes
// are never adjusted: a dropped child's mass remains implicitly folded
// into its former parent's size, which is why the children-sum invariant
// is only ever an inequality after a cull.
func (n *Node) ParRetain(pred RetainPred) {
	n.retainAt(pred, 0)
}

func (n *Node) retainAt(pred RetainPred, depth uint64) {
	kept := n.children[:0:0]
	for _, c := range n.children {
		if pred(c, depth) {
			kept = append(kept, c)
		}
	}
	n.children = kept
	parallelRecurse(n.children, func(c *Node) { c.retainAt(pred, depth+1) })
}

// ParCullInsignificantData removes, recursively, every child whose size is
// smaller than minRatio of n's own size. The threshold is computed once
// from n's size before recursing, matching the original sizes rather than
// being recomputed against shrinking subtrees as the cull descends.
func (n *Node) ParCullInsignificantData(minRatio float64) {
	thresholdOf := n.data.Uint64()
	n.ParRetain(func(child *Node, _ uint64) bool {
		return float64(child.data.Uint64()) >= minRatio*float64(thresholdOf)
	})
}

// MapFunc transforms a (name, size) pair, possibly failing (e.g. to
// reject names that are not valid UTF-8 before JSON serialization).
type MapFunc func(name string, sz size.Size) (string, size.Size, error)

// ParTryMap applies f to every node's (name, size) pair, replacing them in
// place, and stops at the first error. Independent subtrees are mapped
// concurrently; an error in one does not prevent siblings from finishing,
// but the first one encountered (by traversal order, not wall-clock order)
// is the one returned.
func (n *Node) ParTryMap(f MapFunc) error {
	name, data, err := f(n.name, n.data)
	if err != nil {
		return err
	}
	n.name, n.data = name, data

	if len(n.children) == 0 {
		return nil
	}

	errs := make([]error, len(n.children))
	var wg sync.WaitGroup
	wg.Add(len(n.children))
	for i, c := range n.children {
		i, c := i, c
		go func() {
			defer wg.Done()
			errs[i] = c.ParTryMap(f)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
