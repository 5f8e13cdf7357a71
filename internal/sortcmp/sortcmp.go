// Package sortcmp provides the tree.Cmp comparators shared by the batch
// CLI and the interactive browser: the default size-descending order and
// a pure natural-name order, both breaking ties the same way so output
// stays deterministic across a directory's children.
package sortcmp

import (
	"github.com/maruel/natural"
	"github.com/sadopc/dutree/internal/tree"
)

// BySizeDesc orders children largest-first; equal sizes fall back to
// natural (digit-aware) name order instead of the stable sort's incoming
// order, so two runs over the same tree always print the same thing.
func BySizeDesc(a, b *tree.Node) int {
	as, bs := a.Size().Uint64(), b.Size().Uint64()
	switch {
	case as > bs:
		return -1
	case as < bs:
		return 1
	default:
		return byName(a, b)
	}
}

// ByName orders children by natural (digit-aware) name order alone. This
// is the comparator behind the interactive browser's name-sort mode.
func ByName(a, b *tree.Node) int {
	return byName(a, b)
}

func byName(a, b *tree.Node) int {
	an, bn := a.Name(), b.Name()
	switch {
	case an == bn:
		return 0
	case natural.Less(an, bn):
		return -1
	default:
		return 1
	}
}
