package tree

import (
	"fmt"

	"github.com/sadopc/dutree/internal/size"
)

// CullAndElide removes, recursively, every descendant whose size is smaller
// than minRatio of the size of the node it is called on — the same rule
// ParCullInsignificantData applies — but, when elide is true, replaces the dropped children of each
// directory with one synthetic file node named "(N other entries)" carrying
// their summed size, instead of letting that mass disappear silently from
// the directory's children-sum. Ported from the original's
// par_partial_reduce, which folds insignificant siblings into a single
// representative entry rather than discarding them outright.
func (n *Node) CullAndElide(minRatio float64, elide bool) {
	n.cullElideAt(minRatio, n.data.Uint64(), elide)
}

func (n *Node) cullElideAt(minRatio float64, parentSize uint64, elide bool) {
	kept := n.children[:0:0]
	var droppedCount int
	var droppedTotal uint64
	var droppedLike size.Size

	for _, c := range n.children {
		if float64(c.data.Uint64()) >= minRatio*float64(parentSize) {
			kept = append(kept, c)
			continue
		}
		droppedCount++
		droppedTotal += c.data.Uint64()
		droppedLike = c.data
	}
	n.children = kept

	if elide && droppedCount > 0 {
		n.children = append(n.children, File(elisionName(droppedCount), sameTypeAs(droppedLike, droppedTotal)))
	}

	parallelRecurse(n.children, func(c *Node) {
		if c.IsDir() {
			c.cullElideAt(minRatio, parentSize, elide)
		}
	})
}

func elisionName(count int) string {
	return fmt.Sprintf("(%d other entries)", count)
}

// sameTypeAs builds a Size of like's concrete type carrying value, used to
// give the synthetic elision node the same measurement unit as its siblings.
func sameTypeAs(like size.Size, value uint64) size.Size {
	switch like.(type) {
	case size.Blocks:
		return size.Blocks(value)
	default:
		return size.Bytes(value)
	}
}
