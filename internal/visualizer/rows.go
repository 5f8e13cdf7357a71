package visualizer

import "github.com/sadopc/dutree/internal/tree"

// row is one line of the eventual report, still missing its rendered
// column text (filled in by width negotiation and the bar renderer).
type row struct {
	node *tree.Node
	// depth is the number of ancestors; the root is 0.
	depth int
	// isLastSibling is true for a row that is the last child of its
	// parent (or the root, which has no siblings).
	isLastSibling bool
	// hasChildren is true when this row will actually be followed by
	// child rows — false both for leaves and for directories sitting at
	// MaxDepth, whose children are never enumerated.
	hasChildren bool
	// parent, grandparent, greatGrandparent are the up-to-three rendered
	// ancestor rows, nearest first; nil once the chain runs out before
	// the root. Used only to cascade proportion-bar levels.
	ancestors [3]*row

	percent int

	// excluded is set by width negotiation when this row's tree cell
	// cannot fit even after truncation.
	excluded bool
	// renderedName is the row's name, truncated with "..." if width
	// negotiation had to shorten it; treeCell is assembled from it once
	// the connector (which can still change during skeleton repair) is
	// final.
	renderedName string
	treeCell     string
	sizeStr      string
	barCell      string
}

// buildRows walks root in pre-order, bounded by maxDepth, and returns one
// row per visited node plus the root's total size (needed for percentages
// and proportion-bar ratios downstream).
func buildRows(root *tree.Node, maxDepth uint64) ([]*row, uint64) {
	rootSize := root.Size().Uint64()
	var rows []*row
	var walk func(n *tree.Node, depth int, isLast bool, ancestors [3]*row)
	walk = func(n *tree.Node, depth int, isLast bool, ancestors [3]*row) {
		children := n.Children()
		hasChildren := len(children) > 0 && uint64(depth) < maxDepth

		r := &row{
			node:          n,
			depth:         depth,
			isLastSibling: isLast,
			hasChildren:   hasChildren,
			ancestors:     ancestors,
			percent:       roundedScale(n.Size().Uint64(), rootSize, 100),
		}
		rows = append(rows, r)

		if !hasChildren {
			return
		}
		childAncestors := [3]*row{r, ancestors[0], ancestors[1]}
		for i, c := range children {
			walk(c, depth+1, i == len(children)-1, childAncestors)
		}
	}
	walk(root, 0, true, [3]*row{})

	// The first row (the root itself) is always 100%, regardless of what
	// the general rounding formula would produce for a degenerate
	// (zero-size) tree.
	rows[0].percent = 100
	return rows, rootSize
}

// emissionOrder returns rows in the order they should be printed for dir,
// reversing the pre-order sequence for BottomUp.
func emissionOrder(rows []*row, dir Direction) []*row {
	if dir == TopDown {
		return rows
	}
	reversed := make([]*row, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}
	return reversed
}
