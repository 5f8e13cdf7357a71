package visualizer

import "strings"

// cellFor assembles a row's tree-column text from its current connector
// (which skeleton repair may still flip) and its renderedName (which
// truncation may have already shortened).
func cellFor(r *row, dir Direction) string {
	if r.depth == 0 {
		return r.renderedName
	}
	indent := strings.Repeat(" ", r.depth)
	return indent + connector(r.isLastSibling, dir, r.hasChildren) + r.renderedName
}

func skeletonLen(r *row, dir Direction) int {
	return len(cellFor(r, dir)) - len(r.renderedName)
}

// negotiateWidths fills in sizeStr and treeCell for every row, excluding
// rows (and their descendants) that cannot fit even after truncation, and
// repairing the skeleton of rows whose neighbours were excluded. It
// returns the final tree-column and bar-column widths.
func negotiateWidths(rows []*row, dir Direction, opts Options) (treeWidth, barWidth int) {
	ws := 0
	for _, r := range rows {
		r.renderedName = r.node.Name()
		r.sizeStr = r.node.Size().Display(opts.Format)
		if n := len(r.sizeStr); n > ws {
			ws = n
		}
	}

	switch {
	case opts.TreeWidth > 0 && opts.BarWidth > 0:
		treeWidth, barWidth = opts.TreeWidth, opts.BarWidth
		truncateToWidth(rows, dir, treeWidth)
		excludeOverflowing(rows, dir, treeWidth)
		repairSkeleton(rows, dir)
	case opts.TotalWidth > 0:
		capWidth := opts.TotalWidth - ws - percentWidth - cellBorders - minBarWidth
		if capWidth < 1 {
			capWidth = 1
		}
		truncateToWidth(rows, dir, capWidth)
		excludeOverflowing(rows, dir, capWidth)
		repairSkeleton(rows, dir)
		treeWidth = maxSurvivingTreeCellWidth(rows)
		barWidth = opts.TotalWidth - ws - treeWidth - percentWidth - cellBorders
		if barWidth < 1 {
			barWidth = 1
		}
	default:
		for _, r := range rows {
			r.treeCell = cellFor(r, dir)
		}
		treeWidth = maxSurvivingTreeCellWidth(rows)
		barWidth = defaultBarWidth
		if opts.BarWidth > 0 {
			barWidth = opts.BarWidth
		}
	}
	return treeWidth, barWidth
}

// truncateToWidth shortens renderedName with a "..." suffix wherever the
// full cell would exceed capWidth. A row whose skeleton (indent+connector)
// alone already reaches or exceeds capWidth keeps its full name; it is
// left for excludeOverflowing to drop instead.
func truncateToWidth(rows []*row, dir Direction, capWidth int) {
	const ellipsis = "..."
	for _, r := range rows {
		full := cellFor(r, dir)
		if len(full) <= capWidth {
			continue
		}
		skel := skeletonLen(r, dir)
		if skel >= capWidth {
			continue
		}
		keep := capWidth - skel - len(ellipsis)
		if keep < 0 {
			keep = 0
		}
		if keep < len(r.renderedName) {
			r.renderedName = r.renderedName[:keep] + ellipsis
		}
	}
}

// excludeOverflowing marks every row whose skeleton alone reaches or
// exceeds capWidth — and all of its descendants — as excluded.
func excludeOverflowing(rows []*row, dir Direction, capWidth int) {
	excludedDepth := -1
	for _, r := range rows {
		if excludedDepth >= 0 && r.depth > excludedDepth {
			r.excluded = true
			continue
		}
		excludedDepth = -1

		if skeletonLen(r, dir) >= capWidth {
			r.excluded = true
			excludedDepth = r.depth
		}
	}
}

// repairSkeleton fixes up connectors after exclusion: a row whose
// following siblings are all excluded becomes the last surviving sibling,
// and a row all of whose children were excluded becomes childless.
// Children of a surviving node are the contiguous run of survivors
// immediately after it at depth+1, which pre-order traversal guarantees.
func repairSkeleton(rows []*row, dir Direction) {
	survivors := make([]*row, 0, len(rows))
	for _, r := range rows {
		if !r.excluded {
			survivors = append(survivors, r)
		}
	}

	for i, r := range survivors {
		if r.hasChildren {
			hasSurvivingChild := i+1 < len(survivors) && survivors[i+1].depth == r.depth+1
			if !hasSurvivingChild {
				r.hasChildren = false
			}
		}

		lastAmongSurvivingSiblings := true
		for j := i + 1; j < len(survivors); j++ {
			if survivors[j].depth < r.depth {
				break
			}
			if survivors[j].depth == r.depth {
				lastAmongSurvivingSiblings = false
				break
			}
		}
		r.isLastSibling = lastAmongSurvivingSiblings
	}

	for _, r := range survivors {
		r.treeCell = cellFor(r, dir)
	}
}

func maxSurvivingTreeCellWidth(rows []*row) int {
	w := 0
	for _, r := range rows {
		if r.excluded {
			continue
		}
		if n := len(r.treeCell); n > w {
			w = n
		}
	}
	return w
}
