package visualizer

import (
	"fmt"
	"strings"

	"github.com/sadopc/dutree/internal/tree"
)

// Render builds the full four-column report for root under opts,
// returning one string per surviving row in emission order (see
// Direction). Rows that could not fit the width budget even after
// truncation are dropped entirely, per the width-negotiation rules.
func Render(root *tree.Node, opts Options) ([]string, error) {
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = ^uint64(0)
	}

	rows, rootSize := buildRows(root, maxDepth)
	treeWidth, barWidth := negotiateWidths(rows, opts.Direction, opts)

	wsWidth := 0
	for _, r := range rows {
		if r.excluded {
			continue
		}
		if n := len(r.sizeStr); n > wsWidth {
			wsWidth = n
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range emissionOrder(rows, opts.Direction) {
		if r.excluded {
			continue
		}

		levels := computeBarLevels(r, rootSize, barWidth)
		bar, err := renderBar(levels, barWidth, opts.Alignment)
		if err != nil {
			return nil, err
		}

		line := fmt.Sprintf("%s %s %s %s",
			padRight(r.sizeStr, wsWidth),
			padRight(r.treeCell, treeWidth),
			bar,
			padLeft(fmt.Sprintf("%d%%", r.percent), percentWidth),
		)
		lines = append(lines, line)
	}
	return lines, nil
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
