package visualizer

import (
	"fmt"
	"math/big"
	"strings"
)

// roundedScale computes round(value * scale / total) with half-up
// rounding, using arbitrary-precision arithmetic so it stays exact for
// sizes in the exabyte range where value*scale would overflow a uint64.
// Returns 0 when total is 0 (an empty or all-zero tree).
func roundedScale(value, total uint64, scale int) int {
	if total == 0 {
		return 0
	}
	num := new(big.Int).Mul(new(big.Int).SetUint64(value), big.NewInt(int64(scale)))
	den := new(big.Int).SetUint64(total)
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if new(big.Int).Lsh(r, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return int(q.Int64())
}

// barLevels holds the four cascading lengths used to build one row's
// proportion bar: L0 is the row's own node, L1/L2/L3 are its parent,
// grandparent and great-grandparent (substituting the bar's full width W
// for any ancestor that doesn't exist, which collapses the corresponding
// segment to zero width).
type barLevels struct {
	l0, l1, l2, l3 int
}

func computeBarLevels(r *row, rootSize uint64, width int) barLevels {
	l0 := roundedScale(r.node.Size().Uint64(), rootSize, width)
	levels := barLevels{l0: l0, l1: width, l2: width, l3: width}
	if r.ancestors[0] != nil {
		levels.l1 = roundedScale(r.ancestors[0].node.Size().Uint64(), rootSize, width)
	}
	if r.ancestors[1] != nil {
		levels.l2 = roundedScale(r.ancestors[1].node.Size().Uint64(), rootSize, width)
	}
	if r.ancestors[2] != nil {
		levels.l3 = roundedScale(r.ancestors[2].node.Size().Uint64(), rootSize, width)
	}
	return levels
}

// Percent returns round(value*100/total) with half-up rounding, the same
// computation buildRows uses for each row's percentage column. Exported
// so internal/tui can show identical percentages in its interactive rows.
func Percent(value, total uint64) int {
	return roundedScale(value, total, 100)
}

// SingleLevelBar renders a one-level proportion bar for value out of
// total, reusing the same half-up rounding and character ramp as the
// multi-level tree bar but collapsing the three ancestor segments to
// zero width. internal/tui uses this to bar a row against its current
// directory's total instead of the full root-relative ancestor chain.
func SingleLevelBar(value, total uint64, width int, align Alignment) (string, error) {
	filled := roundedScale(value, total, width)
	levels := barLevels{l0: filled, l1: filled, l2: filled, l3: filled}
	return renderBar(levels, width, align)
}

// renderBar builds the width-wide proportion bar string for the given
// levels and alignment, validating the runtime invariant that the five
// segment widths are non-negative and sum to width.
func renderBar(levels barLevels, width int, align Alignment) (string, error) {
	segs := []int{
		levels.l0,
		levels.l1 - levels.l0,
		levels.l2 - levels.l1,
		levels.l3 - levels.l2,
		width - levels.l3,
	}
	sum := 0
	for _, s := range segs {
		if s < 0 {
			return "", fmt.Errorf("visualizer: negative proportion-bar segment %v (levels %+v, width %d)", segs, levels, width)
		}
		sum += s
	}
	if sum != width {
		return "", fmt.Errorf("visualizer: proportion-bar segments %v sum to %d, want %d", segs, sum, width)
	}

	glyphs := [5]rune{'█', '▓', '▒', '░', ' '}
	var b strings.Builder
	if align == AlignLeft {
		for i, s := range segs {
			b.WriteString(strings.Repeat(string(glyphs[i]), s))
		}
	} else {
		for i := len(segs) - 1; i >= 0; i-- {
			b.WriteString(strings.Repeat(string(glyphs[i]), segs[i]))
		}
	}
	return b.String(), nil
}
