// Package visualizer turns a sized tree.Node into the fixed-width,
// four-column text report described by the module's rendering rules: a
// size column, a tree-skeleton-plus-name column, a proportion bar, and a
// percentage column. It does no I/O; callers write the returned lines
// wherever they like.
package visualizer

import "github.com/sadopc/dutree/internal/size"

// Direction controls both the connector glyphs (see skeleton.go) and the
// order rows are emitted in.
type Direction int

const (
	// TopDown emits the root first, in pre-order.
	TopDown Direction = iota
	// BottomUp emits the root last, in reverse pre-order.
	BottomUp
)

// Alignment controls which end of the proportion bar the heaviest segment
// sits at.
type Alignment int

const (
	// AlignLeft concatenates the bar heaviest-segment-first.
	AlignLeft Alignment = iota
	// AlignRight concatenates the bar lightest-segment-first, so the
	// heaviest blocks sit at the right edge.
	AlignRight
)

// minBarWidth is subtracted from the width budget when negotiating the
// tree column's truncation cap, guaranteeing the bar never starves to
// nothing merely because names are long.
const minBarWidth = 10

// percentWidth is the fixed width of the percentage column: len("100%").
const percentWidth = 4

// cellBorders is the number of single-space separators between the four
// columns (size, tree, bar, percent).
const cellBorders = 3

// Options configures a single Render call.
type Options struct {
	MaxDepth  uint64
	Format    size.Format
	Direction Direction
	Alignment Alignment

	// TotalWidth, when non-zero, is the full line width to negotiate the
	// tree and bar columns within. Zero means unconstrained: the tree
	// column takes its natural width and BarWidth (or a default) sets the
	// bar column directly.
	TotalWidth int

	// TreeWidth and BarWidth, when both non-zero, fix the tree and bar
	// column widths directly (the --column-width CLI form) instead of
	// deriving them from TotalWidth.
	TreeWidth int
	BarWidth  int
}

// defaultBarWidth is used when neither TotalWidth nor an explicit BarWidth
// is supplied.
const defaultBarWidth = 20
