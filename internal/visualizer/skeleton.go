package visualizer

// connector picks the 3-character glyph for a non-root row from the
// row's position among its siblings, the report's direction, and whether
// the row has rendered children. This is the literal 8-entry table from
// the rendering spec; do not "simplify" it, the BottomUp and TopDown
// glyph sets are intentionally asymmetric (┴/┬ vs plain ─ mirrors which
// way the continuation line for children needs to visually point).
func connector(isLastSibling bool, dir Direction, hasChildren bool) string {
	switch {
	case !isLastSibling && dir == BottomUp && hasChildren:
		return "├─┴"
	case !isLastSibling && dir == BottomUp && !hasChildren:
		return "├──"
	case !isLastSibling && dir == TopDown && hasChildren:
		return "├─┬"
	case !isLastSibling && dir == TopDown && !hasChildren:
		return "├──"
	case isLastSibling && dir == BottomUp && hasChildren:
		return "┌─┴"
	case isLastSibling && dir == BottomUp && !hasChildren:
		return "┌──"
	case isLastSibling && dir == TopDown && hasChildren:
		return "└─┬"
	default: // isLastSibling && dir == TopDown && !hasChildren
		return "└──"
	}
}
