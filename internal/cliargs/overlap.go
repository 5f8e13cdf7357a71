// Package cliargs holds argument-level logic shared by the CLI entry
// point: pruning overlapping scan roots before the walker ever sees them.
package cliargs

import (
	"os"
	"path/filepath"
)

// canonicalizer abstracts the filesystem calls PruneOverlapping needs, so
// tests can exercise the pruning logic without touching disk.
type canonicalizer interface {
	isRealDir(path string) bool
	canonicalize(path string) (string, error)
}

type osCanonicalizer struct{}

func (osCanonicalizer) isRealDir(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink == 0 && info.IsDir()
}

func (osCanonicalizer) canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// PruneOverlapping removes scan-root arguments that are redundant given
// the others: an exact duplicate (by real path) or a path whose real
// location lies inside another argument's. The containing path (or the
// earlier-given duplicate) is always kept; symlink arguments are never
// pruned by this pass, since only real directories are canonicalised.
//
// Hardlink deduplication assumes each inode is reachable from at most one
// scan root; overlapping roots would double-count shared inodes across
// them, which is what this pruning step exists to prevent.
func PruneOverlapping(arguments []string) []string {
	return pruneOverlapping(arguments, osCanonicalizer{})
}

func pruneOverlapping(arguments []string, c canonicalizer) []string {
	toRemove := findOverlappingIndices(arguments, c)
	if len(toRemove) == 0 {
		return arguments
	}
	out := make([]string, 0, len(arguments)-len(toRemove))
	for i, a := range arguments {
		if !toRemove[i] {
			out = append(out, a)
		}
	}
	return out
}

func findOverlappingIndices(arguments []string, c canonicalizer) map[int]bool {
	realPaths := make([]string, len(arguments))
	hasReal := make([]bool, len(arguments))
	for i, a := range arguments {
		if !c.isRealDir(a) {
			continue
		}
		rp, err := c.canonicalize(a)
		if err != nil {
			continue
		}
		realPaths[i] = rp
		hasReal[i] = true
	}

	toRemove := make(map[int]bool)
	for left := 0; left < len(arguments); left++ {
		if !hasReal[left] {
			continue
		}
		for right := left + 1; right < len(arguments); right++ {
			if !hasReal[right] {
				continue
			}
			lp, rp := realPaths[left], realPaths[right]
			switch {
			case lp == rp:
				toRemove[right] = true
			case isWithin(lp, rp):
				// left is a subtree of right: keep the containing right,
				// drop left.
				toRemove[left] = true
			case isWithin(rp, lp):
				toRemove[right] = true
			}
		}
	}
	return toRemove
}

// isWithin reports whether child is ancestor itself or a descendant of it,
// using path-component comparison so "a/bb" is never mistaken for a
// descendant of "a/b".
func isWithin(child, ancestor string) bool {
	if child == ancestor {
		return true
	}
	rel, err := filepath.Rel(ancestor, child)
	if err != nil {
		return false
	}
	return rel != ".." && !hasParentPrefix(rel)
}

func hasParentPrefix(rel string) bool {
	return len(rel) >= 2 && rel[:2] == ".." && (len(rel) == 2 || rel[2] == filepath.Separator)
}
