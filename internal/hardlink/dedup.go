package hardlink

import (
	"strings"
	"sync"

	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
)

// pathTrace is a registry path with its components still to be matched
// against tree node names, stripped of whatever prefix has already been
// consumed descending from the root.
type pathTrace = []string

// Deduplicate adjusts root's sizes in place so that every inode shared by
// two or more links counts its size once per subtree instead of once per
// link, and returns the registry summary.
//
// For each inode with at least two discovered paths, every node that
// contains k >= 2 of those links has size*(k-1) subtracted from its own
// size, from the root down. A child is handed an inode's remaining path
// components only when two or more of its links lie inside that child; a
// child holding a single link keeps its size.
func Deduplicate(root *tree.Node, list *List) Summary {
	entries := list.Snapshot()
	summary := Summarize(entries)

	registry := make(map[InodeNumber][]pathTrace)
	sizes := make(map[InodeNumber]size.Size)
	for ino, e := range entries {
		if len(e.Paths) < 2 {
			continue
		}
		traces := make([]pathTrace, len(e.Paths))
		for i, p := range e.Paths {
			traces[i] = splitPath(p)
		}
		registry[ino] = traces
		sizes[ino] = e.Size
	}

	dedupeNode(root, registry, sizes)
	return summary
}

func splitPath(p string) pathTrace {
	if p == "" {
		return pathTrace{}
	}
	return strings.Split(p, "/")
}

func dedupeNode(n *tree.Node, registry map[InodeNumber][]pathTrace, sizes map[InodeNumber]size.Size) {
	if len(registry) == 0 {
		return
	}

	childRegistry := make(map[string]map[InodeNumber][]pathTrace)
	var adjustment uint64

	for ino, traces := range registry {
		byChild := make(map[string][]pathTrace)
		for _, comps := range traces {
			if len(comps) == 0 {
				byChild[""] = append(byChild[""], nil)
				continue
			}
			first, rest := comps[0], comps[1:]
			byChild[first] = append(byChild[first], rest)
		}

		// All k links lie inside n, so n counts the inode k times.
		k := len(traces)
		adjustment += sizes[ino].Uint64() * uint64(k-1)

		for childName, rest := range byChild {
			if childName == "" {
				continue // this link is n itself
			}
			if len(rest) < 2 {
				continue // one link inside a child needs no correction there
			}
			if childRegistry[childName] == nil {
				childRegistry[childName] = make(map[InodeNumber][]pathTrace)
			}
			childRegistry[childName][ino] = rest
		}
	}

	if adjustment > 0 {
		tree.SetSize(n, n.Size().SubSaturating(adjustment))
	}

	children := n.Children()
	if len(children) == 0 || len(childRegistry) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, c := range children {
		reg, ok := childRegistry[c.Name()]
		if !ok || len(reg) == 0 {
			continue
		}
		wg.Add(1)
		go func(c *tree.Node, reg map[InodeNumber][]pathTrace) {
			defer wg.Done()
			dedupeNode(c, reg, sizes)
		}(c, reg)
	}
	wg.Wait()
}
