package visualizer

import (
	"testing"

	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
)

// TestFlatTreePercentages covers a flat root with files of sizes
// [0,1,2,3] and inode size 5, totaling 11; percentages are 100% for root
// and round(size*100/11) for each child.
func TestFlatTreePercentages(t *testing.T) {
	root := tree.Dir("root", size.Bytes(5), []*tree.Node{
		tree.File("a", size.Bytes(0)),
		tree.File("b", size.Bytes(1)),
		tree.File("c", size.Bytes(2)),
		tree.File("d", size.Bytes(3)),
	})
	rows, total := buildRows(root, ^uint64(0))
	if total != 11 {
		t.Fatalf("total = %d, want 11", total)
	}
	if rows[0].percent != 100 {
		t.Errorf("root percent = %d, want 100", rows[0].percent)
	}
	want := map[string]int{"a": 0, "b": 9, "c": 18, "d": 27}
	for _, r := range rows[1:] {
		if got, ok := want[r.node.Name()]; ok && r.percent != got {
			t.Errorf("%s percent = %d, want %d", r.node.Name(), r.percent, got)
		}
	}
}

// TestNestedChainPercentage mirrors the deep-chain scenario: a/b/c/d/e/f/z
// with every directory inode 4096 and the leaf z at 1024 bytes. Root size
// is 4096*6+1024 = 25600, and the deepest file's percentage is 4%.
func TestNestedChainPercentage(t *testing.T) {
	leaf := tree.File("z", size.Bytes(1024))
	names := []string{"f", "e", "d", "c", "b", "a"}
	node := leaf
	for _, n := range names {
		node = tree.Dir(n, size.Bytes(4096), []*tree.Node{node})
	}
	if node.Size().Uint64() != 25600 {
		t.Fatalf("root size = %d, want 25600", node.Size().Uint64())
	}

	rows, total := buildRows(node, ^uint64(0))
	if total != 25600 {
		t.Fatalf("total = %d, want 25600", total)
	}
	deepest := rows[len(rows)-1]
	if deepest.node.Name() != "z" {
		t.Fatalf("last row = %q, want z", deepest.node.Name())
	}
	if deepest.percent != 4 {
		t.Errorf("z percent = %d, want 4", deepest.percent)
	}

	bottomUp := emissionOrder(rows, BottomUp)
	if bottomUp[len(bottomUp)-1].node.Name() != "a" {
		t.Errorf("BottomUp last row = %q, want a", bottomUp[len(bottomUp)-1].node.Name())
	}
	if bottomUp[len(bottomUp)-1].percent != 100 {
		t.Errorf("BottomUp root row percent = %d, want 100", bottomUp[len(bottomUp)-1].percent)
	}
}

func TestBuildRowsRespectsMaxDepth(t *testing.T) {
	root := tree.Dir("root", size.Bytes(0), []*tree.Node{
		tree.Dir("child", size.Bytes(0), []*tree.Node{
			tree.File("grandchild", size.Bytes(1)),
		}),
	})
	rows, _ := buildRows(root, 1)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (root + child, grandchild excluded by depth)", len(rows))
	}
	if rows[1].hasChildren {
		t.Errorf("child at max depth should report hasChildren=false since its children are never enumerated")
	}
}
