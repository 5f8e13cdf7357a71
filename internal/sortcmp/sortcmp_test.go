package sortcmp

import (
	"sort"
	"testing"

	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
)

func TestBySizeDescOrdersLargestFirst(t *testing.T) {
	children := []*tree.Node{
		tree.File("small", size.Bytes(1)),
		tree.File("big", size.Bytes(10)),
		tree.File("mid", size.Bytes(5)),
	}
	sort.SliceStable(children, func(i, j int) bool { return BySizeDesc(children[i], children[j]) < 0 })

	names := []string{children[0].Name(), children[1].Name(), children[2].Name()}
	want := []string{"big", "mid", "small"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBySizeDescBreaksTiesNaturally(t *testing.T) {
	children := []*tree.Node{
		tree.File("file10", size.Bytes(5)),
		tree.File("file2", size.Bytes(5)),
	}
	sort.SliceStable(children, func(i, j int) bool { return BySizeDesc(children[i], children[j]) < 0 })

	if children[0].Name() != "file2" || children[1].Name() != "file10" {
		t.Errorf("expected natural tie-break file2 < file10, got %q, %q", children[0].Name(), children[1].Name())
	}
}

func TestByNameOrdersNaturally(t *testing.T) {
	children := []*tree.Node{
		tree.File("item10", size.Bytes(0)),
		tree.File("item1", size.Bytes(0)),
		tree.File("item2", size.Bytes(0)),
	}
	sort.SliceStable(children, func(i, j int) bool { return ByName(children[i], children[j]) < 0 })

	want := []string{"item1", "item2", "item10"}
	for i, n := range want {
		if children[i].Name() != n {
			t.Errorf("position %d: got %q, want %q", i, children[i].Name(), n)
		}
	}
}
