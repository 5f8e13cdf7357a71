package tree

import (
	"testing"

	"github.com/sadopc/dutree/internal/size"
)

func TestCullAndElideSynthesizesSummaryNode(t *testing.T) {
	root := Dir("root", size.Bytes(0), []*Node{
		File("big", size.Bytes(90)),
		File("tiny1", size.Bytes(1)),
		File("tiny2", size.Bytes(2)),
	})
	root.CullAndElide(0.1, true)

	if len(root.Children()) != 2 {
		t.Fatalf("expected big + one elision node, got %d children", len(root.Children()))
	}
	var elided *Node
	for _, c := range root.Children() {
		if c.Name() != "big" {
			elided = c
		}
	}
	if elided == nil {
		t.Fatal("expected an elision node")
	}
	if elided.Name() != "(2 other entries)" {
		t.Errorf("unexpected elision node name: %q", elided.Name())
	}
	if elided.Size().Uint64() != 3 {
		t.Errorf("expected elision node to carry summed size 3, got %d", elided.Size().Uint64())
	}
}

func TestCullAndElideWithoutElideDropsSilently(t *testing.T) {
	root := Dir("root", size.Bytes(0), []*Node{
		File("big", size.Bytes(90)),
		File("tiny", size.Bytes(1)),
	})
	root.CullAndElide(0.1, false)

	if len(root.Children()) != 1 || root.Children()[0].Name() != "big" {
		t.Fatalf("expected only big to survive, got %v", root.Children())
	}
}

func TestCullAndElideNoDropsLeavesChildrenUntouched(t *testing.T) {
	root := Dir("root", size.Bytes(0), []*Node{
		File("a", size.Bytes(50)),
		File("b", size.Bytes(50)),
	})
	root.CullAndElide(0.1, true)

	if len(root.Children()) != 2 {
		t.Fatalf("expected no elision node when nothing was dropped, got %d children", len(root.Children()))
	}
}
