package fswalk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/dutree/internal/size"
)

func writeFile(t *testing.T, path string, n int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, n), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkFlatTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), 1)
	writeFile(t, filepath.Join(root, "b"), 2)

	w := &Walker{SizeGetter: ApparentSizeGetter, Zero: size.Bytes(0), MaxDepth: ^uint64(0)}
	n := w.Walk(context.Background(), root)

	if len(n.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(n.Children()))
	}
	var total uint64
	for _, c := range n.Children() {
		total += c.Size().Uint64()
	}
	if total != 3 {
		t.Errorf("total children size = %d, want 3", total)
	}
}

func TestWalkRespectsMaxDepth(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(sub, "deep"), 10)

	w := &Walker{SizeGetter: ApparentSizeGetter, Zero: size.Bytes(0), MaxDepth: 1}
	n := w.Walk(context.Background(), root)

	if len(n.Children()) != 1 {
		t.Fatalf("expected 1 child at depth 1, got %d", len(n.Children()))
	}
	sc := n.Children()[0]
	if !sc.IsDir() {
		t.Fatal("sub should still be a directory node")
	}
	if len(sc.Children()) != 0 {
		t.Errorf("expected sub to be childless at max depth, got %d children", len(sc.Children()))
	}
}

func TestWalkDegradesOnMissingPath(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "does-not-exist")

	var reported []ErrorReport
	reporter := &recordingReporter{onError: func(r ErrorReport) { reported = append(reported, r) }}

	w := &Walker{SizeGetter: ApparentSizeGetter, Zero: size.Bytes(0), MaxDepth: ^uint64(0), Reporter: reporter}
	n := w.Walk(context.Background(), missing)

	if n.Size().Uint64() != 0 {
		t.Errorf("degraded node should have zero size, got %d", n.Size().Uint64())
	}
	if len(reported) != 1 || reported[0].Op != OpSymlinkMetadata {
		t.Errorf("expected one SymlinkMetadata error report, got %+v", reported)
	}
}

type recordingReporter struct {
	onError func(ErrorReport)
}

func (r *recordingReporter) ReportError(e ErrorReport) {
	if r.onError != nil {
		r.onError(e)
	}
}
func (r *recordingReporter) ObserveEntry(bool, uint64) {}
