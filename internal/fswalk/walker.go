// Package fswalk implements the parallel filesystem walker that builds a
// size-annotated tree.Node from a root path, deferring what "size" means
// to a pluggable SizeGetter and hardlink bookkeeping to a pluggable
// HardlinkRecorder.
package fswalk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
)

// Operation names the syscall-level step that failed, for ErrorReport.
type Operation int

const (
	OpSymlinkMetadata Operation = iota
	OpReadDirectory
	OpAccessEntry
)

func (o Operation) String() string {
	switch o {
	case OpSymlinkMetadata:
		return "symlink_metadata"
	case OpReadDirectory:
		return "read_directory"
	case OpAccessEntry:
		return "access_entry"
	default:
		return "unknown"
	}
}

// ErrorReport describes one non-fatal failure encountered during a walk.
type ErrorReport struct {
	Op   Operation
	Path string
	Err  error
}

func (r ErrorReport) String() string {
	return fmt.Sprintf("%s: %s: %v", r.Op, r.Path, r.Err)
}

// Reporter receives walk telemetry: per-entry errors and a running count of
// scanned entries and their sizes. Implementations must be safe for
// concurrent use, since the walker calls them from many goroutines at once.
type Reporter interface {
	ReportError(ErrorReport)
	ObserveEntry(isDir bool, sz uint64)
}

// NullReporter discards everything; used when --progress is not requested
// and no caller-supplied reporter was given.
type NullReporter struct{}

func (NullReporter) ReportError(ErrorReport)   {}
func (NullReporter) ObserveEntry(bool, uint64) {}

// HardlinkRecorder is notified of every regular file whose link count
// exceeds one. hardlink.Engine implements this interface; a no-op
// implementation is used when hardlink tracking is disabled. path is
// relative to the walk's root ("" for the root itself), not absolute, so
// its components match the tree.Node chain the deduplication pass walks.
type HardlinkRecorder interface {
	Record(path string, info os.FileInfo, sz size.Size, reporter Reporter)
}

// NullRecorder implements HardlinkRecorder as a no-op, corresponding to the
// hardlink engine's Ignorant policy.
type NullRecorder struct{}

func (NullRecorder) Record(string, os.FileInfo, size.Size, Reporter) {}

// SizeGetter derives a node's size from its metadata.
type SizeGetter func(info os.FileInfo) size.Size

// Walker performs the parallel recursive traversal described by the
// measurement core: one tree.Node per filesystem entry, degrading locally
// (zero size, no children) on any I/O error rather than aborting.
type Walker struct {
	// SizeGetter computes a node's size from its os.FileInfo.
	SizeGetter SizeGetter
	// Recorder is invoked for every multiply-linked regular file.
	Recorder HardlinkRecorder
	// Reporter receives errors and progress counters.
	Reporter Reporter
	// MaxDepth bounds recursion; math.MaxUint64 means unbounded.
	MaxDepth uint64
	// Zero is the additive identity of whatever concrete size.Size
	// SizeGetter produces, used to build degraded nodes on stat failure.
	Zero size.Size
	// Concurrency bounds the number of in-flight goroutines; zero selects
	// a default of GOMAXPROCS*3, matching the parallel, work-stealing
	// scheduling model the filesystem walk is specified to use.
	Concurrency int

	once sync.Once
	sem  chan struct{}
}

func (w *Walker) initSem() {
	w.once.Do(func() {
		n := w.Concurrency
		if n <= 0 {
			n = runtime.GOMAXPROCS(0) * 3
		}
		w.sem = make(chan struct{}, n)
	})
}

func (w *Walker) reporter() Reporter {
	if w.Reporter != nil {
		return w.Reporter
	}
	return NullReporter{}
}

func (w *Walker) recorder() HardlinkRecorder {
	if w.Recorder != nil {
		return w.Recorder
	}
	return NullRecorder{}
}

// Walk measures root and returns its tree. The returned tree is never nil;
// errors are folded into degraded nodes and reported via w.Reporter instead
// of being returned, matching the "nothing is fatal" failure semantics of
// the walker.
func (w *Walker) Walk(ctx context.Context, root string) *tree.Node {
	w.initSem()
	name := filepath.Base(root)
	if name == "" {
		name = "."
	}
	return w.walkEntry(ctx, root, name, "", 0)
}

// walkEntry measures the entry at path, whose root-relative location is
// relPath ("" for the scan root itself, "a/b/c" for a nested entry). The
// relative path is what gets handed to the hardlink recorder: its
// components line up exactly with the tree.Node chain from the root down
// to this entry, which is what the deduplication pass descends alongside.
func (w *Walker) walkEntry(ctx context.Context, path, name, relPath string, depth uint64) *tree.Node {
	reporter := w.reporter()

	info, err := os.Lstat(path)
	if err != nil {
		reporter.ReportError(ErrorReport{Op: OpSymlinkMetadata, Path: path, Err: err})
		return tree.File(name, w.Zero)
	}

	sz := w.SizeGetter(info)

	if info.Mode().IsRegular() {
		if nlink, ok := nlinkOf(info); ok && nlink > 1 {
			w.recorder().Record(relPath, info, sz, reporter)
		}
	}

	if !info.IsDir() {
		reporter.ObserveEntry(false, sz.Uint64())
		return tree.File(name, sz)
	}

	if depth >= w.MaxDepth {
		reporter.ObserveEntry(true, sz.Uint64())
		return tree.Dir(name, sz, []*tree.Node{})
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		reporter.ReportError(ErrorReport{Op: OpReadDirectory, Path: path, Err: err})
		reporter.ObserveEntry(true, sz.Uint64())
		return tree.Dir(name, sz, []*tree.Node{})
	}

	children := make([]*tree.Node, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		childName := entry.Name()
		childPath := filepath.Join(path, childName)
		childRelPath := childName
		if relPath != "" {
			childRelPath = relPath + "/" + childName
		}
		idx := i

		select {
		case w.sem <- struct{}{}:
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-w.sem }()
				children[idx] = w.walkEntry(ctx, childPath, childName, childRelPath, depth+1)
			}()
		default:
			// Semaphore full: run synchronously instead of blocking the
			// caller on a goroutine spawn, same fallback the walker's
			// bounded worker pool uses under load.
			children[idx] = w.walkEntry(ctx, childPath, childName, childRelPath, depth+1)
		}
	}
	wg.Wait()

	reporter.ObserveEntry(true, sz.Uint64())
	return tree.Dir(name, sz, children)
}
