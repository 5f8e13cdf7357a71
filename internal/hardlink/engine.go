package hardlink

import (
	"os"

	"github.com/sadopc/dutree/internal/fswalk"
	"github.com/sadopc/dutree/internal/size"
)

// Policy selects whether the engine tracks anything at all.
type Policy int

const (
	// Ignorant makes Record a no-op and Deduplicate a no-op; this is the
	// default, used when --deduplicate-hardlinks is not given.
	Ignorant Policy = iota
	// Aware records every multiply-linked file and corrects the tree for
	// them after the walk. POSIX only.
	Aware
)

// Engine implements fswalk.HardlinkRecorder and owns the registry backing
// Deduplicate and Summarize.
type Engine struct {
	policy Policy
	list   *List
}

// NewEngine constructs an Engine under the given policy.
func NewEngine(policy Policy) *Engine {
	e := &Engine{policy: policy}
	if policy == Aware {
		e.list = NewList()
	}
	return e
}

// Policy returns the engine's configured policy.
func (e *Engine) Policy() Policy { return e.policy }

// List returns the engine's registry, or nil under Ignorant.
func (e *Engine) List() *List { return e.list }

// Record implements fswalk.HardlinkRecorder. Under Ignorant it does
// nothing; under Aware it extracts the entry's inode and link count from
// the platform stat structure and upserts it into the registry, surfacing
// any size/nlink conflict to the reporter without halting the walk.
func (e *Engine) Record(path string, info os.FileInfo, sz size.Size, reporter fswalk.Reporter) {
	if e.policy == Ignorant {
		return
	}
	ino, nlink, ok := inodeOf(info)
	if !ok {
		return
	}
	if err := e.list.Record(InodeNumber(ino), sz, nlink, path); err != nil {
		reporter.ReportError(fswalk.ErrorReport{Op: fswalk.OpAccessEntry, Path: path, Err: err})
	}
}
