// Package hardlink implements the concurrent per-inode registry populated
// during a walk and the post-walk deduplication pass that corrects a
// tree's sizes for shared inodes.
package hardlink

import (
	"errors"
	"sync"

	"github.com/sadopc/dutree/internal/size"
)

// InodeNumber identifies a filesystem inode; meaningful only on POSIX-like
// systems.
type InodeNumber uint64

// ErrSizeConflict is returned by List.Record when the same inode was
// previously observed with a different size.
var ErrSizeConflict = errors.New("hardlink: inode observed with a different size than before")

// ErrNlinkConflict is returned by List.Record when the same inode was
// previously observed with a different link count.
var ErrNlinkConflict = errors.New("hardlink: inode observed with a different link count than before")

// Entry is a point-in-time snapshot of one inode's registry record.
type Entry struct {
	Size  size.Size
	Nlink uint64
	Paths []string
}

type record struct {
	size  size.Size
	nlink uint64
	paths map[string]struct{}
}

// shardCount is a fixed power of two large enough that, in practice,
// distinct inodes rarely collide on the same shard lock while walking a
// real filesystem tree with GOMAXPROCS*3 workers.
const shardCount = 64

type shard struct {
	mu sync.Mutex
	m  map[InodeNumber]*record
}

// List is a concurrent mapping from InodeNumber to the size, link count
// and discovered paths of that inode, built up during a walk. It tolerates
// concurrent inserts from parallel workers; operations on different
// inodes proceed without contending on the same lock, provided they land
// in different shards.
type List struct {
	shards [shardCount]*shard
}

// NewList returns an empty registry.
func NewList() *List {
	l := &List{}
	for i := range l.shards {
		l.shards[i] = &shard{m: map[InodeNumber]*record{}}
	}
	return l
}

func (l *List) shardFor(ino InodeNumber) *shard {
	return l.shards[uint64(ino)%shardCount]
}

// Record upserts an observation of inode ino at path, with size sz and
// link count nlink. The first observation of an inode establishes its
// size and nlink; every subsequent observation must agree with those or
// Record returns ErrSizeConflict / ErrNlinkConflict without recording the
// path.
func (l *List) Record(ino InodeNumber, sz size.Size, nlink uint64, path string) error {
	sh := l.shardFor(ino)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.m[ino]
	if !ok {
		sh.m[ino] = &record{size: sz, nlink: nlink, paths: map[string]struct{}{path: {}}}
		return nil
	}
	if rec.size.Uint64() != sz.Uint64() {
		return ErrSizeConflict
	}
	if rec.nlink != nlink {
		return ErrNlinkConflict
	}
	rec.paths[path] = struct{}{}
	return nil
}

// Snapshot returns a consistent point-in-time copy of every registry
// entry. It is meant to be called once, after the walk that populated the
// list has finished.
func (l *List) Snapshot() map[InodeNumber]Entry {
	out := make(map[InodeNumber]Entry)
	for _, sh := range l.shards {
		sh.mu.Lock()
		for ino, rec := range sh.m {
			paths := make([]string, 0, len(rec.paths))
			for p := range rec.paths {
				paths = append(paths, p)
			}
			out[ino] = Entry{Size: rec.size, Nlink: rec.nlink, Paths: paths}
		}
		sh.mu.Unlock()
	}
	return out
}
