//go:build !windows

package fswalk

import (
	"os"
	"syscall"

	"github.com/sadopc/dutree/internal/size"
)

func nlinkOf(info os.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(stat.Nlink), true
}

// blockUsage returns st_blocks*512, the disk-usage byte count stat(2)
// reports for a file, independent of its apparent length.
func blockUsage(info os.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(stat.Blocks) * 512, true
}

func blockCount(info os.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(stat.Blocks), true
}

// ApparentSizeGetter reports the logical length of the file.
func ApparentSizeGetter(info os.FileInfo) size.Size {
	return size.Bytes(uint64(info.Size()))
}

// BlockSizeGetter reports the disk usage in bytes (blocks * 512), falling
// back to the apparent size when the platform stat is unavailable.
func BlockSizeGetter(info os.FileInfo) size.Size {
	if usage, ok := blockUsage(info); ok {
		return size.Bytes(usage)
	}
	return size.Bytes(uint64(info.Size()))
}

// BlockCountGetter reports the raw st_blocks value.
func BlockCountGetter(info os.FileInfo) size.Size {
	if count, ok := blockCount(info); ok {
		return size.Blocks(count)
	}
	return size.Blocks(0)
}
