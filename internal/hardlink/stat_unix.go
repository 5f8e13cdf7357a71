//go:build !windows

package hardlink

import (
	"os"
	"syscall"
)

func inodeOf(info os.FileInfo) (ino, nlink uint64, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return uint64(stat.Ino), uint64(stat.Nlink), true
}
