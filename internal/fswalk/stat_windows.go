//go:build windows

package fswalk

import (
	"os"

	"github.com/sadopc/dutree/internal/size"
)

// nlinkOf is not supported on Windows through os.FileInfo; it always
// reports false, so the walker records no hardlinks on this platform.
func nlinkOf(os.FileInfo) (uint64, bool) {
	return 0, false
}

// ApparentSizeGetter reports the logical length of the file. It is the
// only SizeGetter available on Windows; BlockSizeGetter and
// BlockCountGetter are POSIX-only per the measurement core's OS-dependence
// notes and are rejected at argument-parsing time instead of silently
// degrading here.
func ApparentSizeGetter(info os.FileInfo) size.Size {
	return size.Bytes(uint64(info.Size()))
}

func BlockSizeGetter(info os.FileInfo) size.Size {
	return size.Bytes(uint64(info.Size()))
}

func BlockCountGetter(os.FileInfo) size.Size {
	return size.Blocks(0)
}
