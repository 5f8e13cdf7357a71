//go:build windows

package hardlink

import "os"

// inodeOf is unsupported on Windows; the engine is effectively always
// Ignorant there since Record returns immediately when ok is false.
func inodeOf(os.FileInfo) (ino, nlink uint64, ok bool) {
	return 0, 0, false
}
