package fswalk

import (
	"fmt"
	"runtime"

	"github.com/sadopc/dutree/internal/size"
)

// Quantity selects which SizeGetter a walk uses, i.e. what "size" means for
// the run: the logical length of a file, or its actual disk footprint
// measured in bytes or blocks.
type Quantity int

const (
	QuantityApparentSize Quantity = iota
	QuantityBlockSize
	QuantityBlockCount
)

// ParseQuantity maps the CLI spelling of --quantity to a Quantity.
func ParseQuantity(s string) (Quantity, error) {
	switch s {
	case "apparent-size":
		return QuantityApparentSize, nil
	case "block-size":
		return QuantityBlockSize, nil
	case "block-count":
		return QuantityBlockCount, nil
	default:
		return 0, fmt.Errorf("fswalk: unknown quantity %q (want apparent-size, block-size or block-count)", s)
	}
}

func (q Quantity) String() string {
	switch q {
	case QuantityApparentSize:
		return "apparent-size"
	case QuantityBlockSize:
		return "block-size"
	case QuantityBlockCount:
		return "block-count"
	default:
		return "unknown"
	}
}

// Supported reports whether this quantity can be measured on goos.
// block-size and block-count depend on stat(2)'s st_blocks field, which is
// POSIX-only; on any other platform (Windows) only apparent-size works.
func (q Quantity) Supported(goos string) bool {
	if q == QuantityApparentSize {
		return true
	}
	return goos != "windows"
}

// Getter returns the SizeGetter implementing this quantity, and the zero
// value of the concrete size.Size type it produces (for constructing
// degraded nodes on stat failure).
func (q Quantity) Getter() (SizeGetter, size.Size) {
	switch q {
	case QuantityBlockSize:
		return BlockSizeGetter, size.Bytes(0)
	case QuantityBlockCount:
		return BlockCountGetter, size.Blocks(0)
	default:
		return ApparentSizeGetter, size.Bytes(0)
	}
}

// HostSupported is a convenience for Supported(runtime.GOOS).
func (q Quantity) HostSupported() bool {
	return q.Supported(runtime.GOOS)
}
