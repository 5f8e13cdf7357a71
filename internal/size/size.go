// Package size provides the two disjoint measurement scalars used by the
// rest of the module: apparent byte counts and disk block counts. Both
// share the Size interface so the walker, tree and visualizer can stay
// agnostic of which one a particular run was configured to measure.
package size

// Size is a non-negative scalar that can be summed, scaled and displayed.
// Bytes and Blocks are its only two implementations.
type Size interface {
	// Add returns the saturating sum of the receiver and other. other must
	// be the same concrete type as the receiver.
	Add(other Size) Size

	// SubSaturating returns the receiver minus amount, floored at zero.
	SubSaturating(amount uint64) Size

	// Mul returns the receiver scaled by n, saturating on overflow.
	Mul(n uint64) Size

	// Uint64 returns the raw scalar value.
	Uint64() uint64

	// Less reports whether the receiver orders before other.
	Less(other Size) bool

	// Display renders the value under the given Format.
	Display(format Format) string
}

// Bytes is an apparent-size measurement: the logical length of a file as
// reported by the filesystem, or the sum thereof for a directory.
type Bytes uint64

// Blocks is a disk-usage measurement in units of 512-byte blocks, the way
// stat(2) reports st_blocks.
type Blocks uint64

func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

func mulSaturating(a, n uint64) uint64 {
	if a == 0 || n == 0 {
		return 0
	}
	product := a * n
	if product/n != a {
		return ^uint64(0)
	}
	return product
}

func subSaturating(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

func (b Bytes) Add(other Size) Size {
	o, ok := other.(Bytes)
	if !ok {
		panic("size: Bytes.Add called with a non-Bytes operand")
	}
	return Bytes(addSaturating(uint64(b), uint64(o)))
}

func (b Bytes) SubSaturating(amount uint64) Size {
	return Bytes(subSaturating(uint64(b), amount))
}

func (b Bytes) Mul(n uint64) Size {
	return Bytes(mulSaturating(uint64(b), n))
}

func (b Bytes) Uint64() uint64 { return uint64(b) }

func (b Bytes) Less(other Size) bool {
	o, ok := other.(Bytes)
	if !ok {
		panic("size: Bytes.Less called with a non-Bytes operand")
	}
	return b < o
}

func (b Bytes) Display(format Format) string {
	return formatBytes(uint64(b), format)
}

func (bl Blocks) Add(other Size) Size {
	o, ok := other.(Blocks)
	if !ok {
		panic("size: Blocks.Add called with a non-Blocks operand")
	}
	return Blocks(addSaturating(uint64(bl), uint64(o)))
}

func (bl Blocks) SubSaturating(amount uint64) Size {
	return Blocks(subSaturating(uint64(bl), amount))
}

func (bl Blocks) Mul(n uint64) Size {
	return Blocks(mulSaturating(uint64(bl), n))
}

func (bl Blocks) Uint64() uint64 { return uint64(bl) }

func (bl Blocks) Less(other Size) bool {
	o, ok := other.(Blocks)
	if !ok {
		panic("size: Blocks.Less called with a non-Blocks operand")
	}
	return bl < o
}

// Display for Blocks ignores format and always renders the plain integer;
// block counts have no metric/binary prefix scale of their own.
func (bl Blocks) Display(_ Format) string {
	return formatPlain(uint64(bl))
}

// Zero returns the additive identity for the concrete type of like.
func Zero(like Size) Size {
	switch like.(type) {
	case Bytes:
		return Bytes(0)
	case Blocks:
		return Blocks(0)
	default:
		panic("size: Zero called with an unrecognized Size implementation")
	}
}
