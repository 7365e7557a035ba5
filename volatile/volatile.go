// Package volatile provides the memory cell generated register code uses for
// hardware access. Every Load and Store is exactly one non-elided,
// non-reordered access to the underlying word; generated accessors never
// touch the cell more than once per logical read or write.
package volatile

import "sync/atomic"

// Register32 is a single 32-bit hardware register cell.
type Register32 struct {
	Reg uint32
}

// Load performs a single read of the register.
func (r *Register32) Load() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

// Store performs a single write of the register.
func (r *Register32) Store(v uint32) {
	atomic.StoreUint32(&r.Reg, v)
}
