package typesystem

import "sync/atomic"

// copyIDCounter is the process-wide monotonically increasing stamp used to
// break cycles during inference (§5, Cycle handling). Bumped once per
// inference root; recursive calls reuse the value they were handed rather
// than reading this again, so that prior visitedId stamps are
// automatically invalidated without ever needing a reset pass.
var copyIDCounter uint32

// nextCopyID hands out a fresh cycle-detection stamp for a new inference
// root. Atomic rather than a plain increment: the lattice itself is used
// single-threaded per §5, but a host embedding this package across
// multiple goroutines should still get a collision-free counter.
func nextCopyID() uint32 {
	return atomic.AddUint32(&copyIDCounter, 1)
}
