package verifier

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// BuilderBytes is the fixed footprint of one builder region: a head and a
// tail cursor per queue, one field-element word each.
const BuilderBytes = 10 * fr.Bytes

// Handle identifies one allocated builder region by its byte offset into the
// arena. Consecutive allocations yield handles exactly BuilderBytes apart.
type Handle int

// Arena is a monotonic bump allocator for verification builders. Allocation
// only ever advances the free offset; nothing is reclaimed until Reset, which
// marks the boundary of one top-level verification call. The arena is
// single-threaded by the surrounding execution model and performs no
// locking.
type Arena struct {
	regions []VerificationBuilder
	free    int
}

// Allocate reserves the next builder-sized region and returns its handle.
// It never fails and never returns a region that aliases a previous one.
func (a *Arena) Allocate() Handle {
	h := Handle(a.free)
	a.free += BuilderBytes
	a.regions = append(a.regions, VerificationBuilder{})
	return h
}

// Builder resolves a handle to the builder stored in its region. The handle
// must come from a prior Allocate on the same arena since the last Reset.
func (a *Arena) Builder(h Handle) *VerificationBuilder {
	return &a.regions[int(h)/BuilderBytes]
}

// Reset reclaims every region at once. Handles issued before the reset are
// dead; using one afterwards is a caller bug.
func (a *Arena) Reset() {
	a.regions = a.regions[:0]
	a.free = 0
}
