// Package mathutil provides the small integer helpers used to size protocol
// rounds and queue lengths.
package mathutil

import "math/bits"

// Log2Up computes max(1, ceil(log2(n))): the smallest e >= 1 with 2^e >= n.
// Inputs 0 and 1 map to 1, which is why this is not a pure ceiling log2.
func Log2Up(n uint64) uint64 {
	if n <= 2 {
		return 1
	}
	return uint64(bits.Len64(n - 1))
}
