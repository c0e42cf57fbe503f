package verifier

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// evalQueue is a strictly ordered FIFO view over a borrowed slice of field
// elements. The slice is never copied: the caller must keep it valid and
// unmodified for as long as the queue is in use. The cursor only moves
// forward, one element per successful consume.
type evalQueue struct {
	data []fr.Element
	head int
}

// set points the queue at a borrowed slice and rewinds the cursor. Calling
// set again discards the previous cursor state without any guard.
func (q *evalQueue) set(data []fr.Element) {
	q.data = data
	q.head = 0
}

// consume returns the element under the cursor and advances past it. When
// nothing remains it returns exhausted and leaves the queue untouched, so a
// repeated attempt fails identically.
func (q *evalQueue) consume(exhausted error) (fr.Element, error) {
	if q.remaining() == 0 {
		return fr.Element{}, exhausted
	}
	v := q.data[q.head]
	q.head++
	return v, nil
}

// remaining reports how many elements are still consumable.
func (q *evalQueue) remaining() int {
	return len(q.data) - q.head
}
