// Package transcript implements the Keccak-256 Fiat-Shamir transcript the
// verifier replays to derive round challenges from the proof messages.
package transcript

import (
	"encoding/binary"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Transcript is a chained Keccak-256 state. Every absorbed message and every
// squeezed challenge folds into the state, so two transcripts that absorb the
// same data in the same order produce identical challenge streams.
type Transcript struct {
	state [32]byte
}

// New seeds a transcript with a protocol label.
func New(label string) *Transcript {
	t := &Transcript{}
	t.Append(label)
	return t
}

// Append absorbs a labelled message. Labels and parts are length-prefixed so
// distinct splits of the same bytes cannot collide.
func (t *Transcript) Append(label string, parts ...[]byte) {
	h := sha3.NewLegacyKeccak256()
	h.Write(t.state[:])
	writeLenPrefixed(h, []byte(label))
	for _, p := range parts {
		writeLenPrefixed(h, p)
	}
	h.Sum(t.state[:0])
}

// AppendElements absorbs field elements under one label, each in its
// canonical 32-byte big-endian encoding.
func (t *Transcript) AppendElements(label string, elems []fr.Element) {
	parts := make([][]byte, len(elems))
	for i := range elems {
		b := elems[i].Bytes()
		parts[i] = b[:]
	}
	t.Append(label, parts...)
}

// Challenge squeezes one field element. The state advances, so consecutive
// calls yield independent challenges.
func (t *Transcript) Challenge() fr.Element {
	h := sha3.NewLegacyKeccak256()
	h.Write(t.state[:])
	h.Sum(t.state[:0])
	var e fr.Element
	e.SetBytes(t.state[:])
	return e
}

// Challenges squeezes n field elements.
func (t *Transcript) Challenges(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i] = t.Challenge()
	}
	return out
}

func writeLenPrefixed(h hash.Hash, b []byte) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(b)))
	h.Write(n[:])
	h.Write(b)
}
