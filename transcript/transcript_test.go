package transcript

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestDeterministicChallengeStream(t *testing.T) {
	mk := func() *Transcript {
		tr := New("test-protocol")
		tr.Append("msg", []byte{1, 2, 3})
		var e fr.Element
		e.SetUint64(42)
		tr.AppendElements("elems", []fr.Element{e})
		return tr
	}
	a := mk().Challenges(4)
	b := mk().Challenges(4)
	for i := range a {
		if !a[i].Equal(&b[i]) {
			t.Fatalf("challenge #%d diverged: %s vs %s", i, a[i].String(), b[i].String())
		}
	}
}

func TestChallengesAdvanceState(t *testing.T) {
	tr := New("test-protocol")
	c1 := tr.Challenge()
	c2 := tr.Challenge()
	if c1.Equal(&c2) {
		t.Fatal("consecutive challenges are identical")
	}
}

func TestAbsorbedDataBindsChallenges(t *testing.T) {
	t1 := New("test-protocol")
	t1.Append("msg", []byte{1})
	t2 := New("test-protocol")
	t2.Append("msg", []byte{2})
	c1 := t1.Challenge()
	c2 := t2.Challenge()
	if c1.Equal(&c2) {
		t.Fatal("different messages produced the same challenge")
	}
}

func TestLabelsBindChallenges(t *testing.T) {
	t1 := New("test-protocol")
	t1.Append("a", []byte{1})
	t2 := New("test-protocol")
	t2.Append("b", []byte{1})
	c1 := t1.Challenge()
	c2 := t2.Challenge()
	if c1.Equal(&c2) {
		t.Fatal("different labels produced the same challenge")
	}
}

func TestLengthPrefixingSeparatesParts(t *testing.T) {
	t1 := New("test-protocol")
	t1.Append("msg", []byte{1, 2}, []byte{3})
	t2 := New("test-protocol")
	t2.Append("msg", []byte{1}, []byte{2, 3})
	c1 := t1.Challenge()
	c2 := t2.Challenge()
	if c1.Equal(&c2) {
		t.Fatal("different part splits produced the same challenge")
	}
}
