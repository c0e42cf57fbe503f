package verifier

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func benchElems(b *testing.B, n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		if _, err := out[i].SetRandom(); err != nil {
			b.Fatalf("sample field element: %v", err)
		}
	}
	return out
}

func BenchmarkConsumeChallenge(b *testing.B) {
	data := benchElems(b, 1024)
	var vb VerificationBuilder
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%len(data) == 0 {
			vb.SetChallenges(data)
		}
		if _, err := vb.ConsumeChallenge(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	q := Query{
		TableLength:     1 << 12,
		FirstRoundCount: 4,
		FinalRoundCount: 8,
		ChiCount:        2,
		RhoCount:        2,
	}
	open := Openings{
		FirstRoundMLEs: benchElems(b, q.FirstRoundCount),
		FinalRoundMLEs: benchElems(b, q.FinalRoundCount),
		ChiEvaluations: benchElems(b, q.ChiCount),
		RhoEvaluations: benchElems(b, q.RhoCount),
	}
	proof := Prove(q, benchElems(b, int(q.TableLength)), open)
	var a Arena
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Verify(&a, q, proof, nil); err != nil {
			b.Fatal(err)
		}
	}
}
