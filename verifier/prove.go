package verifier

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"sumcheck-verifier/transcript"
)

// Prove produces an honest proof over the table's hypercube evaluations by
// replaying the same Fiat-Shamir transcript Verify does. It is a reference
// prover for tests and benchmark tooling; a production prover would commit
// the table and open the evaluations through the commitment scheme.
func Prove(q Query, evals []fr.Element, open Openings) *Proof {
	proof := &Proof{
		Claim:          sumOf(evals),
		FirstRoundMLEs: open.FirstRoundMLEs,
		FinalRoundMLEs: open.FinalRoundMLEs,
		ChiEvaluations: open.ChiEvaluations,
		RhoEvaluations: open.RhoEvaluations,
	}
	t := transcript.New("sumcheck-verification")
	t.AppendElements("claim", []fr.Element{proof.Claim})
	t.AppendElements("first-round-mles", proof.FirstRoundMLEs)
	proof.Sumcheck, _ = proveRounds(evals, func(coeffs []fr.Element) fr.Element {
		t.AppendElements("round-coefficients", coeffs)
		return t.Challenge()
	})
	return proof
}

// proveRounds produces linear round polynomials for the multilinear
// extension of evals, whose length must be a power of two. Challenges come
// from next, which sees each round's coefficients before answering; the
// folded table halves per round until only the final evaluation remains,
// which is returned alongside the proof.
func proveRounds(evals []fr.Element, next func(coeffs []fr.Element) fr.Element) (SumcheckProof, fr.Element) {
	table := append([]fr.Element(nil), evals...)
	var proof SumcheckProof
	for len(table) > 1 {
		half := len(table) / 2
		var c0, c1 fr.Element
		for j := 0; j < half; j++ {
			c0.Add(&c0, &table[j])
			var d fr.Element
			d.Sub(&table[j+half], &table[j])
			c1.Add(&c1, &d)
		}
		coeffs := []fr.Element{c0, c1}
		proof.RoundCoefficients = append(proof.RoundCoefficients, coeffs)
		r := next(coeffs)
		for j := 0; j < half; j++ {
			var d fr.Element
			d.Sub(&table[j+half], &table[j])
			d.Mul(&d, &r)
			table[j].Add(&table[j], &d)
		}
		table = table[:half]
	}
	return proof, table[0]
}

// sumOf adds up a table's evaluations, giving the claim the sumcheck proves.
func sumOf(evals []fr.Element) fr.Element {
	var s fr.Element
	for i := range evals {
		s.Add(&s, &evals[i])
	}
	return s
}
