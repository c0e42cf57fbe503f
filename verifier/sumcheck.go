package verifier

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// SumcheckProof carries the prover's round messages: one coefficient vector
// per round, low degree first.
type SumcheckProof struct {
	RoundCoefficients [][]fr.Element
}

// VerifySumcheck runs the multi-round sumcheck check against the builder's
// challenge queue. Each round it checks that the round polynomial p satisfies
// p(0) + p(1) == claim, consumes one challenge r, and carries p(r) forward as
// the next claim. It returns the evaluation point (the consumed challenges in
// round order) and the final claim the caller must match against the opened
// multilinear evaluations.
//
// Any failure aborts the whole verification: a wrong round sum yields
// ErrRoundSumMismatch, a dry challenge queue propagates ErrTooFewChallenges.
func VerifySumcheck(b *VerificationBuilder, proof *SumcheckProof, claim fr.Element) ([]fr.Element, fr.Element, error) {
	point := make([]fr.Element, 0, len(proof.RoundCoefficients))
	for round, coeffs := range proof.RoundCoefficients {
		if len(coeffs) == 0 {
			return nil, fr.Element{}, fmt.Errorf("VerifySumcheck: round %d: empty round polynomial", round)
		}
		// p(0) is the constant term; p(1) is the coefficient sum.
		sum := coeffs[0]
		for i := 1; i < len(coeffs); i++ {
			sum.Add(&sum, &coeffs[i])
		}
		sum.Add(&sum, &coeffs[0])
		if !sum.Equal(&claim) {
			return nil, fr.Element{}, fmt.Errorf("VerifySumcheck: round %d: %w", round, ErrRoundSumMismatch)
		}
		r, err := b.ConsumeChallenge()
		if err != nil {
			return nil, fr.Element{}, fmt.Errorf("VerifySumcheck: round %d: %w", round, err)
		}
		point = append(point, r)
		claim = hornerEval(coeffs, r)
	}
	return point, claim, nil
}

// hornerEval evaluates the polynomial with the given low-to-high coefficients
// at x.
func hornerEval(coeffs []fr.Element, x fr.Element) fr.Element {
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &coeffs[i])
	}
	return acc
}
