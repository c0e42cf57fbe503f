package verifier

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

// recordingOpening captures what the driver drains so tests can check order
// and the evaluation point.
type recordingOpening struct {
	point []fr.Element
	claim fr.Element
	open  Openings
	err   error
}

func (r *recordingOpening) VerifyOpenings(point []fr.Element, claim fr.Element, open Openings) error {
	r.point = point
	r.claim = claim
	r.open = open
	return r.err
}

func testQuery() (Query, []fr.Element, Openings) {
	q := Query{
		TableLength:     8,
		FirstRoundCount: 2,
		FinalRoundCount: 3,
		ChiCount:        1,
		RhoCount:        1,
	}
	evals := elems(3, 1, 4, 1, 5, 9, 2, 6)
	open := Openings{
		FirstRoundMLEs: elems(10, 11),
		FinalRoundMLEs: elems(20, 21, 22),
		ChiEvaluations: elems(30),
		RhoEvaluations: elems(40),
	}
	return q, evals, open
}

func TestVerifyHonestProof(t *testing.T) {
	q, evals, open := testQuery()
	proof := Prove(q, evals, open)

	var a Arena
	rec := &recordingOpening{}
	require.NoError(t, Verify(&a, q, proof, rec))
	require.Len(t, rec.point, q.Rounds())
	require.Equal(t, open, rec.open)

	// The drained final claim must equal the multilinear extension of the
	// table at the consumed challenge point.
	i := 0
	_, wantFinal := proveRounds(evals, func([]fr.Element) fr.Element {
		r := rec.point[i]
		i++
		return r
	})
	require.True(t, rec.claim.Equal(&wantFinal), "final claim mismatch")
}

func TestVerifyRejectsShortQueues(t *testing.T) {
	q, evals, open := testQuery()

	// The prover commits the short queue so the transcript stays consistent
	// and the failure is exhaustion, not a challenge mismatch.
	tests := []struct {
		name    string
		mutate  func(o *Openings)
		wantErr error
	}{
		{"first-round", func(o *Openings) { o.FirstRoundMLEs = o.FirstRoundMLEs[:1] }, ErrTooFewFirstRoundMLEs},
		{"final-round", func(o *Openings) { o.FinalRoundMLEs = o.FinalRoundMLEs[:2] }, ErrTooFewFinalRoundMLEs},
		{"chi", func(o *Openings) { o.ChiEvaluations = nil }, ErrTooFewChiEvaluations},
		{"rho", func(o *Openings) { o.RhoEvaluations = nil }, ErrTooFewRhoEvaluations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			short := open
			tt.mutate(&short)
			proof := Prove(q, evals, short)
			var a Arena
			err := Verify(&a, q, proof, &recordingOpening{})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyRejectsTamperedClaim(t *testing.T) {
	q, evals, open := testQuery()
	proof := Prove(q, evals, open)
	var one fr.Element
	one.SetOne()
	proof.Claim.Add(&proof.Claim, &one)

	var a Arena
	err := Verify(&a, q, proof, &recordingOpening{})
	require.ErrorIs(t, err, ErrRoundSumMismatch)
}

func TestVerifyRejectsWrongRoundCount(t *testing.T) {
	q, evals, open := testQuery()
	proof := Prove(q, evals, open)
	proof.Sumcheck.RoundCoefficients = proof.Sumcheck.RoundCoefficients[:2]

	var a Arena
	require.Error(t, Verify(&a, q, proof, &recordingOpening{}))
}

func TestVerifyPropagatesOpeningFailure(t *testing.T) {
	q, evals, open := testQuery()
	proof := Prove(q, evals, open)

	var a Arena
	rec := &recordingOpening{err: ErrRoundSumMismatch}
	require.ErrorIs(t, Verify(&a, q, proof, rec), ErrRoundSumMismatch)
}

func TestVerifyIndependentCallsShareArena(t *testing.T) {
	q, evals, open := testQuery()
	var a Arena
	for i := 0; i < 3; i++ {
		proof := Prove(q, evals, open)
		require.NoError(t, Verify(&a, q, proof, &recordingOpening{}))
	}
	a.Reset()
	proof := Prove(q, evals, open)
	require.NoError(t, Verify(&a, q, proof, &recordingOpening{}))
}
