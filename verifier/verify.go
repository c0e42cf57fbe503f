// Package verifier implements the verifier-side value plumbing of a
// multi-round sumcheck proof: an arena-allocated verification builder whose
// queues release transcript values to the round checks, and the driver that
// runs one whole verification over them. The builder fails closed: any queue
// running dry aborts the entire verification with the queue's own error.
package verifier

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"sumcheck-verifier/internal/mathutil"
	"sumcheck-verifier/transcript"
)

// Proof bundles the prover's transcript values for one verification: the
// evaluation queues' contents plus the sumcheck round messages and the
// claimed total sum.
type Proof struct {
	Claim          fr.Element
	Sumcheck       SumcheckProof
	FirstRoundMLEs []fr.Element
	FinalRoundMLEs []fr.Element
	ChiEvaluations []fr.Element
	RhoEvaluations []fr.Element
}

// Query describes the verifier-side shape of the statement under check. The
// counts come from the query plan, never from the proof itself, so a proof
// carrying too few values underflows the matching queue.
type Query struct {
	TableLength     uint64
	FirstRoundCount int
	FinalRoundCount int
	ChiCount        int
	RhoCount        int
}

// Rounds is the sumcheck round count for the query's table length.
func (q Query) Rounds() int {
	return int(mathutil.Log2Up(q.TableLength))
}

// Openings collects the values drained from the builder, in consumption
// order, for the commitment-scheme opening check.
type Openings struct {
	FirstRoundMLEs []fr.Element
	FinalRoundMLEs []fr.Element
	ChiEvaluations []fr.Element
	RhoEvaluations []fr.Element
}

// OpeningVerifier validates the drained evaluations against the commitment
// scheme. Pairing work and PCS-specific consistency checks live behind this
// interface; the builder core only routes values to it.
type OpeningVerifier interface {
	VerifyOpenings(point []fr.Element, claim fr.Element, open Openings) error
}

// Verify checks one proof end to end: it allocates a builder from the arena,
// replays the Fiat-Shamir transcript to derive the round challenges,
// populates every queue once, runs the sumcheck rounds, and drains the
// evaluation queues into the opening verifier. Any queue underflow, round
// mismatch, or opening failure rejects the proof outright; no partial result
// escapes.
func Verify(a *Arena, q Query, proof *Proof, opening OpeningVerifier) error {
	b := a.Builder(a.Allocate())

	rounds := q.Rounds()
	if len(proof.Sumcheck.RoundCoefficients) != rounds {
		return fmt.Errorf("Verify: expected %d sumcheck rounds, got %d", rounds, len(proof.Sumcheck.RoundCoefficients))
	}

	t := transcript.New("sumcheck-verification")
	t.AppendElements("claim", []fr.Element{proof.Claim})
	t.AppendElements("first-round-mles", proof.FirstRoundMLEs)
	challenges := make([]fr.Element, 0, rounds)
	for _, coeffs := range proof.Sumcheck.RoundCoefficients {
		t.AppendElements("round-coefficients", coeffs)
		challenges = append(challenges, t.Challenge())
	}

	b.SetChallenges(challenges)
	b.SetFirstRoundMLEs(proof.FirstRoundMLEs)
	b.SetFinalRoundMLEs(proof.FinalRoundMLEs)
	b.SetChiEvaluations(proof.ChiEvaluations)
	b.SetRhoEvaluations(proof.RhoEvaluations)

	point, finalClaim, err := VerifySumcheck(b, &proof.Sumcheck, proof.Claim)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}

	var open Openings
	if open.FirstRoundMLEs, err = drain(b.ConsumeFirstRoundMLE, q.FirstRoundCount); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if open.FinalRoundMLEs, err = drain(b.ConsumeFinalRoundMLE, q.FinalRoundCount); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if open.ChiEvaluations, err = drain(b.ConsumeChiEvaluation, q.ChiCount); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if open.RhoEvaluations, err = drain(b.ConsumeRhoEvaluation, q.RhoCount); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}

	if opening != nil {
		if err := opening.VerifyOpenings(point, finalClaim, open); err != nil {
			return fmt.Errorf("Verify: openings: %w", err)
		}
	}
	return nil
}

// drain consumes n elements through one queue's consume operation.
func drain(consume func() (fr.Element, error), n int) ([]fr.Element, error) {
	out := make([]fr.Element, 0, n)
	for i := 0; i < n; i++ {
		v, err := consume()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
