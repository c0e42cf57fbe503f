package verifier

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// VerificationBuilder marshals the values a verifier consumes while checking
// a multi-round proof: round challenges and the partial polynomial
// evaluations supplied by the prover. It owns five independent FIFO queues,
// each populated once from the proof transcript and then drained in the order
// the protocol rounds dictate.
//
// A builder is exclusively owned by the single verification call that
// allocated it. It is not safe for concurrent or reentrant use, and the
// slices handed to the setters are borrowed, not copied: mutating or freeing
// them before the verification call returns is a caller bug.
type VerificationBuilder struct {
	challenges     evalQueue
	firstRoundMLEs evalQueue
	finalRoundMLEs evalQueue
	chiEvaluations evalQueue
	rhoEvaluations evalQueue
}

// SetChallenges points the challenge queue at the given borrowed slice.
// Calling it again silently discards the previous cursor state.
func (b *VerificationBuilder) SetChallenges(data []fr.Element) {
	b.challenges.set(data)
}

// ConsumeChallenge returns the next round challenge in supply order, or
// ErrTooFewChallenges once the queue is dry.
func (b *VerificationBuilder) ConsumeChallenge() (fr.Element, error) {
	return b.challenges.consume(ErrTooFewChallenges)
}

// SetFirstRoundMLEs points the first-round evaluation queue at the given
// borrowed slice. Calling it again silently discards the previous cursor
// state.
func (b *VerificationBuilder) SetFirstRoundMLEs(data []fr.Element) {
	b.firstRoundMLEs.set(data)
}

// ConsumeFirstRoundMLE returns the next first-round evaluation, or
// ErrTooFewFirstRoundMLEs once the queue is dry.
func (b *VerificationBuilder) ConsumeFirstRoundMLE() (fr.Element, error) {
	return b.firstRoundMLEs.consume(ErrTooFewFirstRoundMLEs)
}

// SetFinalRoundMLEs points the final-round evaluation queue at the given
// borrowed slice. Calling it again silently discards the previous cursor
// state.
func (b *VerificationBuilder) SetFinalRoundMLEs(data []fr.Element) {
	b.finalRoundMLEs.set(data)
}

// ConsumeFinalRoundMLE returns the next final-round evaluation, or
// ErrTooFewFinalRoundMLEs once the queue is dry.
func (b *VerificationBuilder) ConsumeFinalRoundMLE() (fr.Element, error) {
	return b.finalRoundMLEs.consume(ErrTooFewFinalRoundMLEs)
}

// SetChiEvaluations points the chi-evaluation queue at the given borrowed
// slice. Calling it again silently discards the previous cursor state.
func (b *VerificationBuilder) SetChiEvaluations(data []fr.Element) {
	b.chiEvaluations.set(data)
}

// ConsumeChiEvaluation returns the next chi evaluation, or
// ErrTooFewChiEvaluations once the queue is dry.
func (b *VerificationBuilder) ConsumeChiEvaluation() (fr.Element, error) {
	return b.chiEvaluations.consume(ErrTooFewChiEvaluations)
}

// SetRhoEvaluations points the rho-evaluation queue at the given borrowed
// slice. Calling it again silently discards the previous cursor state.
func (b *VerificationBuilder) SetRhoEvaluations(data []fr.Element) {
	b.rhoEvaluations.set(data)
}

// ConsumeRhoEvaluation returns the next rho evaluation, or
// ErrTooFewRhoEvaluations once the queue is dry.
func (b *VerificationBuilder) ConsumeRhoEvaluation() (fr.Element, error) {
	return b.rhoEvaluations.consume(ErrTooFewRhoEvaluations)
}
