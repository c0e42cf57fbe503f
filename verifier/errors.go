package verifier

import "errors"

// Queue exhaustion errors. Each of the builder's value queues reports
// underflow with its own sentinel so diagnostics can name the starved queue;
// the calling layer must treat every one of them as total verification
// failure and must not resume a builder past an exhaustion event.
var (
	ErrTooFewChallenges     = errors.New("verifier: too few challenges")
	ErrTooFewFirstRoundMLEs = errors.New("verifier: too few first round mles")
	ErrTooFewFinalRoundMLEs = errors.New("verifier: too few final round mles")
	ErrTooFewChiEvaluations = errors.New("verifier: too few chi evaluations")
	ErrTooFewRhoEvaluations = errors.New("verifier: too few rho evaluations")
)

// ErrRoundSumMismatch reports a sumcheck round polynomial whose evaluations
// at 0 and 1 do not add up to the running claim.
var ErrRoundSumMismatch = errors.New("verifier: sumcheck round sum mismatch")
