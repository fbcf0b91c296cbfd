package services

import (
	"math/rand/v2"

	"storefront/internal/pkg/errs"
)

// DefaultFailureProbability is the chance that a single payment or shipment
// attempt fails: 1 in 20.
const DefaultFailureProbability = 0.05

// FailurePolicy decides whether a simulated operation attempt fails.
// Production code wires in a random policy; tests inject a fixed one to
// force deterministic success or failure.
type FailurePolicy interface {
	// ShouldFail reports whether the current attempt fails. Each call is an
	// independent decision.
	ShouldFail() bool
}

// RandomFailurePolicy fails each attempt independently with a fixed
// probability, using the process-global math/rand/v2 generator.
type RandomFailurePolicy struct {
	probability float64
}

// NewRandomFailurePolicy creates a policy failing with the given
// probability. The probability must lie in [0, 1].
func NewRandomFailurePolicy(probability float64) (RandomFailurePolicy, error) {
	if probability < 0 || probability > 1 {
		return RandomFailurePolicy{}, errs.NewValueIsOutOfRangeError("probability", probability, 0, 1)
	}

	return RandomFailurePolicy{probability: probability}, nil
}

// NewDefaultFailurePolicy creates a random policy with
// DefaultFailureProbability.
func NewDefaultFailurePolicy() RandomFailurePolicy {
	policy, _ := NewRandomFailurePolicy(DefaultFailureProbability)
	return policy
}

// Probability returns the configured failure probability.
func (p RandomFailurePolicy) Probability() float64 {
	return p.probability
}

// ShouldFail draws an independent random decision per call.
func (p RandomFailurePolicy) ShouldFail() bool {
	return rand.Float64() < p.probability //nolint:gosec // simulated failures need no crypto randomness
}

// FixedFailurePolicy always returns the same decision. Used by tests and
// demos to force an outcome.
type FixedFailurePolicy struct {
	fail bool
}

// NewFixedFailurePolicy creates a policy that always fails when fail is
// true and always succeeds otherwise.
func NewFixedFailurePolicy(fail bool) FixedFailurePolicy {
	return FixedFailurePolicy{fail: fail}
}

// ShouldFail returns the configured decision.
func (p FixedFailurePolicy) ShouldFail() bool {
	return p.fail
}
