// Package hmm implements a Gaussian-emission hidden Markov model with
// diagonal covariance: seeded Baum-Welch fitting and log-space forward
// scoring over concatenated frame sequences.
//
// The package exists to satisfy one contract: given a
// sequence.Dataset, a hidden-state count and a seed, produce a trained
// model or fail — and let that model report the log-likelihood of any
// other Dataset. Selection strategies (package selector) consume it
// through exactly this surface and treat every failure as "this
// candidate is unavailable".
//
// Fitting:
//
//   - Expectation-maximization over all sequences of the Dataset,
//     each sequence contributing an independent forward-backward pass.
//   - Initialization is deterministic in the seed: uniform start and
//     transition distributions, state means anchored at evenly spaced
//     frames with a small seeded jitter, variances set to the global
//     per-feature variance.
//   - Iterates until the log-likelihood gain drops below Config.Tol or
//     Config.MaxIter is reached (default 1000); hitting the cap is not
//     an error.
//   - Variances are floored at 1e-8 to keep the recursion alive on
//     near-constant features.
//
// Scoring:
//
//	Log-space forward algorithm per sequence, summed across the
//	Dataset's sequences. A sequence the model assigns zero probability
//	to surfaces as ErrNumericalFailure, never as -Inf.
//
// Complexity per EM iteration and per score: O(F·S²) time with
// F = frames, S = states (plus O(F·S·D) for emission densities).
package hmm
