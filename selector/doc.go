// Package selector picks, for each vocabulary word, the best-fitting
// hidden-state count for its HMM — searching a configured candidate
// range and judging each candidate with one of four criteria.
//
// Strategies:
//
//   - Constant        — no search; always fit at Options.ConstantStates.
//   - BIC             — minimize -2·logL + p·ln(N), where p counts the
//     free transition and diagonal-Gaussian emission parameters.
//     Penalizes complexity; inclusive range [MinStates, MaxStates].
//   - DIC             — maximize logL(word) − mean(logL(other words)):
//     reward models that fit their own word and nothing else.
//     Searches [MinStates, MaxStates) — the upper bound is EXCLUSIVE,
//     kept so existing setups keep selecting the same complexities.
//     Needs at least two vocabulary words.
//   - CrossValidation — maximize the mean held-out log-likelihood over
//     a deterministic contiguous 2-fold split of the word's own
//     sequences, then refit at the winning count on the full data.
//     Inclusive range.
//
// Failure discipline:
//
//	A candidate whose fit or scoring fails is skipped, never fatal.
//	If no candidate in the range survives, Select falls back to
//	fitting at Options.ConstantStates; if even that fit fails, Select
//	returns a nil model with a nil error — "this word has no usable
//	model" is a legitimate result. Only configuration mistakes
//	(bad ranges, unknown strategy or word, a one-word vocabulary under
//	DIC) surface as errors.
//
// The search talks to any Trainer; the bundled GaussianTrainer adapts
// package hmm. All fits share Options.Seed, so selection is
// deterministic end to end.
package selector
