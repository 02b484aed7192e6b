package hmm

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by fitting and scoring.
var (
	// ErrBadStateCount indicates Config.NumStates below 1.
	ErrBadStateCount = errors.New("hmm: NumStates must be at least 1")

	// ErrEmptyDataset indicates a dataset without frames.
	ErrEmptyDataset = errors.New("hmm: dataset must contain at least one frame")

	// ErrTooFewFrames indicates fewer frames than hidden states, which
	// leaves some states without any data to claim.
	ErrTooFewFrames = errors.New("hmm: dataset must contain at least NumStates frames")

	// ErrDimensionMismatch indicates scoring data whose feature
	// dimension differs from the training data's.
	ErrDimensionMismatch = errors.New("hmm: dataset feature dimension differs from the model's")

	// ErrNumericalFailure indicates a degenerate forward pass: the
	// model assigns the data zero probability (or the recursion
	// produced NaN). Callers treat this as a non-fatal candidate
	// failure.
	ErrNumericalFailure = errors.New("hmm: numerical failure in the forward pass")
)

// Defaults mirror the usual Gaussian-HMM training setup: a long
// iteration cap with an early-stopping tolerance, and a fixed seed so
// repeated fits are bit-identical.
const (
	DefaultMaxIter = 1000
	DefaultTol     = 1e-2
	DefaultSeed    = 14
)

// varFloor keeps diagonal variances strictly positive; without it a
// state that captures near-identical frames collapses the density.
const varFloor = 1e-8

// Config drives one fit.
//
// NumStates – hidden-state count (≥1).
// MaxIter   – EM iteration cap; ≤0 means DefaultMaxIter.
// Tol       – stop once the per-iteration log-likelihood gain falls
// below this; ≤0 means DefaultTol.
// Seed      – seeds the jitter of the initial state means; identical
// data + seed ⇒ identical model.
// Logger    – optional trace logger; nil means no logging.
type Config struct {
	NumStates int
	MaxIter   int
	Tol       float64
	Seed      int64
	Logger    *zap.Logger
}

// DefaultConfig returns a Config for numStates hidden states with the
// package defaults (MaxIter=1000, Tol=1e-2, Seed=14, no logging).
func DefaultConfig(numStates int) Config {
	return Config{
		NumStates: numStates,
		MaxIter:   DefaultMaxIter,
		Tol:       DefaultTol,
		Seed:      DefaultSeed,
	}
}
