package selector

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsign/sequence"
)

// Sentinel errors returned by Select and SelectAll. Training and
// scoring failures never appear here; they are absorbed by the search
// (see the package documentation).
var (
	// ErrUnknownStrategy indicates an Options.Strategy outside the
	// defined set.
	ErrUnknownStrategy = errors.New("selector: unknown selection strategy")

	// ErrBadStateRange indicates MinStates/MaxStates violating
	// 1 ≤ MinStates ≤ MaxStates.
	ErrBadStateRange = errors.New("selector: state range must satisfy 1 <= MinStates <= MaxStates")

	// ErrBadConstantStates indicates ConstantStates below 1.
	ErrBadConstantStates = errors.New("selector: ConstantStates must be at least 1")

	// ErrUnknownWord indicates a target word missing from the corpus.
	ErrUnknownWord = errors.New("selector: word not present in corpus")

	// ErrVocabularyTooSmall indicates DIC selection over a one-word
	// vocabulary: with no other words there is nothing to contrast
	// against, so the criterion is undefined.
	ErrVocabularyTooSmall = errors.New("selector: DIC requires at least two vocabulary words")
)

// Strategy names one of the four selection criteria.
type Strategy int

const (
	// Constant fits at ConstantStates, ignoring the search range.
	Constant Strategy = iota

	// BIC minimizes the Bayesian Information Criterion.
	BIC

	// DIC maximizes the Discriminative Information Criterion.
	DIC

	// CrossValidation maximizes mean held-out fold log-likelihood.
	CrossValidation
)

// String reports the strategy name for logs and errors.
func (s Strategy) String() string {
	switch s {
	case Constant:
		return "Constant"
	case BIC:
		return "BIC"
	case DIC:
		return "DIC"
	case CrossValidation:
		return "CrossValidation"
	default:
		return "Unknown"
	}
}

// Model is what a Trainer produces and Select returns: an opaque
// trained handle that can report its complexity and score a Dataset.
// *hmm.Model satisfies it via GaussianTrainer.
type Model interface {
	Score(ds sequence.Dataset) (float64, error)
	NumStates() int
}

// Trainer is the fitting primitive the search drives. Fit may fail
// (non-convergence, degenerate data); Select treats any error as
// "no model at this complexity".
type Trainer interface {
	Fit(ds sequence.Dataset, numStates int, seed int64) (Model, error)
}

// Options configures a selection run.
//
// Strategy       – which criterion drives the search.
// MinStates      – lower bound of the candidate range (inclusive).
// MaxStates      – upper bound; inclusive for BIC/CrossValidation,
// exclusive for DIC (see the package documentation).
// ConstantStates – state count for the Constant strategy and for the
// fallback when a search exhausts every candidate.
// Seed           – passed to every fit; fixes the whole run.
// Logger         – optional trace logger; nil means no logging.
type Options struct {
	Strategy       Strategy
	MinStates      int
	MaxStates      int
	ConstantStates int
	Seed           int64
	Logger         *zap.Logger
}

// DefaultOptions returns the canonical configuration: Constant
// strategy, candidate range [2, 10], fallback at 3 states, seed 14.
func DefaultOptions() Options {
	return Options{
		Strategy:       Constant,
		MinStates:      2,
		MaxStates:      10,
		ConstantStates: 3,
		Seed:           14,
	}
}

// validate rejects configuration mistakes before any fitting starts.
func (o Options) validate() error {
	if o.MinStates < 1 || o.MaxStates < o.MinStates {
		return ErrBadStateRange
	}
	if o.ConstantStates < 1 {
		return ErrBadConstantStates
	}
	if o.Strategy < Constant || o.Strategy > CrossValidation {
		return ErrUnknownStrategy
	}

	return nil
}

// logger returns the configured logger or a nop one.
func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
