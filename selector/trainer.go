package selector

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsign/hmm"
	"github.com/katalvlaran/lvlsign/sequence"
)

// GaussianTrainer adapts package hmm's Gaussian-emission fitting to
// the Trainer interface. The zero value is ready to use and trains
// with hmm's defaults (MaxIter=1000, Tol=1e-2).
type GaussianTrainer struct {
	// MaxIter overrides the EM iteration cap when positive.
	MaxIter int

	// Tol overrides the EM stopping tolerance when positive.
	Tol float64

	// Logger is handed to every fit; nil means no logging.
	Logger *zap.Logger
}

// Fit trains a diagonal-covariance Gaussian HMM with numStates hidden
// states on ds, seeded with seed.
func (g GaussianTrainer) Fit(ds sequence.Dataset, numStates int, seed int64) (Model, error) {
	cfg := hmm.DefaultConfig(numStates)
	cfg.Seed = seed
	if g.MaxIter > 0 {
		cfg.MaxIter = g.MaxIter
	}
	if g.Tol > 0 {
		cfg.Tol = g.Tol
	}
	cfg.Logger = g.Logger

	m, err := hmm.Fit(ds, cfg)
	if err != nil {
		return nil, err
	}

	return m, nil
}
