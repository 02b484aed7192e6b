package selector

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsign/sequence"
)

// selectBIC searches [MinStates, MaxStates] inclusive and returns the
// candidate minimizing
//
//	BIC = -2·logL + p·ln(N)
//
// with N the total frame count and p the free-parameter count of an
// n-state diagonal-Gaussian HMM over d features:
//
//	p = n² + 2·d·n − 1
//
// (n² transition entries and 2·d·n emission means/variances, minus
// one normalization constraint). Ties keep the first — and therefore
// simplest — candidate, since only a strictly lower score replaces
// the incumbent. Returns nil when every candidate fails.
func selectBIC(t Trainer, ds sequence.Dataset, opts Options, log *zap.Logger) Model {
	var (
		best      Model
		bestScore = math.Inf(1)
		d         = float64(ds.NumFeatures())
		logN      = math.Log(float64(ds.NumFrames()))
	)
	for states := opts.MinStates; states <= opts.MaxStates; states++ {
		m := fitAt(t, ds, states, opts.Seed, log)
		if m == nil {
			continue
		}
		logL, err := m.Score(ds)
		if err != nil {
			log.Debug("candidate score failed", zap.Int("states", states), zap.Error(err))
			continue
		}

		p := float64(states*states) + 2*d*float64(states) - 1
		score := -2*logL + p*logN
		log.Debug("bic candidate", zap.Int("states", states), zap.Float64("bic", score))
		if score < bestScore {
			bestScore, best = score, m
		}
	}

	return best
}
