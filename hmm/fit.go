package hmm

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsign/sequence"
)

// Fit trains a Gaussian-emission HMM on ds by expectation-maximization.
//
// Contracts:
//   - cfg.NumStates ≥ 1; ds satisfies its invariant; ds holds at least
//     cfg.NumStates frames.
//   - Deterministic: identical ds + cfg.Seed produce an identical model.
//   - Runs at most cfg.MaxIter iterations (default 1000), stopping
//     early once the log-likelihood gain drops below cfg.Tol (default
//     1e-2). Reaching the cap is NOT a failure.
//
// Errors: ErrBadStateCount, ErrEmptyDataset, ErrTooFewFrames, Dataset
// validation errors, ErrNumericalFailure (EM produced a
// zero-probability sequence).
//
// Complexity: O(MaxIter·F·S²) time, O(Fmax·S) space with Fmax the
// longest sequence.
func Fit(ds sequence.Dataset, cfg Config) (*Model, error) {
	if cfg.NumStates < 1 {
		return nil, ErrBadStateCount
	}
	if ds.X == nil || ds.NumFrames() == 0 {
		return nil, ErrEmptyDataset
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if ds.NumFrames() < cfg.NumStates {
		return nil, ErrTooFewFrames
	}

	maxIter := cfg.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	tol := cfg.Tol
	if tol <= 0 {
		tol = DefaultTol
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := initialModel(ds, cfg.NumStates, cfg.Seed)

	var (
		ll    float64
		prev  = math.Inf(-1)
		iters int
		err   error
	)
	for it := 0; it < maxIter; it++ {
		ll, err = m.emStep(ds)
		if err != nil {
			return nil, err
		}
		iters = it + 1
		if it > 0 && ll-prev < tol {
			break
		}
		prev = ll
	}
	logger.Debug("hmm fit finished",
		zap.Int("states", cfg.NumStates),
		zap.Int("iterations", iters),
		zap.Float64("logL", ll),
	)

	return m, nil
}

// initialModel seeds the EM: uniform start/transition distributions,
// state means anchored at evenly spaced frames plus a small seeded
// jitter, variances at the global per-feature variance.
func initialModel(ds sequence.Dataset, states int, seed int64) *Model {
	var (
		n   = ds.NumFrames()
		d   = ds.NumFeatures()
		rng = rand.New(rand.NewSource(seed))
	)

	// Global per-feature mean and (population) variance.
	gMean := make([]float64, d)
	gVar := make([]float64, d)
	for t := 0; t < n; t++ {
		frame := ds.X.RawRowView(t)
		for f := 0; f < d; f++ {
			gMean[f] += frame[f]
			gVar[f] += frame[f] * frame[f]
		}
	}
	for f := 0; f < d; f++ {
		gMean[f] /= float64(n)
		gVar[f] = gVar[f]/float64(n) - gMean[f]*gMean[f]
		if gVar[f] < varFloor {
			gVar[f] = varFloor
		}
	}

	m := &Model{
		states:   states,
		features: d,
		logInit:  make([]float64, states),
		logTrans: make([]float64, states*states),
		mean:     make([]float64, states*d),
		vari:     make([]float64, states*d),
	}

	logUniform := -math.Log(float64(states))
	for s := 0; s < states; s++ {
		m.logInit[s] = logUniform
		for j := 0; j < states; j++ {
			m.logTrans[s*states+j] = logUniform
		}
		// Anchor state s at the frame a fraction (2s+1)/(2·states)
		// through the data, so states start spread across the word.
		anchor := ds.X.RawRowView((2*s + 1) * n / (2 * states))
		for f := 0; f < d; f++ {
			m.mean[s*d+f] = anchor[f] + 0.01*math.Sqrt(gVar[f])*rng.NormFloat64()
			m.vari[s*d+f] = gVar[f]
		}
	}

	return m
}

// emStep runs one full EM iteration over every sequence of ds and
// updates the model in place. The returned log-likelihood is the one
// computed under the pre-update parameters.
func (m *Model) emStep(ds sequence.Dataset) (float64, error) {
	var (
		s = m.states
		d = m.features

		initSum  = make([]float64, s)
		transSum = make([]float64, s*s)
		wSum     = make([]float64, s)
		wObs     = make([]float64, s*d)
		wObsSq   = make([]float64, s*d)
		tmp      = make([]float64, s)

		total  float64
		offset int
	)
	for _, n := range ds.Lengths {
		ll, err := m.accumulate(ds.X, offset, n, initSum, transSum, wSum, wObs, wObsSq, tmp)
		if err != nil {
			return 0, err
		}
		total += ll
		offset += n
	}

	// M-step: start distribution.
	nSeq := float64(len(ds.Lengths))
	for i := 0; i < s; i++ {
		if initSum[i] > 0 {
			m.logInit[i] = math.Log(initSum[i] / nSeq)
		} else {
			m.logInit[i] = math.Inf(-1)
		}
	}

	// M-step: transitions. A row with no outgoing mass (state only
	// ever visited at sequence ends, or never) keeps its old row.
	for i := 0; i < s; i++ {
		row := transSum[i*s : (i+1)*s]
		den := floats.Sum(row)
		if den <= 0 {
			continue
		}
		for j := 0; j < s; j++ {
			if row[j] > 0 {
				m.logTrans[i*s+j] = math.Log(row[j] / den)
			} else {
				m.logTrans[i*s+j] = math.Inf(-1)
			}
		}
	}

	// M-step: emissions. A state with no responsibility keeps its old
	// parameters; variances are floored.
	for i := 0; i < s; i++ {
		if wSum[i] <= 0 {
			continue
		}
		for f := 0; f < d; f++ {
			mu := wObs[i*d+f] / wSum[i]
			v := wObsSq[i*d+f]/wSum[i] - mu*mu
			if v < varFloor {
				v = varFloor
			}
			m.mean[i*d+f] = mu
			m.vari[i*d+f] = v
		}
	}

	return total, nil
}

// accumulate runs forward-backward over one sequence segment and adds
// its sufficient statistics into the accumulators. Returns the
// segment's log-likelihood under the current parameters.
func (m *Model) accumulate(
	x *mat.Dense, offset, n int,
	initSum, transSum, wSum, wObs, wObsSq, tmp []float64,
) (float64, error) {
	var (
		s = m.states
		d = m.features
	)

	// Emission log densities for every (frame, state).
	logB := make([]float64, n*s)
	for t := 0; t < n; t++ {
		frame := x.RawRowView(offset + t)
		for j := 0; j < s; j++ {
			logB[t*s+j] = m.frameLogProb(frame, j)
		}
	}

	// Forward pass.
	alpha := make([]float64, n*s)
	for j := 0; j < s; j++ {
		alpha[j] = m.logInit[j] + logB[j]
	}
	for t := 1; t < n; t++ {
		for j := 0; j < s; j++ {
			for i := 0; i < s; i++ {
				tmp[i] = alpha[(t-1)*s+i] + m.logTrans[i*s+j]
			}
			alpha[t*s+j] = floats.LogSumExp(tmp) + logB[t*s+j]
		}
	}
	ll := floats.LogSumExp(alpha[(n-1)*s : n*s])
	if math.IsNaN(ll) || math.IsInf(ll, -1) {
		return 0, ErrNumericalFailure
	}

	// Backward pass. The zero-valued last row is log(1).
	beta := make([]float64, n*s)
	for t := n - 2; t >= 0; t-- {
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				tmp[j] = m.logTrans[i*s+j] + logB[(t+1)*s+j] + beta[(t+1)*s+j]
			}
			beta[t*s+i] = floats.LogSumExp(tmp)
		}
	}

	// State responsibilities (gamma) → start + emission statistics.
	for t := 0; t < n; t++ {
		frame := x.RawRowView(offset + t)
		for j := 0; j < s; j++ {
			g := math.Exp(alpha[t*s+j] + beta[t*s+j] - ll)
			if t == 0 {
				initSum[j] += g
			}
			wSum[j] += g
			for f := 0; f < d; f++ {
				wObs[j*d+f] += g * frame[f]
				wObsSq[j*d+f] += g * frame[f] * frame[f]
			}
		}
	}

	// Pair responsibilities (xi) → transition statistics.
	for t := 0; t+1 < n; t++ {
		for i := 0; i < s; i++ {
			ai := alpha[t*s+i]
			if math.IsInf(ai, -1) {
				continue
			}
			for j := 0; j < s; j++ {
				transSum[i*s+j] += math.Exp(ai + m.logTrans[i*s+j] + logB[(t+1)*s+j] + beta[(t+1)*s+j] - ll)
			}
		}
	}

	return ll, nil
}
