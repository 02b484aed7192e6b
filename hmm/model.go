package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsign/sequence"
)

// Model is a trained Gaussian-emission HMM. It is an opaque handle:
// the only operations are Score, NumStates and NumFeatures. All
// parameters live in flat row-major slices and are kept in log space
// where the forward recursion needs them.
type Model struct {
	states   int
	features int

	logInit  []float64 // states
	logTrans []float64 // states×states, row-major
	mean     []float64 // states×features, row-major
	vari     []float64 // states×features, diagonal covariance
}

// NumStates reports the hidden-state count the model was fit with.
func (m *Model) NumStates() int { return m.states }

// NumFeatures reports the feature dimension the model was fit on.
func (m *Model) NumFeatures() int { return m.features }

// Score returns the total log-likelihood the model assigns to ds: one
// log-space forward pass per sequence, summed.
//
// Contracts:
//   - ds must satisfy its own invariant (Dataset.Validate).
//   - ds's feature dimension must equal the model's.
//
// Errors: Dataset validation errors, ErrDimensionMismatch,
// ErrNumericalFailure (zero-probability or NaN recursion).
//
// Complexity: O(F·S² + F·S·D) time, O(S) extra space.
func (m *Model) Score(ds sequence.Dataset) (float64, error) {
	if err := ds.Validate(); err != nil {
		return 0, err
	}
	if ds.NumFeatures() != m.features {
		return 0, ErrDimensionMismatch
	}

	var (
		total  float64
		offset int
		tmp    = make([]float64, m.states)
	)
	for _, n := range ds.Lengths {
		ll, err := m.forward(ds.X, offset, n, tmp)
		if err != nil {
			return 0, err
		}
		total += ll
		offset += n
	}

	return total, nil
}

// forward runs the log-space forward algorithm over one sequence
// segment of n frames starting at row offset and returns its
// log-likelihood.
func (m *Model) forward(x *mat.Dense, offset, n int, tmp []float64) (float64, error) {
	var (
		s    = m.states
		cur  = make([]float64, s)
		next = make([]float64, s)
	)

	frame := x.RawRowView(offset)
	for j := 0; j < s; j++ {
		cur[j] = m.logInit[j] + m.frameLogProb(frame, j)
	}
	for t := 1; t < n; t++ {
		frame = x.RawRowView(offset + t)
		for j := 0; j < s; j++ {
			for i := 0; i < s; i++ {
				tmp[i] = cur[i] + m.logTrans[i*s+j]
			}
			next[j] = floats.LogSumExp(tmp) + m.frameLogProb(frame, j)
		}
		cur, next = next, cur
	}

	ll := floats.LogSumExp(cur)
	if math.IsNaN(ll) || math.IsInf(ll, -1) {
		return 0, ErrNumericalFailure
	}

	return ll, nil
}

// ln2pi = log(2π), precomputed for the emission density.
const ln2pi = 1.8378770664093453

// frameLogProb is the diagonal-Gaussian log density of one frame
// under state s.
func (m *Model) frameLogProb(frame []float64, s int) float64 {
	var (
		base = s * m.features
		sum  float64
	)
	for d := 0; d < m.features; d++ {
		diff := frame[d] - m.mean[base+d]
		v := m.vari[base+d]
		sum -= 0.5 * (ln2pi + math.Log(v) + diff*diff/v)
	}

	return sum
}
