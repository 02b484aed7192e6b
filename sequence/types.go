package sequence

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the sequence package.
var (
	// ErrEmptySet indicates a Set with no sequences at all.
	ErrEmptySet = errors.New("sequence: set must contain at least one sequence")

	// ErrNoIndices indicates Combine was called with an empty index list.
	ErrNoIndices = errors.New("sequence: at least one sequence index is required")

	// ErrEmptySequence indicates a selected sequence has no frames.
	ErrEmptySequence = errors.New("sequence: sequences must contain at least one frame")

	// ErrRaggedFrames indicates frames with inconsistent feature dimensions.
	ErrRaggedFrames = errors.New("sequence: all frames must share one feature dimension")

	// ErrIndexOutOfRange indicates a sequence index outside [0, len(set)).
	ErrIndexOutOfRange = errors.New("sequence: sequence index out of range")

	// ErrLengthMismatch indicates Lengths that do not sum to the matrix row count.
	ErrLengthMismatch = errors.New("sequence: lengths must sum to the matrix row count")

	// ErrNilMatrix indicates a Dataset without a feature matrix.
	ErrNilMatrix = errors.New("sequence: dataset has no feature matrix")

	// ErrTooFewSequences indicates fewer sequences than requested folds.
	ErrTooFewSequences = errors.New("sequence: not enough sequences for the requested folds")
)

// Set is the raw material for one word: an ordered list of
// variable-length sequences, each an ordered list of frames
// (fixed-dimension feature vectors).
type Set [][][]float64

// NumSequences reports how many sequences the set holds.
func (s Set) NumSequences() int { return len(s) }

// Dataset is the concatenated form of one or more sequences:
// X stacks every frame row by row, Lengths records each sequence's
// frame count in order. Invariant: sum(Lengths) == rows(X).
type Dataset struct {
	X       *mat.Dense
	Lengths []int
}

// NumFrames reports the total frame count (rows of X).
func (d Dataset) NumFrames() int {
	if d.X == nil {
		return 0
	}
	r, _ := d.X.Dims()

	return r
}

// NumFeatures reports the feature dimension (columns of X).
func (d Dataset) NumFeatures() int {
	if d.X == nil {
		return 0
	}
	_, c := d.X.Dims()

	return c
}

// Validate checks the Dataset invariant: a non-nil matrix, strictly
// positive per-sequence lengths, and lengths summing to the row count.
//
// Errors: ErrNilMatrix, ErrEmptySequence, ErrLengthMismatch.
func (d Dataset) Validate() error {
	if d.X == nil {
		return ErrNilMatrix
	}
	total := 0
	for _, n := range d.Lengths {
		if n < 1 {
			return ErrEmptySequence
		}
		total += n
	}
	if total != d.NumFrames() {
		return ErrLengthMismatch
	}

	return nil
}
