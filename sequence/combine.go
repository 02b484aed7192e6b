package sequence

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Combine assembles the Dataset of the chosen sequences of set,
// preserving both frame order within a sequence and the order of
// indices across sequences. It is the fold-assembly primitive used by
// cross-validation: given a fold's index list, it yields exactly the
// feature matrix and lengths the trainer expects.
//
// Contracts:
//   - set must be non-empty; indices must be non-empty.
//   - every index must lie in [0, len(set)).
//   - every selected sequence must have ≥1 frame, and every frame of
//     every selected sequence must share one feature dimension.
//
// Errors: ErrEmptySet, ErrNoIndices, ErrIndexOutOfRange,
// ErrEmptySequence, ErrRaggedFrames.
//
// Complexity: O(F·D) time and space, F = selected frames, D = features.
func Combine(indices []int, set Set) (Dataset, error) {
	if len(set) == 0 {
		return Dataset{}, ErrEmptySet
	}
	if len(indices) == 0 {
		return Dataset{}, ErrNoIndices
	}

	// First pass: bounds, frame counts and the feature dimension.
	var (
		dim    = -1
		frames int
	)
	for _, idx := range indices {
		if idx < 0 || idx >= len(set) {
			return Dataset{}, ErrIndexOutOfRange
		}
		seq := set[idx]
		if len(seq) == 0 {
			return Dataset{}, ErrEmptySequence
		}
		for _, frame := range seq {
			if dim == -1 {
				dim = len(frame)
			}
			if len(frame) != dim || dim == 0 {
				return Dataset{}, ErrRaggedFrames
			}
		}
		frames += len(seq)
	}

	// Second pass: stack the frames row by row.
	var (
		data    = make([]float64, 0, frames*dim)
		lengths = make([]int, 0, len(indices))
	)
	for _, idx := range indices {
		seq := set[idx]
		for _, frame := range seq {
			data = append(data, frame...)
		}
		lengths = append(lengths, len(seq))
	}

	return Dataset{X: mat.NewDense(frames, dim, data), Lengths: lengths}, nil
}

// Concat is Combine over every sequence of set, in order.
func Concat(set Set) (Dataset, error) {
	if len(set) == 0 {
		return Dataset{}, ErrEmptySet
	}
	indices := make([]int, len(set))
	for i := range indices {
		indices[i] = i
	}

	return Combine(indices, set)
}

// Corpus bundles a whole vocabulary: the raw per-word sequences and
// their concatenated Dataset form. Selection strategies that contrast
// a word against the rest of the vocabulary (DIC) read Datasets;
// cross-validation reads Sets to build folds.
type Corpus struct {
	Sets     map[string]Set
	Datasets map[string]Dataset
}

// NewCorpus builds a Corpus from per-word sequence sets, concatenating
// each word's sequences into its Dataset.
//
// Errors: any Combine error, wrapped with the offending word.
func NewCorpus(sets map[string]Set) (Corpus, error) {
	datasets := make(map[string]Dataset, len(sets))
	for word, set := range sets {
		ds, err := Concat(set)
		if err != nil {
			return Corpus{}, fmt.Errorf("sequence: word %q: %w", word, err)
		}
		datasets[word] = ds
	}

	return Corpus{Sets: sets, Datasets: datasets}, nil
}

// Words returns the vocabulary in lexicographic order. Iterating a
// Corpus through Words keeps runs deterministic.
func (c Corpus) Words() []string {
	words := make([]string, 0, len(c.Datasets))
	for word := range c.Datasets {
		words = append(words, word)
	}
	sort.Strings(words)

	return words
}
