package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsign/selector"
	"github.com/katalvlaran/lvlsign/sequence"
)

// dicTrainer scripts a model whose score depends on whether it sees
// its own word's data (identified by frame count) or another word's.
func dicTrainer(ownFrames int, own, other map[int]float64) *stubTrainer {
	return &stubTrainer{fit: func(_ sequence.Dataset, states int, _ int64) (selector.Model, error) {
		return stubModel{states: states, score: func(ds sequence.Dataset) (float64, error) {
			if ds.NumFrames() == ownFrames {
				return own[states], nil
			}

			return other[states], nil
		}}, nil
	}}
}

// TestSelect_DICPrefersDiscriminativeModel: the 3-state candidate fits
// its own word slightly worse in absolute terms but separates it far
// better from the rest of the vocabulary.
//
//	n=2: DIC = -120 − (-130) = 10
//	n=3: DIC = -110 − (-200) = 90  ← winner
func TestSelect_DICPrefersDiscriminativeModel(t *testing.T) {
	corpus := makeCorpus(t, map[string][]int{
		"JOHN":  {5, 5},   // 10 frames: the target word
		"WRITE": {10, 10}, // 20 frames
	})
	trainer := dicTrainer(10,
		map[int]float64{2: -120, 3: -110},
		map[int]float64{2: -130, 3: -200},
	)

	opts := selector.DefaultOptions()
	opts.Strategy = selector.DIC
	opts.MinStates, opts.MaxStates = 2, 4

	m, err := selector.Select(trainer, corpus, "JOHN", opts)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 3, m.NumStates())
}

// TestSelect_DICExclusiveUpperBound: DIC searches [Min, Max) — with
// MinStates=2 and MaxStates=4, the 4-state candidate is never fit.
func TestSelect_DICExclusiveUpperBound(t *testing.T) {
	corpus := makeCorpus(t, map[string][]int{
		"JOHN":  {5, 5},
		"WRITE": {10, 10},
	})
	trainer := dicTrainer(10,
		map[int]float64{2: -120, 3: -110, 4: -1},
		map[int]float64{2: -130, 3: -200, 4: -500},
	)

	opts := selector.DefaultOptions()
	opts.Strategy = selector.DIC
	opts.MinStates, opts.MaxStates = 2, 4

	_, err := selector.Select(trainer, corpus, "JOHN", opts)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, trainer.fittedStates(), "MaxStates itself must not be fit")
}

// TestSelect_DICEmptyRangeFallsBack: with MinStates == MaxStates the
// exclusive DIC range is empty, so selection goes straight to the
// constant-states fallback.
func TestSelect_DICEmptyRangeFallsBack(t *testing.T) {
	corpus := makeCorpus(t, map[string][]int{
		"JOHN":  {5, 5},
		"WRITE": {10, 10},
	})
	trainer := dicTrainer(10, nil, nil)

	opts := selector.DefaultOptions()
	opts.Strategy = selector.DIC
	opts.MinStates, opts.MaxStates = 5, 5
	opts.ConstantStates = 3

	m, err := selector.Select(trainer, corpus, "JOHN", opts)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 3, m.NumStates())
	assert.Equal(t, []int{3}, trainer.fittedStates())
}

// TestSelect_DICTieKeepsSimplestCandidate: identical DIC scores leave
// the first (lowest state count) candidate in place.
func TestSelect_DICTieKeepsSimplestCandidate(t *testing.T) {
	corpus := makeCorpus(t, map[string][]int{
		"JOHN":  {5, 5},
		"WRITE": {10, 10},
	})
	trainer := dicTrainer(10,
		map[int]float64{2: -100, 3: -100, 4: -100},
		map[int]float64{2: -200, 3: -200, 4: -200},
	)

	opts := selector.DefaultOptions()
	opts.Strategy = selector.DIC
	opts.MinStates, opts.MaxStates = 2, 5

	m, err := selector.Select(trainer, corpus, "JOHN", opts)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 2, m.NumStates())
}

// TestSelect_DICSingleWordVocabulary: with nothing to contrast
// against, DIC selection is a defined configuration error.
func TestSelect_DICSingleWordVocabulary(t *testing.T) {
	corpus := makeCorpus(t, map[string][]int{"JOHN": {5, 5}})
	trainer := dicTrainer(10, nil, nil)

	opts := selector.DefaultOptions()
	opts.Strategy = selector.DIC

	m, err := selector.Select(trainer, corpus, "JOHN", opts)
	assert.ErrorIs(t, err, selector.ErrVocabularyTooSmall)
	assert.Nil(t, m)
	assert.Empty(t, trainer.calls)
}

// TestSelect_DICSkipsCandidateWithAllCrossScoresFailing: if a model
// cannot score any other word, its DIC is undefined and the candidate
// is dropped.
func TestSelect_DICSkipsCandidateWithAllCrossScoresFailing(t *testing.T) {
	corpus := makeCorpus(t, map[string][]int{
		"JOHN":  {5, 5},
		"WRITE": {10, 10},
	})
	trainer := &stubTrainer{fit: func(_ sequence.Dataset, states int, _ int64) (selector.Model, error) {
		return stubModel{states: states, score: func(ds sequence.Dataset) (float64, error) {
			if ds.NumFrames() != 10 {
				return 0, errNoFit // every cross-score fails
			}

			return -100, nil
		}}, nil
	}}

	opts := selector.DefaultOptions()
	opts.Strategy = selector.DIC
	opts.MinStates, opts.MaxStates = 2, 4
	opts.ConstantStates = 7

	m, err := selector.Select(trainer, corpus, "JOHN", opts)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 7, m.NumStates(), "no candidate survives, so the fallback model is returned")
}
