package selector

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsign/sequence"
)

// cvFolds is the fixed fold count of the cross-validation criterion.
const cvFolds = 2

// defaultBestStates is the state count the CV search is pre-seeded
// with: if no candidate ever produces a fold score, the final refit
// happens here.
const defaultBestStates = 3

// selectCV searches [MinStates, MaxStates] inclusive and picks the
// candidate maximizing the mean held-out log-likelihood over a
// deterministic contiguous 2-fold split of the word's own sequences.
// For each fold the model is fit on the training sequences and scored
// on the held-out ones; a candidate with any failing fold is skipped.
// The fold scores only pick the complexity: the returned model is
// refit at the winning state count on the word's ENTIRE data.
//
// A word with fewer than 2 sequences cannot be split; the search is
// abandoned and Select falls back to the constant-states fit. Returns
// nil when even the final refit fails.
func selectCV(t Trainer, corpus sequence.Corpus, word string, opts Options, log *zap.Logger) Model {
	set := corpus.Sets[word]
	folds, err := sequence.Folds(set.NumSequences(), cvFolds)
	if err != nil {
		log.Debug("cross-validation split unavailable",
			zap.Int("sequences", set.NumSequences()), zap.Error(err))

		return nil
	}

	var (
		bestStates = defaultBestStates
		bestScore  = math.Inf(-1)
	)
	for states := opts.MinStates; states <= opts.MaxStates; states++ {
		sum, ok := 0.0, true
		for _, fold := range folds {
			score, ferr := foldScore(t, set, fold, states, opts.Seed)
			if ferr != nil {
				log.Debug("fold failed", zap.Int("states", states), zap.Error(ferr))
				ok = false

				break
			}
			sum += score
		}
		if !ok {
			continue
		}

		mean := sum / float64(len(folds))
		log.Debug("cv candidate", zap.Int("states", states), zap.Float64("meanLogL", mean))
		if mean > bestScore {
			bestScore, bestStates = mean, states
		}
	}

	// Deploy a model trained on everything, not on a fold.
	return fitAt(t, corpus.Datasets[word], bestStates, opts.Seed, log)
}

// foldScore fits on the fold's training sequences and scores the
// held-out ones.
func foldScore(t Trainer, set sequence.Set, fold sequence.Fold, states int, seed int64) (float64, error) {
	train, err := sequence.Combine(fold.Train, set)
	if err != nil {
		return 0, err
	}
	m, err := t.Fit(train, states, seed)
	if err != nil {
		return 0, err
	}
	test, err := sequence.Combine(fold.Test, set)
	if err != nil {
		return 0, err
	}

	return m.Score(test)
}
