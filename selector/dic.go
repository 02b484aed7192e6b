package selector

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsign/sequence"
)

// selectDIC searches [MinStates, MaxStates) — upper bound EXCLUSIVE,
// see the package documentation — and returns the candidate
// maximizing
//
//	DIC = logL(word) − mean(logL(other) for every other word)
//
// i.e. how much better the model explains its own word than the rest
// of the vocabulary. Other words are visited in lexicographic order;
// a cross-score that fails is left out of the mean, and a candidate
// whose own-word score fails (or whose every cross-score fails) is
// skipped. Ties keep the first candidate (strictly-greater updates
// only). Returns nil when every candidate fails.
func selectDIC(t Trainer, corpus sequence.Corpus, word string, opts Options, log *zap.Logger) Model {
	var (
		best      Model
		bestScore = math.Inf(-1)
		ds        = corpus.Datasets[word]
		words     = corpus.Words()
	)
	for states := opts.MinStates; states < opts.MaxStates; states++ {
		m := fitAt(t, ds, states, opts.Seed, log)
		if m == nil {
			continue
		}
		own, err := m.Score(ds)
		if err != nil {
			log.Debug("candidate score failed", zap.Int("states", states), zap.Error(err))
			continue
		}

		var (
			sum   float64
			count int
		)
		for _, other := range words {
			if other == word {
				continue
			}
			s, serr := m.Score(corpus.Datasets[other])
			if serr != nil {
				log.Debug("cross score failed",
					zap.Int("states", states), zap.String("other", other), zap.Error(serr))
				continue
			}
			sum += s
			count++
		}
		if count == 0 {
			continue
		}

		score := own - sum/float64(count)
		log.Debug("dic candidate", zap.Int("states", states), zap.Float64("dic", score))
		if score > bestScore {
			bestScore, best = score, m
		}
	}

	return best
}
