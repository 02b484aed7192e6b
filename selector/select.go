package selector

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsign/sequence"
)

// Select runs the configured strategy for one word of the corpus and
// returns its chosen model.
//
// Contracts:
//   - word must exist in corpus; opts must validate.
//   - The returned model's state count lies in the strategy's search
//     range, or equals opts.ConstantStates after a fallback.
//   - A nil model with a nil error means every candidate AND the
//     fallback failed to fit: the word has no usable model.
//
// Errors: ErrBadStateRange, ErrBadConstantStates, ErrUnknownStrategy,
// ErrUnknownWord, ErrVocabularyTooSmall (DIC only). Never a training
// or scoring failure.
//
// Complexity: one fit per candidate plus criterion scoring; CV fits
// once per (candidate, fold) plus the final refit.
func Select(t Trainer, corpus sequence.Corpus, word string, opts Options) (Model, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	ds, ok := corpus.Datasets[word]
	if !ok {
		return nil, ErrUnknownWord
	}
	log := opts.logger().With(zap.String("word", word), zap.Stringer("strategy", opts.Strategy))

	var best Model
	switch opts.Strategy {
	case Constant:
		// The Constant strategy IS the fallback; no second attempt.
		return fitAt(t, ds, opts.ConstantStates, opts.Seed, log), nil
	case BIC:
		best = selectBIC(t, ds, opts, log)
	case DIC:
		if len(corpus.Datasets) < 2 {
			return nil, ErrVocabularyTooSmall
		}
		best = selectDIC(t, corpus, word, opts, log)
	case CrossValidation:
		best = selectCV(t, corpus, word, opts, log)
	default:
		return nil, ErrUnknownStrategy
	}

	if best == nil {
		log.Debug("search exhausted, falling back", zap.Int("states", opts.ConstantStates))
		best = fitAt(t, ds, opts.ConstantStates, opts.Seed, log)
	}

	return best, nil
}

// SelectAll runs Select for every word of the corpus, in lexicographic
// order, and collects the non-nil results. Words whose selection
// produced no usable model are simply absent from the returned map.
func SelectAll(t Trainer, corpus sequence.Corpus, opts Options) (map[string]Model, error) {
	models := make(map[string]Model, len(corpus.Datasets))
	for _, word := range corpus.Words() {
		m, err := Select(t, corpus, word, opts)
		if err != nil {
			return nil, err
		}
		if m != nil {
			models[word] = m
		}
	}

	return models, nil
}

// fitAt fits one candidate and absorbs its failure into a nil result.
func fitAt(t Trainer, ds sequence.Dataset, numStates int, seed int64, log *zap.Logger) Model {
	m, err := t.Fit(ds, numStates, seed)
	if err != nil {
		log.Debug("candidate fit failed", zap.Int("states", numStates), zap.Error(err))

		return nil
	}

	return m
}
