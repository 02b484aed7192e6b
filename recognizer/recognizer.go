package recognizer

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlsign/sequence"
)

// Scorer is the one capability recognition needs from a trained word
// model. *hmm.Model and any selector.Model satisfy it.
type Scorer interface {
	Score(ds sequence.Dataset) (float64, error)
}

// ScoreTable maps each vocabulary word to the log-likelihood its
// model assigned one test item; -Inf marks a model that failed to
// score the item (or a word with no model at all).
type ScoreTable map[string]float64

// Recognize scores every test item against every word model.
//
// Contracts:
//   - tables[i] and guesses[i] describe testItems[i]; both slices have
//     exactly len(testItems) entries.
//   - A scoring failure (or a nil model — a word selection may
//     legitimately produce none) records -Inf for that word and never
//     becomes the guess.
//   - guesses[i] == "" iff no model scored item i.
//   - Deterministic: words are visited in lexicographic order, so
//     exact ties go to the first word in that order.
//
// Complexity: one Score call per (item, word) pair; no side effects
// beyond the returned slices.
func Recognize(models map[string]Scorer, testItems []sequence.Dataset) ([]ScoreTable, []string) {
	words := make([]string, 0, len(models))
	for word := range models {
		words = append(words, word)
	}
	sort.Strings(words)

	var (
		tables  = make([]ScoreTable, 0, len(testItems))
		guesses = make([]string, 0, len(testItems))
	)
	for _, item := range testItems {
		var (
			table     = make(ScoreTable, len(words))
			bestScore = math.Inf(-1)
			bestGuess = ""
		)
		for _, word := range words {
			model := models[word]
			if model == nil {
				table[word] = math.Inf(-1)
				continue
			}
			score, err := model.Score(item)
			if err != nil {
				table[word] = math.Inf(-1)
				continue
			}
			table[word] = score
			if score > bestScore {
				bestScore, bestGuess = score, word
			}
		}
		tables = append(tables, table)
		guesses = append(guesses, bestGuess)
	}

	return tables, guesses
}
