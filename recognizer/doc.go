// Package recognizer scores unseen sequences against a vocabulary of
// trained word models and guesses the most likely word for each.
//
// For every test item, Recognize builds a ScoreTable mapping each
// word to the log-likelihood its model assigns the item, and tracks
// the best-scoring word as the guess. A model that fails to score an
// item contributes the sentinel -Inf and can never be the guess; an
// item every model fails on gets the empty guess "". Both output
// slices follow the test items' order exactly.
//
// Recognition never fails: there is no error return, only degraded
// entries. Ties between equal scores resolve to the lexicographically
// first word (words are visited in sorted order and only a strictly
// greater score replaces the incumbent).
package recognizer
