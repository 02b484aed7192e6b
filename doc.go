// Package lvlsign is an in-memory toolkit for isolated-word
// sign-language recognition with Gaussian hidden Markov models —
// from raw frame sequences to per-word model selection and scoring.
//
// 🚀 What is lvlsign?
//
//	A small, deterministic library that brings together:
//		• Sequence plumbing: per-word frame sequences, concatenated
//		  feature matrices with per-sequence lengths, fold splitting
//		• Gaussian HMMs: seeded Baum-Welch fitting with diagonal
//		  covariance and log-space forward scoring
//		• Model selection: Constant, BIC, DIC and cross-validation
//		  strategies searching over hidden-state counts
//		• Recognition: score every test sequence against every word
//		  model, collect log-likelihood tables and best guesses
//
// ✨ Why choose lvlsign?
//
//   - Deterministic – every fit is driven by an explicit seed
//   - Fail-soft – a candidate that will not train or score is skipped,
//     never fatal; selection falls back before it gives up
//   - Minimal API – plain Options structs, sentinel errors, no globals
//   - Pluggable – the selector talks to any Trainer, not just the
//     bundled Gaussian HMM
//
// Everything is organized under four subpackages:
//
//	sequence/   — Set, Dataset, Combine, fold splitting, Corpus
//	hmm/        — Gaussian-emission HMM: Fit and Score
//	selector/   — Constant / BIC / DIC / CrossValidation selection
//	recognizer/ — score tables + best-guess words for test items
//
// Typical pipeline:
//
//	corpus → selector.SelectAll (one model per word)
//	       → recognizer.Recognize (tables + guesses per test item)
//
// Dive into examples/ for a full end-to-end walkthrough on synthetic
// data, and each package's doc.go for contracts and complexity notes.
//
//	go get github.com/katalvlaran/lvlsign
package lvlsign
