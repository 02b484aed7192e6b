// Package sequence holds the data model shared by the selector and
// recognizer: per-word frame sequences and their concatenated
// feature-matrix form.
//
// Core types:
//
//   - Set     — for one word, an ordered list of variable-length
//     sequences; each sequence is an ordered list of fixed-dimension
//     feature vectors (frames).
//   - Dataset — one concatenated feature matrix (rows = frames) plus
//     per-sequence frame counts. Invariant: sum(Lengths) equals the
//     matrix row count.
//   - Corpus  — the whole vocabulary: word → Set and word → Dataset.
//
// Core operations:
//
//   - Combine — assemble the Dataset of a chosen subset of a Set's
//     sequences, preserving frame order. Pure; used to build
//     cross-validation folds.
//   - Concat  — Combine over every sequence of a Set.
//   - Folds   — deterministic contiguous k-fold index split of n
//     sequences (train/test index lists per fold).
//
// All types are read-only by convention once built: nothing in this
// module mutates a Set or a Dataset after construction.
//
// Errors (sentinel):
//
//	– ErrEmptySet        if a Set has no sequences.
//	– ErrNoIndices       if Combine receives no indices.
//	– ErrEmptySequence   if a selected sequence has no frames.
//	– ErrRaggedFrames    if frames disagree on feature dimension.
//	– ErrIndexOutOfRange if a sequence index is out of range.
//	– ErrLengthMismatch  if Lengths do not sum to the row count.
//	– ErrTooFewSequences if n < k when splitting folds.
package sequence
