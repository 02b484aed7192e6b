package sequence

// Fold is one train/test split over sequence indices.
type Fold struct {
	Train []int
	Test  []int
}

// Folds splits n sequence indices into k contiguous folds and returns
// one Fold per block: the block itself as Test, everything else as
// Train. The split is deterministic (no shuffling): the first n%k
// folds receive one extra index, matching the usual contiguous k-fold
// convention.
//
// Contracts:
//   - k ≥ 2 (a single fold has nothing held out).
//   - n ≥ k, so every fold's Test and Train are non-empty.
//
// Errors: ErrTooFewSequences.
//
// Complexity: O(n·k) time, O(n·k) space.
func Folds(n, k int) ([]Fold, error) {
	if k < 2 || n < k {
		return nil, ErrTooFewSequences
	}

	var (
		folds = make([]Fold, 0, k)
		base  = n / k
		extra = n % k
		start = 0
	)
	for f := 0; f < k; f++ {
		size := base
		if f < extra {
			size++
		}
		stop := start + size

		test := make([]int, 0, size)
		train := make([]int, 0, n-size)
		for i := 0; i < n; i++ {
			if i >= start && i < stop {
				test = append(test, i)
			} else {
				train = append(train, i)
			}
		}
		folds = append(folds, Fold{Train: train, Test: test})
		start = stop
	}

	return folds, nil
}
