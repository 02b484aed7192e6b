package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsign/sequence"
)

// ExampleCombine builds the feature matrix of one cross-validation
// fold: sequences 0 and 2 of a three-sequence word.
func ExampleCombine() {
	set := sequence.Set{
		{{0.1, 1.0}, {0.2, 1.1}},             // sequence 0: 2 frames
		{{0.3, 1.2}},                         // sequence 1: 1 frame
		{{0.4, 1.3}, {0.5, 1.4}, {0.6, 1.5}}, // sequence 2: 3 frames
	}

	ds, err := sequence.Combine([]int{0, 2}, set)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("frames=%d features=%d lengths=%v\n", ds.NumFrames(), ds.NumFeatures(), ds.Lengths)
	// Output:
	// frames=5 features=2 lengths=[2 3]
}

// ExampleFolds shows the deterministic contiguous 2-fold split used
// by cross-validation selection.
func ExampleFolds() {
	folds, err := sequence.Folds(4, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, f := range folds {
		fmt.Printf("fold %d: train=%v test=%v\n", i, f.Train, f.Test)
	}
	// Output:
	// fold 0: train=[2 3] test=[0 1]
	// fold 1: train=[0 1] test=[2 3]
}
