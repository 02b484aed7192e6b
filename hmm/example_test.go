package hmm_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsign/hmm"
	"github.com/katalvlaran/lvlsign/sequence"
)

// ExampleFit trains a 2-state model on a small synthetic word and
// scores the training data with it.
func ExampleFit() {
	// One word, two sequences of 8 frames over a single feature.
	set := make(sequence.Set, 2)
	for s := range set {
		seq := make([][]float64, 8)
		for t := range seq {
			seq[t] = []float64{math.Sin(0.4 * float64(t+s))}
		}
		set[s] = seq
	}
	ds, err := sequence.Concat(set)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	model, err := hmm.Fit(ds, hmm.DefaultConfig(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	logL, err := model.Score(ds)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("states=%d finite=%t\n", model.NumStates(), !math.IsInf(logL, 0) && !math.IsNaN(logL))
	// Output:
	// states=2 finite=true
}
