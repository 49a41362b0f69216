package reconstruct_test

import (
	"fmt"

	"github.com/katalvlaran/polyclust/reconstruct"
)

// ExampleReconstruct inverts the feature pair of a square — four equal
// side proportions, four equal angle proportions — back into explicit
// vertex chains. Exactly two candidates survive: the square and its mirror.
func ExampleReconstruct() {
	angles := []float64{0.25, 0.25, 0.25, 0.25}
	lengths := []float64{0.25, 0.25, 0.25, 0.25}

	opts := reconstruct.DefaultOptions()
	opts.Scale = 4 // perimeter 4 → unit sides

	polys, err := reconstruct.Reconstruct(angles, lengths, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("candidates:", len(polys))
	for _, p := range polys {
		fmt.Printf("(%.0f,%.0f) (%.0f,%.0f) (%.0f,%.0f) (%.0f,%.0f)\n",
			p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
	}
	// Output:
	// candidates: 2
	// (0,0) (1,0) (1,1) (0,1)
	// (0,0) (1,0) (1,-1) (0,-1)
}
