package mino_test

import (
	"fmt"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

// ExamplePieceSet enumerates the trominoes and walks the cursor over them.
func ExamplePieceSet() {
	s := mino.NewPieceSet()
	if err := s.Generate(3); err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < s.Count(); i++ {
		p, _ := s.Current()
		fmt.Printf("%d/%d %s\n%s", s.Index()+1, s.Count(), mino.Name(p), p.Render())
		_ = s.Advance(mino.Next)
	}

	// Output:
	// 1/2 I
	// XXX
	// 2/2 L
	// XX
	// X
}

// ExampleCombinations lists the 2-element subsets of {0, 1, 2}.
func ExampleCombinations() {
	fmt.Println(mino.Combinations(3, 2))

	// Output:
	// [[0 1] [0 2] [1 2]]
}
