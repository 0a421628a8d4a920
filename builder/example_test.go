package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/core"
)

// ExampleGenerate builds a sparse connected graph and reports how it was made.
func ExampleGenerate() {
	spec := core.GraphSpec{Vertices: 6, Edges: 8}
	model := builder.RangeUniform{Min: 0, Max: 100, Precision: 2}

	set, sum, err := builder.Generate(spec, model, builder.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges:", set.Len())
	fmt.Println("connected:", set.Connected())
	fmt.Println("tree + sampled:", sum.TreeEdges, "+", sum.SampledEdges)
	fmt.Println(sum.About())

	// Output:
	// edges: 8
	// connected: true
	// tree + sampled: 5 + 3
	// m=6 n=8 min=0.0 max=100.0 prec=2 seed=42
}

// ExampleGenerateByPositions shows the complete-graph restriction.
func ExampleGenerateByPositions() {
	_, _, err := builder.GenerateByPositions(4, 5, 2, 0, 1, 3, 1)
	fmt.Println(err != nil)

	set, _, _ := builder.GenerateByPositions(4, 6, 2, 0, 1, 3, 1)
	fmt.Println(set.Len())

	// Output:
	// true
	// 6
}
