package merge_test

import (
	"fmt"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/merge"
)

// ExampleContract merges four regions whose lightest edges lie below 1.0.
func ExampleContract() {
	g := core.NewGraph()
	for id := 1; id <= 5; id++ {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge(1, 2, 0.1)
	_, _ = g.AddEdge(2, 3, 5)
	_, _ = g.AddEdge(1, 3, 0.2)
	_, _ = g.AddEdge(3, 4, 0.05)
	_, _ = g.AddEdge(4, 5, 3)

	out, err := merge.Contract(g, []int{1, 2, 3, 4, 5},
		merge.WithThreshold(1.0),
		merge.WithStrategy(merge.SingleLinkage),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)

	// Output:
	// [0 0 0 0 1]
}

// ExampleRun_dendrogram prints the merge history of a copy-based run: each
// step retires the popped endpoint and folds the other region into its copy.
func ExampleRun_dendrogram() {
	g := core.NewGraph()
	for id := 0; id < 3; id++ {
		_ = g.AddNode(id)
	}
	_, _ = g.AddEdge(0, 1, 0.2)
	_, _ = g.AddEdge(1, 2, 0.4)

	res, _ := merge.Run(g,
		merge.WithThreshold(1),
		merge.WithInPlaceMerge(false),
		merge.WithStrategy(merge.CompleteLinkage),
	)
	for _, st := range res.Steps {
		fmt.Printf("%d + %d (was %d) -> %d at %.1f\n", st.Src, st.Dst, st.Relocated, st.Survivor, st.Weight)
	}

	// Output:
	// 0 + 3 (was 1) -> 3 at 0.2
	// 3 + 4 (was 2) -> 4 at 0.4
}
