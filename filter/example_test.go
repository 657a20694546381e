package filter_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topcorr/filter"
	"github.com/katalvlaran/topcorr/synth"
)

// ExampleBuildAll runs the three filters side by side on one matrix.
func ExampleBuildAll() {
	m, err := synth.Block(12, 3, 0.7, 0.1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	graphs, err := filter.BuildAll(context.Background(), m, nil, filter.WithVerify())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, method := range []filter.Method{filter.MST, filter.PMFG, filter.TMFG} {
		fmt.Println(method, graphs[method].EdgeCount())
	}
	// Output:
	// mst 11
	// pmfg 30
	// tmfg 30
}
