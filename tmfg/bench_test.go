package tmfg_test

import (
	"testing"

	"github.com/katalvlaran/topcorr/synth"
	"github.com/katalvlaran/topcorr/tmfg"
)

// BenchmarkBuild200 measures a 200-node factor-model matrix.
func BenchmarkBuild200(b *testing.B) {
	m, err := synth.Random(200, 4, synth.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmfg.Build(m)
	}
}
