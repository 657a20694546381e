package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topcorr/converters"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/synth"
)

func newGenerateCmd(rf *rootFlags) *cobra.Command {
	var (
		n, blocks, factors int
		within, between    float64
		noise              float64
		seed               int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a synthetic correlation matrix",
		Long: `Generate a block matrix (default) or, with --factors, a random
factor-model matrix. The output feeds straight back into the filter commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case n < 1:
				return fmt.Errorf("--n must be positive, got %d", n)
			case factors < 0:
				return fmt.Errorf("--factors must not be negative, got %d", factors)
			case noise < 0:
				return errors.New("--noise must not be negative")
			}

			format := rf.output
			if format == "" {
				format = converters.FormatCSV
			}
			header := rf.header

			opts := []synth.Option{synth.WithSeed(seed)}
			if header {
				labels := make([]string, n)
				for i := range labels {
					labels[i] = fmt.Sprintf("n%d", i)
				}
				opts = append(opts, synth.WithLabels(labels))
			}

			var (
				m   *corr.Matrix
				err error
			)
			if factors > 0 {
				m, err = synth.Random(n, factors, opts...)
			} else {
				m, err = synth.Block(n, blocks, within, between, append(opts, synth.WithNoise(noise))...)
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, rf.outPath, func(w io.Writer) error {
				return converters.WriteMatrix(w, m, format, header)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&n, "n", 20, "Number of nodes")
	f.IntVar(&blocks, "blocks", 3, "Number of blocks")
	f.Float64Var(&within, "within", 0.7, "Correlation inside a block")
	f.Float64Var(&between, "between", 0.1, "Correlation across blocks")
	f.Float64Var(&noise, "noise", 0.05, "Uniform noise added to block entries")
	f.IntVar(&factors, "factors", 0, "Use a random factor model with this many factors")
	f.Int64Var(&seed, "seed", 1, "Random seed")

	return cmd
}
