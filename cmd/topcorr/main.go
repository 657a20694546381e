// Command topcorr filters a correlation matrix into a sparse graph (MST,
// PMFG, TMFG or kNN) and writes it as JSON, YAML or CSV.
package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var version = "0.1.0-dev"

// rootFlags are shared by every filter subcommand.
type rootFlags struct {
	configPath  string
	input       string
	inputFormat string
	header      bool
	output      string
	outPath     string
	metricsFile string
	logLevel    string
	logFormat   string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var rf rootFlags

	rootCmd := &cobra.Command{
		Use:          "topcorr",
		Short:        "Topological filtering of correlation matrices",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML config file")
	pf.StringVarP(&rf.input, "input", "i", "-", "Matrix file (- for stdin)")
	pf.StringVar(&rf.inputFormat, "format", "", "Input format: csv|json|yaml")
	pf.BoolVar(&rf.header, "labels", false, "CSV input starts with a row of labels")
	pf.StringVar(&rf.output, "output", "", "Output format: json|yaml|csv")
	pf.StringVarP(&rf.outPath, "out", "o", "-", "Output file (- for stdout)")
	pf.StringVar(&rf.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	pf.StringVar(&rf.logLevel, "log-level", "", "Log level (env: TOPCORR_LOG_LEVEL)")
	pf.StringVar(&rf.logFormat, "log-format", "", "Log format: text|json")

	for _, use := range []string{"mst", "pmfg", "tmfg", "knn", "all"} {
		rootCmd.AddCommand(newFilterCmd(use, &rf))
	}
	rootCmd.AddCommand(newRunCmd(&rf))
	rootCmd.AddCommand(newGenerateCmd(&rf))

	return rootCmd
}
