package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/topcorr/config"
	"github.com/katalvlaran/topcorr/converters"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/filter"
	"github.com/katalvlaran/topcorr/logging"
	"github.com/katalvlaran/topcorr/metrics"
	"github.com/katalvlaran/topcorr/prim_kruskal"
)

const methodAll = "all"

type filterFlags struct {
	absolute       bool
	seedCandidates int
	mstMethod      string
	k              int
	threshold      float64
	partial        bool
	verify         bool
}

var filterShort = map[string]string{
	"mst":     "Minimum spanning tree of the correlation distances",
	"pmfg":    "Planar maximally filtered graph",
	"tmfg":    "Triangulated maximally filtered graph",
	"knn":     "k-nearest-neighbour graph",
	methodAll: "Build MST, PMFG, TMFG and kNN graphs concurrently",
}

func newFilterCmd(use string, rf *rootFlags) *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: filterShort[use],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, rf, &ff, use)
		},
	}
	addFilterFlags(cmd, &ff)

	return cmd
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the graph named by the config's method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, rf, &ff, "")
		},
	}
	addFilterFlags(cmd, &ff)

	return cmd
}

func addFilterFlags(cmd *cobra.Command, ff *filterFlags) {
	f := cmd.Flags()
	f.BoolVar(&ff.absolute, "absolute", false, "Score TMFG and threshold by |correlation|")
	f.IntVar(&ff.seedCandidates, "seed-candidates", 0, "TMFG seed search width (0 for the default)")
	f.StringVar(&ff.mstMethod, "mst-method", prim_kruskal.MethodKruskal, "MST algorithm: kruskal|prim")
	f.IntVar(&ff.k, "k", filter.DefaultK, "Neighbours per node for knn")
	f.Float64Var(&ff.threshold, "threshold", 0, "Zero every correlation below this value first")
	f.BoolVar(&ff.partial, "partial", false, "Filter the partial correlation matrix instead")
	f.BoolVar(&ff.verify, "verify", false, "Re-check each graph's structural guarantee")
}

// resolveConfig layers explicitly set flags over config.Read, then validates
// the merged result once.
func resolveConfig(cmd *cobra.Command, rf *rootFlags, ff *filterFlags) (*config.Config, error) {
	cfg, err := config.Read(rf.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if rf.inputFormat != "" {
		cfg.InputFormat = rf.inputFormat
	}
	if flags.Changed("labels") {
		cfg.Header = rf.header
	}
	if rf.output != "" {
		cfg.OutputFormat = rf.output
	}
	if rf.metricsFile != "" {
		cfg.MetricsFile = rf.metricsFile
	}
	if rf.logLevel != "" {
		cfg.LogLevel = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.LogFormat = rf.logFormat
	}
	if ff != nil {
		if flags.Changed("absolute") {
			cfg.Absolute = ff.absolute
		}
		if flags.Changed("seed-candidates") {
			cfg.SeedCandidates = ff.seedCandidates
		}
		if flags.Changed("mst-method") {
			cfg.MSTMethod = ff.mstMethod
		}
		if flags.Changed("k") {
			cfg.KNNK = ff.k
		}
		if flags.Changed("threshold") {
			t := ff.threshold
			cfg.Threshold = &t
		}
		if flags.Changed("partial") {
			cfg.Partial = ff.partial
		}
		if flags.Changed("verify") {
			cfg.Verify = ff.verify
		}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runFilter(cmd *cobra.Command, rf *rootFlags, ff *filterFlags, use string) error {
	cfg, err := resolveConfig(cmd, rf, ff)
	if err != nil {
		return err
	}
	if use != "" {
		cfg.Method = use
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	log := logger.WithFields(logrus.Fields{"run_id": runID, "method": cfg.Method})

	m, err := readInput(cmd, rf.input, cfg)
	if err != nil {
		return err
	}
	if m, err = prepare(m, cfg); err != nil {
		return err
	}
	log.WithField("nodes", m.Size()).Debug("matrix loaded")

	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		if rec, err = metrics.NewRecorder(nil); err != nil {
			return err
		}
	}
	opts := append(cfg.FilterOptions(),
		filter.WithLogger(log),
		filter.WithRecorder(rec),
	)

	docs, buildErr := build(cmd, m, cfg.Method, runID, opts)
	if rec != nil {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.WithError(err).Warn("writing metrics textfile")
		}
	}
	if buildErr != nil {
		log.WithError(buildErr).Error("build failed")
		return buildErr
	}

	for _, doc := range docs {
		log.WithFields(logrus.Fields{
			"graph":        doc.Method,
			"edges":        doc.EdgeCount,
			"total_weight": doc.TotalWeight,
		}).Info("graph built")
	}

	return writeOutput(cmd, rf.outPath, func(w io.Writer) error {
		if cfg.Method == methodAll {
			return converters.WriteGraphs(w, docs, cfg.OutputFormat)
		}
		return converters.WriteGraph(w, docs[0], cfg.OutputFormat)
	})
}

func build(cmd *cobra.Command, m *corr.Matrix, method, runID string, opts []filter.Option) ([]converters.GraphDocument, error) {
	ctx := cmd.Context()

	if method == methodAll {
		methods := filter.Methods()
		graphs, err := filter.BuildAll(ctx, m, methods, opts...)
		if err != nil {
			return nil, err
		}
		docs := make([]converters.GraphDocument, 0, len(methods))
		for _, meth := range methods {
			doc, err := converters.NewGraphDocument(graphs[meth], string(meth), runID)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		return docs, nil
	}

	meth, err := filter.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	g, err := filter.Build(ctx, m, meth, opts...)
	if err != nil {
		return nil, err
	}

	doc, err := converters.NewGraphDocument(g, string(meth), runID)
	if err != nil {
		return nil, err
	}

	return []converters.GraphDocument{doc}, nil
}

// prepare applies the optional partial-correlation and threshold steps.
func prepare(m *corr.Matrix, cfg *config.Config) (*corr.Matrix, error) {
	if cfg.Partial {
		p, err := corr.PartialCorrelation(m)
		if err != nil {
			return nil, err
		}
		m = p
	}
	if cfg.Threshold != nil {
		m = corr.Threshold(m, *cfg.Threshold, false, cfg.Absolute)
	}

	return m, nil
}

func readInput(cmd *cobra.Command, path string, cfg *config.Config) (*corr.Matrix, error) {
	if path == "" || path == "-" {
		return converters.ReadMatrix(cmd.InOrStdin(), cfg.InputFormat, cfg.Header)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return converters.ReadMatrix(f, cfg.InputFormat, cfg.Header)
}

func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
