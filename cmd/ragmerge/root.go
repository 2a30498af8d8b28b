package main

import (
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ragmerge/config"
	"github.com/katalvlaran/ragmerge/gridgraph"
	"github.com/katalvlaran/ragmerge/meancolor"
	"github.com/katalvlaran/ragmerge/merge"
	"github.com/katalvlaran/ragmerge/metrics"
	"github.com/katalvlaran/ragmerge/relabel"
)

// input is the document read by run. JSON input decodes as well.
type input struct {
	Labels [][]int       `yaml:"labels"`
	Image  [][][]float64 `yaml:"image"`
}

// output is the document written by run.
type output struct {
	Run     string  `yaml:"run"`
	Labels  [][]int `yaml:"labels"`
	Regions int     `yaml:"regions"`
	Merges  int     `yaml:"merges"`
}

type runFlags struct {
	input        string
	config       string
	metricsFile  string
	threshold    float64
	inPlace      bool
	copyGraph    bool
	connectivity int
	mode         string
	sigma        float64
	verbose      bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "ragmerge",
		Short:        "Hierarchical merging of region adjacency graphs",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(out))

	return root
}

func newRunCmd(out io.Writer) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Merge the regions of a label grid by mean colour and print the new labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if err = f.override(&cfg, cmd.Flags()); err != nil {
				return err
			}

			return run(cfg, f, out)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", "", "path to the input document (labels and image)")
	flags.StringVarP(&f.config, "config", "c", "", "path to a YAML run configuration")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
	flags.Float64VarP(&f.threshold, "threshold", "t", 0, "merge edges lighter than this")
	flags.BoolVar(&f.inPlace, "in-place", true, "merge in place instead of relocating to fresh IDs")
	flags.BoolVar(&f.copyGraph, "copy-graph", false, "contract a private copy of the graph")
	flags.IntVar(&f.connectivity, "connectivity", 8, "pixel connectivity, 4 or 8")
	flags.StringVar(&f.mode, "mode", "distance", "edge weight mode: distance or similarity")
	flags.Float64Var(&f.sigma, "sigma", 255, "similarity scale; larger values tolerate more colour difference")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// override applies the flags the user set explicitly on top of cfg.
func (f *runFlags) override(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if flags.Changed("in-place") {
		cfg.InPlace = f.inPlace
	}
	if flags.Changed("copy-graph") {
		cfg.CopyGraph = f.copyGraph
	}
	if flags.Changed("connectivity") {
		cfg.Connectivity = f.connectivity
	}
	if flags.Changed("mode") {
		cfg.Mode = f.mode
	}
	if flags.Changed("sigma") {
		cfg.Sigma = f.sigma
	}
	if f.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}

	return cfg.Validate()
}

func run(cfg config.Config, f *runFlags, out io.Writer) error {
	log.SetLevel(cfg.Level())

	in, err := readInput(f.input)
	if err != nil {
		return err
	}
	g, err := meancolor.Build(in.Image, in.Labels, cfg.MeanColor())
	if err != nil {
		return pkgerrors.Wrap(err, "build graph")
	}

	reg := prometheus.NewRegistry()
	opts := append(cfg.MergeOptions(),
		merge.WithLogger(log.StandardLogger()),
		merge.WithRecorder(metrics.NewCollector(reg)),
	)
	res, err := merge.Run(g, opts...)
	if err != nil {
		return err
	}
	labels, err := remap(res, in.Labels)
	if err != nil {
		return err
	}
	if f.metricsFile != "" {
		if err = prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return pkgerrors.Wrap(err, "write metrics")
		}
	}

	log.WithFields(log.Fields{
		"run":     res.RunID,
		"regions": res.Graph.NodeCount(),
		"merges":  res.Stats.Merges,
	}).Info("done")

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(output{
		Run:     res.RunID,
		Labels:  labels,
		Regions: res.Graph.NodeCount(),
		Merges:  res.Stats.Merges,
	})
}

// remap maps every pixel's label onto its surviving region.
func remap(res *merge.Result, labels [][]int) ([][]int, error) {
	gg, err := gridgraph.NewGridGraph(labels, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	flat, err := relabel.Remap(res.Graph, gg.Flatten())
	if err != nil {
		return nil, err
	}

	return gg.Reshape(flat)
}

func readInput(path string) (*input, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open input")
	}
	defer fh.Close()

	in := &input{}
	if err = yaml.NewDecoder(fh).Decode(in); err != nil {
		return nil, pkgerrors.Wrapf(err, "decode %s", path)
	}

	return in, nil
}
