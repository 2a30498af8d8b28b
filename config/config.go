// Package config loads ragmerge run settings from YAML and turns them into
// merge and meancolor options.
package config

import (
	"errors"
	"io"
	"math"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ragmerge/gridgraph"
	"github.com/katalvlaran/ragmerge/meancolor"
	"github.com/katalvlaran/ragmerge/merge"
)

// Validation errors.
var (
	ErrBadThreshold    = errors.New("config: threshold must be a number")
	ErrBadConnectivity = errors.New("config: connectivity must be 4 or 8")
	ErrBadMode         = errors.New("config: mode must be distance or similarity")
	ErrBadSigma        = errors.New("config: sigma must be positive in similarity mode")
)

// Config is the on-disk run configuration.
type Config struct {
	Threshold    float64 `yaml:"threshold"`
	InPlace      bool    `yaml:"in_place"`
	CopyGraph    bool    `yaml:"copy_graph"`
	Connectivity int     `yaml:"connectivity"`
	Mode         string  `yaml:"mode"`
	Sigma        float64 `yaml:"sigma"`
	LogLevel     string  `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Threshold:    30,
		InPlace:      true,
		Connectivity: 8,
		Mode:         meancolor.ModeDistance.String(),
		Sigma:        255,
		LogLevel:     logrus.InfoLevel.String(),
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Default(), pkgerrors.Wrap(err, "open config")
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, pkgerrors.Wrap(err, "decode config")
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) {
		return ErrBadThreshold
	}
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return ErrBadConnectivity
	}
	mode, ok := meancolor.ParseMode(c.Mode)
	if !ok {
		return ErrBadMode
	}
	if mode == meancolor.ModeSimilarity && !(c.Sigma > 0) {
		return ErrBadSigma
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return pkgerrors.Wrap(err, "config")
	}

	return nil
}

// Level returns the parsed log level, Info when unset or invalid.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// MeanColor returns the graph construction options.
func (c Config) MeanColor() meancolor.Options {
	mode, _ := meancolor.ParseMode(c.Mode)
	conn := gridgraph.Conn8
	if c.Connectivity == 4 {
		conn = gridgraph.Conn4
	}

	return meancolor.Options{Conn: conn, Mode: mode, Sigma: c.Sigma}
}

// MergeOptions returns the contraction options, strategy included.
func (c Config) MergeOptions() []merge.Option {
	opts := []merge.Option{
		merge.WithThreshold(c.Threshold),
		merge.WithInPlaceMerge(c.InPlace),
		merge.WithStrategy(meancolor.NewStrategy(c.MeanColor())),
	}
	if c.CopyGraph {
		opts = append(opts, merge.WithCopyGraph())
	}

	return opts
}
