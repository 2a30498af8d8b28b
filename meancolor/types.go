package meancolor

import (
	"errors"

	"github.com/katalvlaran/ragmerge/gridgraph"
)

// Metadata keys written by Build and maintained by Strategy.
const (
	KeyTotal = "total color"
	KeyCount = "pixel count"
	KeyMean  = "mean color"
)

// Sentinel errors.
var (
	// ErrEmptyImage indicates an image without rows, columns or channels.
	ErrEmptyImage = errors.New("meancolor: image is empty")

	// ErrShapeMismatch indicates that image and labels differ in size.
	ErrShapeMismatch = errors.New("meancolor: image and labels differ in shape")

	// ErrChannelMismatch indicates pixels with differing channel counts.
	ErrChannelMismatch = errors.New("meancolor: inconsistent channel count")

	// ErrBadSigma indicates a non-positive Sigma in ModeSimilarity.
	ErrBadSigma = errors.New("meancolor: sigma must be positive")

	// ErrMissingAttrs indicates a node without mean-colour metadata.
	ErrMissingAttrs = errors.New("meancolor: node has no colour attributes")
)

// Mode selects how a colour distance becomes an edge weight.
type Mode int

const (
	// ModeDistance weighs an edge by the distance d itself.
	ModeDistance Mode = iota
	// ModeSimilarity weighs an edge by 1 - exp(-d²/Sigma), the complement of
	// the Gaussian colour similarity. Weights lie in [0, 1).
	ModeSimilarity
)

// String returns "distance" or "similarity".
func (m Mode) String() string {
	if m == ModeSimilarity {
		return "similarity"
	}

	return "distance"
}

// ParseMode maps "distance" and "similarity" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "distance", "":
		return ModeDistance, true
	case "similarity":
		return ModeSimilarity, true
	}

	return ModeDistance, false
}

// Options configures Build and Strategy.
type Options struct {
	Conn  gridgraph.Connectivity
	Mode  Mode
	Sigma float64
}

// DefaultOptions returns Conn8 adjacency, ModeDistance and Sigma 255.
func DefaultOptions() Options {
	return Options{Conn: gridgraph.Conn8, Mode: ModeDistance, Sigma: 255}
}

func (o Options) validate() error {
	if o.Mode == ModeSimilarity && !(o.Sigma > 0) {
		return ErrBadSigma
	}

	return nil
}
