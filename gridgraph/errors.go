package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeLabel indicates a cell label below zero.
	ErrNegativeLabel = errors.New("gridgraph: labels must be non-negative")
	// ErrShapeMismatch indicates a flat slice whose length is not Width×Height.
	ErrShapeMismatch = errors.New("gridgraph: slice length does not match grid size")
)
