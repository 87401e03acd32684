package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoOpeningFound indicates a boundary row has no open cell to serve as an endpoint.
	ErrNoOpeningFound = errors.New("gridgraph: no opening found in boundary row")
	// ErrOutOfBounds indicates a coordinate outside the grid was supplied.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
