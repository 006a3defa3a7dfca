package graph

import "errors"

var (
	// ErrInvalidInput reports a series or argument that breaks the render contract
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration reports an unsupported style, row mode or palette
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
