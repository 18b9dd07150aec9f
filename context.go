package mython

import "io"

// Context is the driver-supplied object: it exposes the
// output sink that Print writes to, plus whatever runtime services the
// driver layer above this package wants to thread through execution (the
// interp package's execContext implements this and also enforces the
// step quota and recursion limit).
type Context interface {
	// Output returns the sink that Print operations write to.
	Output() io.Writer
}

// SinkContext is the minimal Context implementation: an output sink and
// nothing else. It is enough to exercise the runtime in isolation from a
// program driver, e.g. in tests.
type SinkContext struct {
	out io.Writer
}

// NewSinkContext wraps w as a Context.
func NewSinkContext(w io.Writer) *SinkContext {
	return &SinkContext{out: w}
}

func (c *SinkContext) Output() io.Writer { return c.out }
