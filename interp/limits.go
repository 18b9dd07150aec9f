package interp

import (
	"fmt"
	"io"

	"github.com/mython-lang/mython/internal/config"
)

// execContext is the mython.Context the interpreter threads through
// execution. It satisfies ast.LimitedContext structurally (no import of
// ast needed): Step and EnterCall/ExitCall enforce the configured step
// quota and recursion cap, grounded on the teacher's execution struct
// (vibes/execution.go), which tracks the same quota/recursionCap pair
// against exec.steps and len(exec.callStack).
type execContext struct {
	out    io.Writer
	limits config.Limits
	steps  int
	depth  int
}

func newExecContext(out io.Writer, limits config.Limits) *execContext {
	return &execContext{out: out, limits: limits}
}

func (c *execContext) Output() io.Writer { return c.out }

func (c *execContext) Step() error {
	c.steps++
	if c.limits.StepQuota > 0 && c.steps > c.limits.StepQuota {
		return fmt.Errorf("step quota exceeded (%d)", c.limits.StepQuota)
	}
	return nil
}

func (c *execContext) EnterCall() error {
	c.depth++
	if c.limits.RecursionLimit > 0 && c.depth > c.limits.RecursionLimit {
		return fmt.Errorf("recursion limit exceeded (%d)", c.limits.RecursionLimit)
	}
	return nil
}

func (c *execContext) ExitCall() {
	c.depth--
}
