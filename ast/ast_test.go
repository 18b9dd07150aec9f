package ast

import (
	"strings"
	"testing"

	"github.com/mython-lang/mython"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionBodyConvertsReturnSignalToValue(t *testing.T) {
	body := &FunctionBody{Block: &Block{Stmts: []Node{
		&ReturnStmt{Value: &NumberLit{Value: 7}},
	}}}
	ctx := mython.NewSinkContext(nil)
	v, err := body.Execute(mython.NewClosure(), ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Number())
}

func TestFunctionBodyFallsOffEndToNone(t *testing.T) {
	body := &FunctionBody{Block: &Block{Stmts: nil}}
	v, err := body.Execute(mython.NewClosure(), mython.NewSinkContext(nil))
	require.NoError(t, err)
	assert.True(t, v.IsNone())
}

func TestReturnUnwindsThroughNestedBlocks(t *testing.T) {
	inner := &Block{Stmts: []Node{&ReturnStmt{Value: &StringLit{Value: "done"}}}}
	outer := &Block{Stmts: []Node{
		&IfStmt{Cond: &BoolLit{Value: true}, Then: inner},
		&PrintStmt{Args: []Node{&StringLit{Value: "unreachable"}}},
	}}
	body := &FunctionBody{Block: outer}

	var out strings.Builder
	ctx := mython.NewSinkContext(&out)
	v, err := body.Execute(mython.NewClosure(), ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", v.Str())
	assert.Empty(t, out.String())
}

type limitedCtx struct {
	*mython.SinkContext
	maxDepth, depth int
	stepErr         error
}

func (c *limitedCtx) Step() error { return c.stepErr }
func (c *limitedCtx) EnterCall() error {
	c.depth++
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		return assert.AnError
	}
	return nil
}
func (c *limitedCtx) ExitCall() { c.depth-- }

func TestBlockStepsThroughLimitedContext(t *testing.T) {
	block := &Block{Stmts: []Node{
		&AssignStmt{Target: &Identifier{Name: "x"}, Value: &NumberLit{Value: 1}},
	}}
	ctx := &limitedCtx{SinkContext: mython.NewSinkContext(nil), stepErr: assert.AnError}
	_, err := block.Execute(mython.NewClosure(), ctx)
	assert.Equal(t, assert.AnError, err)
}

func TestFunctionBodyEnforcesRecursionLimitFromContext(t *testing.T) {
	body := &FunctionBody{Block: &Block{}}
	ctx := &limitedCtx{SinkContext: mython.NewSinkContext(nil), maxDepth: 0}
	ctx.depth = 1
	ctx.maxDepth = 1
	_, err := body.Execute(mython.NewClosure(), ctx)
	assert.Error(t, err)
}
