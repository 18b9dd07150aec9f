// Package ast implements the statement and expression nodes that drive
// the mython runtime: each node satisfies mython.Executable, so a
// Method's Body is just an *ast.FunctionBody wrapping a parsed block.
package ast

import "github.com/mython-lang/mython"

// Node is the contract every statement and expression node satisfies.
// It is exactly mython.Executable; the alias exists so this package's
// own doc comments can talk about "nodes" without importing the core
// package's vocabulary verbatim.
type Node = mython.Executable

// LimitedContext is the optional contract a driver-supplied
// mython.Context can additionally satisfy to have its recursion depth
// and step count enforced during execution. Nodes that would otherwise
// run unboundedly (method calls, statement execution) check for it with
// a type assertion and fall back to unlimited execution when absent —
// exactly how the plain mython.Context works in isolated unit tests.
type LimitedContext interface {
	mython.Context
	// Step is called once per executed statement.
	Step() error
	// EnterCall is called on entry to a method body; ExitCall on return.
	EnterCall() error
	ExitCall()
}

// returnSignal is threaded up through block execution as an error value
// so that a return statement nested inside if/else bodies unwinds
// straight to the enclosing FunctionBody without every block type
// needing to know about control flow explicitly.
type returnSignal struct {
	value mython.Value
}

func (r *returnSignal) Error() string { return "return" }

// Block is a sequence of statements executed in order. A statement
// returning a *returnSignal error stops the block immediately and
// propagates that error to the caller unchanged.
type Block struct {
	Stmts []Node
}

func (b *Block) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	if lc, ok := ctx.(LimitedContext); ok {
		for _, stmt := range b.Stmts {
			if err := lc.Step(); err != nil {
				return mython.None(), err
			}
			if _, err := stmt.Execute(closure, ctx); err != nil {
				return mython.None(), err
			}
		}
		return mython.None(), nil
	}
	for _, stmt := range b.Stmts {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return mython.None(), err
		}
	}
	return mython.None(), nil
}

// Program is the top-level sequence of statements a parsed script
// produces. It executes like a Block but is its own type so the
// interp package has something concrete to hold onto.
type Program struct {
	Block
}

// FunctionBody wraps a method's statement block so that it can serve as
// a mython.Method.Body: it converts a *returnSignal bubbling out of the
// block into a plain return value, enforces the recursion-depth limit
// on entry (this is the one place every call into a method body passes
// through), and falls off the end to None when the block never returns.
type FunctionBody struct {
	Block *Block
}

func (f *FunctionBody) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	if lc, ok := ctx.(LimitedContext); ok {
		if err := lc.EnterCall(); err != nil {
			return mython.None(), err
		}
		defer lc.ExitCall()
	}
	_, err := f.Block.Execute(closure, ctx)
	if err != nil {
		if rs, ok := err.(*returnSignal); ok {
			return rs.value, nil
		}
		return mython.None(), err
	}
	return mython.None(), nil
}
