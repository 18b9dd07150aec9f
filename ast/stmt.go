package ast

import (
	"fmt"

	"github.com/mython-lang/mython"
)

// ExprStmt evaluates an expression for its side effects (typically a
// method call) and discards the result.
type ExprStmt struct {
	Expr Node
}

func (s *ExprStmt) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	_, err := s.Expr.Execute(closure, ctx)
	return mython.None(), err
}

// AssignStmt binds Value to Target, which is either an *Identifier
// (closure binding) or a *MemberAccess (instance field).
type AssignStmt struct {
	Target Node
	Value  Node
}

func (s *AssignStmt) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	val, err := s.Value.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	switch target := s.Target.(type) {
	case *Identifier:
		closure.Set(target.Name, val)
	case *MemberAccess:
		ov, err := target.Object.Execute(closure, ctx)
		if err != nil {
			return mython.None(), err
		}
		inst, err := requireInstance(ov, target.Field)
		if err != nil {
			return mython.None(), err
		}
		inst.Fields[target.Field] = val
	default:
		return mython.None(), fmt.Errorf("invalid assignment target")
	}
	return val, nil
}

// PrintStmt prints each argument separated by a single space, followed
// by a trailing newline, mirroring Mython's `print a, b` statement.
// None prints as the literal "None" here, unlike Value.Print's no-op
// case, which exists only to let None participate uniformly in other
// Print call sites (e.g. instance field rendering via __str__).
type PrintStmt struct {
	Args []Node
}

func (s *PrintStmt) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	w := ctx.Output()
	for i, arg := range s.Args {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return mython.None(), err
			}
		}
		v, err := arg.Execute(closure, ctx)
		if err != nil {
			return mython.None(), err
		}
		if v.IsNone() {
			if _, err := fmt.Fprint(w, "None"); err != nil {
				return mython.None(), err
			}
			continue
		}
		if err := v.Print(w, ctx); err != nil {
			return mython.None(), err
		}
	}
	_, err := fmt.Fprintln(w)
	return mython.None(), err
}

// ReturnStmt unwinds to the nearest enclosing FunctionBody carrying
// Value (or None, if Value is nil — a bare `return`).
type ReturnStmt struct {
	Value Node
}

func (s *ReturnStmt) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	if s.Value == nil {
		return mython.None(), &returnSignal{value: mython.None()}
	}
	v, err := s.Value.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	return mython.None(), &returnSignal{value: v}
}

// IfStmt executes Then when Cond is truthy, Else otherwise (Else may be
// nil for a bodyless `if` with no `else` clause).
type IfStmt struct {
	Cond Node
	Then *Block
	Else *Block
}

func (s *IfStmt) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	cond, err := s.Cond.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	if mython.IsTrue(cond) {
		return s.Then.Execute(closure, ctx)
	}
	if s.Else != nil {
		return s.Else.Execute(closure, ctx)
	}
	return mython.None(), nil
}
