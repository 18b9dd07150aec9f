package ast

import "github.com/mython-lang/mython"

// NumberLit, StringLit, BoolLit and NoneLit are constant expressions:
// their Execute ignores the closure and context entirely.

type NumberLit struct {
	Value int64
}

func (n *NumberLit) Execute(*mython.Closure, mython.Context) (mython.Value, error) {
	return mython.NewNumber(n.Value), nil
}

type StringLit struct {
	Value string
}

func (s *StringLit) Execute(*mython.Closure, mython.Context) (mython.Value, error) {
	return mython.NewString(s.Value), nil
}

type BoolLit struct {
	Value bool
}

func (b *BoolLit) Execute(*mython.Closure, mython.Context) (mython.Value, error) {
	return mython.NewBool(b.Value), nil
}

type NoneLit struct{}

func (*NoneLit) Execute(*mython.Closure, mython.Context) (mython.Value, error) {
	return mython.None(), nil
}

// Identifier looks up a binding by name in the current closure. It is
// also used unmodified for the "self" reference: self is just the name
// every method closure binds its receiver under.
type Identifier struct {
	Name string
}

func (id *Identifier) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	v, ok := closure.Get(id.Name)
	if !ok {
		return mython.None(), mython.NewRuntimeError(mython.ErrNullDereference, "name %q is not defined", id.Name)
	}
	return v, nil
}
