package ast

import (
	"fmt"

	"github.com/mython-lang/mython"
)

// MemberAccess reads an instance field: obj.field. Reading a field that
// was never assigned yields None rather than erroring — fields come
// into existence on first assignment (typically inside __init__), so a
// lookup before that point is a normal, not exceptional, occurrence.
type MemberAccess struct {
	Object Node
	Field  string
}

func (m *MemberAccess) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	ov, err := m.Object.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	inst, err := requireInstance(ov, m.Field)
	if err != nil {
		return mython.None(), err
	}
	if v, ok := inst.Fields[m.Field]; ok {
		return v, nil
	}
	return mython.None(), nil
}

func requireInstance(v mython.Value, field string) (*mython.Instance, error) {
	if v.IsNone() {
		return nil, mython.NewRuntimeError(mython.ErrNullDereference, "cannot access field %q on None", field)
	}
	if v.Kind() != mython.KindInstance {
		return nil, mython.NewRuntimeError(mython.ErrNullDereference, "cannot access field %q: not an instance", field)
	}
	return v.Instance(), nil
}

// MethodCallExpr calls a method on an instance: obj.method(args...).
type MethodCallExpr struct {
	Object Node
	Method string
	Args   []Node
}

func (m *MethodCallExpr) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	ov, err := m.Object.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	if ov.IsNone() {
		return mython.None(), mython.NewRuntimeError(mython.ErrNullDereference, "cannot call method %q on None", m.Method)
	}
	if ov.Kind() != mython.KindInstance {
		return mython.None(), mython.NewRuntimeError(mython.ErrNullDereference, "cannot call method %q: not an instance", m.Method)
	}
	args, err := evalArgs(m.Args, closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	return ov.Instance().Call(m.Method, args, ctx)
}

// CallExpr is a bare call expression: Name(args...). The only callable
// first-class value in this language is a Class — calling one
// instantiates it, running __init__ (if defined at the matching arity)
// against the new instance before the instance is returned.
type CallExpr struct {
	Callee Node
	Args   []Node
}

func (c *CallExpr) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	cv, err := c.Callee.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	if cv.Kind() != mython.KindClass {
		return mython.None(), fmt.Errorf("value is not callable")
	}
	args, err := evalArgs(c.Args, closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	inst := mython.NewInstance(cv.Class())
	instVal := mython.NewInstanceValue(inst)
	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return mython.None(), err
		}
	}
	return instVal, nil
}

func evalArgs(nodes []Node, closure *mython.Closure, ctx mython.Context) ([]mython.Value, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	args := make([]mython.Value, len(nodes))
	for i, n := range nodes {
		v, err := n.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
