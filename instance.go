package mython

import (
	"fmt"
	"io"
)

// Instance is the mutable field bag plus a reference to its class.
// The Class reference is a plain pointer; classes already outlive all of
// their instances by construction order. Go's garbage collector is what
// actually reclaims cyclic instance graphs (a field pointing back at
// self, or at another instance that points back), which is exactly the
// case that would need an arena-like scheme in a language without a
// tracing collector, so this package builds no arena.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance constructs an instance of cls with an empty field bag.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: make(map[string]Value)}
}

// HasMethod reports whether the instance's class chain defines method at
// the given arity.
func (inst *Instance) HasMethod(method string, arity int) bool {
	return inst.Class.HasMethod(method, arity)
}

// Print implements the instance printing rule: if the class chain defines
// __str__ with zero parameters (beyond self), invoke it with a closure
// binding only self, and print its returned value; otherwise print a
// stable implementation-defined identity token.
func (inst *Instance) Print(w io.Writer, ctx Context) error {
	if inst.HasMethod("__str__", 0) {
		result, err := inst.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		return result.Print(w, ctx)
	}
	_, err := fmt.Fprintf(w, "%p", inst)
	return err
}

// Call implements the instance call path: it requires
// HasMethod(method, len(args)), builds a fresh closure binding self to
// this instance and each formal parameter to the corresponding actual
// argument positionally, and executes the method body against that
// closure.
func (inst *Instance) Call(method string, args []Value, ctx Context) (Value, error) {
	if !inst.HasMethod(method, len(args)) {
		return None(), newRuntimeError(ErrMethodNotFound, "cannot call %q", method)
	}
	m, _ := inst.Class.GetMethod(method)

	closure := NewClosure()
	closure.Set("self", NewInstanceValue(inst))
	for i, param := range m.FormalParams {
		closure.Set(param, args[i])
	}
	return m.Body.Execute(closure, ctx)
}
