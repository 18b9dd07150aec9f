package mython

// Method is a named, positional-parameter-list, AST-backed callable body,
// Body is the opaque executable reference the parser/AST layer
// supplies; the runtime only ever calls Execute on it.
type Method struct {
	Name         string
	FormalParams []string
	Body         Executable
}

// Executable is the contract AST nodes satisfy: a method body (or
// any other executable construct) runs against a closure and a context
// and produces a value.
type Executable interface {
	Execute(closure *Closure, ctx Context) (Value, error)
}

// Class is the immutable-after-construction type: a name,
// an ordered list of methods, and an optional parent. Classes are
// themselves addressable as first-class Values via NewClassValue.
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// NewClass constructs a Class. Callers are responsible for the acyclic
// parent-chain invariant — this package does not itself walk
// existing classes to detect cycles at construction time, since classes
// are built bottom-up by the parser/driver before any instance exists.
func NewClass(name string, methods []Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

// GetMethod scans this class's own methods in declaration order and
// returns the first whose name matches; on a miss it recurses into the
// parent class, if any. It returns (nil, false) if neither locates the
// name — this is a name-only lookup; arity is not considered.
func (c *Class) GetMethod(name string) (*Method, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i], true
		}
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

// HasMethod is GetMethod additionally requiring that the resolved
// method's formal parameter count equals arity. Overloads of differing
// arity are not considered matches.
func (c *Class) HasMethod(name string, arity int) bool {
	m, ok := c.GetMethod(name)
	if !ok {
		return false
	}
	return len(m.FormalParams) == arity
}
