package mython

// Closure is the name-to-value environment threaded through AST execution.
// Insertion order is not observable; AST nodes read and write it directly.
type Closure struct {
	values map[string]Value
}

// NewClosure returns an empty closure.
func NewClosure() *Closure {
	return &Closure{values: make(map[string]Value)}
}

// Get returns the value bound to name and whether it was found.
func (c *Closure) Get(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (c *Closure) Set(name string, v Value) {
	c.values[name] = v
}

// Self is a convenience accessor for the "self" binding that every method
// body's closure carries.
func (c *Closure) Self() (Value, bool) {
	return c.Get("self")
}
