package mython

import (
	"fmt"
	"io"
)

// ValueKind discriminates the Value tagged union.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

// Value is the tagged polymorphic runtime value. Number,
// String, and Bool are held by copy; Class and Instance are held by
// pointer so that an identifier binding and a field binding can share the
// same underlying object, per the "values are reference-shared" invariant.
type Value struct {
	kind     ValueKind
	num      int64
	str      string
	boolean  bool
	class    *Class
	instance *Instance
}

// None is the absent-value sentinel. It is distinguishable from every
// other value and is not equal to anything except another None.
func None() Value { return Value{kind: KindNone} }

func NewNumber(n int64) Value             { return Value{kind: KindNumber, num: n} }
func NewString(s string) Value            { return Value{kind: KindString, str: s} }
func NewBool(b bool) Value                { return Value{kind: KindBool, boolean: b} }
func NewClassValue(c *Class) Value        { return Value{kind: KindClass, class: c} }
func NewInstanceValue(i *Instance) Value  { return Value{kind: KindInstance, instance: i} }

func (v Value) Kind() ValueKind     { return v.kind }
func (v Value) IsNone() bool        { return v.kind == KindNone }
func (v Value) Number() int64       { return v.num }
func (v Value) Str() string         { return v.str }
func (v Value) Bool() bool          { return v.boolean }
func (v Value) Class() *Class       { return v.class }
func (v Value) Instance() *Instance { return v.instance }

// Print renders v to sink. Number prints its decimal form,
// String prints its raw characters, Bool prints exactly True/False, Class
// prints "Class <name>", and Instance either invokes a zero-argument
// __str__ or prints an implementation-defined identity marker. None
// prints nothing here — the textual "None" that a print
// statement emits for the None keyword is produced by the AST's print
// path, not by this generic dispatch.
func (v Value) Print(w io.Writer, ctx Context) error {
	switch v.kind {
	case KindNone:
		return nil
	case KindNumber:
		_, err := fmt.Fprintf(w, "%d", v.num)
		return err
	case KindString:
		_, err := io.WriteString(w, v.str)
		return err
	case KindBool:
		if v.boolean {
			_, err := io.WriteString(w, "True")
			return err
		}
		_, err := io.WriteString(w, "False")
		return err
	case KindClass:
		_, err := fmt.Fprintf(w, "Class %s", v.class.Name)
		return err
	case KindInstance:
		return v.instance.Print(w, ctx)
	default:
		return nil
	}
}
