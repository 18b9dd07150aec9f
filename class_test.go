package mython

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type constExecutable struct {
	v Value
}

func (e constExecutable) Execute(closure *Closure, ctx Context) (Value, error) {
	return e.v, nil
}

func TestClassGetMethodOwnThenParent(t *testing.T) {
	parent := NewClass("Animal", []Method{
		{Name: "speak", FormalParams: nil, Body: constExecutable{NewString("...")}},
	}, nil)
	child := NewClass("Dog", []Method{
		{Name: "bark", FormalParams: nil, Body: constExecutable{NewString("Woof")}},
	}, parent)

	m, ok := child.GetMethod("bark")
	assert.True(t, ok)
	assert.Equal(t, "bark", m.Name)

	m, ok = child.GetMethod("speak")
	assert.True(t, ok)
	assert.Equal(t, "speak", m.Name)

	_, ok = child.GetMethod("fly")
	assert.False(t, ok)
}

func TestClassOwnMethodShadowsParent(t *testing.T) {
	parent := NewClass("Animal", []Method{
		{Name: "speak", FormalParams: nil, Body: constExecutable{NewString("...")}},
	}, nil)
	child := NewClass("Dog", []Method{
		{Name: "speak", FormalParams: nil, Body: constExecutable{NewString("Woof")}},
	}, parent)

	m, ok := child.GetMethod("speak")
	assert.True(t, ok)
	result, err := m.Body.Execute(NewClosure(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "Woof", result.Str())
}

func TestClassHasMethodChecksArity(t *testing.T) {
	cls := NewClass("Greeter", []Method{
		{Name: "greet", FormalParams: []string{"name"}, Body: constExecutable{None()}},
	}, nil)

	assert.True(t, cls.HasMethod("greet", 1))
	assert.False(t, cls.HasMethod("greet", 0))
	assert.False(t, cls.HasMethod("greet", 2))
	assert.False(t, cls.HasMethod("missing", 0))
}
