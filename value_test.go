package mython

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuePrint(t *testing.T) {
	ctx := NewSinkContext(nil)

	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"none prints nothing", None(), ""},
		{"number", NewNumber(42), "42"},
		{"negative number", NewNumber(-3), "-3"},
		{"string", NewString("hello"), "hello"},
		{"true", NewBool(true), "True"},
		{"false", NewBool(false), "False"},
		{"class", NewClassValue(NewClass("Dog", nil, nil)), "Class Dog"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var sb strings.Builder
			err := c.v.Print(&sb, ctx)
			assert.NoError(t, err)
			assert.Equal(t, c.want, sb.String())
		})
	}
}

func TestValueIsNone(t *testing.T) {
	assert.True(t, None().IsNone())
	assert.False(t, NewNumber(0).IsNone())
	assert.False(t, NewBool(false).IsNone())
}

func TestInstanceValuesAreReferenceShared(t *testing.T) {
	inst := NewInstance(NewClass("Box", nil, nil))
	a := NewInstanceValue(inst)
	b := NewInstanceValue(inst)

	inst.Fields["x"] = NewNumber(1)
	assert.Equal(t, int64(1), a.Instance().Fields["x"].Number())
	assert.Equal(t, int64(1), b.Instance().Fields["x"].Number())
	assert.Same(t, a.Instance(), b.Instance())
}
