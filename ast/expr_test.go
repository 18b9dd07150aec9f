package ast

import (
	"testing"

	"github.com/mython-lang/mython"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierUndefinedIsNullDereference(t *testing.T) {
	_, err := (&Identifier{Name: "missing"}).Execute(mython.NewClosure(), mython.NewSinkContext(nil))
	require.Error(t, err)
	var rerr *mython.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, mython.ErrNullDereference, rerr.Kind)
}

func TestBinaryExprArithmetic(t *testing.T) {
	ctx := mython.NewSinkContext(nil)
	closure := mython.NewClosure()

	cases := []struct {
		op       string
		a, b     int64
		expected int64
	}{
		{OpAdd, 2, 3, 5},
		{OpSub, 5, 3, 2},
		{OpMul, 4, 3, 12},
		{OpDiv, 10, 2, 5},
	}
	for _, c := range cases {
		expr := &BinaryExpr{Op: c.op, Left: &NumberLit{Value: c.a}, Right: &NumberLit{Value: c.b}}
		v, err := expr.Execute(closure, ctx)
		require.NoError(t, err)
		assert.Equal(t, c.expected, v.Number())
	}
}

func TestBinaryExprDivisionByZero(t *testing.T) {
	expr := &BinaryExpr{Op: OpDiv, Left: &NumberLit{Value: 1}, Right: &NumberLit{Value: 0}}
	_, err := expr.Execute(mython.NewClosure(), mython.NewSinkContext(nil))
	assert.Error(t, err)
}

func TestBinaryExprStringConcat(t *testing.T) {
	expr := &BinaryExpr{Op: OpAdd, Left: &StringLit{Value: "foo"}, Right: &StringLit{Value: "bar"}}
	v, err := expr.Execute(mython.NewClosure(), mython.NewSinkContext(nil))
	require.NoError(t, err)
	assert.Equal(t, "foobar", v.Str())
}

func TestBinaryExprAndOrShortCircuit(t *testing.T) {
	ctx := mython.NewSinkContext(nil)
	closure := mython.NewClosure()

	panics := &Identifier{Name: "does-not-exist"}

	andExpr := &BinaryExpr{Op: OpAnd, Left: &BoolLit{Value: false}, Right: panics}
	v, err := andExpr.Execute(closure, ctx)
	require.NoError(t, err)
	assert.False(t, v.Bool())

	orExpr := &BinaryExpr{Op: OpOr, Left: &BoolLit{Value: true}, Right: panics}
	v, err = orExpr.Execute(closure, ctx)
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestUnaryNot(t *testing.T) {
	expr := &UnaryExpr{Op: "not", Expr: &BoolLit{Value: false}}
	v, err := expr.Execute(mython.NewClosure(), mython.NewSinkContext(nil))
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestMemberAccessOnNoneIsNullDereference(t *testing.T) {
	expr := &MemberAccess{Object: &NoneLit{}, Field: "x"}
	_, err := expr.Execute(mython.NewClosure(), mython.NewSinkContext(nil))
	var rerr *mython.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, mython.ErrNullDereference, rerr.Kind)
}

func TestMemberAccessMissingFieldIsNone(t *testing.T) {
	cls := mython.NewClass("C", nil, nil)
	inst := mython.NewInstance(cls)
	closure := mython.NewClosure()
	closure.Set("obj", mython.NewInstanceValue(inst))

	expr := &MemberAccess{Object: &Identifier{Name: "obj"}, Field: "missing"}
	v, err := expr.Execute(closure, mython.NewSinkContext(nil))
	require.NoError(t, err)
	assert.True(t, v.IsNone())
}

func TestCallExprInstantiatesAndRunsInit(t *testing.T) {
	initBody := &FunctionBody{Block: &Block{Stmts: []Node{
		&AssignStmt{
			Target: &MemberAccess{Object: &Identifier{Name: "self"}, Field: "n"},
			Value:  &Identifier{Name: "n"},
		},
	}}}
	cls := mython.NewClass("Box", []mython.Method{
		{Name: "__init__", FormalParams: []string{"n"}, Body: initBody},
	}, nil)
	closure := mython.NewClosure()
	closure.Set("Box", mython.NewClassValue(cls))

	call := &CallExpr{Callee: &Identifier{Name: "Box"}, Args: []Node{&NumberLit{Value: 9}}}
	v, err := call.Execute(closure, mython.NewSinkContext(nil))
	require.NoError(t, err)
	require.Equal(t, mython.KindInstance, v.Kind())
	field, ok := v.Instance().Fields["n"]
	require.True(t, ok)
	assert.Equal(t, int64(9), field.Number())
}
