package ast

import (
	"fmt"

	"github.com/mython-lang/mython"
)

// Arithmetic, comparison, and logical operator spellings. Comparison
// operators dispatch through the core's mython.Equal/Less family rather
// than reimplementing ordering here.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"

	OpEq  = "=="
	OpNeq = "!="
	OpLt  = "<"
	OpLe  = "<="
	OpGt  = ">"
	OpGe  = ">="

	OpAnd = "and"
	OpOr  = "or"
)

// BinaryExpr is a two-operand expression. Arithmetic is evaluated
// directly on Number/String payloads (spec.md's core has no notion of
// arithmetic; this is the supplemented language layer). Comparisons and
// logical operators route through the runtime's comparison and
// truthiness rules so user-defined __eq__/__lt__ dunders are honored.
type BinaryExpr struct {
	Op    string
	Left  Node
	Right Node
}

func (b *BinaryExpr) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	switch b.Op {
	case OpAnd:
		lv, err := b.Left.Execute(closure, ctx)
		if err != nil {
			return mython.None(), err
		}
		if !mython.IsTrue(lv) {
			return mython.NewBool(false), nil
		}
		rv, err := b.Right.Execute(closure, ctx)
		if err != nil {
			return mython.None(), err
		}
		return mython.NewBool(mython.IsTrue(rv)), nil
	case OpOr:
		lv, err := b.Left.Execute(closure, ctx)
		if err != nil {
			return mython.None(), err
		}
		if mython.IsTrue(lv) {
			return mython.NewBool(true), nil
		}
		rv, err := b.Right.Execute(closure, ctx)
		if err != nil {
			return mython.None(), err
		}
		return mython.NewBool(mython.IsTrue(rv)), nil
	}

	lv, err := b.Left.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	rv, err := b.Right.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}

	switch b.Op {
	case OpEq:
		result, err := mython.Equal(lv, rv, ctx)
		return mython.NewBool(result), err
	case OpNeq:
		result, err := mython.NotEqual(lv, rv, ctx)
		return mython.NewBool(result), err
	case OpLt:
		result, err := mython.Less(lv, rv, ctx)
		return mython.NewBool(result), err
	case OpLe:
		result, err := mython.LessOrEqual(lv, rv, ctx)
		return mython.NewBool(result), err
	case OpGt:
		result, err := mython.Greater(lv, rv, ctx)
		return mython.NewBool(result), err
	case OpGe:
		result, err := mython.GreaterOrEqual(lv, rv, ctx)
		return mython.NewBool(result), err
	}

	return b.evalArithmetic(lv, rv)
}

func (b *BinaryExpr) evalArithmetic(lv, rv mython.Value) (mython.Value, error) {
	if b.Op == OpAdd && lv.Kind() == mython.KindString && rv.Kind() == mython.KindString {
		return mython.NewString(lv.Str() + rv.Str()), nil
	}
	if lv.Kind() != mython.KindNumber || rv.Kind() != mython.KindNumber {
		return mython.None(), fmt.Errorf("unsupported operand types for %s", b.Op)
	}
	l, r := lv.Number(), rv.Number()
	switch b.Op {
	case OpAdd:
		return mython.NewNumber(l + r), nil
	case OpSub:
		return mython.NewNumber(l - r), nil
	case OpMul:
		return mython.NewNumber(l * r), nil
	case OpDiv:
		if r == 0 {
			return mython.None(), fmt.Errorf("division by zero")
		}
		return mython.NewNumber(l / r), nil
	}
	return mython.None(), fmt.Errorf("unknown operator %q", b.Op)
}

// UnaryExpr is the only unary node: logical not, which negates
// truthiness rather than requiring a Bool operand. (The parser turns
// unary minus into a BinaryExpr subtracting the operand from zero.)
type UnaryExpr struct {
	Op   string
	Expr Node
}

func (u *UnaryExpr) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	v, err := u.Expr.Execute(closure, ctx)
	if err != nil {
		return mython.None(), err
	}
	return mython.NewBool(!mython.IsTrue(v)), nil
}
