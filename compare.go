package mython

// IsTrue implements the truthiness rule: None is false, Number is
// true iff nonzero, String is true iff non-empty, Bool is its own value,
// and everything else (Class, Instance) is false.
func IsTrue(v Value) bool {
	switch v.Kind() {
	case KindNone:
		return false
	case KindNumber:
		return v.Number() != 0
	case KindString:
		return v.Str() != ""
	case KindBool:
		return v.Bool()
	default:
		return false
	}
}

// dunderBoolResult extracts the boolean payload a __eq__/__lt__ dunder is
// required to return. A non-Bool result is itself a comparison error,
// since the dunder contract here is "returns a Bool".
func dunderBoolResult(v Value) (bool, error) {
	if v.Kind() != KindBool {
		return false, newRuntimeError(ErrComparison, "dunder comparison method did not return a Bool")
	}
	return v.Bool(), nil
}

// Equal compares two values for equality. Both None compares true; exactly one
// None is a comparison error; an Instance whose __eq__ takes one
// parameter after self dispatches to it with rhs as that argument; a Class whose method table contains __eq__
// takes the vestigial class-level bypass described below;
// otherwise same-variant primitives compare structurally, and anything
// else is a comparison error.
func Equal(lhs, rhs Value, ctx Context) (bool, error) {
	if lhs.Kind() == KindNone || rhs.Kind() == KindNone {
		if lhs.Kind() == KindNone && rhs.Kind() == KindNone {
			return true, nil
		}
		return false, newRuntimeError(ErrComparison, "cannot compare objects for equality with None")
	}

	if lhs.Kind() == KindInstance && lhs.Instance().HasMethod("__eq__", 1) {
		result, err := lhs.Instance().Call("__eq__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return dunderBoolResult(result)
	}

	if lhs.Kind() == KindClass {
		if m, ok := lhs.Class().GetMethod("__eq__"); ok {
			closure := NewClosure()
			closure.Set("__eq__", rhs)
			result, err := m.Body.Execute(closure, ctx)
			if err != nil {
				return false, err
			}
			return dunderBoolResult(result)
		}
	}

	if lhs.Kind() == rhs.Kind() {
		switch lhs.Kind() {
		case KindString:
			return lhs.Str() == rhs.Str(), nil
		case KindNumber:
			return lhs.Number() == rhs.Number(), nil
		case KindBool:
			return lhs.Bool() == rhs.Bool(), nil
		}
	}

	return false, newRuntimeError(ErrComparison, "cannot compare objects for equality in general")
}

// Less orders two values. Either operand None is a comparison
// error; Instance/Class dunder dispatch mirrors Equal's, using __lt__;
// otherwise same-variant primitives compare by payload <, and anything
// else is a comparison error.
func Less(lhs, rhs Value, ctx Context) (bool, error) {
	if lhs.Kind() == KindNone || rhs.Kind() == KindNone {
		return false, newRuntimeError(ErrComparison, "cannot compare objects for less")
	}

	if lhs.Kind() == KindInstance && lhs.Instance().HasMethod("__lt__", 1) {
		result, err := lhs.Instance().Call("__lt__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return dunderBoolResult(result)
	}

	if lhs.Kind() == KindClass {
		if m, ok := lhs.Class().GetMethod("__lt__"); ok {
			closure := NewClosure()
			closure.Set("__lt__", rhs)
			result, err := m.Body.Execute(closure, ctx)
			if err != nil {
				return false, err
			}
			return dunderBoolResult(result)
		}
	}

	if lhs.Kind() == rhs.Kind() {
		switch lhs.Kind() {
		case KindString:
			return lhs.Str() < rhs.Str(), nil
		case KindNumber:
			return lhs.Number() < rhs.Number(), nil
		case KindBool:
			return !lhs.Bool() && rhs.Bool(), nil
		}
	}

	return false, newRuntimeError(ErrComparison, "cannot compare objects for less")
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are derived from
// Equal and Less. Any underlying failure surfaces as a
// comparison error from the derived operation itself.
func NotEqual(lhs, rhs Value, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, newRuntimeError(ErrComparison, "cannot compare objects for NotEqual")
	}
	return !eq, nil
}

func Greater(lhs, rhs Value, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, newRuntimeError(ErrComparison, "cannot compare objects for Greater")
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, newRuntimeError(ErrComparison, "cannot compare objects for Greater")
	}
	return !lt && !eq, nil
}

func LessOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, newRuntimeError(ErrComparison, "cannot compare objects for LessOrEqual")
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, newRuntimeError(ErrComparison, "cannot compare objects for GreaterOrEqual")
	}
	return !lt, nil
}
