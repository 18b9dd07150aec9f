package ast

import "github.com/mython-lang/mython"

// MethodDecl is a parsed method header plus body, not yet attached to a
// Class. ClassDeclStmt converts each of these into a mython.Method.
type MethodDecl struct {
	Name   string
	Params []string
	Body   *Block
}

// ClassDeclStmt builds a *mython.Class from its methods and binds it
// under Name in the enclosing closure, per spec.md §5's "classes are
// owned by a program-wide registry established during program
// construction" — here, the registry is just the global closure, since
// classes are ordinary first-class values once built.
type ClassDeclStmt struct {
	Name    string
	Parent  string
	Methods []*MethodDecl
}

func (s *ClassDeclStmt) Execute(closure *mython.Closure, ctx mython.Context) (mython.Value, error) {
	var parent *mython.Class
	if s.Parent != "" {
		pv, ok := closure.Get(s.Parent)
		if !ok || pv.Kind() != mython.KindClass {
			return mython.None(), mython.NewRuntimeError(mython.ErrSyntax, "base class %q is not defined", s.Parent)
		}
		parent = pv.Class()
	}

	methods := make([]mython.Method, len(s.Methods))
	for i, decl := range s.Methods {
		methods[i] = mython.Method{
			Name:         decl.Name,
			FormalParams: decl.Params,
			Body:         &FunctionBody{Block: decl.Body},
		}
	}

	cls := mython.NewClass(s.Name, methods, parent)
	closure.Set(s.Name, mython.NewClassValue(cls))
	return mython.None(), nil
}
