// Package interp is the program driver spec.md §1 lists as an external
// collaborator: it parses source text into an AST, builds the
// program-wide class registry by executing top-level statements against
// a root closure, and is the smallest layer that makes the lexer and
// runtime reachable end-to-end from cmd/mython.
package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/mython-lang/mython"
	"github.com/mython-lang/mython/ast"
	"github.com/mython-lang/mython/internal/config"
	"github.com/mython-lang/mython/parser"
)

// Interpreter ties a parsed program to the runtime. Its global closure
// doubles as the class registry spec.md §5 describes ("classes are
// owned by a program-wide registry established during program
// construction") — a class declaration is just another top-level
// statement that binds a name in this same closure.
type Interpreter struct {
	global *mython.Closure
	limits config.Limits
}

// New constructs an Interpreter with the given execution limits. Output
// from `print` statements is written to the io.Writer passed to Run.
func New(limits config.Limits) *Interpreter {
	return &Interpreter{global: mython.NewClosure(), limits: limits}
}

// Run compiles source and executes it against this Interpreter's global
// closure, writing `print` output to out. Successive calls to Run share
// state: classes and variables defined in one Run are visible to the
// next, which is what makes a REPL possible.
func (it *Interpreter) Run(source string, out io.Writer) error {
	program, err := Compile(source)
	if err != nil {
		return err
	}
	ctx := newExecContext(out, it.limits)
	_, err = program.Execute(it.global, ctx)
	return err
}

// Global exposes the interpreter's root closure, e.g. for a REPL to
// inspect bound names between evaluations.
func (it *Interpreter) Global() *mython.Closure {
	return it.global
}

// Compile lexes and parses source into a runnable *ast.Program without
// executing it, exposed separately from Run so a driver can implement a
// "check only" mode the way cmd/vibes run -check does.
func Compile(source string) (*ast.Program, error) {
	lex := mython.NewLexer(strings.NewReader(source))
	p := parser.New(lex)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return program, nil
}
