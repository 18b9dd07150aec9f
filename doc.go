// Package mython implements the lexer and runtime core of Mython, a small
// indentation-structured, dynamically typed scripting language with
// single-inheritance classes and dunder-style operator methods:
//   - Lexer: tokenizes program text, synthesizing Indent/Dedent/Newline
//     tokens from whitespace.
//   - Value model: Number, String, Bool, None, Class, and Instance values,
//     each able to Print itself through a Context.
//   - Closures: name-to-value environments threaded through AST execution.
//   - Classes: single inheritance, method resolution by name and arity.
//   - Comparison and truthiness: Equal/Less/NotEqual/Greater/... and
//     IsTrue, including dispatch through __eq__/__lt__ dunder methods.
//
// The parser, AST, and program driver that sit on top of this core live in
// the sibling ast, parser, and interp packages.
package mython
