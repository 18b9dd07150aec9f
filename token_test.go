package mython

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenEqual(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Token
		equal bool
	}{
		{"matching numbers", NumberToken(3), NumberToken(3), true},
		{"differing numbers", NumberToken(3), NumberToken(4), false},
		{"matching strings", StringToken("hi"), StringToken("hi"), true},
		{"differing strings", StringToken("hi"), StringToken("bye"), false},
		{"matching identifiers", IDToken("x"), IDToken("x"), true},
		{"differing identifiers", IDToken("x"), IDToken("y"), false},
		{"matching chars", CharToken('+'), CharToken('+'), true},
		{"differing chars", CharToken('+'), CharToken('-'), false},
		{"different kinds", NumberToken(1), IDToken("1"), false},
		{"valueless kinds match", ClassToken(), ClassToken(), true},
		{"different valueless kinds", IfToken(), ElseToken(), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.equal, c.a.Equal(c.b))
		})
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{NumberToken(42), "Number{42}"},
		{StringToken("hi"), `String{hi}`},
		{IDToken("foo"), "Id{foo}"},
		{CharToken('+'), "Char{+}"},
		{EOFToken(), "Eof"},
		{ReturnToken(), "Return"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.tok.String())
	}
}

func TestKeywordKindsCoverAllKeywordSpellings(t *testing.T) {
	want := []string{
		"class", "def", "print", "if", "else", "return",
		"and", "or", "not", "None", "True", "False",
	}
	for _, kw := range want {
		_, ok := keywordKinds[kw]
		assert.True(t, ok, "missing keyword mapping for %q", kw)
	}
}
