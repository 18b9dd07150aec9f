package mython

import (
	"bufio"
	"io"
	"strings"
)

// Lexer is the indentation-aware tokenizer. It is built
// from a character stream and exposes one token of lookahead: CurrentToken
// returns the most recently emitted token, NextToken advances and returns
// the one after it.
type Lexer struct {
	r       *bufio.Reader
	current Token
	depth   int
	dentBuf int
	line    int
	col     int
}

// NewLexer constructs a Lexer over r. The constructor pre-loads the first
// real token, as if a synthetic Newline had just been emitted — this
// matches the source's current_token_(Newline{}) seed in Lexer's own
// constructor.
func NewLexer(r io.Reader) *Lexer {
	l := &Lexer{r: bufio.NewReader(r), current: NewlineToken(), line: 1, col: 1}
	l.current = l.nextTokenWithPos()
	return l
}

// CurrentToken returns the previously emitted token.
func (l *Lexer) CurrentToken() Token {
	return l.current
}

// NextToken advances the lexer and returns the newly emitted token.
func (l *Lexer) NextToken() Token {
	l.current = l.nextTokenWithPos()
	return l.current
}

// nextTokenWithPos stamps whatever loadToken produces with the position
// the token started at. loadToken itself is unaware of positions — it
// may recurse (blank lines, comments) before settling on a token, so
// stamping happens once, here, at the call boundary.
func (l *Lexer) nextTokenWithPos() Token {
	start := Position{Line: l.line, Col: l.col}
	tok := l.loadToken()
	tok.Pos = start
	return tok
}

func (l *Lexer) peek() (byte, bool) {
	b, err := l.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (l *Lexer) get() (byte, bool) {
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, false
	}
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b, true
}

// discardLine consumes through end of line, including the newline itself
// if present.
func (l *Lexer) discardLine() {
	for {
		b, ok := l.get()
		if !ok || b == '\n' {
			return
		}
	}
}

// loadToken implements the token extraction rules. c/ok are
// threaded through the function the way the source's local `c` is: most
// branches update them as they consume input, and the punctuation/
// identifier/number checks at the bottom act on whatever they were last
// set to.
func (l *Lexer) loadToken() Token {
	c, ok := l.peek()

	if !ok {
		// End of input.
		if l.depth > 0 {
			l.depth--
			l.dentBuf = 0
			return DedentToken()
		}
		switch l.current.Kind {
		case TokenNewline, TokenEOF, TokenDedent:
			return EOFToken()
		default:
			return NewlineToken()
		}
	}

	if c == '\n' {
		// Collapse runs of blank lines into a single Newline.
		if l.current.Kind == TokenNewline {
			for {
				l.get()
				c, ok = l.peek()
				if !ok || c != '\n' {
					break
				}
			}
		} else {
			l.get()
			return NewlineToken()
		}
	}

	if l.current.Kind == TokenNewline {
		// Indentation is only considered right after a Newline.
		if ok && c == ' ' {
			spaces := 0
			for {
				l.get()
				spaces++
				c, ok = l.peek()
				if !(ok && c == ' ') {
					break
				}
			}
			if ok && (c == '#' || c == '\n') {
				l.discardLine()
				return l.loadToken()
			}
			k := spaces / 2
			switch {
			case k == l.depth+1:
				l.depth++
				return IndentToken()
			case k < l.depth:
				l.depth--
				l.dentBuf = k
				return DedentToken()
			}
			// Same depth: no structural token, fall through with c/ok
			// holding the first non-space character already peeked.
		} else if l.depth > 0 {
			// Non-space after a Newline while still indented implies a dedent.
			l.depth--
			l.dentBuf = 0
			return DedentToken()
		}
	}

	if l.current.Kind == TokenDedent {
		// Drain the dedent buffer: one Dedent per still-open level.
		if l.dentBuf < l.depth {
			l.depth--
			return DedentToken()
		}
	}

	if ok && c == ' ' {
		// Non-indentation whitespace.
		for {
			l.get()
			c, ok = l.peek()
			if !(ok && c == ' ') {
				break
			}
		}
	}

	if !ok {
		return EOFToken()
	}

	if isPunct(c) && c != '_' {
		// Punctuation and operators.
		l.get()
		switch c {
		case '"', '\'':
			return StringToken(l.readString(c))
		case '#':
			l.discardLine()
			if l.current.Kind != TokenNewline {
				return NewlineToken()
			}
			return l.loadToken()
		case '=':
			if n, ok2 := l.peek(); ok2 && n == '=' {
				l.get()
				return EqToken()
			}
			return CharToken('=')
		case '!':
			if n, ok2 := l.peek(); ok2 && n == '=' {
				l.get()
				return NotEqToken()
			}
			return CharToken('!')
		case '<':
			if n, ok2 := l.peek(); ok2 && n == '=' {
				l.get()
				return LessOrEqToken()
			}
			return CharToken('<')
		case '>':
			if n, ok2 := l.peek(); ok2 && n == '=' {
				l.get()
				return GreaterOrEqToken()
			}
			return CharToken('>')
		default:
			return CharToken(c)
		}
	}

	if isAlpha(c) || c == '_' {
		// Identifier / keyword, maximal munch.
		var sb strings.Builder
		for isAlpha(c) || isDigit(c) || c == '_' {
			b, _ := l.get()
			sb.WriteByte(b)
			c, ok = l.peek()
			if !ok {
				break
			}
		}
		s := sb.String()
		if kind, isKeyword := keywordKinds[s]; isKeyword {
			return Token{Kind: kind}
		}
		return IDToken(s)
	}

	if isDigit(c) {
		// Non-negative decimal integer, maximal munch.
		first, _ := l.get()
		n := int64(first - '0')
		for {
			next, ok2 := l.peek()
			if !ok2 || !isDigit(next) {
				break
			}
			l.get()
			n = n*10 + int64(next-'0')
		}
		return NumberToken(n)
	}

	// Nothing matched.
	return EOFToken()
}

// readString consumes a string literal up to and including the closing
// delim, honoring the backslash escapes. The opening quote has
// already been consumed by the caller.
func (l *Lexer) readString(delim byte) string {
	var sb strings.Builder
	for {
		c, ok := l.get()
		if !ok {
			return sb.String()
		}
		switch {
		case c == '\\':
			e, ok2 := l.get()
			if !ok2 {
				return sb.String()
			}
			switch e {
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(e)
			}
		case c == delim:
			return sb.String()
		default:
			sb.WriteByte(c)
		}
	}
}

func isPunct(c byte) bool {
	return (c >= '!' && c <= '/') ||
		(c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
