package lang

// The scanner produces tokens on demand for the single-pass compiler.
// It never allocates a token slice for the whole input.

import "strconv"

// Lexer scans dynamix source text into tokens.
type Lexer struct {
	source []rune
	start  int
	cursor int
	line   int
}

// NewLexer creates a Lexer over the given source text.
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		line:   1,
	}
}

// Next scans and returns the next token. After the end of input is reached,
// every subsequent call returns a TokenEOF token.
func (l *Lexer) Next() Token {
	l.trim()

	l.start = l.cursor

	if l.atEnd() {
		return l.make(TokenEOF)
	}

	c := l.advance()

	switch {
	case isDigit(c):
		return l.number()
	case isAlpha(c):
		return l.identifier()
	}

	switch c {
	case '{':
		return l.make(TokenLCurly)
	case '}':
		return l.make(TokenRCurly)
	case '(':
		return l.make(TokenLParen)
	case ')':
		return l.make(TokenRParen)
	case ';':
		return l.make(TokenSemicolon)
	case ',':
		return l.make(TokenComma)
	case '.':
		return l.make(TokenDot)
	case '-':
		return l.make(TokenMinus)
	case '+':
		return l.make(TokenPlus)
	case '/':
		return l.make(TokenSlash)
	case '*':
		return l.make(TokenStar)
	case '!':
		if l.match('=') {
			return l.make(TokenBangEq)
		}

		return l.make(TokenBang)
	case '=':
		if l.match('=') {
			return l.make(TokenEqEq)
		}

		return l.make(TokenEq)
	case '<':
		if l.match('=') {
			return l.make(TokenLte)
		}

		return l.make(TokenLt)
	case '>':
		if l.match('=') {
			return l.make(TokenGte)
		}

		return l.make(TokenGt)
	case '\'':
		return l.char()
	case '"':
		return l.string()
	}

	return l.errorToken("unexpected character " + strconv.QuoteRune(c))
}

// trim consumes whitespace and line comments preceding the next token.
func (l *Lexer) trim() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			l.line++
			l.advance()
		case '/':
			if l.peekNext() != '/' {
				return
			}
			// Line comment runs to end of line.
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.cursor >= len(l.source)
}

func (l *Lexer) advance() rune {
	l.cursor++

	return l.source[l.cursor-1]
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}

	return l.source[l.cursor]
}

func (l *Lexer) peekNext() rune {
	if l.cursor+1 >= len(l.source) {
		return 0
	}

	return l.source[l.cursor+1]
}

func (l *Lexer) match(c rune) bool {
	if l.atEnd() || l.source[l.cursor] != c {
		return false
	}

	l.cursor++

	return true
}

func (l *Lexer) make(kind TokenKind) Token {
	return Token{
		Kind:   kind,
		Lexeme: string(l.source[l.start:l.cursor]),
		Line:   l.line,
	}
}

func (l *Lexer) errorToken(msg string) Token {
	return Token{
		Kind:   TokenError,
		Lexeme: msg,
		Line:   l.line,
	}
}

// char scans a character literal: exactly one rune between single quotes.
// The lexeme excludes the quotes; a newline payload still counts toward line
// tracking.
func (l *Lexer) char() Token {
	if l.atEnd() {
		return l.errorToken("unterminated character literal")
	}

	if l.peek() == '\'' {
		l.advance()

		return l.errorToken("empty character literal")
	}

	l.start = l.cursor
	c := l.advance()

	tok := l.make(TokenChar)

	if c == '\n' {
		l.line++
	}

	if l.peek() != '\'' {
		return l.errorToken("unterminated character literal")
	}

	l.advance()

	return tok
}

// string scans a double-quoted string literal. The lexeme includes the
// surrounding quotes; newlines inside the literal are permitted.
func (l *Lexer) string() Token {
	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}

		l.advance()
	}

	if l.atEnd() {
		return l.errorToken("unterminated string literal")
	}

	l.advance()

	return l.make(TokenString)
}

// number scans an integer or decimal number literal.
func (l *Lexer) number() Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()

		for isDigit(l.peek()) {
			l.advance()
		}
	}

	return l.make(TokenNumber)
}

// identifier scans an identifier or keyword. The '&' and '|' characters are
// identifier constituents so that '&&' and '||' resolve through the keyword
// table like any other reserved spelling.
func (l *Lexer) identifier() Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	lexeme := string(l.source[l.start:l.cursor])

	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind, Lexeme: lexeme, Line: l.line}
	}

	return Token{Kind: TokenIdent, Lexeme: lexeme, Line: l.line}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_' || c == '&' || c == '|'
}
