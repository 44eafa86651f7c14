package lang

import "testing"

func scanAll(t *testing.T, source string) []Token {
	t.Helper()

	l := NewLexer(source)

	var tokens []Token

	for {
		tok := l.Next()
		tokens = append(tokens, tok)

		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func TestLexer_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []TokenKind
	}{
		{
			name:   "declaration",
			source: `let x = 1;`,
			want: []TokenKind{
				TokenLet, TokenIdent, TokenEq, TokenNumber, TokenSemicolon, TokenEOF,
			},
		},
		{
			name:   "pop statement",
			source: `pop x;`,
			want:   []TokenKind{TokenPop, TokenIdent, TokenSemicolon, TokenEOF},
		},
		{
			name:   "operators",
			source: `! != = == > >= < <= + - * /`,
			want: []TokenKind{
				TokenBang, TokenBangEq, TokenEq, TokenEqEq,
				TokenGt, TokenGte, TokenLt, TokenLte,
				TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenEOF,
			},
		},
		{
			name:   "logical keywords",
			source: `a && b || c`,
			want: []TokenKind{
				TokenIdent, TokenAnd, TokenIdent, TokenOr, TokenIdent, TokenEOF,
			},
		},
		{
			name:   "literals",
			source: `42 3.14 "text" 'c' true false null`,
			want: []TokenKind{
				TokenNumber, TokenNumber, TokenString, TokenChar,
				TokenTrue, TokenFalse, TokenNull, TokenEOF,
			},
		},
		{
			name:   "reserved keywords",
			source: `fun struct self for while if else return print`,
			want: []TokenKind{
				TokenFun, TokenStruct, TokenSelf, TokenFor, TokenWhile,
				TokenIf, TokenElse, TokenReturn, TokenPrint, TokenEOF,
			},
		},
		{
			name:   "comment skipped",
			source: "let a = 1; // trailing comment\nprint a;",
			want: []TokenKind{
				TokenLet, TokenIdent, TokenEq, TokenNumber, TokenSemicolon,
				TokenPrint, TokenIdent, TokenSemicolon, TokenEOF,
			},
		},
		{
			name:   "empty input",
			source: "",
			want:   []TokenKind{TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanAll(t, tt.source)

			if len(tokens) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.want), len(tokens), tokens)
			}

			for i, kind := range tt.want {
				if tokens[i].Kind != kind {
					t.Errorf("token %d: expected %s, got %s (%q)",
						i, kind, tokens[i].Kind, tokens[i].Lexeme)
				}
			}
		})
	}
}

func TestLexer_Lines(t *testing.T) {
	tokens := scanAll(t, "let a = 1;\nlet b = 2;\n\nprint c;")

	wantLines := map[string]int{"a": 1, "b": 2, "c": 4}

	for _, tok := range tokens {
		if tok.Kind != TokenIdent {
			continue
		}

		if want, ok := wantLines[tok.Lexeme]; ok && tok.Line != want {
			t.Errorf("identifier %q: expected line %d, got %d", tok.Lexeme, want, tok.Line)
		}
	}

	last := tokens[len(tokens)-1]
	if last.Line != 4 {
		t.Errorf("EOF: expected line 4, got %d", last.Line)
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "unterminated string", source: `"no closing quote`},
		{name: "unterminated char", source: `'c`},
		{name: "empty char", source: `''`},
		{name: "unexpected character", source: `let a = #;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tok := range scanAll(t, tt.source) {
				if tok.Kind == TokenError {
					return
				}
			}

			t.Error("expected an error token")
		})
	}
}

func TestLexer_CharLiterals(t *testing.T) {
	t.Run("lexeme excludes quotes", func(t *testing.T) {
		tokens := scanAll(t, `'c'`)

		if tokens[0].Kind != TokenChar {
			t.Fatalf("expected char token, got %s", tokens[0].Kind)
		}

		if tokens[0].Lexeme != "c" {
			t.Errorf("unexpected lexeme %q", tokens[0].Lexeme)
		}
	})

	t.Run("newline payload advances line", func(t *testing.T) {
		tokens := scanAll(t, "'\n'\nx")

		if tokens[0].Kind != TokenChar || tokens[0].Lexeme != "\n" {
			t.Fatalf("expected newline char token, got %s (%q)",
				tokens[0].Kind, tokens[0].Lexeme)
		}

		if tokens[0].Line != 1 {
			t.Errorf("char token: expected line 1, got %d", tokens[0].Line)
		}

		if tokens[1].Kind != TokenIdent || tokens[1].Line != 3 {
			t.Errorf("identifier after newline literal: expected line 3, got %s line %d",
				tokens[1].Kind, tokens[1].Line)
		}
	})

	t.Run("empty literal consumes both quotes", func(t *testing.T) {
		tokens := scanAll(t, "''")

		if tokens[0].Kind != TokenError {
			t.Fatalf("expected error token, got %s", tokens[0].Kind)
		}

		// The closing quote must not be re-tokenized as a new literal.
		if tokens[1].Kind != TokenEOF {
			t.Errorf("expected EOF after empty literal, got %s (%q)",
				tokens[1].Kind, tokens[1].Lexeme)
		}
	})
}

func TestLexer_StringLexemeKeepsQuotes(t *testing.T) {
	tokens := scanAll(t, `"Hello, World!"`)

	if tokens[0].Kind != TokenString {
		t.Fatalf("expected string token, got %s", tokens[0].Kind)
	}

	if tokens[0].Lexeme != `"Hello, World!"` {
		t.Errorf("unexpected lexeme %q", tokens[0].Lexeme)
	}
}
