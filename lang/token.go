package lang

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// Punctuation.
	TokenLCurly TokenKind = iota
	TokenRCurly
	TokenLParen
	TokenRParen
	TokenComma
	TokenDot
	TokenSemicolon
	TokenPlus
	TokenMinus
	TokenSlash
	TokenStar

	// One- or two-character operators.
	TokenBang
	TokenBangEq
	TokenEq
	TokenEqEq
	TokenGt
	TokenGte
	TokenLt
	TokenLte

	// Literals and identifiers.
	TokenIdent
	TokenString
	TokenNumber
	TokenChar

	// Keywords.
	TokenAnd
	TokenOr
	TokenStruct
	TokenSelf
	TokenFun
	TokenLet
	TokenPop
	TokenFor
	TokenWhile
	TokenIf
	TokenElse
	TokenReturn
	TokenPrint
	TokenTrue
	TokenFalse
	TokenNull

	// Synthetic kinds.
	TokenError
	TokenEOF
)

// tokenKindName maps each kind to a display name used in diagnostics.
var tokenKindName = map[TokenKind]string{
	TokenLCurly:    "'{'",
	TokenRCurly:    "'}'",
	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenComma:     "','",
	TokenDot:       "'.'",
	TokenSemicolon: "';'",
	TokenPlus:      "'+'",
	TokenMinus:     "'-'",
	TokenSlash:     "'/'",
	TokenStar:      "'*'",
	TokenBang:      "'!'",
	TokenBangEq:    "'!='",
	TokenEq:        "'='",
	TokenEqEq:      "'=='",
	TokenGt:        "'>'",
	TokenGte:       "'>='",
	TokenLt:        "'<'",
	TokenLte:       "'<='",
	TokenIdent:     "identifier",
	TokenString:    "string literal",
	TokenNumber:    "number literal",
	TokenChar:      "character literal",
	TokenAnd:       "'&&'",
	TokenOr:        "'||'",
	TokenStruct:    "'struct'",
	TokenSelf:      "'self'",
	TokenFun:       "'fun'",
	TokenLet:       "'let'",
	TokenPop:       "'pop'",
	TokenFor:       "'for'",
	TokenWhile:     "'while'",
	TokenIf:        "'if'",
	TokenElse:      "'else'",
	TokenReturn:    "'return'",
	TokenPrint:     "'print'",
	TokenTrue:      "'true'",
	TokenFalse:     "'false'",
	TokenNull:      "'null'",
	TokenError:     "error",
	TokenEOF:       "end of input",
}

// String returns a display name for the token kind.
func (k TokenKind) String() string {
	if name, ok := tokenKindName[k]; ok {
		return name
	}

	return "unknown"
}

// keywords maps reserved identifier spellings to their token kinds.
var keywords = map[string]TokenKind{
	"print":  TokenPrint,
	"if":     TokenIf,
	"else":   TokenElse,
	"&&":     TokenAnd,
	"||":     TokenOr,
	"let":    TokenLet,
	"pop":    TokenPop,
	"struct": TokenStruct,
	"self":   TokenSelf,
	"while":  TokenWhile,
	"for":    TokenFor,
	"return": TokenReturn,
	"fun":    TokenFun,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"null":   TokenNull,
}

// Keywords returns the reserved spellings of the language in no particular
// order. Used by the REPL completer.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}

	return names
}

// Token is a single lexeme with its kind and source line.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}

// String returns a compact representation for debug output.
func (t Token) String() string {
	return "[" + t.Lexeme + " " + t.Kind.String() + "]"
}
