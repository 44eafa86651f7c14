package lang

import (
	"strconv"
	"strings"
)

// precedence orders the binding strength of expression operators, lowest
// first. The compiler is a single-pass Pratt parser: each token kind maps to
// optional prefix/infix parse rules and the precedence of its infix form.
type precedence int

const (
	precNone precedence = iota
	precAssignment             // =
	precOr                     // ||
	precAnd                    // &&
	precEquality               // == !=
	precComparison             // < > <= >=
	precTerm                   // + -
	precFactor                 // * /
	precUnary                  // ! -
	precPrimary
)

// parseRule binds a token kind to its expression parse behavior.
type parseRule struct {
	prefix func(*compiler, bool)
	infix  func(*compiler, bool)
	prec   precedence
}

// compiler translates a token stream into a ByteBlock in one pass.
type compiler struct {
	lexer     *Lexer
	source    string
	block     *ByteBlock
	previous  Token
	current   Token
	err       *CompileError // first error wins
	panicMode bool
}

// Compile translates dynamix source text into an executable ByteBlock.
// The first failure is reported as a *CompileError with source context.
func Compile(source string) (*ByteBlock, error) {
	c := &compiler{
		lexer:  NewLexer(source),
		source: source,
		block:  NewByteBlock(),
	}

	c.advance()

	for !c.check(TokenEOF) {
		c.statement()

		if c.panicMode {
			c.synchronize()
		}
	}

	c.emit(OpReturn)

	if c.err != nil {
		return nil, c.err
	}

	return c.block, nil
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (c *compiler) statement() {
	switch {
	case c.match(TokenLet):
		c.letStatement()
	case c.match(TokenPop):
		c.popStatement()
	case c.match(TokenPrint):
		c.printStatement()
	case c.match(TokenLCurly):
		c.blockStatement()
	case c.match(TokenIf):
		c.ifStatement()
	case c.match(TokenWhile):
		c.whileStatement()
	case c.match(TokenFor), c.match(TokenFun), c.match(TokenStruct),
		c.match(TokenReturn), c.match(TokenSelf):
		c.errorAt(c.previous, c.previous.Kind.String()+" is not implemented")
	default:
		c.expressionStatement()
	}
}

// letStatement compiles `let name = expr ;` or `let name ;` (binds null).
// Declaring a name that is already bound is always legal: the new binding
// shadows the old one.
func (c *compiler) letStatement() {
	c.consume(TokenIdent, "expected variable name after 'let'")

	name := c.identifierConstant(c.previous)
	line := c.previous.Line

	if c.match(TokenEq) {
		c.expression()
	} else {
		c.emit(OpNull)
	}

	c.consume(TokenSemicolon, "expected ';' after declaration")

	c.emit(OpDeclareBinding)
	c.block.Push(name, line)
}

// popStatement compiles `pop name ;`, the explicit removal of the innermost
// live binding for name.
func (c *compiler) popStatement() {
	c.consume(TokenIdent, "expected variable name after 'pop'")

	name := c.identifierConstant(c.previous)
	line := c.previous.Line

	c.consume(TokenSemicolon, "expected ';' after 'pop' statement")

	c.emit(OpRemoveBinding)
	c.block.Push(name, line)
}

func (c *compiler) printStatement() {
	c.expression()
	c.consume(TokenSemicolon, "expected ';' after print value")
	c.emit(OpPrint)
}

// blockStatement compiles `{ ... }`. Scope entry and exit are runtime
// operations so that every binding declared inside dies when the block ends.
func (c *compiler) blockStatement() {
	c.emit(OpEnterScope)

	for !c.check(TokenRCurly) && !c.check(TokenEOF) {
		c.statement()

		if c.panicMode {
			c.synchronize()
		}
	}

	c.consume(TokenRCurly, "expected '}' after block")
	c.emit(OpExitScope)
}

func (c *compiler) ifStatement() {
	c.consume(TokenLParen, "expected '(' after 'if'")
	c.expression()
	c.consume(TokenRParen, "expected ')' after condition")

	thenJump := c.emitJump(OpJz)

	c.emit(OpPop)
	c.statement()

	elseJump := c.emitJump(OpJmp)

	c.patchJump(thenJump)
	c.emit(OpPop)

	if c.match(TokenElse) {
		c.statement()
	}

	c.patchJump(elseJump)
}

func (c *compiler) whileStatement() {
	loopStart := len(c.block.Code)

	c.consume(TokenLParen, "expected '(' after 'while'")
	c.expression()
	c.consume(TokenRParen, "expected ')' after condition")

	exitJump := c.emitJump(OpJz)

	c.emit(OpPop)
	c.statement()
	c.emitLoop(loopStart)

	c.patchJump(exitJump)
	c.emit(OpPop)
}

func (c *compiler) expressionStatement() {
	c.expression()
	c.consume(TokenSemicolon, "expected ';' after expression")
	c.emit(OpPop)
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (c *compiler) expression() {
	c.parsePrecedence(precAssignment)
}

func (c *compiler) parsePrecedence(prec precedence) {
	c.advance()

	rule := rules[c.previous.Kind]
	if rule.prefix == nil {
		c.errorAt(c.previous, "expected expression")

		return
	}

	canAssign := prec <= precAssignment
	rule.prefix(c, canAssign)

	for prec <= rules[c.current.Kind].prec {
		c.advance()
		rules[c.previous.Kind].infix(c, canAssign)
	}

	if canAssign && c.match(TokenEq) {
		c.errorAt(c.previous, "invalid assignment target")
	}
}

func number(c *compiler, _ bool) {
	f, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.errorAt(c.previous, "invalid number literal "+c.previous.Lexeme)

		return
	}

	c.emitConstant(Number(f))
}

func stringLit(c *compiler, _ bool) {
	// Strip the surrounding quotes; the lexeme always carries both.
	text := strings.Trim(c.previous.Lexeme, `"`)
	c.emitConstant(String(text))
}

func charLit(c *compiler, _ bool) {
	runes := []rune(c.previous.Lexeme)
	if len(runes) != 1 {
		c.errorAt(c.previous, "invalid character literal")

		return
	}

	c.emitConstant(Char(runes[0]))
}

func literal(c *compiler, _ bool) {
	switch c.previous.Kind {
	case TokenTrue:
		c.emit(OpTrue)
	case TokenFalse:
		c.emit(OpFalse)
	case TokenNull:
		c.emit(OpNull)
	}
}

// variable compiles a name reference, or an assignment to the innermost live
// binding when followed by '='. Resolution happens at run time against the
// binding stack so that popped names fail instead of going stale.
func variable(c *compiler, canAssign bool) {
	name := c.identifierConstant(c.previous)
	line := c.previous.Line

	if canAssign && c.match(TokenEq) {
		c.expression()
		c.emit(OpAssignBinding)
	} else {
		c.emit(OpResolveBinding)
	}

	c.block.Push(name, line)
}

func grouping(c *compiler, _ bool) {
	c.expression()
	c.consume(TokenRParen, "expected ')' after expression")
}

func unary(c *compiler, _ bool) {
	op := c.previous.Kind

	c.parsePrecedence(precUnary)

	switch op {
	case TokenMinus:
		c.emit(OpNegate)
	case TokenBang:
		c.emit(OpNot)
	}
}

func binaryExpr(c *compiler, _ bool) {
	op := c.previous.Kind

	c.parsePrecedence(rules[op].prec + 1)

	switch op {
	case TokenPlus:
		c.emit(OpAdd)
	case TokenMinus:
		c.emit(OpSub)
	case TokenStar:
		c.emit(OpMul)
	case TokenSlash:
		c.emit(OpDiv)
	case TokenEqEq:
		c.emit(OpEqual)
	case TokenBangEq:
		c.emit(OpEqual)
		c.emit(OpNot)
	case TokenGt:
		c.emit(OpGreater)
	case TokenGte:
		c.emit(OpLess)
		c.emit(OpNot)
	case TokenLt:
		c.emit(OpLess)
	case TokenLte:
		c.emit(OpGreater)
		c.emit(OpNot)
	}
}

// and compiles '&&' with short-circuit evaluation.
func and(c *compiler, _ bool) {
	endJump := c.emitJump(OpJz)

	c.emit(OpPop)
	c.parsePrecedence(precAnd)

	c.patchJump(endJump)
}

// or compiles '||' with short-circuit evaluation.
func or(c *compiler, _ bool) {
	elseJump := c.emitJump(OpJz)
	endJump := c.emitJump(OpJmp)

	c.patchJump(elseJump)
	c.emit(OpPop)

	c.parsePrecedence(precOr)
	c.patchJump(endJump)
}

// rules is the Pratt dispatch table.
//
//nolint:gochecknoglobals
var rules map[TokenKind]parseRule

//nolint:gochecknoinits
func init() {
	// Assigned in init to break the initialization cycle through the parse
	// functions, which recurse into parsePrecedence.
	rules = map[TokenKind]parseRule{
		TokenLParen: {prefix: grouping},
		TokenMinus:  {prefix: unary, infix: binaryExpr, prec: precTerm},
		TokenPlus:   {infix: binaryExpr, prec: precTerm},
		TokenSlash:  {infix: binaryExpr, prec: precFactor},
		TokenStar:   {infix: binaryExpr, prec: precFactor},
		TokenBang:   {prefix: unary},
		TokenBangEq: {infix: binaryExpr, prec: precEquality},
		TokenEqEq:   {infix: binaryExpr, prec: precEquality},
		TokenGt:     {infix: binaryExpr, prec: precComparison},
		TokenGte:    {infix: binaryExpr, prec: precComparison},
		TokenLt:     {infix: binaryExpr, prec: precComparison},
		TokenLte:    {infix: binaryExpr, prec: precComparison},
		TokenIdent:  {prefix: variable},
		TokenString: {prefix: stringLit},
		TokenNumber: {prefix: number},
		TokenChar:   {prefix: charLit},
		TokenAnd:    {infix: and, prec: precAnd},
		TokenOr:     {infix: or, prec: precOr},
		TokenTrue:   {prefix: literal},
		TokenFalse:  {prefix: literal},
		TokenNull:   {prefix: literal},
	}
}

// ---------------------------------------------------------------------------
// Emission helpers
// ---------------------------------------------------------------------------

func (c *compiler) emit(op OpCode) {
	c.block.PushOp(op, c.previous.Line)
}

func (c *compiler) emitConstant(v Value) {
	err := c.block.WriteConstant(v, c.previous.Line)
	if err != nil {
		c.errorAt(c.previous, err.Error())
	}
}

// identifierConstant interns the identifier's name in the constant pool and
// returns its 1-byte index.
func (c *compiler) identifierConstant(tok Token) byte {
	// Reuse an existing name constant so repeated references don't grow the
	// pool past the 1-byte operand space.
	for i, v := range c.block.Constants {
		if i > maxShortConstant {
			break
		}

		if v.Kind == KindString && v.AsString() == tok.Lexeme {
			return byte(i)
		}
	}

	idx, err := c.block.AddConstant(String(tok.Lexeme))
	if err != nil || idx > maxShortConstant {
		c.errorAt(tok, "too many identifiers in one block")

		return 0
	}

	return byte(idx)
}

// emitJump emits a jump instruction with a placeholder distance and returns
// the offset of the operand for later patching.
func (c *compiler) emitJump(op OpCode) int {
	c.emit(op)
	c.block.Push(0xFF, c.previous.Line)
	c.block.Push(0xFF, c.previous.Line)

	return len(c.block.Code) - 2
}

// patchJump backfills a forward jump emitted by emitJump with the distance
// from the operand to the current end of code.
func (c *compiler) patchJump(operand int) {
	dist := len(c.block.Code) - operand - 2
	if dist > 0xFFFF {
		c.errorAt(c.previous, ErrJumpTooLarge.Error())

		return
	}

	c.block.Code[operand] = byte(dist >> 8)
	c.block.Code[operand+1] = byte(dist)
}

// emitLoop emits a backward jump to loopStart.
func (c *compiler) emitLoop(loopStart int) {
	c.emit(OpLoop)

	dist := len(c.block.Code) - loopStart + 2
	if dist > 0xFFFF {
		c.errorAt(c.previous, ErrJumpTooLarge.Error())

		return
	}

	c.block.Push(byte(dist>>8), c.previous.Line)
	c.block.Push(byte(dist), c.previous.Line)
}

// ---------------------------------------------------------------------------
// Token plumbing and error recovery
// ---------------------------------------------------------------------------

func (c *compiler) advance() {
	c.previous = c.current

	for {
		c.current = c.lexer.Next()
		if c.current.Kind != TokenError {
			return
		}

		// Error tokens carry the scanner's message as their lexeme.
		c.errorAt(c.current, c.current.Lexeme)
	}
}

func (c *compiler) consume(kind TokenKind, msg string) {
	if c.current.Kind == kind {
		c.advance()

		return
	}

	c.errorAt(c.current, msg)
}

func (c *compiler) check(kind TokenKind) bool {
	return c.current.Kind == kind
}

func (c *compiler) match(kind TokenKind) bool {
	if !c.check(kind) {
		return false
	}

	c.advance()

	return true
}

// errorAt records the first compile error and enters panic mode so that
// cascading errors from the same defect are suppressed until the next
// statement boundary.
func (c *compiler) errorAt(tok Token, msg string) {
	if c.panicMode {
		return
	}

	c.panicMode = true

	if c.err == nil {
		c.err = &CompileError{
			Line:    tok.Line,
			Message: msg,
			Source:  c.source,
		}
	}
}

// synchronize discards tokens until a likely statement boundary.
func (c *compiler) synchronize() {
	c.panicMode = false

	for c.current.Kind != TokenEOF {
		if c.previous.Kind == TokenSemicolon {
			return
		}

		switch c.current.Kind {
		case TokenLet, TokenPop, TokenPrint, TokenIf,
			TokenWhile, TokenFor, TokenFun, TokenStruct,
			TokenReturn, TokenLCurly, TokenRCurly:
			return
		}

		c.advance()
	}
}
