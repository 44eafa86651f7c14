// Package lang implements the dynamix scripting runtime: a lexer, a
// single-pass bytecode compiler, and a stack-based virtual machine whose only
// variable storage is an explicit binding stack.
//
// # Binding model
//
// Variables are bindings pushed onto a stack. Declaring a name never replaces
// an existing binding: it pushes a new one that shadows any older live binding
// of the same name. A binding dies exactly once, either by an explicit pop
// statement or when its enclosing block exits, and a dead binding can never be
// observed again. Resolution always finds the most recently pushed live
// binding, so popping the innermost binding re-exposes the one beneath it.
//
//	let x = 1;
//	let x = 2;     // shadows, does not overwrite
//	print x;       // 2
//	pop x;         // unshadows exactly one layer
//	print x;       // 1
//	pop x;
//	print x;       // error: unbound name "x"
//
// # Grammar
//
// Informal EBNF:
//
//	Program    → Statement* EOF
//	Statement  → 'let' ident ('=' Expr)? ';'
//	           | 'pop' ident ';'
//	           | 'print' Expr ';'
//	           | '{' Statement* '}'
//	           | 'if' '(' Expr ')' Statement ('else' Statement)?
//	           | 'while' '(' Expr ')' Statement
//	           | Expr ';'
//	Expr       → assignment and the usual binary/unary operators
//	             with C-like precedence; '&&' and '||' short-circuit
//
// The fun, struct, for, return, and self keywords are reserved but not yet
// implemented; the compiler reports them as errors.
//
// # Entry points
//
// Interp is the high-level interface: NewInterp, Run, RunReader. Compile and
// VM are exposed separately for tooling (the disassembler and the REPL's
// bytecode inspection).
package lang
