package lang

import (
	"errors"
	"strings"
	"testing"
)

// run compiles and executes source on a fresh VM, returning its print output.
func run(t *testing.T, source string) string {
	t.Helper()

	var out strings.Builder

	vm := NewVM(WithStdout(&out))

	block, err := Compile(source)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if err := vm.Interpret(block); err != nil {
		t.Fatalf("runtime error: %v", err)
	}

	return out.String()
}

func TestVM_Print(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "number", source: `print 42;`, want: "42\n"},
		{name: "decimal", source: `print 3.5;`, want: "3.5\n"},
		{name: "string", source: `print "Hello, World!";`, want: "Hello, World!\n"},
		{name: "bool", source: `print true;`, want: "true\n"},
		{name: "null", source: `print null;`, want: "null\n"},
		{name: "char", source: `print 'x';`, want: "x\n"},
		{name: "arithmetic", source: `print 1 + 2 * 3;`, want: "7\n"},
		{name: "grouping", source: `print (1 + 2) * 3;`, want: "9\n"},
		{name: "negation", source: `print -(4 - 9);`, want: "5\n"},
		{name: "concatenation", source: `print "foo" + "bar";`, want: "foobar\n"},
		{name: "comparison", source: `print 1 < 2;`, want: "true\n"},
		{name: "equality", source: `print 2 == 2;`, want: "true\n"},
		{name: "inequality", source: `print 1 != 1;`, want: "false\n"},
		{name: "not", source: `print !null;`, want: "true\n"},
		{name: "and short-circuit", source: `print false && true;`, want: "false\n"},
		{name: "or short-circuit", source: `print true || false;`, want: "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, tt.source); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVM_Bindings(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "declare and resolve",
			source: `let a = 10; print a;`,
			want:   "10\n",
		},
		{
			name:   "declaration without initializer",
			source: `let a; print a;`,
			want:   "null\n",
		},
		{
			name:   "shadow then pop restores",
			source: `let x = 1; let x = 2; print x; pop x; print x;`,
			want:   "2\n1\n",
		},
		{
			name:   "assignment targets innermost",
			source: `let x = 1; let x = 2; x = 20; print x; pop x; print x;`,
			want:   "20\n1\n",
		},
		{
			name:   "block scope kills inner bindings",
			source: `let a = 1; { let a = 2; print a; } print a;`,
			want:   "2\n1\n",
		},
		{
			name:   "while loop",
			source: `let i = 0; while (i < 3) { print i; i = i + 1; }`,
			want:   "0\n1\n2\n",
		},
		{
			name:   "if else",
			source: `if (1 > 2) print "then"; else print "else";`,
			want:   "else\n",
		},
		{
			name:   "condition reads bindings",
			source: `let ok = true; if (ok) print "yes";`,
			want:   "yes\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, tt.source); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVM_UnboundName(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   int
	}{
		{name: "never declared", source: `print ghost;`, line: 1},
		{name: "popped", source: "let a = 10;\npop a;\nprint a;", line: 3},
		{name: "pop of popped", source: "let a = 1;\npop a;\npop a;", line: 3},
		{name: "assign unbound", source: `ghost = 1;`, line: 1},
		{name: "scope exit kills", source: "{ let a = 1; }\nprint a;", line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Compile(tt.source)
			if err != nil {
				t.Fatalf("compile error: %v", err)
			}

			err = NewVM(WithStdout(&strings.Builder{})).Interpret(block)
			if err == nil {
				t.Fatal("expected runtime error")
			}

			re := &RuntimeError{}
			if !errors.As(err, &re) {
				t.Fatalf("expected RuntimeError, got %T", err)
			}

			if re.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, re.Line)
			}

			unbound := &UnboundNameError{}
			if !errors.As(err, &unbound) {
				t.Fatalf("expected UnboundNameError cause, got %v", re.Err)
			}
		})
	}
}

func TestVM_TypeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "negate string", source: `print -"text";`},
		{name: "add mixed", source: `print 1 + "one";`},
		{name: "compare strings", source: `print "a" < "b";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Compile(tt.source)
			if err != nil {
				t.Fatalf("compile error: %v", err)
			}

			err = NewVM(WithStdout(&strings.Builder{})).Interpret(block)

			re := &RuntimeError{}
			if !errors.As(err, &re) {
				t.Fatalf("expected RuntimeError, got %v", err)
			}
		})
	}
}

// TestVM_SharedBindings verifies bindings survive across Interpret calls on
// the same VM, which is the contract the REPL depends on.
func TestVM_SharedBindings(t *testing.T) {
	var out strings.Builder

	vm := NewVM(WithStdout(&out))

	for _, source := range []string{
		`let greeting = "Hello";`,
		`print greeting + ", World!";`,
	} {
		block, err := Compile(source)
		if err != nil {
			t.Fatalf("compile error: %v", err)
		}

		if err := vm.Interpret(block); err != nil {
			t.Fatalf("runtime error: %v", err)
		}
	}

	if out.String() != "Hello, World!\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestInterp_Run(t *testing.T) {
	var out strings.Builder

	in := NewInterp(WithInterpStdout(&out))

	if err := in.Run(`let a = 10; print a; pop a;`); err != nil {
		t.Fatalf("run error: %v", err)
	}

	// Bindings persist between Run calls, so the popped name stays unbound.
	err := in.Run(`print a;`)
	if err == nil {
		t.Fatal("expected unbound name after pop")
	}

	unbound := &UnboundNameError{}
	if !errors.As(err, &unbound) {
		t.Fatalf("expected UnboundNameError, got %T", err)
	}

	if out.String() != "10\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	if in.LastBlock() == nil {
		t.Error("LastBlock is nil after Run")
	}
}

func TestInterp_RunReader(t *testing.T) {
	var out strings.Builder

	in := NewInterp(WithInterpStdout(&out))

	err := in.RunReader(strings.NewReader(`{ let a = "scoped"; print a; }`))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	if out.String() != "scoped\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	if in.Bindings().Len() != 0 {
		t.Errorf("expected empty binding stack, got %d records", in.Bindings().Len())
	}
}
