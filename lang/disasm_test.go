package lang

import (
	"strings"
	"testing"
)

func TestDisassemble(t *testing.T) {
	block, err := Compile(`let a = 10; { print a; } pop a;`)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	var out strings.Builder

	Disassemble(block, "script", &out)

	listing := out.String()

	if !strings.HasPrefix(listing, "== script ==\n") {
		t.Errorf("missing heading in %q", listing)
	}

	for _, want := range []string{
		"OP_CONSTANT",
		"OP_DECLARE_BINDING",
		"OP_ENTER_SCOPE",
		"OP_RESOLVE_BINDING",
		"OP_PRINT",
		"OP_EXIT_SCOPE",
		"OP_REMOVE_BINDING",
		"OP_RETURN",
		"'a'",
		"'10'",
	} {
		if !strings.Contains(listing, want) {
			t.Errorf("expected %q in listing:\n%s", want, listing)
		}
	}
}

func TestDisassemble_LineElision(t *testing.T) {
	block, err := Compile("print 1 + 2;\nprint 3;")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	var out strings.Builder

	Disassemble(block, "lines", &out)

	// Instructions sharing a source line with their predecessor show '|'
	// instead of repeating the line number.
	if !strings.Contains(out.String(), "   | ") {
		t.Errorf("expected elided line markers in:\n%s", out.String())
	}
}

func TestDisassemble_JumpTargets(t *testing.T) {
	block, err := Compile(`if (true) print 1; else print 2;`)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	var out strings.Builder

	Disassemble(block, "jumps", &out)

	if !strings.Contains(out.String(), "OP_JUMP_IF_FALSE") ||
		!strings.Contains(out.String(), "->") {
		t.Errorf("expected jump targets in:\n%s", out.String())
	}
}
