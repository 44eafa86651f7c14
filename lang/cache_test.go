package lang

import (
	"strings"
	"testing"
)

func TestCompileCached_ReturnsSameBlock(t *testing.T) {
	t.Cleanup(ClearCache)

	source := `let a = 1; print a;`

	first, err := CompileCached(source, nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	second, err := CompileCached(source, nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if first != second {
		t.Error("expected the cached block pointer on the second compile")
	}
}

func TestCompileCached_DistinctSources(t *testing.T) {
	t.Cleanup(ClearCache)

	a, err := CompileCached(`print 1;`, nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	b, err := CompileCached(`print 2;`, nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if a == b {
		t.Error("distinct sources share one cache entry")
	}
}

func TestCompileCached_CachesFailures(t *testing.T) {
	t.Cleanup(ClearCache)

	source := `let = broken`

	_, first := CompileCached(source, nil)
	if first == nil {
		t.Fatal("expected compile error")
	}

	_, second := CompileCached(source, nil)
	if second == nil {
		t.Fatal("expected cached compile error")
	}
}

func TestClearCache(t *testing.T) {
	source := `print "cached";`

	first, err := CompileCached(source, nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	ClearCache()

	second, err := CompileCached(source, nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if first == second {
		t.Error("expected a fresh block after ClearCache")
	}
}

func TestCompileReader(t *testing.T) {
	t.Cleanup(ClearCache)

	block, err := CompileReader(strings.NewReader(`print "from reader";`), nil)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	var out strings.Builder

	if err := NewVM(WithStdout(&out)).Interpret(block); err != nil {
		t.Fatalf("runtime error: %v", err)
	}

	if out.String() != "from reader\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
