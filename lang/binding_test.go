package lang

import (
	"errors"
	"testing"
)

func TestBindingStack_DeclareResolve(t *testing.T) {
	s := NewBindingStack()

	s.Declare("a", Number(10))

	v, err := s.Resolve("a")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if !v.Equal(Number(10)) {
		t.Errorf("expected 10, got %s", v.Format())
	}
}

func TestBindingStack_UnboundResolve(t *testing.T) {
	s := NewBindingStack()

	_, err := s.Resolve("missing")
	if err == nil {
		t.Fatal("expected error for unbound name")
	}

	unbound := &UnboundNameError{}
	if !errors.As(err, &unbound) {
		t.Fatalf("expected UnboundNameError, got %T", err)
	}

	if unbound.Name != "missing" {
		t.Errorf("expected name %q, got %q", "missing", unbound.Name)
	}
}

func TestBindingStack_ShadowThenRestore(t *testing.T) {
	s := NewBindingStack()

	s.Declare("x", Number(1))
	s.Declare("x", Number(2))

	v, err := s.Resolve("x")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if !v.Equal(Number(2)) {
		t.Errorf("expected shadowing binding 2, got %s", v.Format())
	}

	// Removing the innermost binding unshadows exactly one layer.
	if err := s.Remove("x"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	v, err = s.Resolve("x")
	if err != nil {
		t.Fatalf("resolve after remove error: %v", err)
	}

	if !v.Equal(Number(1)) {
		t.Errorf("expected outer binding 1, got %s", v.Format())
	}

	// Removing again empties the name entirely.
	if err := s.Remove("x"); err != nil {
		t.Fatalf("second remove error: %v", err)
	}

	if _, err := s.Resolve("x"); err == nil {
		t.Error("expected unbound after both bindings removed")
	}
}

func TestBindingStack_SameScopeShadowing(t *testing.T) {
	s := NewBindingStack()

	// Shadowing is legal even without entering a new scope.
	s.Declare("n", Number(1))
	s.Declare("n", Number(2))
	s.Declare("n", Number(3))

	v, _ := s.Resolve("n")
	if !v.Equal(Number(3)) {
		t.Errorf("expected newest binding 3, got %s", v.Format())
	}

	if s.Len() != 3 {
		t.Errorf("expected 3 binding records, got %d", s.Len())
	}
}

func TestBindingStack_DeadIsTerminal(t *testing.T) {
	s := NewBindingStack()

	s.Declare("a", Number(10))

	if err := s.Remove("a"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	// Resolve, assign, and remove all fail identically: a popped name is
	// indistinguishable from one never declared.
	if _, err := s.Resolve("a"); err == nil {
		t.Error("resolve succeeded on dead binding")
	}

	if err := s.Assign("a", Number(1)); err == nil {
		t.Error("assign succeeded on dead binding")
	}

	if err := s.Remove("a"); err == nil {
		t.Error("remove succeeded on dead binding")
	}
}

func TestBindingStack_FailedLookupMutatesNothing(t *testing.T) {
	s := NewBindingStack()

	s.Declare("a", Number(1))

	for range 3 {
		if _, err := s.Resolve("nope"); err == nil {
			t.Fatal("expected unbound error")
		}

		if err := s.Remove("nope"); err == nil {
			t.Fatal("expected unbound error")
		}
	}

	// Repeated failures are idempotent: the stack is unchanged.
	if s.Len() != 1 {
		t.Errorf("expected 1 binding record, got %d", s.Len())
	}

	if v, err := s.Resolve("a"); err != nil || !v.Equal(Number(1)) {
		t.Errorf("binding for a disturbed: %v %v", v, err)
	}
}

func TestBindingStack_RedeclarationAfterPop(t *testing.T) {
	s := NewBindingStack()

	first := s.Declare("a", Number(1))

	if err := s.Remove("a"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	second := s.Declare("a", Number(2))

	if first == second {
		t.Error("re-declaration reused the dead binding's identity")
	}

	v, err := s.Resolve("a")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if !v.Equal(Number(2)) {
		t.Errorf("expected new binding 2, got %s", v.Format())
	}
}

func TestBindingStack_ScopeExit(t *testing.T) {
	s := NewBindingStack()

	s.Declare("outer", Number(1))

	d := s.EnterScope()
	s.Declare("inner", Number(2))
	s.Declare("outer", Number(3)) // shadows across the scope boundary

	if v, _ := s.Resolve("outer"); !v.Equal(Number(3)) {
		t.Errorf("expected inner shadow 3, got %s", v.Format())
	}

	s.ExitScope(d)

	// Everything declared inside the scope is dead; the outer binding for
	// "outer" is visible again, untouched.
	if _, err := s.Resolve("inner"); err == nil {
		t.Error("inner survived scope exit")
	}

	v, err := s.Resolve("outer")
	if err != nil {
		t.Fatalf("outer lost after scope exit: %v", err)
	}

	if !v.Equal(Number(1)) {
		t.Errorf("expected outer binding 1, got %s", v.Format())
	}

	if s.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", s.Depth())
	}
}

func TestBindingStack_ScopeExitSkipsPopped(t *testing.T) {
	s := NewBindingStack()

	d := s.EnterScope()
	s.Declare("a", Number(1))

	if err := s.Remove("a"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	// Scope exit must tolerate bindings that already died inside the scope.
	s.ExitScope(d)

	if s.Len() != 0 {
		t.Errorf("expected empty stack, got %d records", s.Len())
	}
}

func TestBindingStack_NestedScopes(t *testing.T) {
	s := NewBindingStack()

	s.Declare("x", Number(0))

	d1 := s.EnterScope()
	s.Declare("x", Number(1))

	d2 := s.EnterScope()
	s.Declare("x", Number(2))

	if v, _ := s.Resolve("x"); !v.Equal(Number(2)) {
		t.Errorf("depth 2: expected 2, got %s", v.Format())
	}

	s.ExitScope(d2)

	if v, _ := s.Resolve("x"); !v.Equal(Number(1)) {
		t.Errorf("depth 1: expected 1, got %s", v.Format())
	}

	s.ExitScope(d1)

	if v, _ := s.Resolve("x"); !v.Equal(Number(0)) {
		t.Errorf("depth 0: expected 0, got %s", v.Format())
	}
}

func TestBindingStack_ExitScopeMismatchPanics(t *testing.T) {
	tests := []struct {
		name  string
		depth int
	}{
		{name: "stale depth", depth: 1},
		{name: "future depth", depth: 3},
		{name: "zero depth", depth: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBindingStack()
			s.EnterScope()
			s.EnterScope() // current depth is 2

			defer func() {
				if recover() == nil {
					t.Errorf("ExitScope(%d) at depth 2 did not panic", tt.depth)
				}
			}()

			s.ExitScope(tt.depth)
		})
	}
}

func TestBindingStack_RemoveOuterWhileShadowed(t *testing.T) {
	s := NewBindingStack()

	s.Declare("x", Number(1))

	d := s.EnterScope()
	s.Declare("x", Number(2))

	// Remove targets the innermost live binding, even though an outer one
	// exists at a shallower depth.
	if err := s.Remove("x"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	v, err := s.Resolve("x")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if !v.Equal(Number(1)) {
		t.Errorf("expected outer binding 1, got %s", v.Format())
	}

	s.ExitScope(d)

	// The outer binding was never part of the exited scope.
	if v, err := s.Resolve("x"); err != nil || !v.Equal(Number(1)) {
		t.Errorf("outer binding disturbed by scope exit: %v %v", v, err)
	}
}

func TestBindingStack_Assign(t *testing.T) {
	s := NewBindingStack()

	s.Declare("x", Number(1))
	s.Declare("x", Number(2))

	if err := s.Assign("x", Number(20)); err != nil {
		t.Fatalf("assign error: %v", err)
	}

	// Only the innermost binding changes.
	if v, _ := s.Resolve("x"); !v.Equal(Number(20)) {
		t.Errorf("expected 20, got %s", v.Format())
	}

	if err := s.Remove("x"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	if v, _ := s.Resolve("x"); !v.Equal(Number(1)) {
		t.Errorf("outer binding modified by inner assign: got %s", v.Format())
	}
}

func TestBindingStack_LiveNames(t *testing.T) {
	s := NewBindingStack()

	s.Declare("a", Number(1))
	s.Declare("b", Number(2))
	s.Declare("a", Number(3))

	if err := s.Remove("b"); err != nil {
		t.Fatalf("remove error: %v", err)
	}

	names := s.LiveNames()

	want := []string{"a", "a"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}

	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d]: expected %q, got %q", i, name, names[i])
		}
	}
}

// TestBindingStack_EndToEnd walks the canonical lifetime scenario: declare,
// pop, fail, rebind inside a scope, exit, fail again.
func TestBindingStack_EndToEnd(t *testing.T) {
	s := NewBindingStack()

	s.Declare("a", Number(10))

	if v, err := s.Resolve("a"); err != nil || !v.Equal(Number(10)) {
		t.Fatalf("step 1: %v %v", v, err)
	}

	if err := s.Remove("a"); err != nil {
		t.Fatalf("step 2: %v", err)
	}

	if _, err := s.Resolve("a"); err == nil {
		t.Fatal("step 3: resolve succeeded after pop")
	}

	d := s.EnterScope()
	s.Declare("a", String("Hello, World!"))

	if v, err := s.Resolve("a"); err != nil || !v.Equal(String("Hello, World!")) {
		t.Fatalf("step 4: %v %v", v, err)
	}

	s.ExitScope(d)

	if _, err := s.Resolve("a"); err == nil {
		t.Fatal("step 5: resolve succeeded after scope exit")
	}
}
