package lang

// This file implements the binding stack: the runtime's only variable
// storage. Bindings are pushed by declaration, killed either by an explicit
// pop statement or by exit of their enclosing block, and are never reachable
// again once dead. Re-declaring a name after its binding died pushes a new,
// distinct binding; nothing is ever resurrected.

// BindingID is a stable identifier for a binding within one BindingStack.
// IDs are assigned in declaration order and never reused within a run.
type BindingID int

// Binding associates an identifier with a value for the lifetime of the
// binding. The value handle is opaque to the stack.
type Binding struct {
	name  string
	value Value
	depth int  // scope depth at declaration; 0 is global
	alive bool // false once popped or its scope exited
}

// Name returns the identifier the binding was declared under.
func (b Binding) Name() string { return b.name }

// Depth returns the scope depth the binding was declared at.
func (b Binding) Depth() int { return b.depth }

// BindingStack is the ordered sequence of bindings declared during one
// program run. Name resolution always yields the most recently pushed live
// binding for a name, so newer declarations shadow older ones regardless of
// depth, and killing the innermost binding unshadows exactly one layer.
//
// The stack is intentionally free of locking: it is owned and mutated by a
// single executor. Construct one per interpreter instance with
// NewBindingStack; there is no package-level singleton.
type BindingStack struct {
	bindings []Binding
	// byName holds, per identifier, the stack indices of its live bindings in
	// push order (innermost last). Dead bindings are removed from this index
	// the instant they die, which makes them permanently unreachable even
	// though their records linger until scope-exit cleanup.
	byName map[string][]int
	depth  int
}

// NewBindingStack creates an empty binding stack at global depth 0.
func NewBindingStack() *BindingStack {
	return &BindingStack{
		byName: make(map[string][]int),
	}
}

// Depth returns the current scope depth (0 at global scope).
func (s *BindingStack) Depth() int { return s.depth }

// Len returns the number of binding records currently stored, including dead
// records not yet dropped by scope exit.
func (s *BindingStack) Len() int { return len(s.bindings) }

// Declare pushes a new live binding for name at the current scope depth and
// returns its identifier. Existing live bindings with the same name are left
// untouched: shadowing is always permitted, including at the same depth, and
// the newest declaration wins resolution.
func (s *BindingStack) Declare(name string, value Value) BindingID {
	id := BindingID(len(s.bindings))

	s.bindings = append(s.bindings, Binding{
		name:  name,
		value: value,
		depth: s.depth,
		alive: true,
	})

	s.byName[name] = append(s.byName[name], int(id))

	return id
}

// Resolve returns the value of the most recently pushed live binding for
// name. It fails with UnboundNameError when no live binding matches, which
// covers both a name that was never declared and one whose binding was
// popped. A failed lookup mutates nothing.
func (s *BindingStack) Resolve(name string) (Value, error) {
	live := s.byName[name]
	if len(live) == 0 {
		return Value{}, &UnboundNameError{Name: name}
	}

	return s.bindings[live[len(live)-1]].value, nil
}

// Assign replaces the value of the most recently pushed live binding for
// name. Like Resolve, it fails with UnboundNameError when no live binding
// matches; assignment never creates a binding.
func (s *BindingStack) Assign(name string, value Value) error {
	live := s.byName[name]
	if len(live) == 0 {
		return &UnboundNameError{Name: name}
	}

	s.bindings[live[len(live)-1]].value = value

	return nil
}

// Remove kills the most recently pushed live binding for name (the same
// precedence Resolve uses). If an older live binding for the name exists
// beneath it, that binding becomes visible again: removal unshadows exactly
// one layer and never cascades. It fails with UnboundNameError when no live
// binding matches.
func (s *BindingStack) Remove(name string) error {
	live := s.byName[name]
	if len(live) == 0 {
		return &UnboundNameError{Name: name}
	}

	idx := live[len(live)-1]
	s.bindings[idx].alive = false

	// The record stays in the stack for scope-exit bookkeeping, but it is
	// unreachable from this point on.
	if len(live) == 1 {
		delete(s.byName, name)
	} else {
		s.byName[name] = live[:len(live)-1]
	}

	return nil
}

// EnterScope increments the current depth and returns the new value. Every
// Declare until the matching ExitScope uses the new depth.
func (s *BindingStack) EnterScope() int {
	s.depth++

	return s.depth
}

// ExitScope kills every still-live binding declared at or inside the scope
// with the given depth and drops their records, then decrements the current
// depth. The depth argument must be the value returned by the matching
// EnterScope: scopes nest strictly, and a mismatch means the executor itself
// is broken, so it panics rather than returning an error.
func (s *BindingStack) ExitScope(depth int) {
	if depth != s.depth || depth < 1 {
		panic("lang: ExitScope depth mismatch (scopes must close in LIFO order)")
	}

	// Bindings declared since the matching EnterScope form a contiguous
	// suffix of the stack: depths only grow between scope boundaries and
	// every earlier exit truncated its own suffix.
	cut := len(s.bindings)
	for cut > 0 && s.bindings[cut-1].depth >= depth {
		cut--

		b := s.bindings[cut]
		if !b.alive {
			continue
		}

		live := s.byName[b.name]
		if len(live) == 1 {
			delete(s.byName, b.name)
		} else {
			s.byName[b.name] = live[:len(live)-1]
		}
	}

	s.bindings = s.bindings[:cut]
	s.depth = depth - 1
}

// LiveNames returns the names of all live bindings, innermost (most recently
// pushed) first. Shadowed live bindings are included; dead ones never are.
// Used by the REPL for completion and the list command.
func (s *BindingStack) LiveNames() []string {
	names := make([]string, 0, len(s.bindings))

	for i := len(s.bindings) - 1; i >= 0; i-- {
		if s.bindings[i].alive {
			names = append(names, s.bindings[i].name)
		}
	}

	return names
}

// Live returns copies of all live binding records, innermost first.
func (s *BindingStack) Live() []Binding {
	live := make([]Binding, 0, len(s.bindings))

	for i := len(s.bindings) - 1; i >= 0; i-- {
		if s.bindings[i].alive {
			live = append(live, s.bindings[i])
		}
	}

	return live
}

// Value returns the value held by a live binding record. Used by the REPL
// list command together with Live.
func (b Binding) Value() Value { return b.value }
