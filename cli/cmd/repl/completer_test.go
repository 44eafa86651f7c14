package repl

import (
	"slices"
	"testing"
)

func TestWordBounds_Operators(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_paren", "(fo", 3, "fo", 1, 3},
		{"after_comparison", "a > fo", 6, "fo", 4, 6},
		{"after_assignment", "x = fo", 6, "fo", 4, 6},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"after_keyword", "let fo", 6, "fo", 4, 6},
		{"after_brace", "{fo", 3, "fo", 1, 3},
		{"before_semicolon", "print x;", 7, "x", 6, 7},
		// Underscores and logical-operator runes are identifier characters.
		{"underscored", "my_var", 6, "my_var", 0, 6},
		{"logical_and", "a && fo", 7, "fo", 5, 7},
		{"inside_and", "a&&b", 4, "a&&b", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestEvalCandidates_Dedup(t *testing.T) {
	keywords := []string{"let", "pop", "print"}
	live := []string{"count", "let", "count"}

	got := evalCandidates(keywords, live)
	want := []string{"let", "pop", "print", "count"}

	if !slices.Equal(got, want) {
		t.Errorf("evalCandidates = %v, want %v", got, want)
	}
}

func TestEvalCandidates_Empty(t *testing.T) {
	got := evalCandidates(nil, nil)
	if len(got) != 0 {
		t.Errorf("evalCandidates(nil, nil) = %v, want empty", got)
	}
}
