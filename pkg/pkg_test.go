package pkg

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "dynamix"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	expected := "Stack-bound scripting language runtime"
	if Description != expected {
		t.Errorf("Expected Description to be %q, got %q", expected, Description)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file, so it should not be empty.
	if strings.TrimSpace(Version) == "" {
		t.Error("Expected Version to be non-empty")
	}
}

func TestPrefix(t *testing.T) {
	prefix := Prefix()
	if prefix == "" {
		t.Error("Expected Prefix to be non-empty")
	}

	if strings.HasPrefix(prefix, ".") {
		t.Errorf("Expected Prefix without leading dot, got %q", prefix)
	}
}
