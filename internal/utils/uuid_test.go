package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTraceIDGenerator_GeneratesV7(t *testing.T) {
	gen := NewTraceIDGenerator()

	id := gen.Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestTraceIDGenerator_Unique(t *testing.T) {
	gen := NewTraceIDGenerator()
	seen := make(map[string]struct{})

	for range 100 {
		id := gen.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate trace id %s", id)
		}
		seen[id] = struct{}{}
	}
}
