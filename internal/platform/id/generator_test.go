package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewRandomGenerator()
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		value, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if !IsValid(value) {
			t.Fatalf("expected uuid, got=%q", value)
		}
		if _, dup := seen[value]; dup {
			t.Fatalf("duplicate id generated: %s", value)
		}
		seen[value] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	if IsValid("not-a-uuid") {
		t.Fatalf("expected invalid id to be rejected")
	}
	if !IsValid("3f2b8c1e-6a4d-4f0e-9b7a-2c5d8e1f0a9b") {
		t.Fatalf("expected canonical uuid to be accepted")
	}
}
