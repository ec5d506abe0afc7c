package utils

import (
	"strings"
	"testing"
)

func TestGenerateCaseID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := GenerateCaseID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(id) != 6 {
			t.Fatalf("expected 6-character case ID, got %q", id)
		}
		for _, r := range id {
			if !strings.ContainsRune(idAlphabet, r) {
				t.Fatalf("case ID %q contains character %q outside the alphabet", id, r)
			}
		}
	}
}

func TestGenerateCaseID_NoConfusableCharacters(t *testing.T) {
	for _, forbidden := range []string{"0", "O", "1", "I", "L"} {
		if strings.Contains(idAlphabet, forbidden) {
			t.Errorf("alphabet must not contain confusable character %q", forbidden)
		}
	}
}

func TestGenerateHandoffReference_Format(t *testing.T) {
	ref, err := GenerateHandoffReference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ref, "HO-") {
		t.Fatalf("expected HO- prefix, got %q", ref)
	}
	if len(ref) != len("HO-")+8 {
		t.Fatalf("expected 8-character suffix, got %q", ref)
	}
}

func TestGenerateHandoffReference_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref, err := GenerateHandoffReference()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[ref] {
			t.Fatalf("duplicate handoff reference %q after %d draws", ref, i)
		}
		seen[ref] = true
	}
}
