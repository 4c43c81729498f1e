package fingerprint

import "testing"

func TestCompute_Deterministic(t *testing.T) {
	a := Compute([]byte("invoice bytes"), "R_INV", "1.0")
	b := Compute([]byte("invoice bytes"), "R_INV", "1.0")
	if a != b {
		t.Fatalf("identical inputs must fingerprint identically: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256, got %q", a)
	}
}

func TestCompute_RuleVersionPinning(t *testing.T) {
	content := []byte("invoice bytes")
	v1 := Compute(content, "R_INV", "1.0")
	v2 := Compute(content, "R_INV", "2.0")
	if v1 == v2 {
		t.Fatal("same file against different rule versions must never collide")
	}
	other := Compute(content, "R_PO", "1.0")
	if v1 == other {
		t.Fatal("same file against different rules must never collide")
	}
}

func TestCompute_SeparatorAmbiguity(t *testing.T) {
	// (rule "ab", version "c") vs (rule "a", version "bc")
	if Compute([]byte("x"), "ab", "c") == Compute([]byte("x"), "a", "bc") {
		t.Fatal("rule/version boundary must be unambiguous")
	}
}

func TestCompute_ContentSensitivity(t *testing.T) {
	if Compute([]byte("a"), "r", "1") == Compute([]byte("b"), "r", "1") {
		t.Fatal("different bytes must fingerprint differently")
	}
}
