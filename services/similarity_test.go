package services

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello   World", "hello world"},
		{"  spaced\tout\n", "spaced out"},
		{"already clean", "already clean"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenSimilarityIdentical(t *testing.T) {
	if got := TokenSimilarity("let x = 1;", "let x = 1;"); got != 1.0 {
		t.Errorf("identical texts: got %v, want 1.0", got)
	}
	// Whitespace and case differences normalize away
	if got := TokenSimilarity("Hello   World", "hello world"); got != 1.0 {
		t.Errorf("normalized-equal texts: got %v, want 1.0", got)
	}
}

func TestTokenSimilarityBothEmpty(t *testing.T) {
	if got := TokenSimilarity("", ""); got != 0 {
		t.Errorf("both empty: got %v, want 0", got)
	}
	if got := TokenSimilarity("   ", "\t\n"); got != 0 {
		t.Errorf("whitespace only: got %v, want 0", got)
	}
}

func TestTokenSimilarityOverlap(t *testing.T) {
	// 2 of 3 tokens shared, denominator is the larger count
	got := TokenSimilarity("foo bar baz", "foo bar qux")
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("partial overlap: got %v, want %v", got, 2.0/3.0)
	}

	// Repeated tokens each count against the other side's set
	got = TokenSimilarity("foo foo bar", "foo")
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("repeated tokens: got %v, want %v", got, 2.0/3.0)
	}
}

func TestTokenSimilarityDisjoint(t *testing.T) {
	if got := TokenSimilarity("alpha beta", "gamma delta"); got != 0 {
		t.Errorf("disjoint texts: got %v, want 0", got)
	}
}

func TestTokenSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"function add(a, b) { return a + b; }", "function add(x, y) { return x + y; }"},
		{"a", "a b c d e f g"},
		{"!!!", "???"},
	}
	for _, p := range pairs {
		got := TokenSimilarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("TokenSimilarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}
