// services/similarity.go - Text Similarity Heuristics
package services

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`\W+`)

// Normalize collapses whitespace runs to single spaces, trims, and lowercases.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// TokenSimilarity returns a similarity ratio in [0,1] between two texts.
// Identical normalized texts score 1.0; otherwise the ratio of shared
// tokens to the larger token count. Two token-less inputs score 0.
func TokenSimilarity(a, b string) float64 {
	normA := Normalize(a)
	normB := Normalize(b)

	if normA == "" && normB == "" {
		return 0
	}
	if normA == normB {
		return 1.0
	}

	tokensA := tokenize(normA)
	tokensB := tokenize(normB)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(tokensB))
	for _, t := range tokensB {
		seen[t] = true
	}

	common := 0
	for _, t := range tokensA {
		if seen[t] {
			common++
		}
	}

	denom := len(tokensA)
	if len(tokensB) > denom {
		denom = len(tokensB)
	}
	return float64(common) / float64(denom)
}

func tokenize(s string) []string {
	parts := nonWordPattern.Split(s, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// isStatementLine reports whether a code line looks like a statement that
// should carry a terminator.
func isStatementLine(line string) bool {
	return strings.Contains(line, "let ") ||
		strings.Contains(line, "const ") ||
		strings.Contains(line, "var ") ||
		strings.Contains(line, "+=") ||
		strings.Contains(line, "return ")
}

// hasTerminator reports whether a line ends with ';', '{' or '}'.
func hasTerminator(line string) bool {
	return strings.HasSuffix(line, ";") ||
		strings.HasSuffix(line, "{") ||
		strings.HasSuffix(line, "}")
}

// isCommentLine reports whether a trimmed line starts with a comment marker.
func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "//") ||
		strings.HasPrefix(line, "/*") ||
		strings.HasPrefix(line, "*")
}
