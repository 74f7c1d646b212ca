// services/scorers.go - Heuristic Challenge Scoring Engine
//
// Every scorer is a pure function over the submitted solution and the
// challenge content. Missing or malformed input degrades to a zero score
// with explanatory feedback; scorers never return an error and never panic.
package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"devrally/models"
)

// DefaultScore is returned for unrecognized challenge types. A fixed value
// keeps scoring deterministic and testable.
const DefaultScore = 85

// ScoreResult is a score in [0,100] plus ordered human-readable feedback.
type ScoreResult struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// ScoreSolution dispatches to the scorer matching the challenge type.
// Unrecognized types fall back to a fixed mid-tier score. Total over all
// string inputs.
func ScoreSolution(challengeType string, solution, content models.JSONB) ScoreResult {
	var result ScoreResult

	switch models.ChallengeType(challengeType) {
	case models.ChallengeTypeCode:
		result = scoreCodeChallenge(solution, content)
	case models.ChallengeTypeWireframe:
		result = scoreWireframeChallenge(solution, content)
	case models.ChallengeTypeAlgorithm:
		result = scoreAlgorithmChallenge(solution, content)
	case models.ChallengeTypeAPI:
		result = scoreAPIChallenge(solution, content)
	case models.ChallengeTypeDatabase:
		result = scoreDatabaseChallenge(solution, content)
	case models.ChallengeTypeTest:
		result = scoreTestChallenge(solution, content)
	default:
		result = ScoreResult{
			Score:    DefaultScore,
			Feedback: []string{"Solution evaluated with general criteria."},
		}
	}

	result.Score = clampScore(result.Score)
	return result
}

func scoreCodeChallenge(solution, content models.JSONB) ScoreResult {
	code := getString(solution, "code")
	if strings.TrimSpace(code) == "" {
		return ScoreResult{Score: 0, Feedback: []string{"No code submitted."}}
	}

	score := 60 // base score for attempting
	var feedback []string

	missing := 0
	for _, raw := range strings.Split(code, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isCommentLine(line) {
			continue
		}
		if isStatementLine(line) && !hasTerminator(line) {
			missing++
		}
	}

	if missing == 0 {
		score += 15
		feedback = append(feedback, "All statements correctly terminated.")
	} else {
		feedback = append(feedback, fmt.Sprintf("Missing %d statement terminator(s).", missing))
	}

	// Only functions are checked for a return; plain scripts get the bonus.
	hasFunction := strings.Contains(code, "function ")
	if !hasFunction || strings.Contains(code, "return ") {
		score += 15
		if hasFunction {
			feedback = append(feedback, "Function includes return statement.")
		}
	} else {
		feedback = append(feedback, "Function missing return statement.")
	}

	similarity := TokenSimilarity(code, getString(content, "correctCode"))
	score += int(math.Round(similarity * 10))

	switch {
	case similarity > 0.9:
		feedback = append(feedback, "Excellent! Code matches expected solution.")
	case similarity > 0.7:
		feedback = append(feedback, "Good solution with minor differences.")
	default:
		feedback = append(feedback, "Solution needs improvement. Check logic and syntax.")
	}

	return ScoreResult{Score: score, Feedback: feedback}
}

func scoreWireframeChallenge(solution, content models.JSONB) ScoreResult {
	elements := getSlice(solution, "elements")
	if len(elements) == 0 {
		return ScoreResult{Score: 0, Feedback: []string{"No wireframe elements created."}}
	}

	score := 40 // base score for attempting
	var feedback []string

	var types, labels []string
	for _, el := range elements {
		em, ok := el.(map[string]any)
		if !ok {
			continue
		}
		types = append(types, strings.ToLower(getString(em, "type")))
		labels = append(labels, strings.ToLower(getString(em, "label")))
	}

	hasType := func(t string) bool {
		for _, v := range types {
			if v == t {
				return true
			}
		}
		return false
	}
	labelContains := func(s string) bool {
		for _, l := range labels {
			if strings.Contains(l, s) {
				return true
			}
		}
		return false
	}

	requirements := getStringSlice(content, "requirements")
	fulfilled := 0
	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		var satisfied bool

		switch {
		case strings.Contains(reqLower, "login") && strings.Contains(reqLower, "form"):
			satisfied = hasType("input") && hasType("button")
		case strings.Contains(reqLower, "button"):
			satisfied = hasType("button") || labelContains("button")
		case strings.Contains(reqLower, "input") || strings.Contains(reqLower, "field"):
			satisfied = hasType("input")
		case strings.Contains(reqLower, "text") || strings.Contains(reqLower, "link"):
			satisfied = hasType("text") || labelContains(reqLower)
		default:
			satisfied = labelContains(reqLower)
		}

		if satisfied {
			fulfilled++
			feedback = append(feedback, "Requirement fulfilled: "+req)
		} else {
			feedback = append(feedback, "Missing requirement: "+req)
		}
	}

	if len(requirements) > 0 {
		score += int(math.Round(float64(fulfilled) / float64(len(requirements)) * 40))
	}

	if len(elements) >= 4 {
		score += 10
		feedback = append(feedback, "Good element variety.")
	}

	if hasType("input") && hasType("button") {
		score += 10
		feedback = append(feedback, "Proper form structure with inputs and buttons.")
	}

	return ScoreResult{Score: score, Feedback: feedback}
}

func scoreAlgorithmChallenge(solution, content models.JSONB) ScoreResult {
	text := getString(solution, "code")
	if text == "" {
		text = getString(solution, "approach")
	}
	if strings.TrimSpace(text) == "" {
		return ScoreResult{Score: 0, Feedback: []string{"No solution provided."}}
	}

	score := 50 // base score
	var feedback []string
	lower := strings.ToLower(text)

	// The two sort tiers are mutually exclusive; first match wins.
	switch {
	case containsAny(lower, "quicksort", "mergesort", "heapsort"):
		score += 25
		feedback = append(feedback, "Efficient sorting algorithm identified.")
	case containsAny(lower, "bubblesort", "bubble sort", "insertionsort", "insertion sort"):
		score += 10
		feedback = append(feedback, "Basic sorting algorithm used - consider more efficient options.")
	}

	if containsAny(lower, "o(n log n)", "time complexity") {
		score += 15
		feedback = append(feedback, "Time complexity analysis provided.")
	}

	if containsAny(lower, "optimization", "efficient") {
		score += 10
		feedback = append(feedback, "Performance optimization considered.")
	}

	return ScoreResult{Score: score, Feedback: feedback}
}

func scoreAPIChallenge(solution, content models.JSONB) ScoreResult {
	endpoints, ok := solution["endpoints"]
	if !ok || endpoints == nil {
		return ScoreResult{Score: 0, Feedback: []string{"No API endpoints defined."}}
	}

	score := 40
	var feedback []string
	serialized := marshalToString(endpoints)

	var usedMethods []string
	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		if strings.Contains(serialized, method) {
			usedMethods = append(usedMethods, method)
		}
	}
	score += len(usedMethods) * 10
	feedback = append(feedback, fmt.Sprintf("%d/4 HTTP methods used: %s",
		len(usedMethods), strings.Join(usedMethods, ", ")))

	if strings.Contains(serialized, "/api/") {
		score += 10
		feedback = append(feedback, "RESTful API structure followed.")
	}

	if len(getString(solution, "documentation")) > 50 {
		score += 20
		feedback = append(feedback, "Comprehensive API documentation provided.")
	}

	return ScoreResult{Score: score, Feedback: feedback}
}

func scoreDatabaseChallenge(solution, content models.JSONB) ScoreResult {
	schema, ok := solution["schema"]
	if !ok || schema == nil {
		return ScoreResult{Score: 0, Feedback: []string{"No database schema provided."}}
	}

	score := 50
	var feedback []string
	schemaText := strings.ToLower(marshalToString(schema))

	if containsAny(schemaText, "users", "user") {
		score += 15
		feedback = append(feedback, "User table included.")
	}

	if containsAny(schemaText, "primary key", "id") {
		score += 10
		feedback = append(feedback, "Primary keys defined.")
	}

	if containsAny(schemaText, "foreign key", "references") {
		score += 15
		feedback = append(feedback, "Foreign key relationships established.")
	}

	if len(getSlice(solution, "relationships")) > 0 {
		score += 10
		feedback = append(feedback, "Table relationships documented.")
	}

	return ScoreResult{Score: score, Feedback: feedback}
}

func scoreTestChallenge(solution, content models.JSONB) ScoreResult {
	testCases, ok := solution["testCases"]
	if !ok || testCases == nil {
		return ScoreResult{Score: 0, Feedback: []string{"No test cases provided."}}
	}

	score := 40
	var feedback []string
	testText := strings.ToLower(marshalToString(testCases))

	if strings.Contains(testText, "should") {
		score += 15
		feedback = append(feedback, "Descriptive test cases with 'should' statements.")
	}

	if containsAny(testText, "edge case", "boundary") {
		score += 15
		feedback = append(feedback, "Edge cases considered.")
	}

	if containsAny(testText, "expect", "assert") {
		score += 15
		feedback = append(feedback, "Proper assertions used.")
	}

	if getFloat(solution, "coverage") > 80 {
		score += 15
		feedback = append(feedback, "High test coverage achieved.")
	}

	return ScoreResult{Score: score, Feedback: feedback}
}

// ================== PAYLOAD HELPERS ==================

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func marshalToString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func getFloat(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func getSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	if s, ok := m[key].([]any); ok {
		return s
	}
	return nil
}

func getStringSlice(m map[string]any, key string) []string {
	var out []string
	for _, v := range getSlice(m, key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
