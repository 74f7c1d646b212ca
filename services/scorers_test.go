package services

import (
	"strings"
	"testing"

	"devrally/models"
)

const sampleCode = `function calculateTotal(items) {
  let total = 0;
  for (let i = 0; i < items.length; i++) {
    total += items[i].price;
  }
  return total;
}`

func TestScoreCodePerfectMatch(t *testing.T) {
	result := ScoreSolution("code",
		models.JSONB{"code": sampleCode},
		models.JSONB{"correctCode": sampleCode})

	if result.Score != 100 {
		t.Errorf("perfect match score = %d, want 100", result.Score)
	}
	if !hasFeedback(result, "Excellent! Code matches expected solution.") {
		t.Errorf("missing match feedback, got %v", result.Feedback)
	}
}

func TestScoreCodeCompactSelfMatch(t *testing.T) {
	code := "function f(items){let total=0;for(let i=0;i<items.length;i++){total+=items[i].price;}return total;}"
	result := ScoreSolution("code",
		models.JSONB{"code": code},
		models.JSONB{"correctCode": code})

	if result.Score != 100 {
		t.Errorf("compact self-match score = %d, want 100", result.Score)
	}
	if !hasFeedback(result, "All statements correctly terminated.") {
		t.Errorf("missing terminator feedback, got %v", result.Feedback)
	}
	if !hasFeedback(result, "Function includes return statement.") {
		t.Errorf("missing return feedback, got %v", result.Feedback)
	}
}

func TestScoreCodeMissingTerminators(t *testing.T) {
	code := "let total = 0\nreturn total"
	result := ScoreSolution("code",
		models.JSONB{"code": code},
		models.JSONB{"correctCode": sampleCode})

	if !hasFeedback(result, "Missing 2 statement terminator(s).") {
		t.Errorf("missing terminator feedback, got %v", result.Feedback)
	}
}

func TestScoreCodeEmpty(t *testing.T) {
	result := ScoreSolution("code", models.JSONB{"code": "   "}, models.JSONB{})
	if result.Score != 0 {
		t.Errorf("empty code score = %d, want 0", result.Score)
	}
	result = ScoreSolution("code", nil, nil)
	if result.Score != 0 {
		t.Errorf("nil solution score = %d, want 0", result.Score)
	}
}

func TestScoreCodeFunctionWithoutReturn(t *testing.T) {
	code := "function greet(name) {\n  console.log(name);\n}"
	result := ScoreSolution("code", models.JSONB{"code": code}, models.JSONB{})
	if !hasFeedback(result, "Function missing return statement.") {
		t.Errorf("missing return feedback, got %v", result.Feedback)
	}
}

func TestScoreWireframe(t *testing.T) {
	solution := models.JSONB{
		"elements": []any{
			map[string]any{"type": "input", "label": "Username"},
			map[string]any{"type": "input", "label": "Password"},
			map[string]any{"type": "button", "label": "Submit"},
		},
	}
	content := models.JSONB{
		"requirements": []any{"Login form", "Submit button"},
	}

	result := ScoreSolution("wireframe", solution, content)

	// 40 base + 40 for both requirements + 10 for form structure
	if result.Score != 90 {
		t.Errorf("wireframe score = %d, want 90", result.Score)
	}
	if !hasFeedback(result, "Requirement fulfilled: Login form") {
		t.Errorf("missing fulfillment feedback, got %v", result.Feedback)
	}
}

func TestScoreWireframeSingleButton(t *testing.T) {
	solution := models.JSONB{
		"elements": []any{
			map[string]any{"type": "button", "label": "Login"},
		},
	}
	content := models.JSONB{
		"requirements": []any{"Login button"},
	}

	result := ScoreSolution("wireframe", solution, content)

	// 40 base + 40 for the one requirement; too few elements for bonuses
	if result.Score != 80 {
		t.Errorf("single button score = %d, want 80", result.Score)
	}
}

func TestScoreWireframeEmpty(t *testing.T) {
	result := ScoreSolution("wireframe", models.JSONB{}, models.JSONB{})
	if result.Score != 0 {
		t.Errorf("empty wireframe score = %d, want 0", result.Score)
	}
}

func TestScoreAlgorithm(t *testing.T) {
	solution := models.JSONB{
		"approach": "Use quicksort for O(n log n) time complexity with further optimization of the pivot choice",
	}
	result := ScoreSolution("algorithm", solution, models.JSONB{})

	// 50 base + 25 efficient sort + 15 complexity + 10 optimization
	if result.Score != 100 {
		t.Errorf("algorithm score = %d, want 100", result.Score)
	}
}

func TestScoreAlgorithmBasicSort(t *testing.T) {
	solution := models.JSONB{"code": "bubble sort over the array"}
	result := ScoreSolution("algorithm", solution, models.JSONB{})

	if result.Score != 60 {
		t.Errorf("basic sort score = %d, want 60", result.Score)
	}
}

func TestScoreAPI(t *testing.T) {
	solution := models.JSONB{
		"endpoints": []any{
			map[string]any{"method": "GET", "path": "/api/users"},
			map[string]any{"method": "POST", "path": "/api/users"},
		},
	}
	result := ScoreSolution("api", solution, models.JSONB{})

	// 40 base + 2 methods * 10 + 10 for /api/ prefix
	if result.Score != 70 {
		t.Errorf("api score = %d, want 70", result.Score)
	}
	if !hasFeedback(result, "2/4 HTTP methods used: GET, POST") {
		t.Errorf("missing method feedback, got %v", result.Feedback)
	}
}

func TestScoreAPIDocumentationBonus(t *testing.T) {
	solution := models.JSONB{
		"endpoints":     []any{map[string]any{"method": "GET", "path": "/api/items"}},
		"documentation": strings.Repeat("Detailed endpoint documentation. ", 3),
	}
	result := ScoreSolution("api", solution, models.JSONB{})
	if !hasFeedback(result, "Comprehensive API documentation provided.") {
		t.Errorf("missing documentation feedback, got %v", result.Feedback)
	}
}

func TestScoreDatabase(t *testing.T) {
	solution := models.JSONB{
		"schema": "CREATE TABLE users (id SERIAL PRIMARY KEY, name TEXT)",
	}
	result := ScoreSolution("database", solution, models.JSONB{})

	// 50 base + 15 user table + 10 primary key
	if result.Score != 75 {
		t.Errorf("database score = %d, want 75", result.Score)
	}
}

func TestScoreTest(t *testing.T) {
	solution := models.JSONB{
		"testCases": []any{
			"should return the sum of all items",
			"expect(total).toBe(5)",
			"edge case: empty array returns 0",
		},
		"coverage": float64(90),
	}
	result := ScoreSolution("test", solution, models.JSONB{})

	// 40 base + 15 should + 15 edge case + 15 assertions + 15 coverage
	if result.Score != 100 {
		t.Errorf("test score = %d, want 100", result.Score)
	}
}

func TestScoreUnknownTypeDefault(t *testing.T) {
	result := ScoreSolution("presentation", models.JSONB{}, models.JSONB{})
	if result.Score != DefaultScore {
		t.Errorf("unknown type score = %d, want %d", result.Score, DefaultScore)
	}
	// Deterministic: same inputs, same score
	again := ScoreSolution("presentation", models.JSONB{}, models.JSONB{})
	if again.Score != result.Score {
		t.Errorf("unknown type score not deterministic: %d vs %d", again.Score, result.Score)
	}
}

func TestScoreBounds(t *testing.T) {
	types := []string{"code", "wireframe", "algorithm", "api", "database", "test", "other"}
	inputs := []models.JSONB{
		nil,
		{},
		{"code": 42, "elements": "bad", "endpoints": 3, "schema": 1, "testCases": false},
	}

	for _, ct := range types {
		for _, in := range inputs {
			result := ScoreSolution(ct, in, nil)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("ScoreSolution(%q, %v) = %d, out of [0,100]", ct, in, result.Score)
			}
		}
	}
}

func hasFeedback(r ScoreResult, msg string) bool {
	for _, f := range r.Feedback {
		if f == msg {
			return true
		}
	}
	return false
}
