// services/seed.go - Demo Challenge Catalog Seeding
package services

import (
	"log"

	"devrally/models"

	"gorm.io/gorm"
)

// SeedChallenges loads the demo challenge catalog on first boot. A
// non-empty table means the catalog was already seeded (or curated by
// hand) and is left alone.
func SeedChallenges(db *gorm.DB) {
	var count int64
	db.Model(&models.Challenge{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding demo challenge catalog...")

	challenges := []models.Challenge{
		{
			Title:       "Code Debug Rally",
			Description: "Fix JavaScript bugs and make the function work correctly",
			Type:        models.ChallengeTypeCode,
			Difficulty:  "easy",
			Points:      200,
			TimeLimit:   intPtr(300),
			Content: models.JSONB{
				"code":        "function calculateTotal(items) {\n  let total = 0\n  for (let i=0; i<items.length; i++) {\n    total += items[i].price\n  }\n}",
				"errors":      []any{"Missing semicolons", "Missing return statement"},
				"correctCode": "function calculateTotal(items) {\n  let total = 0;\n  for (let i=0; i<items.length; i++) {\n    total += items[i].price;\n  }\n  return total;\n}",
				"testCases": []any{
					map[string]any{"input": []any{map[string]any{"price": 10}, map[string]any{"price": 20}, map[string]any{"price": 30}}, "expected": 60},
					map[string]any{"input": []any{map[string]any{"price": 5}, map[string]any{"price": 15}}, "expected": 20},
					map[string]any{"input": []any{}, "expected": 0},
				},
			},
		},
		{
			Title:       "Mobile Login Screen",
			Description: "Design a modern mobile login interface with all required elements",
			Type:        models.ChallengeTypeWireframe,
			Difficulty:  "medium",
			Points:      250,
			TimeLimit:   intPtr(400),
			Content: models.JSONB{
				"requirements": []any{
					"Email input field", "Password input field", "Login button",
					"Forgot password link", "Social login options", "Sign up link",
				},
				"constraints": map[string]any{"width": 375, "height": 667},
			},
		},
		{
			Title:       "Quick Sort Challenge",
			Description: "Implement an efficient sorting algorithm",
			Type:        models.ChallengeTypeAlgorithm,
			Difficulty:  "hard",
			Points:      350,
			TimeLimit:   intPtr(600),
			Content: models.JSONB{
				"problem":  "Implement QuickSort algorithm to sort an array of integers efficiently",
				"template": "function quickSort(arr) {\n  // Your implementation here\n  return arr;\n}",
			},
		},
		{
			Title:       "REST API Design",
			Description: "Design a RESTful API for a task management system",
			Type:        models.ChallengeTypeAPI,
			Difficulty:  "medium",
			Points:      280,
			TimeLimit:   intPtr(450),
			Content: models.JSONB{
				"requirements": []any{
					"User authentication endpoints",
					"CRUD operations for tasks",
					"Task categorization",
					"User roles and permissions",
				},
				"template": map[string]any{
					"base_url":  "https://api.taskmanager.com/v1",
					"endpoints": map[string]any{},
				},
			},
		},
		{
			Title:       "Database Schema Design",
			Description: "Design a database schema for an e-commerce platform",
			Type:        models.ChallengeTypeDatabase,
			Difficulty:  "hard",
			Points:      320,
			TimeLimit:   intPtr(500),
			Content: models.JSONB{
				"requirements": []any{
					"Users and authentication",
					"Products and categories",
					"Orders and order items",
					"Shopping cart functionality",
					"Payment tracking",
				},
				"constraints": map[string]any{"normalize": true, "foreign_keys": true, "indexes": true},
			},
		},
		{
			Title:       "Unit Test Suite",
			Description: "Write comprehensive unit tests for a calculator function",
			Type:        models.ChallengeTypeTest,
			Difficulty:  "easy",
			Points:      180,
			TimeLimit:   intPtr(250),
			Content: models.JSONB{
				"functionToTest": "function calculator(a, b, operation) {\n  switch(operation) {\n    case 'add': return a + b;\n    case 'subtract': return a - b;\n    case 'multiply': return a * b;\n    case 'divide': return b !== 0 ? a / b : 'Error: Division by zero';\n    default: return 'Error: Invalid operation';\n  }\n}",
				"requirements": []any{
					"Test all operations (add, subtract, multiply, divide)",
					"Test edge cases (division by zero, invalid operations)",
					"Test with different number types (integers, decimals, negative)",
					"Achieve 100% code coverage",
				},
			},
		},
		{
			Title:       "E-commerce Dashboard",
			Description: "Create a wireframe for an admin dashboard",
			Type:        models.ChallengeTypeWireframe,
			Difficulty:  "hard",
			Points:      300,
			TimeLimit:   intPtr(500),
			Content: models.JSONB{
				"requirements": []any{
					"Navigation sidebar",
					"Key metrics cards (sales, orders, users)",
					"Charts and graphs area",
					"Recent orders table",
					"Quick actions panel",
					"User profile dropdown",
				},
				"constraints": map[string]any{"width": 1200, "height": 800},
			},
		},
	}

	for i := range challenges {
		challenges[i].IsActive = true
		if err := db.Create(&challenges[i]).Error; err != nil {
			log.Printf("failed to seed challenge %q: %v", challenges[i].Title, err)
		}
	}

	log.Printf("Seeded %d demo challenges", len(challenges))
}

func intPtr(v int) *int {
	return &v
}
