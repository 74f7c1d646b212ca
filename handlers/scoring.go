// handlers/scoring.go - Heuristic Scoring Endpoint
package handlers

import (
	"devrally/models"
	"devrally/services"

	"github.com/gofiber/fiber/v2"
)

// ScoreSolution grades a submitted solution against challenge content
// POST /api/score/solution
func ScoreSolution(c *fiber.Ctx) error {
	var req struct {
		ChallengeType    string       `json:"challengeType"`
		Solution         models.JSONB `json:"solution"`
		ChallengeContent models.JSONB `json:"challengeContent"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	result := services.ScoreSolution(req.ChallengeType, req.Solution, req.ChallengeContent)

	return c.JSON(fiber.Map{
		"success":  true,
		"score":    result.Score,
		"feedback": result.Feedback,
	})
}
