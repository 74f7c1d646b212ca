// handlers/attempts.go - Attempt Lifecycle Handlers
package handlers

import (
	"errors"

	"devrally/services"

	"github.com/gofiber/fiber/v2"
)

// UpdateAttempt patches an attempt under the lifecycle rules
// PATCH /api/attempts/:id
func UpdateAttempt(c *fiber.Ctx) error {
	attemptID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid attempt ID"})
	}

	var update services.AttemptUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	attempt, err := attemptService.UpdateAttempt(attemptID, update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Attempt not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update attempt"})
	}

	response := fiber.Map{"success": true, "attempt": attempt}

	// Advisory extras; they never feed the stored 0-100 score
	if attempt.TimeSpent != nil {
		if challenge, err := challengeService.GetChallenge(attempt.ChallengeID); err == nil {
			response["time_bonus"] = services.TimeBonus(*attempt.TimeSpent, challenge.TimeLimit)
		}
	}

	return c.JSON(response)
}

// GetUserAttempts lists a user's attempts
// GET /api/users/:id/attempts
func GetUserAttempts(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	attempts, err := attemptService.GetUserAttempts(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to get user attempts"})
	}

	return c.JSON(fiber.Map{"success": true, "attempts": attempts, "count": len(attempts)})
}
