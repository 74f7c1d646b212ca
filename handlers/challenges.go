// handlers/challenges.go - Challenge Catalog Handlers
package handlers

import (
	"errors"

	"devrally/middleware"
	"devrally/models"
	"devrally/services"

	"github.com/gofiber/fiber/v2"
)

// GetChallenges lists active challenges, optionally filtered by type
// GET /api/challenges?type=code
func GetChallenges(c *fiber.Ctx) error {
	if challengeType := c.Query("type"); challengeType != "" {
		challenges, err := challengeService.GetChallengesByType(challengeType)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to get challenges"})
		}
		return c.JSON(fiber.Map{"success": true, "challenges": challenges})
	}

	challenges, err := challengeService.GetActiveChallenges()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to get challenges"})
	}

	return c.JSON(fiber.Map{"success": true, "challenges": challenges})
}

// GetChallenge returns one challenge with attempts and live participants
// GET /api/challenges/:id
func GetChallenge(c *fiber.Ctx) error {
	challengeID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	challenge, err := challengeService.GetChallengeWithAttempts(challengeID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Challenge not found"})
	}

	return c.JSON(fiber.Map{"success": true, "challenge": challenge})
}

// CreateChallenge adds a challenge to the catalog
// POST /api/challenges
func CreateChallenge(c *fiber.Ctx) error {
	var req struct {
		Title       string       `json:"title"`
		Description string       `json:"description"`
		Type        string       `json:"type"`
		Difficulty  string       `json:"difficulty"`
		Points      int          `json:"points"`
		TimeLimit   *int         `json:"time_limit"`
		Content     models.JSONB `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	challenge := &models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Type:        models.ChallengeType(req.Type),
		Difficulty:  req.Difficulty,
		Points:      req.Points,
		TimeLimit:   req.TimeLimit,
		Content:     req.Content,
	}

	if err := challengeService.CreateChallenge(challenge); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "challenge": challenge})
}

// SetChallengeActive toggles whether a challenge accepts new attempts
// PATCH /api/challenges/:id/active
func SetChallengeActive(c *fiber.Ctx) error {
	challengeID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	var req struct {
		Active *bool `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil || req.Active == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "active is required"})
	}

	if err := challengeService.SetActive(challengeID, *req.Active); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Challenge not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update challenge"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// StartAttempt begins a new attempt at a challenge
// POST /api/challenges/:id/attempts
func StartAttempt(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	challengeID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	var req struct {
		TeamID uint `json:"team_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.TeamID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "team_id is required"})
	}

	attempt, err := attemptService.StartAttempt(challengeID, req.TeamID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Challenge not found"})
		case errors.Is(err, services.ErrAttemptInProgress):
			return c.Status(409).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to start challenge"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "attempt": attempt})
}
