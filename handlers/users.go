// handlers/users.go - User Handlers
package handlers

import (
	"devrally/database"
	"devrally/models"

	"github.com/gofiber/fiber/v2"
)

// GetUser returns a user's public profile
// GET /api/users/:id
func GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	user.Email = nil

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// GetUserTeam returns the team a user belongs to
// GET /api/users/:id/team
func GetUserTeam(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	team, err := teamService.GetUserTeam(userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User has no team"})
	}

	return c.JSON(fiber.Map{"success": true, "team": team})
}
