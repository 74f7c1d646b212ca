// handlers/leaderboard.go - Team Leaderboard
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns all teams ranked by total score. Ranks are
// derived at query time; tied teams share a rank.
// GET /api/leaderboard
func GetLeaderboard(c *fiber.Ctx) error {
	teams, err := teamService.Leaderboard()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to get leaderboard"})
	}

	GetHub().Broadcast("leaderboard_update", fiber.Map{"team_count": len(teams)})

	return c.JSON(fiber.Map{"success": true, "teams": teams, "count": len(teams)})
}
