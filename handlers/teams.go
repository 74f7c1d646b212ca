// handlers/teams.go - Team HTTP Handlers
package handlers

import (
	"errors"
	"strconv"

	"devrally/middleware"
	"devrally/services"

	"github.com/gofiber/fiber/v2"
)

// CreateTeam creates a new team with the caller as leader
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Specialty   string `json:"specialty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Team name is required"})
	}

	team, err := teamService.CreateTeam(req.Name, req.Description, userID, req.Specialty)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	full, err := teamService.GetTeamByID(team.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load team"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "team": full})
}

// GetTeam retrieves a team with members
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	team, err := teamService.GetTeamByID(teamID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}

	return c.JSON(fiber.Map{"success": true, "team": team})
}

// AddTeamMember adds a user to a team
// POST /api/teams/:id/members
func AddTeamMember(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	var req struct {
		UserID    uint   `json:"user_id"`
		Specialty string `json:"specialty"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	member, err := teamService.AddMember(teamID, req.UserID, req.Specialty)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
		}
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "member": member})
}

// RemoveTeamMember removes a regular member from a team
// DELETE /api/teams/:teamId/members/:userId
func RemoveTeamMember(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "teamId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	if err := teamService.RemoveMember(teamID, userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team member not found"})
		}
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetTeamMembers lists a team's members
// GET /api/teams/:id/members
func GetTeamMembers(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	members, err := teamService.GetTeamMembers(teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to retrieve members"})
	}

	return c.JSON(fiber.Map{"success": true, "members": members, "count": len(members)})
}

// GetTeamAttempts lists all attempts by a team
// GET /api/teams/:id/attempts
func GetTeamAttempts(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	attempts, err := teamService.GetTeamAttempts(teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to retrieve attempts"})
	}

	return c.JSON(fiber.Map{"success": true, "attempts": attempts, "count": len(attempts)})
}

// GetTeamStats returns the team's derived aggregates
// GET /api/teams/:id/stats
func GetTeamStats(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	stats, err := teamService.TeamStatsSummary(teamID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to compute stats"})
	}

	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(id), err
}
