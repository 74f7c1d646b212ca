// handlers/rooms.go - Game Room Handlers
package handlers

import (
	"time"

	"devrally/database"
	"devrally/models"

	"github.com/gofiber/fiber/v2"
)

// CreateGameRoom opens a collaboration room for a team and challenge
// POST /api/game-rooms
func CreateGameRoom(c *fiber.Ctx) error {
	var req struct {
		ChallengeID  uint         `json:"challenge_id"`
		TeamID       uint         `json:"team_id"`
		Participants models.JSONB `json:"participants"`
	}
	if err := c.BodyParser(&req); err != nil || req.ChallengeID == 0 || req.TeamID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "challenge_id and team_id are required"})
	}

	room := models.GameRoom{
		ChallengeID:  req.ChallengeID,
		TeamID:       req.TeamID,
		Status:       models.RoomStatusWaiting,
		Participants: req.Participants,
		CreatedAt:    time.Now(),
	}

	db := database.GetDB()
	if err := db.Create(&room).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create game room"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "room": room})
}

// GetGameRoom fetches a room by id
// GET /api/game-rooms/:id
func GetGameRoom(c *fiber.Ctx) error {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid room ID"})
	}

	db := database.GetDB()
	var room models.GameRoom
	if err := db.First(&room, roomID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Game room not found"})
	}

	return c.JSON(fiber.Map{"success": true, "room": room})
}

// UpdateGameRoom patches room status, participants or shared state
// PATCH /api/game-rooms/:id
func UpdateGameRoom(c *fiber.Ctx) error {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid room ID"})
	}

	var req struct {
		Status       *string      `json:"status"`
		Participants models.JSONB `json:"participants"`
		GameState    models.JSONB `json:"game_state"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()
	var room models.GameRoom
	if err := db.First(&room, roomID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Game room not found"})
	}

	if req.Status != nil {
		room.Status = models.RoomStatus(*req.Status)
	}
	if req.Participants != nil {
		room.Participants = req.Participants
	}
	if req.GameState != nil {
		room.GameState = req.GameState
	}
	room.UpdatedAt = time.Now()

	if err := db.Save(&room).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update game room"})
	}

	return c.JSON(fiber.Map{"success": true, "room": room})
}

// GetActiveGameRooms lists rooms that are waiting or active
// GET /api/game-rooms
func GetActiveGameRooms(c *fiber.Ctx) error {
	db := database.GetDB()
	var rooms []models.GameRoom
	if err := db.Where("status IN ?", []models.RoomStatus{
		models.RoomStatusWaiting, models.RoomStatusActive,
	}).Find(&rooms).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to get game rooms"})
	}

	return c.JSON(fiber.Map{"success": true, "rooms": rooms, "count": len(rooms)})
}
