// models/game_room.go
package models

import "time"

// Room status constants
type RoomStatus string

const (
	RoomStatusWaiting   RoomStatus = "waiting"
	RoomStatusActive    RoomStatus = "active"
	RoomStatusCompleted RoomStatus = "completed"
)

// GameRoom is a live collaboration space for a team working a challenge.
type GameRoom struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ChallengeID  uint       `json:"challenge_id" gorm:"not null;index"`
	Challenge    *Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
	TeamID       uint       `json:"team_id" gorm:"not null;index"`
	Team         *Team      `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Status       RoomStatus `json:"status" gorm:"not null;default:'waiting';index"`
	Participants JSONB      `json:"participants" gorm:"type:jsonb"` // user IDs and presence info
	GameState    JSONB      `json:"game_state" gorm:"type:jsonb"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (GameRoom) TableName() string {
	return "game_rooms"
}
