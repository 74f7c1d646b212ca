// models/challenge_attempt.go - Challenge Attempt Data Models
package models

import (
	"time"
)

// Attempt status constants
type AttemptStatus string

const (
	AttemptStatusInProgress AttemptStatus = "in_progress"
	AttemptStatusCompleted  AttemptStatus = "completed"
	AttemptStatusFailed     AttemptStatus = "failed"
	AttemptStatusAbandoned  AttemptStatus = "abandoned"
)

// IsTerminal reports whether the status permits no further transitions.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptStatusCompleted || s == AttemptStatusFailed || s == AttemptStatusAbandoned
}

// ChallengeAttempt is one user's try at a challenge, tied to their team.
// CompletedAt is set exactly once, the first time status becomes completed.
type ChallengeAttempt struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	ChallengeID uint          `json:"challenge_id" gorm:"not null;index"`
	Challenge   *Challenge    `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
	TeamID      uint          `json:"team_id" gorm:"not null;index"`
	Team        *Team         `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	User        *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status      AttemptStatus `json:"status" gorm:"not null;default:'in_progress';index"`
	Score       int           `json:"score" gorm:"default:0"`
	TimeSpent   *int          `json:"time_spent"` // in seconds
	Solution    JSONB         `json:"solution" gorm:"type:jsonb"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at"`
}

func (ChallengeAttempt) TableName() string {
	return "challenge_attempts"
}
