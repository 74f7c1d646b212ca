// models/challenge.go - Challenge Catalog Data Models
package models

import (
	"time"
)

// Challenge type constants
type ChallengeType string

const (
	ChallengeTypeCode      ChallengeType = "code"
	ChallengeTypeWireframe ChallengeType = "wireframe"
	ChallengeTypeAlgorithm ChallengeType = "algorithm"
	ChallengeTypeAPI       ChallengeType = "api"
	ChallengeTypeDatabase  ChallengeType = "database"
	ChallengeTypeTest      ChallengeType = "test"
)

// Challenge represents a timed task with a point value and type-specific
// scoring content. Immutable after creation except the IsActive toggle.
type Challenge struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"not null;size:200"`
	Description string        `json:"description" gorm:"not null;type:text"`
	Type        ChallengeType `json:"type" gorm:"not null;size:20;index"`
	Difficulty  string        `json:"difficulty" gorm:"not null;size:20"` // easy, medium, hard
	Points      int           `json:"points" gorm:"not null"`
	TimeLimit   *int          `json:"time_limit"` // in seconds, advisory soft deadline
	Content     JSONB         `json:"content" gorm:"type:jsonb"`
	IsActive    bool          `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}
