// models/team.go
package models

import "time"

type Team struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"type:text"`
	LeaderID    uint   `json:"leader_id" gorm:"not null"`
	Leader      *User  `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`

	// Derived fields, recomputed by the scoring engine
	CompatibilityScore int `json:"compatibility_score" gorm:"default:0"`
	TotalScore         int `json:"total_score" gorm:"default:0;index"`
	ChallengesWon      int `json:"challenges_won" gorm:"default:0"`
	Streak             int `json:"streak" gorm:"default:0"`

	// Rank is filled in when the leaderboard is queried, never persisted
	Rank int `json:"rank" gorm:"-"`

	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}
