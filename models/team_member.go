// models/team_member.go
package models

import "time"

type TeamRole string

const (
	TeamRoleLeader TeamRole = "leader"
	TeamRoleMember TeamRole = "member"
)

type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"not null;index"`
	Team      *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role      TeamRole  `json:"role" gorm:"not null;default:'member'"`
	Specialty string    `json:"specialty" gorm:"size:100"`
	JoinedAt  time.Time `json:"joined_at" gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
