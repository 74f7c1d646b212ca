// services/team_service.go - Team Business Logic
package services

import (
	"errors"
	"time"

	"devrally/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db        *gorm.DB
	broadcast Broadcaster
}

func NewTeamService(db *gorm.DB, broadcast Broadcaster) *TeamService {
	return &TeamService{db: db, broadcast: broadcast}
}

// ================== TEAM CRUD OPERATIONS ==================

// CreateTeam creates a team and its leader membership atomically.
func (s *TeamService) CreateTeam(name, description string, leaderID uint, specialty string) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}
	if specialty == "" {
		specialty = "management"
	}

	team := &models.Team{
		Name:        name,
		Description: description,
		LeaderID:    leaderID,
		CreatedAt:   time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := &models.TeamMember{
			TeamID:    team.ID,
			UserID:    leaderID,
			Role:      models.TeamRoleLeader,
			Specialty: specialty,
			JoinedAt:  time.Now(),
		}
		return tx.Create(member).Error
	})

	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeamByID retrieves a team with members and their users preloaded.
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Members").
		Preload("Members.User").
		Preload("Leader").
		First(&team, teamID).Error

	if err != nil {
		return nil, ErrNotFound
	}

	return &team, nil
}

// GetUserTeam returns the team a user belongs to, if any.
func (s *TeamService) GetUserTeam(userID uint) (*models.Team, error) {
	var member models.TeamMember
	if err := s.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil, ErrNotFound
	}
	return s.GetTeamByID(member.TeamID)
}

// ================== TEAM MEMBERSHIP OPERATIONS ==================

// AddMember adds a user to a team. The leader record is created with the
// team itself, so joins always produce regular members. Membership changes
// re-derive the compatibility score.
func (s *TeamService) AddMember(teamID, userID uint, specialty string) (*models.TeamMember, error) {
	if _, err := s.GetTeamByID(teamID); err != nil {
		return nil, err
	}

	var existing int64
	s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&existing)
	if existing > 0 {
		return nil, errors.New("already a member of this team")
	}

	if specialty == "" {
		specialty = "general"
	}

	member := &models.TeamMember{
		TeamID:    teamID,
		UserID:    userID,
		Role:      models.TeamRoleMember,
		Specialty: specialty,
		JoinedAt:  time.Now(),
	}

	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}

	if _, err := s.RecomputeCompatibility(teamID); err != nil {
		return nil, err
	}

	if s.broadcast != nil {
		s.broadcast.Broadcast("team_member_joined", member)
	}

	return member, nil
}

// RemoveMember removes a regular member. The leader record can never be
// removed this way.
func (s *TeamService) RemoveMember(teamID, userID uint) error {
	var member models.TeamMember
	if err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error; err != nil {
		return ErrNotFound
	}

	if member.Role == models.TeamRoleLeader {
		return errors.New("cannot remove team leader")
	}

	if err := s.db.Delete(&member).Error; err != nil {
		return err
	}

	_, err := s.RecomputeCompatibility(teamID)
	return err
}

// GetTeamMembers returns all members of a team with user data.
func (s *TeamService) GetTeamMembers(teamID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.Where("team_id = ?", teamID).
		Preload("User").
		Order("role ASC, joined_at ASC").
		Find(&members).Error
	return members, err
}

// GetTeamAttempts returns all attempts made by a team's members.
func (s *TeamService) GetTeamAttempts(teamID uint) ([]models.ChallengeAttempt, error) {
	var attempts []models.ChallengeAttempt
	err := s.db.Where("team_id = ?", teamID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// ================== DERIVED SCORES ==================

// RecomputeCompatibility re-derives and persists the team's compatibility
// score from member specialties and recent attempt outcomes.
func (s *TeamService) RecomputeCompatibility(teamID uint) (int, error) {
	members, err := s.GetTeamMembers(teamID)
	if err != nil {
		return 0, err
	}
	attempts, err := s.GetTeamAttempts(teamID)
	if err != nil {
		return 0, err
	}

	profiles := memberProfiles(members)
	score := CalculateTeamCompatibility(profiles, attempts)

	err = s.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Update("compatibility_score", score).Error
	return score, err
}

// RecomputeTeamStats re-derives and persists total score, win count and
// streak from the team's completed attempts.
func (s *TeamService) RecomputeTeamStats(teamID uint) error {
	attempts, err := s.GetTeamAttempts(teamID)
	if err != nil {
		return err
	}

	stats := ComputeTeamStats(attempts, time.Now())

	return s.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Updates(map[string]any{
			"total_score":    stats.TotalScore,
			"challenges_won": stats.ChallengesWon,
			"streak":         stats.Streak,
		}).Error
}

// ================== LEADERBOARD ==================

// Leaderboard returns all teams ordered by total score with ranks filled
// in. Rank is 1 + the number of teams with a strictly higher score, so
// tied teams share a rank and keep their stable creation order.
func (s *TeamService) Leaderboard() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Order("total_score DESC, id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}

	for i := range teams {
		rank := 1
		for j := range teams {
			if teams[j].TotalScore > teams[i].TotalScore {
				rank++
			}
		}
		teams[i].Rank = rank
	}

	return teams, nil
}

// TeamStatsSummary bundles the persisted aggregates with the advisory
// weighted compatibility variant for the stats endpoint.
func (s *TeamService) TeamStatsSummary(teamID uint) (map[string]any, error) {
	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.GetTeamAttempts(teamID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, a := range attempts {
		if a.Status == models.AttemptStatusCompleted {
			completed++
		}
	}

	profiles := memberProfiles(team.Members)

	return map[string]any{
		"team_id":             team.ID,
		"total_score":         team.TotalScore,
		"challenges_won":      team.ChallengesWon,
		"streak":              team.Streak,
		"compatibility_score": team.CompatibilityScore,
		"engagement_score":    CalculateWeightedCompatibility(profiles, attempts),
		"total_attempts":      len(attempts),
		"completed_attempts":  completed,
		"member_count":        len(team.Members),
	}, nil
}

func memberProfiles(members []models.TeamMember) []MemberProfile {
	profiles := make([]MemberProfile, 0, len(members))
	for _, m := range members {
		profiles = append(profiles, MemberProfile{UserID: m.UserID, Specialty: m.Specialty})
	}
	return profiles
}
