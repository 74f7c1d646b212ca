// services/attempt_service.go - Attempt Lifecycle State Machine
package services

import (
	"log"
	"time"

	"devrally/models"

	"gorm.io/gorm"
)

// Broadcaster pushes best-effort real-time events to connected clients.
// Delivery is at-most-once; the store is updated before any broadcast.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

// AttemptUpdate carries the partial fields a client may patch on an
// attempt. Nil fields are left untouched.
type AttemptUpdate struct {
	Status    *models.AttemptStatus `json:"status"`
	Score     *int                  `json:"score"`
	TimeSpent *int                  `json:"time_spent"`
	Solution  models.JSONB          `json:"solution"`
}

type AttemptService struct {
	db        *gorm.DB
	teams     *TeamService
	broadcast Broadcaster
}

func NewAttemptService(db *gorm.DB, teams *TeamService, broadcast Broadcaster) *AttemptService {
	return &AttemptService{db: db, teams: teams, broadcast: broadcast}
}

// CanTransition reports whether an attempt may move from one status to
// another. Terminal states are frozen.
func CanTransition(from, to models.AttemptStatus) bool {
	if from == to {
		return true
	}
	return from == models.AttemptStatusInProgress
}

// ApplyCompletion stamps CompletedAt exactly once. Calling it again on an
// already-completed attempt leaves the original timestamp in place.
func ApplyCompletion(attempt *models.ChallengeAttempt, now time.Time) {
	if attempt.CompletedAt == nil {
		attempt.CompletedAt = &now
	}
}

// StartAttempt creates a new in_progress attempt. A user may hold at most
// one active attempt per challenge; a second start returns
// ErrAttemptInProgress.
func (s *AttemptService) StartAttempt(challengeID, teamID, userID uint) (*models.ChallengeAttempt, error) {
	var challenge models.Challenge
	if err := s.db.Where("id = ? AND is_active = ?", challengeID, true).First(&challenge).Error; err != nil {
		return nil, ErrNotFound
	}

	var active int64
	s.db.Model(&models.ChallengeAttempt{}).
		Where("challenge_id = ? AND user_id = ? AND status = ?",
			challengeID, userID, models.AttemptStatusInProgress).
		Count(&active)
	if active > 0 {
		return nil, ErrAttemptInProgress
	}

	attempt := &models.ChallengeAttempt{
		ChallengeID: challengeID,
		TeamID:      teamID,
		UserID:      userID,
		Status:      models.AttemptStatusInProgress,
		StartedAt:   time.Now(),
	}

	if err := s.db.Create(attempt).Error; err != nil {
		return nil, err
	}

	return attempt, nil
}

// UpdateAttempt applies a partial update under the lifecycle rules: any
// update to a terminal attempt is rejected. Entering completed stamps
// CompletedAt, recomputes the team aggregates and broadcasts the result.
func (s *AttemptService) UpdateAttempt(attemptID uint, update AttemptUpdate) (*models.ChallengeAttempt, error) {
	var attempt models.ChallengeAttempt
	if err := s.db.First(&attempt, attemptID).Error; err != nil {
		return nil, ErrNotFound
	}

	if attempt.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	if update.Status != nil && !CanTransition(attempt.Status, *update.Status) {
		return nil, ErrInvalidTransition
	}

	if update.Score != nil {
		attempt.Score = clampScore(*update.Score)
	}
	if update.TimeSpent != nil {
		attempt.TimeSpent = update.TimeSpent
	}
	if update.Solution != nil {
		attempt.Solution = update.Solution
	}

	completed := false
	if update.Status != nil {
		attempt.Status = *update.Status
		if attempt.Status == models.AttemptStatusCompleted {
			ApplyCompletion(&attempt, time.Now())
			completed = true
		}
	}

	if err := s.db.Save(&attempt).Error; err != nil {
		return nil, err
	}

	if completed {
		s.onAttemptCompleted(&attempt)
	}

	s.publish("attempt_updated", attempt)
	return &attempt, nil
}

// onAttemptCompleted runs the completion side effects: team aggregates,
// compatibility and the user's lifetime points. Failed and abandoned
// attempts skip all of this.
func (s *AttemptService) onAttemptCompleted(attempt *models.ChallengeAttempt) {
	if err := s.teams.RecomputeTeamStats(attempt.TeamID); err != nil {
		log.Printf("failed to recompute stats for team %d: %v", attempt.TeamID, err)
	}
	if _, err := s.teams.RecomputeCompatibility(attempt.TeamID); err != nil {
		log.Printf("failed to recompute compatibility for team %d: %v", attempt.TeamID, err)
	}

	s.db.Model(&models.User{}).
		Where("id = ?", attempt.UserID).
		Update("total_points", gorm.Expr("total_points + ?", attempt.Score))

	s.publish("challenge_completed", map[string]any{
		"attempt_id":   attempt.ID,
		"challenge_id": attempt.ChallengeID,
		"team_id":      attempt.TeamID,
		"user_id":      attempt.UserID,
		"score":        attempt.Score,
	})
}

// GetUserAttempts returns all attempts by a user, newest first.
func (s *AttemptService) GetUserAttempts(userID uint) ([]models.ChallengeAttempt, error) {
	var attempts []models.ChallengeAttempt
	err := s.db.Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (s *AttemptService) publish(eventType string, data any) {
	if s.broadcast == nil {
		return
	}
	s.broadcast.Broadcast(eventType, data)
}

// TimeBonus awards advisory bonus points for fast completion relative to
// the challenge's soft deadline. It never feeds the stored 0-100 score.
func TimeBonus(timeSpent int, timeLimit *int) int {
	if timeLimit == nil || *timeLimit <= 0 {
		return 0
	}

	ratio := float64(timeSpent) / float64(*timeLimit)
	switch {
	case ratio <= 0.5:
		return 20
	case ratio <= 0.75:
		return 10
	case ratio <= 1.0:
		return 5
	}
	return 0
}
