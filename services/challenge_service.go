// services/challenge_service.go - Challenge Catalog
package services

import (
	"errors"

	"devrally/models"

	"gorm.io/gorm"
)

// ChallengeWithAttempts decorates a challenge with its attempts and the
// number of users currently working it.
type ChallengeWithAttempts struct {
	models.Challenge
	Attempts           []models.ChallengeAttempt `json:"attempts"`
	ActiveParticipants int                       `json:"active_participants"`
}

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

// CreateChallenge adds a challenge to the catalog.
func (s *ChallengeService) CreateChallenge(challenge *models.Challenge) error {
	if challenge.Title == "" {
		return errors.New("challenge title is required")
	}
	challenge.IsActive = true
	return s.db.Create(challenge).Error
}

// GetChallenge returns a single challenge by id.
func (s *ChallengeService) GetChallenge(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &challenge, nil
}

// GetChallengeWithAttempts returns a challenge along with all attempts and
// the count of in-progress participants.
func (s *ChallengeService) GetChallengeWithAttempts(id uint) (*ChallengeWithAttempts, error) {
	challenge, err := s.GetChallenge(id)
	if err != nil {
		return nil, err
	}

	var attempts []models.ChallengeAttempt
	if err := s.db.Where("challenge_id = ?", id).Find(&attempts).Error; err != nil {
		return nil, err
	}

	return &ChallengeWithAttempts{
		Challenge:          *challenge,
		Attempts:           attempts,
		ActiveParticipants: countInProgress(attempts),
	}, nil
}

// GetActiveChallenges lists the active catalog with attempt info.
func (s *ChallengeService) GetActiveChallenges() ([]ChallengeWithAttempts, error) {
	var challenges []models.Challenge
	if err := s.db.Where("is_active = ?", true).Order("id ASC").Find(&challenges).Error; err != nil {
		return nil, err
	}

	result := make([]ChallengeWithAttempts, 0, len(challenges))
	for _, c := range challenges {
		var attempts []models.ChallengeAttempt
		if err := s.db.Where("challenge_id = ?", c.ID).Find(&attempts).Error; err != nil {
			return nil, err
		}
		result = append(result, ChallengeWithAttempts{
			Challenge:          c,
			Attempts:           attempts,
			ActiveParticipants: countInProgress(attempts),
		})
	}

	return result, nil
}

// GetChallengesByType lists active challenges of one type.
func (s *ChallengeService) GetChallengesByType(challengeType string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.Where("type = ? AND is_active = ?", challengeType, true).
		Order("id ASC").
		Find(&challenges).Error
	return challenges, err
}

// SetActive toggles a challenge's availability.
func (s *ChallengeService) SetActive(id uint, active bool) error {
	result := s.db.Model(&models.Challenge{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func countInProgress(attempts []models.ChallengeAttempt) int {
	count := 0
	for _, a := range attempts {
		if a.Status == models.AttemptStatusInProgress {
			count++
		}
	}
	return count
}
