// services/compatibility.go - Team Compatibility Heuristics
package services

import (
	"math"

	"devrally/models"
)

// MemberProfile is the slice of a team member the compatibility
// calculation needs.
type MemberProfile struct {
	UserID    uint
	Specialty string
}

// CalculateTeamCompatibility is the canonical compatibility formula used
// for the persisted team score: the average of specialty diversity and
// recent completed-attempt success rate, both on a 0-100 scale. Teams with
// fewer than two members score a neutral 50.
func CalculateTeamCompatibility(members []MemberProfile, recentAttempts []models.ChallengeAttempt) int {
	if len(members) < 2 {
		return 50
	}

	diversity := diversityScore(members)
	successRate := successRate(recentAttempts)

	return clampScore(int(math.Round((diversity + successRate) / 2)))
}

// CalculateWeightedCompatibility is the richer three-factor variant that
// also weighs participation (distinct members with recent attempts).
// Weighted 30/40/30 across diversity, success rate and participation. It is
// reported on the team stats endpoint but never persisted; the two-factor
// average above stays canonical.
func CalculateWeightedCompatibility(members []MemberProfile, recentAttempts []models.ChallengeAttempt) int {
	if len(members) < 2 {
		return 50
	}

	diversity := diversityScore(members)
	success := successRate(recentAttempts)

	active := make(map[uint]bool)
	for _, a := range recentAttempts {
		active[a.UserID] = true
	}
	participation := float64(len(active)) / float64(len(members)) * 100

	return clampScore(int(math.Round(diversity*0.3 + success*0.4 + participation*0.3)))
}

func diversityScore(members []MemberProfile) float64 {
	specialties := make(map[string]bool, len(members))
	for _, m := range members {
		specialties[m.Specialty] = true
	}
	return float64(len(specialties)) / float64(len(members)) * 100
}

// successRate is the mean score over completed attempts, or a neutral 50
// when the team has not completed anything yet.
func successRate(attempts []models.ChallengeAttempt) float64 {
	sum, count := 0, 0
	for _, a := range attempts {
		if a.Status == models.AttemptStatusCompleted {
			sum += a.Score
			count++
		}
	}
	if count == 0 {
		return 50
	}
	return float64(sum) / float64(count)
}
