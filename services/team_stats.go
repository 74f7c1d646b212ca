// services/team_stats.go - Team Stats Aggregation
package services

import (
	"time"

	"devrally/models"
)

// WinThreshold is the minimum completed score that counts as a won challenge.
const WinThreshold = 80

// TeamStats is the derived team-level aggregate recomputed whenever an
// attempt completes.
type TeamStats struct {
	TotalScore    int `json:"total_score"`
	ChallengesWon int `json:"challenges_won"`
	Streak        int `json:"streak"`
}

// ComputeTeamStats derives total score, win count and the current
// consecutive-day completion streak from a team's attempts. Only completed
// attempts count. The streak walks backward one calendar day at a time from
// now's date and stops at the first day without a completion.
func ComputeTeamStats(attempts []models.ChallengeAttempt, now time.Time) TeamStats {
	var stats TeamStats

	completionDays := make(map[time.Time]bool)
	for _, a := range attempts {
		if a.Status != models.AttemptStatusCompleted {
			continue
		}
		stats.TotalScore += a.Score
		if a.Score >= WinThreshold {
			stats.ChallengesWon++
		}
		if a.CompletedAt != nil {
			completionDays[truncateToDay(a.CompletedAt.In(now.Location()))] = true
		}
	}

	day := truncateToDay(now)
	for completionDays[day] {
		stats.Streak++
		day = day.AddDate(0, 0, -1)
	}

	return stats
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
