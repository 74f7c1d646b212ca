package services

import (
	"testing"
	"time"

	"devrally/models"
)

func completedAt(t time.Time) *time.Time { return &t }

func TestComputeTeamStatsTotalsAndWins(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	attempts := []models.ChallengeAttempt{
		{Status: models.AttemptStatusCompleted, Score: 90, CompletedAt: completedAt(now)},
		{Status: models.AttemptStatusCompleted, Score: 70, CompletedAt: completedAt(now)},
		{Status: models.AttemptStatusCompleted, Score: 85, CompletedAt: completedAt(now)},
		{Status: models.AttemptStatusFailed, Score: 95},
		{Status: models.AttemptStatusInProgress, Score: 0},
	}

	stats := ComputeTeamStats(attempts, now)

	if stats.TotalScore != 245 {
		t.Errorf("TotalScore = %d, want 245", stats.TotalScore)
	}
	// 90 and 85 clear the win threshold; the failed 95 never counts
	if stats.ChallengesWon != 2 {
		t.Errorf("ChallengesWon = %d, want 2", stats.ChallengesWon)
	}
}

func TestComputeTeamStatsStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	attempts := []models.ChallengeAttempt{
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(now)},
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(now.AddDate(0, 0, -1))},
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(now.AddDate(0, 0, -2))},
	}

	stats := ComputeTeamStats(attempts, now)
	if stats.Streak != 3 {
		t.Errorf("Streak = %d, want 3", stats.Streak)
	}
}

func TestComputeTeamStatsStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	attempts := []models.ChallengeAttempt{
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(now)},
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(now.AddDate(0, 0, -2))},
	}

	stats := ComputeTeamStats(attempts, now)
	if stats.Streak != 1 {
		t.Errorf("Streak across gap = %d, want 1", stats.Streak)
	}
}

func TestComputeTeamStatsStreakZeroWithoutToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	attempts := []models.ChallengeAttempt{
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(now.AddDate(0, 0, -1))},
	}

	stats := ComputeTeamStats(attempts, now)
	if stats.Streak != 0 {
		t.Errorf("Streak without a completion today = %d, want 0", stats.Streak)
	}
}

func TestComputeTeamStatsTimezoneConversion(t *testing.T) {
	// Stored timestamps are UTC; the day boundary follows now's location.
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, loc)

	// 23:00 UTC the previous day is 09:00 today in now's zone
	utcStamp := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	attempts := []models.ChallengeAttempt{
		{Status: models.AttemptStatusCompleted, Score: 80, CompletedAt: completedAt(utcStamp)},
	}

	stats := ComputeTeamStats(attempts, now)
	if stats.Streak != 1 {
		t.Errorf("Streak with UTC-stored completion = %d, want 1", stats.Streak)
	}
}

func TestComputeTeamStatsEmpty(t *testing.T) {
	stats := ComputeTeamStats(nil, time.Now())
	if stats.TotalScore != 0 || stats.ChallengesWon != 0 || stats.Streak != 0 {
		t.Errorf("empty attempts = %+v, want zero stats", stats)
	}
}
