package services

import (
	"testing"

	"devrally/models"
)

func TestCompatibilitySmallTeam(t *testing.T) {
	if got := CalculateTeamCompatibility(nil, nil); got != 50 {
		t.Errorf("empty team = %d, want 50", got)
	}

	solo := []MemberProfile{{UserID: 1, Specialty: "frontend"}}
	if got := CalculateTeamCompatibility(solo, nil); got != 50 {
		t.Errorf("single member = %d, want 50", got)
	}
	if got := CalculateWeightedCompatibility(solo, nil); got != 50 {
		t.Errorf("single member weighted = %d, want 50", got)
	}
}

func TestCompatibilityDiverseNoAttempts(t *testing.T) {
	members := []MemberProfile{
		{UserID: 1, Specialty: "frontend"},
		{UserID: 2, Specialty: "backend"},
	}

	// diversity 100, neutral success 50 -> round(150/2)
	if got := CalculateTeamCompatibility(members, nil); got != 75 {
		t.Errorf("diverse team, no attempts = %d, want 75", got)
	}
}

func TestCompatibilityUniformWithAttempts(t *testing.T) {
	members := []MemberProfile{
		{UserID: 1, Specialty: "backend"},
		{UserID: 2, Specialty: "backend"},
	}
	attempts := []models.ChallengeAttempt{
		{UserID: 1, Status: models.AttemptStatusCompleted, Score: 100},
		{UserID: 2, Status: models.AttemptStatusCompleted, Score: 80},
		{UserID: 1, Status: models.AttemptStatusFailed, Score: 0},
	}

	// diversity 50, success 90 over the two completed -> round(140/2)
	if got := CalculateTeamCompatibility(members, attempts); got != 70 {
		t.Errorf("uniform team with attempts = %d, want 70", got)
	}
}

func TestWeightedCompatibility(t *testing.T) {
	members := []MemberProfile{
		{UserID: 1, Specialty: "frontend"},
		{UserID: 2, Specialty: "backend"},
	}
	attempts := []models.ChallengeAttempt{
		{UserID: 1, Status: models.AttemptStatusCompleted, Score: 100},
	}

	// diversity 100*0.3 + success 100*0.4 + participation 50*0.3
	if got := CalculateWeightedCompatibility(members, attempts); got != 85 {
		t.Errorf("weighted compatibility = %d, want 85", got)
	}
}

func TestCompatibilityClamped(t *testing.T) {
	members := []MemberProfile{
		{UserID: 1, Specialty: "frontend"},
		{UserID: 2, Specialty: "backend"},
		{UserID: 3, Specialty: "design"},
	}
	attempts := []models.ChallengeAttempt{
		{UserID: 1, Status: models.AttemptStatusCompleted, Score: 100},
		{UserID: 2, Status: models.AttemptStatusCompleted, Score: 100},
		{UserID: 3, Status: models.AttemptStatusCompleted, Score: 100},
	}

	got := CalculateTeamCompatibility(members, attempts)
	if got < 0 || got > 100 {
		t.Errorf("compatibility = %d, out of [0,100]", got)
	}
	if got != 100 {
		t.Errorf("fully diverse, perfect record = %d, want 100", got)
	}
}
