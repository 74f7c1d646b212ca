package services

import (
	"testing"
	"time"

	"devrally/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.AttemptStatus
		want     bool
	}{
		{models.AttemptStatusInProgress, models.AttemptStatusCompleted, true},
		{models.AttemptStatusInProgress, models.AttemptStatusFailed, true},
		{models.AttemptStatusInProgress, models.AttemptStatusAbandoned, true},
		{models.AttemptStatusInProgress, models.AttemptStatusInProgress, true},
		{models.AttemptStatusCompleted, models.AttemptStatusFailed, false},
		{models.AttemptStatusCompleted, models.AttemptStatusInProgress, false},
		{models.AttemptStatusFailed, models.AttemptStatusCompleted, false},
		{models.AttemptStatusAbandoned, models.AttemptStatusInProgress, false},
		// No-op writes to a terminal state are tolerated
		{models.AttemptStatusCompleted, models.AttemptStatusCompleted, true},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if models.AttemptStatusInProgress.IsTerminal() {
		t.Error("in_progress should not be terminal")
	}
	for _, s := range []models.AttemptStatus{
		models.AttemptStatusCompleted,
		models.AttemptStatusFailed,
		models.AttemptStatusAbandoned,
	} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestApplyCompletionStampsOnce(t *testing.T) {
	attempt := &models.ChallengeAttempt{Status: models.AttemptStatusInProgress}

	first := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	ApplyCompletion(attempt, first)
	if attempt.CompletedAt == nil || !attempt.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt = %v, want %v", attempt.CompletedAt, first)
	}

	later := first.Add(time.Hour)
	ApplyCompletion(attempt, later)
	if !attempt.CompletedAt.Equal(first) {
		t.Errorf("CompletedAt overwritten to %v, want original %v", attempt.CompletedAt, first)
	}
}

func TestTimeBonus(t *testing.T) {
	limit := 100
	tests := []struct {
		spent int
		want  int
	}{
		{40, 20},
		{50, 20},
		{60, 10},
		{75, 10},
		{90, 5},
		{100, 5},
		{120, 0},
	}

	for _, tt := range tests {
		if got := TimeBonus(tt.spent, &limit); got != tt.want {
			t.Errorf("TimeBonus(%d, 100) = %d, want %d", tt.spent, got, tt.want)
		}
	}

	if got := TimeBonus(10, nil); got != 0 {
		t.Errorf("TimeBonus without limit = %d, want 0", got)
	}
	zero := 0
	if got := TimeBonus(10, &zero); got != 0 {
		t.Errorf("TimeBonus with zero limit = %d, want 0", got)
	}
}
