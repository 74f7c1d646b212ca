// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"devrally/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Challenge{},
		&models.ChallengeAttempt{},
		&models.GameRoom{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what the struct tags declare
func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Team indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_leader ON teams(leader_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_total_score ON teams(total_score DESC)")

	// Team member indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_role ON team_members(role)")

	// Challenge indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_type ON challenges(type)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_active ON challenges(is_active)")

	// Attempt indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_challenge ON challenge_attempts(challenge_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_team ON challenge_attempts(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_user ON challenge_attempts(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_status ON challenge_attempts(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_completed ON challenge_attempts(completed_at DESC)")

	// Game room indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_rooms_status ON game_rooms(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_rooms_team ON game_rooms(team_id)")
}
