// handlers/init.go - Service Wiring
package handlers

import (
	"devrally/database"
	"devrally/services"
)

var (
	teamService      *services.TeamService
	challengeService *services.ChallengeService
	attemptService   *services.AttemptService
)

// InitHandlers wires the services against the initialized database and
// the broadcast hub. Must run after database.InitDB.
func InitHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}

	teamService = services.NewTeamService(db, GetHub())
	challengeService = services.NewChallengeService(db)
	attemptService = services.NewAttemptService(db, teamService, GetHub())
}
