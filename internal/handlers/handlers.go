package handlers

import (
	"claymaster/internal/auth"
	"claymaster/internal/services"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Registry    services.RegistryServicer
	Pool        services.PoolServicer
	Rounds      services.RoundServicer
	Submissions services.SubmissionServicer
	Scoring     services.ScoringServicer
	Leaderboard services.LeaderboardServicer
	State       services.StateServicer
	Audience    services.AudienceServicer
	Sessions    *auth.Sessions
}

// New creates a new Handlers instance with all dependencies
func New(
	registry services.RegistryServicer,
	pool services.PoolServicer,
	rounds services.RoundServicer,
	submissions services.SubmissionServicer,
	scoring services.ScoringServicer,
	leaderboard services.LeaderboardServicer,
	state services.StateServicer,
	audience services.AudienceServicer,
	sessions *auth.Sessions,
) *Handlers {
	return &Handlers{
		Registry:    registry,
		Pool:        pool,
		Rounds:      rounds,
		Submissions: submissions,
		Scoring:     scoring,
		Leaderboard: leaderboard,
		State:       state,
		Audience:    audience,
		Sessions:    sessions,
	}
}
